package email

// ParsedMail holds the decoded header fields and plain-text body the sync
// engine stores for one message.
type ParsedMail struct {
	Subject string
	From    string
	// Date is the raw Date header value, kept verbatim for the thread file.
	Date string
	Body string
}
