package model

// Message is one fetched e-mail message in the form the thread files store
// it: decoded headers plus a plain-text body.
type Message struct {
	// ID is the message's IMAP UID rendered as a decimal string. Messages
	// parsed back out of a thread file have an empty ID.
	ID       string
	ThreadID string
	From     string
	// Date is the original RFC 2822 Date header value, preserved verbatim.
	Date    string
	Subject string
	Body    string
}
