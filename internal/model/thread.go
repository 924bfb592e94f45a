package model

// Thread is one conversation: every message sharing a thread key, persisted
// as a single Markdown file.
type Thread struct {
	// ID is the normalized thread key derived from the subject.
	ID       string
	Subject  string
	Labels   []string
	Accounts []string
	Messages []Message
	// LastDate is the Date header of the newest message.
	LastDate string
}

// AddLabel records a label on the thread unless it is empty or already
// present.
func (t *Thread) AddLabel(label string) {
	if label == "" || contains(t.Labels, label) {
		return
	}
	t.Labels = append(t.Labels, label)
}

// AddAccount records an account name on the thread unless it is empty or
// already present.
func (t *Thread) AddAccount(account string) {
	if account == "" || contains(t.Accounts, account) {
		return
	}
	t.Accounts = append(t.Accounts, account)
}

// HasMessage reports whether the thread already holds a message with the
// same sender and date.
func (t *Thread) HasMessage(from, date string) bool {
	for _, m := range t.Messages {
		if m.From == from && m.Date == date {
			return true
		}
	}
	return false
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
