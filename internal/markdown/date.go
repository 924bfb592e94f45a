package markdown

import (
	"net/mail"
	"time"
)

// ParseDate parses an RFC 2822 style Date header value. Unparseable values
// collapse to the Unix epoch so that malformed dates sort first instead of
// failing the sync.
func ParseDate(value string) time.Time {
	if t, err := mail.ParseDate(value); err == nil {
		return t.UTC()
	}
	return time.Unix(0, 0).UTC()
}
