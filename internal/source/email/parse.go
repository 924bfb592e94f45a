package email

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-message/mail"

	// Registers decoders for non-UTF-8 charsets.
	_ "github.com/emersion/go-message/charset"
)

// ParseMail extracts the stored header fields and the preferred text body
// from a raw RFC 822 message using go-message.
//
// Subject and From are decoded (RFC 2047); the Date header is kept raw.
// For multipart messages the body is the first text/plain part that
// carries no Content-Disposition; a message without MIME structure
// contributes its whole body. A message with neither yields an empty
// body, which is still a valid message.
func ParseMail(raw []byte) (*ParsedMail, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing message: %w", err)
	}
	defer mr.Close()

	parsed := &ParsedMail{
		Subject: decodedHeader(mr.Header, "Subject"),
		From:    decodedHeader(mr.Header, "From"),
		Date:    mr.Header.Get("Date"),
	}
	if parsed.Subject == "" {
		parsed.Subject = "(no subject)"
	}

	topType, _, _ := mr.Header.ContentType()
	multipart := strings.HasPrefix(topType, "multipart/")

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		h, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			// Attachments never contribute a body.
			continue
		}

		contentType, _, _ := h.ContentType()
		body, readErr := io.ReadAll(part.Body)
		if readErr != nil {
			continue
		}

		if !multipart {
			parsed.Body = string(body)
			break
		}
		if strings.HasPrefix(contentType, "text/plain") && h.Get("Content-Disposition") == "" {
			parsed.Body = string(body)
			break
		}
	}

	return parsed, nil
}

// decodedHeader returns the RFC 2047 decoded value of a header, falling
// back to the raw value when decoding fails.
func decodedHeader(h mail.Header, key string) string {
	if v, err := h.Text(key); err == nil {
		return v
	}
	return h.Get(key)
}
