package email

import (
	"strings"
	"testing"
)

func message(lines ...string) []byte {
	return []byte(strings.Join(lines, "\r\n"))
}

func TestParseMailPlain(t *testing.T) {
	raw := message(
		"From: Alice <alice@example.com>",
		"Date: Mon, 10 Feb 2025 09:00:00 +0000",
		"Subject: Hello World",
		"",
		"First message.",
	)

	got, err := ParseMail(raw)
	if err != nil {
		t.Fatalf("ParseMail: %v", err)
	}
	if got.Subject != "Hello World" {
		t.Errorf("subject = %q", got.Subject)
	}
	if got.From != "Alice <alice@example.com>" {
		t.Errorf("from = %q", got.From)
	}
	if got.Date != "Mon, 10 Feb 2025 09:00:00 +0000" {
		t.Errorf("date = %q", got.Date)
	}
	if strings.TrimSpace(got.Body) != "First message." {
		t.Errorf("body = %q", got.Body)
	}
}

func TestParseMailPrefersPlainPart(t *testing.T) {
	raw := message(
		"From: bob@example.com",
		"Date: Mon, 10 Feb 2025 10:00:00 +0000",
		"Subject: Mixed",
		"MIME-Version: 1.0",
		"Content-Type: multipart/alternative; boundary=XYZ",
		"",
		"--XYZ",
		"Content-Type: text/html",
		"",
		"<p>rich text</p>",
		"--XYZ",
		"Content-Type: text/plain",
		"",
		"plain text",
		"--XYZ--",
		"",
	)

	got, err := ParseMail(raw)
	if err != nil {
		t.Fatalf("ParseMail: %v", err)
	}
	if strings.TrimSpace(got.Body) != "plain text" {
		t.Errorf("body = %q, want the text/plain part", got.Body)
	}
}

func TestParseMailSkipsAttachments(t *testing.T) {
	raw := message(
		"From: bob@example.com",
		"Date: Mon, 10 Feb 2025 10:00:00 +0000",
		"Subject: With attachment",
		"MIME-Version: 1.0",
		"Content-Type: multipart/mixed; boundary=XYZ",
		"",
		"--XYZ",
		"Content-Type: text/plain; name=notes.txt",
		"Content-Disposition: attachment; filename=notes.txt",
		"",
		"attached notes",
		"--XYZ",
		"Content-Type: text/plain",
		"",
		"the real body",
		"--XYZ--",
		"",
	)

	got, err := ParseMail(raw)
	if err != nil {
		t.Fatalf("ParseMail: %v", err)
	}
	if strings.TrimSpace(got.Body) != "the real body" {
		t.Errorf("body = %q, want the inline part", got.Body)
	}
}

func TestParseMailMissingHeaders(t *testing.T) {
	raw := message(
		"From: carol@example.com",
		"",
		"no subject or date here",
	)

	got, err := ParseMail(raw)
	if err != nil {
		t.Fatalf("ParseMail: %v", err)
	}
	if got.Subject != "(no subject)" {
		t.Errorf("subject = %q, want default", got.Subject)
	}
	if got.Date != "" {
		t.Errorf("date = %q, want empty", got.Date)
	}
}

func TestParseMailDecodesEncodedSubject(t *testing.T) {
	raw := message(
		"From: dave@example.com",
		"Date: Mon, 10 Feb 2025 10:00:00 +0000",
		"Subject: =?utf-8?q?caf=C3=A9_plans?=",
		"",
		"meet at nine",
	)

	got, err := ParseMail(raw)
	if err != nil {
		t.Fatalf("ParseMail: %v", err)
	}
	if got.Subject != "café plans" {
		t.Errorf("subject = %q, want decoded", got.Subject)
	}
}
