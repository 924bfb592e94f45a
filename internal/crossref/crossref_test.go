package crossref

import (
	"reflect"
	"testing"

	"mailscribe/internal/model"
)

func TestAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice Smith <alice@example.com>", "alice@example.com"},
		{"<Bob@Example.COM>", "bob@example.com"},
		{"carol@example.com", "carol@example.com"},
		{"  Dave <dave@example.com>  ", "dave@example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Address(tt.in); got != tt.want {
			t.Errorf("Address(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchContacts(t *testing.T) {
	contacts := []model.Contact{
		{Name: "Alice", Emails: []string{"alice@example.com", "asmith@work.com"}},
		{Name: "Bob", Emails: []string{"Bob@Example.com"}},
	}

	tests := []struct {
		name    string
		senders []string
		want    []string
	}{
		{
			name:    "single match",
			senders: []string{"Alice Smith <alice@example.com>"},
			want:    []string{"Alice"},
		},
		{
			name:    "alternate address",
			senders: []string{"A. Smith <asmith@work.com>"},
			want:    []string{"Alice"},
		},
		{
			name:    "case insensitive",
			senders: []string{"bob <BOB@EXAMPLE.COM>"},
			want:    []string{"Bob"},
		},
		{
			name:    "dedup keeps first appearance order",
			senders: []string{"Bob <bob@example.com>", "Alice <alice@example.com>", "Bob <bob@example.com>"},
			want:    []string{"Bob", "Alice"},
		},
		{
			name:    "unknown sender",
			senders: []string{"Mallory <mallory@evil.com>"},
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchContacts(tt.senders, contacts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchContacts(%v) = %v, want %v", tt.senders, got, tt.want)
			}
		})
	}
}
