package markdown

import (
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World!", "hello-world"},
		{"Re: Fix the build", "re-fix-the-build"},
		{"  spaces   everywhere  ", "spaces-everywhere"},
		{"already-a-slug", "already-a-slug"},
		{"ALL CAPS", "all-caps"},
		{"!!!", "untitled"},
		{"", "untitled"},
		{"héllo wörld", "h-llo-w-rld"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyCapsLength(t *testing.T) {
	got := Slugify(strings.Repeat("a", 100))
	if len(got) != 60 {
		t.Errorf("len = %d, want 60", len(got))
	}
}

func TestThreadKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "hello"},
		{"Re: Hello", "hello"},
		{"RE: Hello", "hello"},
		{"Fwd: Hello", "hello"},
		{"FW: Hello", "hello"},
		{"  Re:   Hello  ", "hello"},
		{"Re: Re: Hello", "re: hello"},
		{"revision notes", "revision notes"},
	}
	for _, tt := range tests {
		if got := ThreadKey(tt.in); got != tt.want {
			t.Errorf("ThreadKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	got := ParseDate("Mon, 10 Feb 2025 10:30:00 +0000")
	want := time.Date(2025, 2, 10, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDateFallsBackToEpoch(t *testing.T) {
	got := ParseDate("not a date at all")
	if !got.Equal(time.Unix(0, 0)) {
		t.Errorf("ParseDate = %v, want epoch", got)
	}
}
