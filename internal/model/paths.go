package model

import (
	"os"
	"path/filepath"
)

// Paths locates the data directory and the well-known files inside it.
type Paths struct {
	// Data is the root of the mail mirror.
	Data string
}

// ResolvePaths picks the data directory. Priority: the explicit override,
// a ./mail directory in the working directory, $MAILSCRIBE_DATA, then
// ~/Documents/mail.
func ResolvePaths(override string) Paths {
	if override != "" {
		return Paths{Data: override}
	}
	if st, err := os.Stat("mail"); err == nil && st.IsDir() {
		return Paths{Data: "mail"}
	}
	if env := os.Getenv("MAILSCRIBE_DATA"); env != "" {
		return Paths{Data: env}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{Data: "mail"}
	}
	return Paths{Data: filepath.Join(home, "Documents", "mail")}
}

// Conversations is the primary directory of thread files.
func (p Paths) Conversations() string {
	return filepath.Join(p.Data, "conversations")
}

// Destination is the conversations directory of a named mailbox under the
// data root, used as a routing fan-out target.
func (p Paths) Destination(name string) string {
	return filepath.Join(p.Data, name, "conversations")
}

// StateFile is the sync cursor file.
func (p Paths) StateFile() string {
	return filepath.Join(p.Data, ".sync-state.json")
}

// ManifestFile is the generated thread index.
func (p Paths) ManifestFile() string {
	return filepath.Join(p.Data, "manifest.toml")
}

// ConfigFile is the configuration file inside the data directory. The
// dotfile name is preferred; a bare mailscribe.toml is honored when only
// it exists.
func (p Paths) ConfigFile() string {
	dot := filepath.Join(p.Data, ".mailscribe.toml")
	if _, err := os.Stat(dot); err == nil {
		return dot
	}
	plain := filepath.Join(p.Data, "mailscribe.toml")
	if _, err := os.Stat(plain); err == nil {
		return plain
	}
	return dot
}
