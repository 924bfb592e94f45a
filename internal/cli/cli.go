// Package cli holds the wiring shared by the mailscribe binaries.
package cli

import (
	"context"
	"log/slog"
	"os"

	"mailscribe/internal/credential"
	"mailscribe/internal/model"
	"mailscribe/internal/source"
	"mailscribe/internal/source/email"
	"mailscribe/internal/sync"
)

// Logger builds the standard text logger. Verbose enables debug records.
func Logger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// LoadEngine resolves the data directory, loads its configuration, and
// builds a sync engine wired to the real IMAP client and credential
// sources.
func LoadEngine(dataDir string, log *slog.Logger) (*sync.Engine, error) {
	paths := model.ResolvePaths(dataDir)
	cfg, err := model.LoadConfig(paths.ConfigFile())
	if err != nil {
		return nil, err
	}
	return &sync.Engine{
		Config: cfg,
		Paths:  paths,
		Dial: func(ctx context.Context, name string, acct model.Account, password string) (source.Mailbox, error) {
			return email.Dial(ctx, name, acct, password)
		},
		Password: credential.Resolve,
		Log:      log,
	}, nil
}
