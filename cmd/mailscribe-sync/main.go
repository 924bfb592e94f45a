// Command mailscribe-sync runs one synchronization pass: it fetches new
// mail from every configured IMAP account and folds it into the Markdown
// conversation files in the data directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"mailscribe/internal/cli"
	"mailscribe/internal/repo"
	"mailscribe/internal/sync"
)

type syncConfig struct {
	data    string
	account string
	label   string
	full    bool
	push    bool
	verbose bool
}

func main() {
	cfg := parseFlags()
	logger := cli.Logger(cfg.verbose)
	if err := run(cfg, logger); err != nil {
		logger.Error("mailscribe-sync failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() syncConfig {
	data := flag.String("data", "", "data directory (default: ./mail, $MAILSCRIBE_DATA, or ~/Documents/mail)")
	account := flag.String("account", "", "sync only this account")
	label := flag.String("label", "", "sync only this label")
	full := flag.Bool("full", false, "refetch the whole window and remove orphaned conversations")
	push := flag.Bool("push", false, "pull and push the data repository after the run")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	return syncConfig{
		data:    *data,
		account: *account,
		label:   *label,
		full:    *full,
		push:    *push,
		verbose: *verbose,
	}
}

func run(cfg syncConfig, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine, err := cli.LoadEngine(cfg.data, logger)
	if err != nil {
		return err
	}

	opts := sync.Options{
		Full:    cfg.full,
		Account: cfg.account,
		Label:   cfg.label,
	}
	if err := engine.Run(ctx, opts); err != nil {
		return fmt.Errorf("syncing: %w", err)
	}

	if cfg.push {
		git := &repo.Git{Log: logger}
		if err := git.Pull(ctx, engine.Paths.Data); err != nil {
			logger.Warn("repository pull failed, pushing anyway", "error", err)
		}
		if err := git.Push(ctx, engine.Paths.Data, sync.CommitMessage); err != nil {
			logger.Warn("repository push failed", "error", err)
		}
	}
	return nil
}
