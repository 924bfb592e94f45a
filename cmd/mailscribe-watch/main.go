// Command mailscribe-watch polls the configured IMAP accounts on an
// interval, keeping the Markdown mirror current. It optionally pushes the
// data repository and raises a desktop notification when new mail lands.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mailscribe/internal/cli"
	"mailscribe/internal/repo"
	"mailscribe/internal/sync"
)

type watchConfig struct {
	data     string
	interval int
	push     bool
	verbose  bool
}

func main() {
	cfg := parseFlags()
	logger := cli.Logger(cfg.verbose)
	if err := run(cfg, logger); err != nil {
		logger.Error("mailscribe-watch failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() watchConfig {
	data := flag.String("data", "", "data directory (default: ./mail, $MAILSCRIBE_DATA, or ~/Documents/mail)")
	interval := flag.Int("interval", 0, "seconds between sync cycles (default: watch.poll_interval from the config)")
	push := flag.Bool("push", false, "push the data repository after cycles that found new mail")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	return watchConfig{
		data:     *data,
		interval: *interval,
		push:     *push,
		verbose:  *verbose,
	}
}

func run(cfg watchConfig, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine, err := cli.LoadEngine(cfg.data, logger)
	if err != nil {
		return err
	}

	interval := engine.Config.Watch.PollInterval
	if cfg.interval > 0 {
		interval = cfg.interval
	}

	watcher := &sync.Watcher{
		Engine:   engine,
		Interval: time.Duration(interval) * time.Second,
		Notify:   engine.Config.Watch.Notify,
		Log:      logger,
	}
	if cfg.push {
		watcher.Repo = &repo.Git{Log: logger}
	}
	return watcher.Run(ctx)
}
