// Command mailscribe-manifest regenerates manifest.toml from the
// conversation files on disk, without contacting any IMAP server.
package main

import (
	"flag"
	"log/slog"
	"os"

	"mailscribe/internal/cli"
	"mailscribe/internal/model"
	"mailscribe/internal/store"
)

type manifestConfig struct {
	data    string
	verbose bool
}

func main() {
	cfg := parseFlags()
	logger := cli.Logger(cfg.verbose)
	if err := run(cfg, logger); err != nil {
		logger.Error("mailscribe-manifest failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() manifestConfig {
	data := flag.String("data", "", "data directory (default: ./mail, $MAILSCRIBE_DATA, or ~/Documents/mail)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	return manifestConfig{
		data:    *data,
		verbose: *verbose,
	}
}

func run(cfg manifestConfig, logger *slog.Logger) error {
	paths := model.ResolvePaths(cfg.data)
	config, err := model.LoadConfig(paths.ConfigFile())
	if err != nil {
		return err
	}
	return store.WriteManifest(paths.Conversations(), paths.ManifestFile(), config.Contacts, logger)
}
