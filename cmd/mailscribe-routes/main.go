// Command mailscribe-routes applies the configured routing rules to the
// existing conversation files in one batch, copying matching threads into
// their destination mailbox directories. Useful after adding a rule, when
// already-synced mail should be fanned out without a full resync.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"mailscribe/internal/cli"
	"mailscribe/internal/model"
	"mailscribe/internal/sync"
)

type routesConfig struct {
	data    string
	verbose bool
}

func main() {
	cfg := parseFlags()
	logger := cli.Logger(cfg.verbose)
	if err := run(cfg, logger); err != nil {
		logger.Error("mailscribe-routes failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() routesConfig {
	data := flag.String("data", "", "data directory (default: ./mail, $MAILSCRIBE_DATA, or ~/Documents/mail)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	return routesConfig{
		data:    *data,
		verbose: *verbose,
	}
}

func run(cfg routesConfig, logger *slog.Logger) error {
	paths := model.ResolvePaths(cfg.data)
	config, err := model.LoadConfig(paths.ConfigFile())
	if err != nil {
		return err
	}

	// An empty account name matches every scoped routing key.
	routes := sync.BuildRoutes(config.Routing, paths.Data, "")
	if len(routes) == 0 {
		fmt.Println("No routing rules configured.")
		return nil
	}

	copied, skipped, err := sync.ApplyRoutes(paths.Conversations(), routes, logger)
	if err != nil {
		return err
	}
	logger.Info("routes applied", "copied", copied, "skipped", skipped)
	return nil
}
