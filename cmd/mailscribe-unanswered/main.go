// Command mailscribe-unanswered lists conversations whose most recent
// message is from someone other than the owner, newest first. It reads
// only the local mirror.
package main

import (
	"flag"
	"fmt"
	"os"

	"mailscribe/internal/cli"
	"mailscribe/internal/model"
	"mailscribe/internal/store"
)

type unansweredConfig struct {
	data    string
	owner   string
	verbose bool
}

func main() {
	cfg := parseFlags()
	logger := cli.Logger(cfg.verbose)
	if err := run(cfg); err != nil {
		logger.Error("mailscribe-unanswered failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() unansweredConfig {
	data := flag.String("data", "", "data directory (default: ./mail, $MAILSCRIBE_DATA, or ~/Documents/mail)")
	owner := flag.String("owner", "", "name or address fragment identifying the owner's own messages")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	return unansweredConfig{
		data:    *data,
		owner:   *owner,
		verbose: *verbose,
	}
}

func run(cfg unansweredConfig) error {
	if cfg.owner == "" {
		return fmt.Errorf("-owner is required")
	}

	paths := model.ResolvePaths(cfg.data)
	threads, err := store.FindUnanswered(paths.Conversations(), cfg.owner)
	if err != nil {
		return err
	}

	if len(threads) == 0 {
		fmt.Println("No unanswered threads found.")
		return nil
	}

	fmt.Printf("Unanswered threads (%d):\n\n", len(threads))
	for _, th := range threads {
		fmt.Printf("  [%s] %s\n", th.Labels, th.File)
		fmt.Printf("           Last from: %s (%s)\n\n", th.Sender, th.Date)
	}
	return nil
}
