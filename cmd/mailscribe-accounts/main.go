// Command mailscribe-accounts manages the accounts section of the
// configuration file and the passwords stored in the system keyring.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"mailscribe/internal/cli"
	"mailscribe/internal/credential"
	"mailscribe/internal/model"
)

type accountsConfig struct {
	data        string
	list        bool
	add         string
	provider    string
	user        string
	host        string
	port        int
	starttls    bool
	labels      string
	setPassword string
	verbose     bool
}

func main() {
	cfg := parseFlags()
	logger := cli.Logger(cfg.verbose)
	if err := run(cfg); err != nil {
		logger.Error("mailscribe-accounts failed", "error", err)
		os.Exit(1)
	}
}

func parseFlags() accountsConfig {
	data := flag.String("data", "", "data directory (default: ./mail, $MAILSCRIBE_DATA, or ~/Documents/mail)")
	list := flag.Bool("list", false, "list configured accounts")
	add := flag.String("add", "", "add an account with this name")
	provider := flag.String("provider", "", "connection preset: gmail or protonmail-bridge")
	user := flag.String("user", "", "IMAP login user")
	host := flag.String("host", "", "IMAP host (overrides the provider preset)")
	port := flag.Int("port", 0, "IMAP port (overrides the provider preset)")
	starttls := flag.Bool("starttls", false, "upgrade a plain connection instead of implicit TLS")
	labels := flag.String("labels", "INBOX", "comma-separated labels to sync")
	setPassword := flag.String("set-password", "", "store a keyring password for this account")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	return accountsConfig{
		data:        *data,
		list:        *list,
		add:         *add,
		provider:    *provider,
		user:        *user,
		host:        *host,
		port:        *port,
		starttls:    *starttls,
		labels:      *labels,
		setPassword: *setPassword,
		verbose:     *verbose,
	}
}

func run(cfg accountsConfig) error {
	paths := model.ResolvePaths(cfg.data)
	config, err := model.LoadConfig(paths.ConfigFile())
	if err != nil {
		return err
	}

	switch {
	case cfg.list:
		return listAccounts(config)
	case cfg.add != "":
		return addAccount(paths, config, cfg)
	case cfg.setPassword != "":
		return setPassword(config, cfg.setPassword)
	default:
		return fmt.Errorf("nothing to do: pass -list, -add NAME, or -set-password NAME")
	}
}

func listAccounts(config *model.Config) error {
	if len(config.Accounts) == 0 {
		fmt.Println("No accounts configured.")
		return nil
	}
	names := make([]string, 0, len(config.Accounts))
	for name := range config.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		acct := config.Accounts[name]
		fmt.Printf("  %s: %s@%s:%d labels=%s sync_days=%d\n",
			name, acct.User, acct.Host, acct.Port, strings.Join(acct.Labels, ","), config.SyncDaysFor(acct))
	}
	return nil
}

func addAccount(paths model.Paths, config *model.Config, cfg accountsConfig) error {
	name := strings.ToLower(cfg.add)
	if _, exists := config.Accounts[name]; exists {
		return fmt.Errorf("account %q already exists", name)
	}
	if cfg.user == "" {
		return fmt.Errorf("-user is required when adding an account")
	}

	acct := model.Account{
		Provider: cfg.provider,
		Host:     cfg.host,
		Port:     cfg.port,
		STARTTLS: cfg.starttls,
		User:     cfg.user,
		Labels:   splitList(cfg.labels),
	}
	acct.ApplyPreset()
	if acct.Host == "" {
		return fmt.Errorf("no host: pass -host or a known -provider")
	}

	if config.Accounts == nil {
		config.Accounts = make(map[string]model.Account)
	}
	config.Accounts[name] = acct
	if err := model.SaveConfig(paths.ConfigFile(), config); err != nil {
		return err
	}
	fmt.Printf("Added account %q. Store its password with -set-password %s\n", name, name)
	return nil
}

func setPassword(config *model.Config, name string) error {
	lower := strings.ToLower(name)
	if _, ok := config.Accounts[lower]; !ok {
		return fmt.Errorf("unknown account %q", name)
	}

	password, err := readPassword(lower)
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("empty password")
	}
	if err := credential.Set(lower, password); err != nil {
		return err
	}
	fmt.Printf("Stored password for %q in the system keyring.\n", lower)
	return nil
}

// readPassword prompts without echo on a terminal and falls back to
// reading one line when stdin is piped.
func readPassword(name string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprintf(os.Stderr, "Password for %q: ", name)
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(data), nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return "", fmt.Errorf("no password on stdin")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
