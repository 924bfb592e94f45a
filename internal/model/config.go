package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Contact is one address-book entry, matched against thread senders when
// the manifest is generated.
type Contact struct {
	Name   string   `mapstructure:"name" toml:"name"`
	Emails []string `mapstructure:"emails" toml:"emails"`
}

// WatchConfig holds settings for the polling daemon.
type WatchConfig struct {
	// PollInterval is the pause between sync cycles, in seconds.
	PollInterval int `mapstructure:"poll_interval" toml:"poll_interval"`

	// Notify enables best-effort desktop notifications for new mail.
	Notify bool `mapstructure:"notify" toml:"notify"`
}

// Config is the top-level mailscribe configuration.
type Config struct {
	// SyncDays is the full-sync window in days; accounts may override it.
	SyncDays int `mapstructure:"sync_days" toml:"sync_days"`

	// Accounts maps account names to their IMAP settings. Viper lowercases
	// the names on load.
	Accounts map[string]Account `mapstructure:"accounts" toml:"accounts"`

	// Routing maps a label, or "account:label", to extra mailbox
	// directories that receive copies of matching threads.
	Routing map[string][]string `mapstructure:"routing" toml:"routing,omitempty"`

	Contacts []Contact `mapstructure:"contacts" toml:"contacts,omitempty"`

	Watch WatchConfig `mapstructure:"watch" toml:"watch"`
}

// SyncDaysFor returns the full-sync window for an account, falling back to
// the global setting.
func (c *Config) SyncDaysFor(a Account) int {
	if a.SyncDays > 0 {
		return a.SyncDays
	}
	if c.SyncDays > 0 {
		return c.SyncDays
	}
	return defaultSyncDays
}

const (
	defaultSyncDays     = 3650
	defaultPollInterval = 300
	defaultIMAPPort     = 993
)

// defaultConfig returns a sensible default configuration.
func defaultConfig() *Config {
	return &Config{
		SyncDays: defaultSyncDays,
		Accounts: map[string]Account{},
		Watch: WatchConfig{
			PollInterval: defaultPollInterval,
		},
	}
}

// LoadConfig reads configuration from the given TOML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("sync_days", defaultSyncDays)
	v.SetDefault("watch.poll_interval", defaultPollInterval)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Resolve provider presets and connection defaults per account.
	for name, acct := range cfg.Accounts {
		acct.ApplyPreset()
		if acct.Port == 0 {
			acct.Port = defaultIMAPPort
		}
		cfg.Accounts[name] = acct
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a TOML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.Set("sync_days", cfg.SyncDays)
	v.Set("accounts", cfg.Accounts)
	v.Set("watch", cfg.Watch)
	if len(cfg.Routing) > 0 {
		v.Set("routing", cfg.Routing)
	}
	if len(cfg.Contacts) > 0 {
		v.Set("contacts", cfg.Contacts)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
