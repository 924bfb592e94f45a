package model

// Account is one configured IMAP account.
type Account struct {
	// Provider selects a connection preset ("gmail", "protonmail-bridge").
	// Unknown providers leave the connection fields untouched.
	Provider string `mapstructure:"provider" toml:"provider,omitempty"`
	Host     string `mapstructure:"host" toml:"host,omitempty"`
	Port     int    `mapstructure:"port" toml:"port,omitempty"`
	// STARTTLS upgrades a plain connection instead of dialing implicit TLS.
	STARTTLS    bool     `mapstructure:"starttls" toml:"starttls,omitempty"`
	User        string   `mapstructure:"user" toml:"user,omitempty"`
	Password    string   `mapstructure:"password" toml:"password,omitempty"`
	PasswordCmd string   `mapstructure:"password_cmd" toml:"password_cmd,omitempty"`
	Labels      []string `mapstructure:"labels" toml:"labels,omitempty"`
	// SyncDays overrides the global full-sync window for this account.
	SyncDays int `mapstructure:"sync_days" toml:"sync_days,omitempty"`
}

// Preset holds the connection defaults for a known provider.
type Preset struct {
	Host     string
	Port     int
	STARTTLS bool
}

// Presets returns the provider connection presets.
func Presets() map[string]Preset {
	return map[string]Preset{
		"gmail":             {Host: "imap.gmail.com", Port: 993},
		"protonmail-bridge": {Host: "127.0.0.1", Port: 1143, STARTTLS: true},
	}
}

// ApplyPreset fills connection fields still at their zero value from the
// account's provider preset.
func (a *Account) ApplyPreset() {
	p, ok := Presets()[a.Provider]
	if !ok {
		return
	}
	if a.Host == "" {
		a.Host = p.Host
	}
	if a.Port == 0 {
		a.Port = p.Port
	}
	if p.STARTTLS {
		a.STARTTLS = true
	}
}
