package config

import "time"

type Config struct {
	Store      StoreConfig    `mapstructure:"store"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	Session    SessionConfig  `mapstructure:"session"`
	ConfigPath string         `mapstructure:"-"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // memory | sqlite
	DSN    string `mapstructure:"dsn"`
}

type DefaultsConfig struct {
	Locale   string `mapstructure:"locale"`
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type SessionConfig struct {
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

func NewDefault() *Config {
	return &Config{
		Store:    StoreConfig{Driver: "memory", DSN: ":memory:"},
		Defaults: DefaultsConfig{Locale: "en-US", Currency: "USD"},
		Log:      LogConfig{Level: "warn"},
		Session:  SessionConfig{IdleTimeout: 5 * time.Minute},
	}
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	d := NewDefault()
	return map[string]any{
		"store.driver":         d.Store.Driver,
		"store.dsn":            d.Store.DSN,
		"defaults.locale":      d.Defaults.Locale,
		"defaults.currency":    d.Defaults.Currency,
		"log.level":            d.Log.Level,
		"session.idle_timeout": d.Session.IdleTimeout.String(),
	}
}
