package config

import (
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	if cfg.Store.Driver != "memory" {
		t.Errorf("Store.Driver = %q, want memory", cfg.Store.Driver)
	}
	if cfg.Defaults.Locale != "en-US" || cfg.Defaults.Currency != "USD" {
		t.Errorf("unexpected defaults: %+v", cfg.Defaults)
	}
	if cfg.Session.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.Session.IdleTimeout)
	}
}

func TestDefaults_MatchNewDefault(t *testing.T) {
	d := Defaults()
	cfg := NewDefault()

	if d["store.driver"] != cfg.Store.Driver || d["defaults.locale"] != cfg.Defaults.Locale {
		t.Errorf("Defaults() out of sync with NewDefault(): %v", d)
	}
	if d["session.idle_timeout"] != "5m0s" {
		t.Errorf("session.idle_timeout = %v, want 5m0s", d["session.idle_timeout"])
	}
}
