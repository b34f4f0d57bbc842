package command

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jayph/distresscall/internal/world"
	"github.com/pixil98/go-testutil"
)

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"characters", "factions"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0755); err != nil {
			t.Fatalf("creating %s dir: %v", sub, err)
		}
	}

	valid := func() *Config {
		return &Config{
			Listeners: []ListenerConfig{{Protocol: ListenerTypeTelnet, Port: 2323}},
			Storage: StorageConfig{
				Characters: AssetConfig[*world.Character]{Path: filepath.Join(dir, "characters")},
				Factions:   AssetConfig[*world.Faction]{Path: filepath.Join(dir, "factions")},
				Database:   DatabaseConfig{Path: filepath.Join(dir, "distress.json")},
			},
		}
	}

	tests := map[string]struct {
		mutate    func(*Config)
		expectErr bool
	}{
		"valid": {
			mutate: func(c *Config) {},
		},
		"no listeners": {
			mutate:    func(c *Config) { c.Listeners = nil },
			expectErr: true,
		},
		"listener without port": {
			mutate:    func(c *Config) { c.Listeners[0].Port = 0 },
			expectErr: true,
		},
		"missing character path": {
			mutate:    func(c *Config) { c.Storage.Characters.Path = "" },
			expectErr: true,
		},
		"nonexistent character path": {
			mutate:    func(c *Config) { c.Storage.Characters.Path = filepath.Join(dir, "nope") },
			expectErr: true,
		},
		"missing database path": {
			mutate:    func(c *Config) { c.Storage.Database.Path = "" },
			expectErr: true,
		},
		"bad marker color": {
			mutate:    func(c *Config) { c.Call.MarkerColor = "pink" },
			expectErr: true,
		},
		"good marker color": {
			mutate: func(c *Config) { c.Call.MarkerColor = "#FB33FF" },
		},
		"bad nats timeout": {
			mutate:    func(c *Config) { c.Nats.StartTimeout = "soon" },
			expectErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.expectErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tc.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCallConfigEnabled(t *testing.T) {
	off := false
	on := true

	testutil.AssertEqual(t, "default", (&CallConfig{}).enabled(), true)
	testutil.AssertEqual(t, "explicit false", (&CallConfig{Enabled: &off}).enabled(), false)
	testutil.AssertEqual(t, "explicit true", (&CallConfig{Enabled: &on}).enabled(), true)
}

func TestListenerTypeUnmarshalText(t *testing.T) {
	var cfg ListenerConfig
	if err := json.Unmarshal([]byte(`{"protocol":"ssh","port":2222}`), &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "protocol", cfg.Protocol, ListenerTypeSSH)

	if err := json.Unmarshal([]byte(`{"protocol":"gopher"}`), &cfg); err == nil {
		t.Error("expected error for unknown protocol")
	}
}
