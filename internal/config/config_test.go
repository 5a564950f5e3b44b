package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	want := DefaultConfig()
	if cfg.General != want.General || cfg.Appearance != want.Appearance {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadFromOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[general]
message_dir = "/data/inbox"
cache_backend = "sqlite"
timezone_offset_hours = -5

[appearance]
theme = "terminal"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.General.MessageDir != "/data/inbox" {
		t.Errorf("MessageDir = %q", cfg.General.MessageDir)
	}
	if cfg.General.CacheBackend != "sqlite" {
		t.Errorf("CacheBackend = %q", cfg.General.CacheBackend)
	}
	if cfg.General.StatsDir != "./stats" {
		t.Errorf("StatsDir = %q, want default kept", cfg.General.StatsDir)
	}
	if cfg.General.TimezoneOffsetHours == nil || *cfg.General.TimezoneOffsetHours != -5 {
		t.Errorf("TimezoneOffsetHours = %v, want -5", cfg.General.TimezoneOffsetHours)
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q", cfg.Appearance.Theme)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[general\nmessage_dir = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.General.VideoDir = "/tmp/calls"
	offset := 3
	cfg.General.TimezoneOffsetHours = &offset

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.General.VideoDir != "/tmp/calls" {
		t.Errorf("VideoDir = %q", got.General.VideoDir)
	}
	if got.General.TimezoneOffsetHours == nil || *got.General.TimezoneOffsetHours != 3 {
		t.Errorf("TimezoneOffsetHours = %v, want 3", got.General.TimezoneOffsetHours)
	}
}

func TestSaveToOmitsUnsetOffset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTo(path, DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.General.TimezoneOffsetHours != nil {
		t.Errorf("TimezoneOffsetHours = %d, want nil", *got.General.TimezoneOffsetHours)
	}
}

func TestPathHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if got, want := Path(), filepath.Join(dir, "igstats", "config.toml"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if Exists() {
		t.Error("Exists() = true before Save")
	}
	if err := Save(DefaultConfig()); err != nil {
		t.Fatal(err)
	}
	if !Exists() {
		t.Error("Exists() = false after Save")
	}
}

func TestResolveTimezoneOffset(t *testing.T) {
	fromFile := 2

	tests := []struct {
		name     string
		env      *string
		file     *int
		want     int
		wantFrom string
	}{
		{"default", nil, nil, 8, OffsetFromDefault},
		{"config file", nil, &fromFile, 2, OffsetFromConfig},
		{"env wins", ptr("-3"), &fromFile, -3, OffsetFromEnv},
		{"env trimmed", ptr(" 5 "), nil, 5, OffsetFromEnv},
		{"env zero", ptr("0"), &fromFile, 0, OffsetFromEnv},
		{"invalid env falls to file", ptr("eight"), &fromFile, 2, OffsetFromConfig},
		{"empty env falls to default", ptr(""), nil, 8, OffsetFromDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != nil {
				t.Setenv(EnvTimezoneOffset, *tt.env)
			} else {
				t.Setenv(EnvTimezoneOffset, "")
				_ = os.Unsetenv(EnvTimezoneOffset)
			}

			cfg := DefaultConfig()
			cfg.General.TimezoneOffsetHours = tt.file

			got, from := ResolveTimezoneOffset(cfg)
			if got != tt.want || from != tt.wantFrom {
				t.Errorf("ResolveTimezoneOffset() = (%d, %q), want (%d, %q)", got, from, tt.want, tt.wantFrom)
			}
			if hours := TimezoneOffsetHours(cfg); hours != tt.want {
				t.Errorf("TimezoneOffsetHours() = %d, want %d", hours, tt.want)
			}
		})
	}
}

func ptr(s string) *string { return &s }
