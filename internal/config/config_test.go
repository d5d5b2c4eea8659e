package config

import "testing"

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid file store", Config{DataDir: "/tmp/ms", Store: "file", Format: "console"}, false},
		{"valid sqlite store", Config{DataDir: "/tmp/ms", Store: "sqlite", Format: "json"}, false},
		{"bad format", Config{DataDir: "/tmp/ms", Store: "file", Format: "xml"}, true},
		{"bad store", Config{DataDir: "/tmp/ms", Store: "redis", Format: "console"}, true},
		{"empty data dir", Config{Store: "file", Format: "console"}, true},
	}

	for _, tt := range tests {
		err := validateConfig(&tt.config)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: validateConfig error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Store != "file" {
		t.Errorf("Default store = %s, want file", cfg.Store)
	}
	if cfg.Format != "console" {
		t.Errorf("Default format = %s, want console", cfg.Format)
	}
	if cfg.DataDir == "" {
		t.Error("Default data dir must not be empty")
	}
}

func TestLoadConfigDataDirOverride(t *testing.T) {
	cfg, err := LoadConfig("/tmp/elsewhere")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DataDir != "/tmp/elsewhere" {
		t.Errorf("DataDir = %s, want /tmp/elsewhere", cfg.DataDir)
	}
}
