package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, expected string
	}{
		{"~/.flappy/flappy.log", filepath.Join(home, ".flappy", "flappy.log")},
		{"/tmp/flappy.log", "/tmp/flappy.log"},
		{"relative/path", "relative/path"},
		{"~user/file", "~user/file"},
	}
	for _, tc := range tests {
		if got := expandHome(tc.in); got != tc.expected {
			t.Errorf("expandHome(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("field:\n  tick_rate: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	flagConfig, flagFPS, flagSeed, flagDebug = path, 0, 9, true
	t.Cleanup(func() { flagConfig, flagFPS, flagSeed, flagDebug = "", 0, 0, false })

	cfg, rc, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if rc.TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30 from the file", rc.TickRate)
	}
	if rc.Seed != 9 || !rc.Debug || !cfg.Debug {
		t.Errorf("flags not applied: seed=%d debug=%v/%v", rc.Seed, rc.Debug, cfg.Debug)
	}
	if rc.FieldW != 800 || rc.FieldH != 600 {
		t.Errorf("field = %dx%d, expected defaults", rc.FieldW, rc.FieldH)
	}

	flagFPS = 120
	if _, rc, _ = loadConfig(); rc.TickRate != 120 {
		t.Errorf("--fps should override the config, got %d", rc.TickRate)
	}
}
