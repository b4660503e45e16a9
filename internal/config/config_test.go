package config

import "testing"

// TestParseEnvLine verifies .env line parsing.
func TestParseEnvLine(t *testing.T) {
	cases := []struct {
		line  string
		key   string
		value string
		ok    bool
	}{
		{"JOYKEYS_QUANTIZER=trig", "JOYKEYS_QUANTIZER", "trig", true},
		{`export JOYKEYS_LISTEN_ADDR="127.0.0.1:9000"`, "JOYKEYS_LISTEN_ADDR", "127.0.0.1:9000", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"NOEQUALS", "", "", false},
		{"=value", "", "", false},
	}
	for _, tc := range cases {
		key, value, ok := parseEnvLine(tc.line)
		if key != tc.key || value != tc.value || ok != tc.ok {
			t.Fatalf("line %q: expected (%q,%q,%v), got (%q,%q,%v)", tc.line, tc.key, tc.value, tc.ok, key, value, ok)
		}
	}
}

// TestNormalizeQuantizer verifies unknown quantizer values fall back to the
// table variant.
func TestNormalizeQuantizer(t *testing.T) {
	if got := normalizeQuantizer("TRIG"); got != "trig" {
		t.Fatalf("expected trig, got %q", got)
	}
	if got := normalizeQuantizer("bogus"); got != "table" {
		t.Fatalf("expected table fallback, got %q", got)
	}
}

// TestLoad_Defaults verifies loading without environment overrides.
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"JOYKEYS_LISTEN_ADDR", "JOYKEYS_DATA_DIR", "JOYKEYS_CONFIG_PATH",
		"JOYKEYS_PROFILE_PATH", "JOYKEYS_QUANTIZER", "JOYKEYS_TRAY",
		"JOYKEYS_SKIP_CALIBRATION",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != defaultListenAddr {
		t.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.Quantizer != defaultQuantizer {
		t.Fatalf("expected default quantizer, got %q", cfg.Quantizer)
	}
	if !cfg.TrayEnabled || cfg.SkipCalib {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
}

// TestLoad_EnvOverrides verifies environment variables replace defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JOYKEYS_LISTEN_ADDR", "0.0.0.0:9001")
	t.Setenv("JOYKEYS_QUANTIZER", "trig")
	t.Setenv("JOYKEYS_TRAY", "off")
	t.Setenv("JOYKEYS_SKIP_CALIBRATION", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9001" {
		t.Fatalf("expected overridden listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.Quantizer != "trig" {
		t.Fatalf("expected trig quantizer, got %q", cfg.Quantizer)
	}
	if cfg.TrayEnabled {
		t.Fatalf("expected tray disabled")
	}
	if !cfg.SkipCalib {
		t.Fatalf("expected calibration skipped")
	}
}
