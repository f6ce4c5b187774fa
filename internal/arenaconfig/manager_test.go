package arenaconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestConfig(t *testing.T, contents string) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "arenaconfig-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	path := filepath.Join(dir, "tuning.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestManagerLoadEmptyPath(t *testing.T) {
	m := NewManager()
	cfg, err := m.Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected default tuning, got %+v", cfg)
	}
}

func TestManagerLoadMissingFile(t *testing.T) {
	m := NewManager()
	_, err := m.Load("/no/such/file/tuning.json")
	if err != ErrConfigNotFound {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestManagerLoadOverridesDefaults(t *testing.T) {
	path := writeTestConfig(t, `{"max_turns": 50, "debug": true}`)
	m := NewManager()

	cfg, err := m.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxTurns != 50 {
		t.Errorf("MaxTurns = %d, want 50", cfg.MaxTurns)
	}
	if !cfg.Debug {
		t.Errorf("Debug = false, want true")
	}
	if cfg.FirstTurnMillis != Default().FirstTurnMillis {
		t.Errorf("FirstTurnMillis overridden unexpectedly: %d", cfg.FirstTurnMillis)
	}
	if m.Current() != cfg {
		t.Errorf("Current() did not reflect the loaded config")
	}
}

func TestManagerLoadRejectsInvalidConfig(t *testing.T) {
	path := writeTestConfig(t, `{"max_turns": -1}`)
	m := NewManager()

	if _, err := m.Load(path); err == nil {
		t.Fatalf("expected an error for a negative max_turns")
	}
}

func TestManagerLoadRejectsMalformedJSON(t *testing.T) {
	path := writeTestConfig(t, `not json`)
	m := NewManager()

	if _, err := m.Load(path); err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		tuning  Tuning
		wantErr bool
	}{
		{"defaults are valid", Default(), false},
		{"zero max turns", Tuning{MaxTurns: 0, FirstTurnMillis: 1, TurnMillis: 1, TimeoutScale: 1}, true},
		{"zero first turn budget", Tuning{MaxTurns: 1, FirstTurnMillis: 0, TurnMillis: 1, TimeoutScale: 1}, true},
		{"negative timeout scale", Tuning{MaxTurns: 1, FirstTurnMillis: 1, TurnMillis: 1, TimeoutScale: -1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.tuning.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
