package arenaconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

var (
	// ErrConfigNotFound is returned by Load when the named file does not exist.
	ErrConfigNotFound = errors.New("tuning config not found")
	// ErrInvalidConfig is returned when a loaded config fails Validate.
	ErrInvalidConfig = errors.New("invalid tuning config")
)

// Tuning holds the values an operator may override via a JSON file
// passed to --config. Zero-valued fields are not used directly; Load
// merges over Default() first.
type Tuning struct {
	MaxTurns        int     `json:"max_turns"`
	FirstTurnMillis int     `json:"first_turn_millis"`
	TurnMillis      int     `json:"turn_millis"`
	FastTiming      bool    `json:"fast_timing"`
	TimeoutScale    float64 `json:"timeout_scale"`
	Debug           bool    `json:"debug"`
}

// Default returns the baked-in tuning matching spec §4.2/§4.5: a
// 200-turn cap, a 10s first-turn budget and 1s per turn thereafter,
// no timeout scaling, and debug logging off.
func Default() Tuning {
	return Tuning{
		MaxTurns:        200,
		FirstTurnMillis: 10000,
		TurnMillis:      1000,
		TimeoutScale:    1.0,
		Debug:           false,
	}
}

// Validate rejects a tuning file with nonsensical values; a config
// manager loading it should fail loudly rather than hand a broken
// timing budget to the match runner.
func (t Tuning) Validate() error {
	if t.MaxTurns <= 0 {
		return fmt.Errorf("%w: max_turns must be positive, got %d", ErrInvalidConfig, t.MaxTurns)
	}
	if t.FirstTurnMillis <= 0 || t.TurnMillis <= 0 {
		return fmt.Errorf("%w: turn time budgets must be positive", ErrInvalidConfig)
	}
	if t.TimeoutScale <= 0 {
		return fmt.Errorf("%w: timeout_scale must be positive, got %g", ErrInvalidConfig, t.TimeoutScale)
	}
	return nil
}

// Manager caches the tuning loaded from a single file path, mirroring
// game/config.Manager's read-once-then-serve-from-cache behavior.
type Manager struct {
	mu     sync.RWMutex
	loaded bool
	cached Tuning
}

// NewManager returns a Manager seeded with Default(); nothing is read
// from disk until Load is called.
func NewManager() *Manager {
	return &Manager{cached: Default()}
}

// Load reads path, overlays its fields onto Default(), validates the
// result, and caches it. A path of "" (no --config flag given) leaves
// the default tuning in place and is not an error.
func (m *Manager) Load(path string) (Tuning, error) {
	if path == "" {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.cached = Default()
		m.loaded = true
		return m.cached, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Tuning{}, ErrConfigNotFound
		}
		return Tuning{}, fmt.Errorf("failed to read tuning config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Tuning{}, err
	}

	m.mu.Lock()
	m.cached = cfg
	m.loaded = true
	m.mu.Unlock()
	return cfg, nil
}

// Current returns the last loaded tuning, or Default() if Load has
// never been called.
func (m *Manager) Current() Tuning {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.loaded {
		return Default()
	}
	return m.cached
}
