package config

import (
	"sync/atomic"
	"time"
)

// Settings is the runtime-mutable slice of the configuration: alarm
// behavior, preprocessing, and alert tuning. The session worker and the
// alert sinks read it every time they need a value; the HTTP layer
// replaces it wholesale. Snapshots are immutable, so readers never see
// a torn update.
type Settings struct {
	AlarmEnabled         bool          `json:"alarm_enabled"`
	AlarmVolume          float64       `json:"alarm_volume"`
	CustomAlarmPath      string        `json:"custom_alarm_path,omitempty"`
	EnhancementEnabled   bool          `json:"enhancement_enabled"`
	AlertThresholdFrames int           `json:"alert_threshold_frames"`
	AlertCooldown        time.Duration `json:"-"`
}

// SettingsStore holds the current snapshot behind an atomic pointer.
type SettingsStore struct {
	current atomic.Pointer[Settings]
}

func NewSettingsStore(initial Settings) *SettingsStore {
	s := &SettingsStore{}
	s.current.Store(&initial)
	return s
}

// Current returns the active snapshot by value.
func (s *SettingsStore) Current() Settings {
	return *s.current.Load()
}

// Replace installs a new snapshot.
func (s *SettingsStore) Replace(next Settings) {
	s.current.Store(&next)
}

// Update applies fn to a copy of the current snapshot and installs the
// result.
func (s *SettingsStore) Update(fn func(*Settings)) Settings {
	next := s.Current()
	fn(&next)
	s.current.Store(&next)
	return next
}
