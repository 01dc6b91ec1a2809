package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %s, want 8080", cfg.HTTPPort)
	}
	if cfg.DBPath != ":memory:" {
		t.Errorf("DBPath = %s, want :memory:", cfg.DBPath)
	}
	if cfg.AlertThresholdFrames != 30 {
		t.Errorf("AlertThresholdFrames = %d, want 30", cfg.AlertThresholdFrames)
	}
	if cfg.AlertCooldown != 5*time.Second {
		t.Errorf("AlertCooldown = %v, want 5s", cfg.AlertCooldown)
	}
	if cfg.AlarmVolume != 0.7 {
		t.Errorf("AlarmVolume = %v, want 0.7", cfg.AlarmVolume)
	}
	if !cfg.AlarmEnabled || !cfg.EnhancementEnabled {
		t.Error("alarm and enhancement should default to enabled")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ALERT_THRESHOLD_FRAMES", "45")
	t.Setenv("ALERT_COOLDOWN_SECONDS", "2.5")
	t.Setenv("ALARM_VOLUME", "0.4")
	t.Setenv("ALARM_ENABLED", "false")
	t.Setenv("DB_PATH", "/tmp/sessions.db")

	cfg := LoadConfig()

	if cfg.AlertThresholdFrames != 45 {
		t.Errorf("AlertThresholdFrames = %d, want 45", cfg.AlertThresholdFrames)
	}
	if cfg.AlertCooldown != 2500*time.Millisecond {
		t.Errorf("AlertCooldown = %v, want 2.5s", cfg.AlertCooldown)
	}
	if cfg.AlarmVolume != 0.4 {
		t.Errorf("AlarmVolume = %v, want 0.4", cfg.AlarmVolume)
	}
	if cfg.AlarmEnabled {
		t.Error("ALARM_ENABLED=false should disable the alarm")
	}
	if cfg.DBPath != "/tmp/sessions.db" {
		t.Errorf("DBPath = %s", cfg.DBPath)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("ALERT_THRESHOLD_FRAMES", "-5")
	t.Setenv("ALARM_VOLUME", "1.5")

	cfg := LoadConfig()

	if cfg.AlertThresholdFrames != 30 {
		t.Errorf("negative threshold should fall back to 30, got %d", cfg.AlertThresholdFrames)
	}
	if cfg.AlarmVolume != 0.7 {
		t.Errorf("out-of-range volume should fall back to 0.7, got %v", cfg.AlarmVolume)
	}
}

func TestSettingsStore(t *testing.T) {
	store := NewSettingsStore(Settings{AlarmEnabled: true, AlarmVolume: 0.7})

	got := store.Current()
	if !got.AlarmEnabled || got.AlarmVolume != 0.7 {
		t.Errorf("initial snapshot = %+v", got)
	}

	store.Update(func(s *Settings) {
		s.AlarmVolume = 0.3
		s.CustomAlarmPath = "/sounds/klaxon.wav"
	})

	got = store.Current()
	if got.AlarmVolume != 0.3 || got.CustomAlarmPath != "/sounds/klaxon.wav" {
		t.Errorf("updated snapshot = %+v", got)
	}
	// Untouched fields carry over.
	if !got.AlarmEnabled {
		t.Error("AlarmEnabled should survive an unrelated update")
	}
}
