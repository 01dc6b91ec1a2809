package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"DROWSY_DETECTOR/go-backend/internal/config"
)

var settingsStore *config.SettingsStore

// SetSettingsStore wires the shared settings store used by the
// settings endpoints. Must be called before the HTTP server starts.
func SetSettingsStore(store *config.SettingsStore) {
	settingsStore = store
}

type settingsUpdateRequest struct {
	AlarmEnabled         *bool    `json:"alarm_enabled,omitempty"`
	AlarmVolume          *float64 `json:"alarm_volume,omitempty"`
	CustomAlarmPath      *string  `json:"custom_alarm_path,omitempty"`
	EnhancementEnabled   *bool    `json:"enhancement_enabled,omitempty"`
	AlertThresholdFrames *int     `json:"alert_threshold_frames,omitempty"`
	AlertCooldownSeconds *float64 `json:"alert_cooldown_seconds,omitempty"`
}

func GetSettings(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settingsStore.Current())
}

func UpdateSettings(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req settingsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.AlarmVolume != nil && (*req.AlarmVolume < 0 || *req.AlarmVolume > 1) {
		http.Error(w, "Alarm volume must be in 0.0-1.0", http.StatusBadRequest)
		return
	}
	if req.AlertThresholdFrames != nil && *req.AlertThresholdFrames <= 0 {
		http.Error(w, "Alert threshold must be positive", http.StatusBadRequest)
		return
	}
	if req.AlertCooldownSeconds != nil && *req.AlertCooldownSeconds <= 0 {
		http.Error(w, "Alert cooldown must be positive", http.StatusBadRequest)
		return
	}

	updated := settingsStore.Update(func(s *config.Settings) {
		if req.AlarmEnabled != nil {
			s.AlarmEnabled = *req.AlarmEnabled
		}
		if req.AlarmVolume != nil {
			s.AlarmVolume = *req.AlarmVolume
		}
		if req.CustomAlarmPath != nil {
			s.CustomAlarmPath = *req.CustomAlarmPath
		}
		if req.EnhancementEnabled != nil {
			s.EnhancementEnabled = *req.EnhancementEnabled
		}
		if req.AlertThresholdFrames != nil {
			s.AlertThresholdFrames = *req.AlertThresholdFrames
		}
		if req.AlertCooldownSeconds != nil {
			s.AlertCooldown = time.Duration(*req.AlertCooldownSeconds * float64(time.Second))
		}
	})

	log.Printf("Settings updated: alarm=%v volume=%.2f threshold=%d cooldown=%s",
		updated.AlarmEnabled, updated.AlarmVolume, updated.AlertThresholdFrames, updated.AlertCooldown)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}
