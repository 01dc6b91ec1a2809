package models

import (
	"testing"

	"DROWSY_DETECTOR/go-backend/internal/detection"
	"DROWSY_DETECTOR/go-backend/internal/session"
)

func TestNewDetectionResult(t *testing.T) {
	u := session.Update{
		Seq:       7,
		Timestamp: 1700000000,
		Result: detection.FrameResult{
			Score:      70,
			Status:     detection.StatusVeryDrowsy,
			Indicators: []detection.Indicator{detection.EyesFullyClosed},
			LeftEAR:    0.12,
			RightEAR:   0.14,
			MAR:        0.3,
		},
		Stats: session.Snapshot{
			FramesAnalyzed:    30,
			DrowsyDetections:  12,
			ConsecutiveDrowsy: 5,
			VeryDrowsyFrames:  3,
			DrowsyPercentage:  40.0,
		},
		AlertActive: true,
	}

	result := NewDetectionResult(u)

	if result.Score != 70 || result.Status != "very_drowsy" {
		t.Errorf("score/status = %d/%s, want 70/very_drowsy", result.Score, result.Status)
	}
	if diff := result.AvgEAR - 0.13; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("avg EAR = %v, want 0.13", result.AvgEAR)
	}
	if len(result.Indicators) != 1 || result.Indicators[0] != "eyes_fully_closed" {
		t.Errorf("indicators = %v, want [eyes_fully_closed]", result.Indicators)
	}
	if !result.AlertActive {
		t.Error("expected alert active")
	}
	if result.SequenceNumber != 7 || result.Timestamp != 1700000000 {
		t.Errorf("seq/timestamp = %d/%d", result.SequenceNumber, result.Timestamp)
	}

	// Every per-frame result carries the running session counters so a
	// client never has to wait for a separate stats message.
	if result.Stats.FramesAnalyzed != 30 {
		t.Errorf("stats frames = %d, want 30", result.Stats.FramesAnalyzed)
	}
	if result.Stats.DrowsyDetections != 12 {
		t.Errorf("stats drowsy = %d, want 12", result.Stats.DrowsyDetections)
	}
	if result.Stats.DrowsyPercentage != 40.0 {
		t.Errorf("stats percentage = %v, want 40", result.Stats.DrowsyPercentage)
	}
}
