package models

import (
	"time"

	"DROWSY_DETECTOR/go-backend/internal/detection"
	"DROWSY_DETECTOR/go-backend/internal/session"
)

// VideoFrame is a client-submitted frame. Either Frame carries a base64
// image for the landmark service, or Landmarks carries an inline
// landmark set from a client that runs the face mesh itself.
type VideoFrame struct {
	Frame          string               `json:"frame,omitempty"`
	Landmarks      []detection.Landmark `json:"landmarks,omitempty"`
	FaceFound      *bool                `json:"face_found,omitempty"`
	Timestamp      int64                `json:"timestamp"`
	SequenceNumber int32                `json:"sequence_number,omitempty"`
}

// DetectionResult is the per-frame assessment pushed to clients.
type DetectionResult struct {
	Score          int      `json:"score"`
	Status         string   `json:"status"`
	StatusText     string   `json:"status_text"`
	Indicators     []string `json:"indicators"`
	IndicatorText  []string `json:"indicator_text"`
	LeftEAR        float64  `json:"left_ear"`
	RightEAR       float64  `json:"right_ear"`
	AvgEAR         float64  `json:"avg_ear"`
	MAR            float64  `json:"mar"`
	AlertActive    bool     `json:"alert_active"`
	Timestamp      int64    `json:"timestamp"`
	SequenceNumber int32    `json:"sequence_number,omitempty"`

	// Stats is the running session snapshot as of this frame.
	Stats session.Snapshot `json:"stats"`
}

// NewDetectionResult flattens a session update into the wire shape.
func NewDetectionResult(u session.Update) DetectionResult {
	indicators := make([]string, 0, len(u.Result.Indicators))
	text := make([]string, 0, len(u.Result.Indicators))
	for _, ind := range u.Result.Indicators {
		indicators = append(indicators, string(ind))
		text = append(text, ind.Text())
	}
	return DetectionResult{
		Score:          u.Result.Score,
		Status:         string(u.Result.Status),
		StatusText:     u.Result.Status.Text(),
		Indicators:     indicators,
		IndicatorText:  text,
		LeftEAR:        u.Result.LeftEAR,
		RightEAR:       u.Result.RightEAR,
		AvgEAR:         (u.Result.LeftEAR + u.Result.RightEAR) / 2,
		MAR:            u.Result.MAR,
		AlertActive:    u.AlertActive,
		Timestamp:      u.Timestamp,
		SequenceNumber: u.Seq,
		Stats:          u.Stats,
	}
}

// StartSessionRequest opens a streaming session over the WebSocket.
type StartSessionRequest struct {
	Mode string  `json:"mode,omitempty"` // "live" (default) or "playback"
	FPS  float64 `json:"fps,omitempty"`  // native rate for playback pacing
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
	Code      string `json:"code,omitempty"`
}

type HealthStatus struct {
	Status          string        `json:"status"`
	GoBackend       string        `json:"go_backend"`
	LandmarkService bool          `json:"landmark_service"`
	ActiveClients   int           `json:"active_clients"`
	Uptime          time.Duration `json:"uptime"`
	Version         string        `json:"version,omitempty"`
}
