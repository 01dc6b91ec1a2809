package session

import (
	"testing"
	"time"
)

func TestTrackerLiveFlow(t *testing.T) {
	sink := &countingSink{}
	tr := NewTracker(Options{
		Mode:           ModeLive,
		AlertThreshold: 3,
		AlertCooldown:  time.Minute,
		Sinks:          []AlertSink{sink},
	})

	drowsy := drowsyLandmarks()
	var last Update
	for i := int32(1); i <= 3; i++ {
		last = tr.Track(Observation{Seq: i, Landmarks: drowsy})
	}

	if sink.fires.Load() != 1 {
		t.Errorf("fires = %d, want 1", sink.fires.Load())
	}
	if !last.AlertActive {
		t.Error("update after fire should be alert-active")
	}
	if last.Stats.ConsecutiveDrowsy != 3 {
		t.Errorf("ConsecutiveDrowsy = %d, want 3", last.Stats.ConsecutiveDrowsy)
	}
}

func TestTrackerGateSuppressesAlert(t *testing.T) {
	sink := &countingSink{}
	tr := NewTracker(Options{
		Mode:           ModeLive,
		AlertThreshold: 1,
		Sinks:          []AlertSink{sink},
	})
	tr.Gate = func() bool { return false }

	tr.Track(Observation{Seq: 1, Landmarks: drowsyLandmarks()})

	if sink.fires.Load() != 0 {
		t.Errorf("gated tracker fired %d alerts", sink.fires.Load())
	}
}

func TestTrackerPlaybackNeverAlerts(t *testing.T) {
	sink := &countingSink{}
	tr := NewTracker(Options{
		Mode:           ModePlayback,
		AlertThreshold: 1,
		Sinks:          []AlertSink{sink},
	})

	drowsy := drowsyLandmarks()
	for i := int32(1); i <= 10; i++ {
		tr.Track(Observation{Seq: i, Landmarks: drowsy})
	}

	if sink.fires.Load() != 0 {
		t.Errorf("playback tracker fired %d alerts, want 0", sink.fires.Load())
	}
	if got := tr.Summary().VeryDrowsyFrames; got != 10 {
		t.Errorf("VeryDrowsyFrames = %d, want 10", got)
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker(Options{Mode: ModeLive, AlertThreshold: 1})
	tr.Track(Observation{Seq: 1, Landmarks: drowsyLandmarks()})

	tr.Reset()

	if got := tr.Snapshot(); got.FramesAnalyzed != 0 || got.ConsecutiveDrowsy != 0 {
		t.Errorf("reset left counters: %+v", got)
	}
	// The cleared cooldown must not block the next session's alert.
	sink := &countingSink{}
	tr.sinks = []AlertSink{sink}
	tr.Track(Observation{Seq: 1, Landmarks: drowsyLandmarks()})
	if sink.fires.Load() != 1 {
		t.Error("alert after reset should fire immediately")
	}
}
