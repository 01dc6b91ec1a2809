package session

import (
	"testing"

	"DROWSY_DETECTOR/go-backend/internal/detection"
)

func scored(score int) detection.FrameResult {
	status := detection.StatusAlert
	switch {
	case score >= detection.ScoreVeryDrowsy:
		status = detection.StatusVeryDrowsy
	case score >= detection.ScoreDrowsy:
		status = detection.StatusDrowsy
	}
	return detection.FrameResult{Score: score, Status: status}
}

func noFace() detection.FrameResult {
	return detection.FrameResult{Status: detection.StatusNoFace}
}

func TestStatsLiveCounting(t *testing.T) {
	var s Stats

	s.Apply(ModeLive, scored(70))
	s.Apply(ModeLive, scored(70))
	s.Apply(ModeLive, scored(50))
	s.Apply(ModeLive, scored(0))

	if s.FramesAnalyzed != 4 {
		t.Errorf("FramesAnalyzed = %d, want 4", s.FramesAnalyzed)
	}
	if s.DrowsyDetections != 3 {
		t.Errorf("DrowsyDetections = %d, want 3", s.DrowsyDetections)
	}
	// 50 is below the very-drowsy cutoff, so the consecutive counter
	// reset there.
	if s.ConsecutiveDrowsy != 0 {
		t.Errorf("ConsecutiveDrowsy = %d, want 0", s.ConsecutiveDrowsy)
	}
	if s.VeryDrowsyFrames != 0 {
		t.Errorf("VeryDrowsyFrames = %d, want 0 in live mode", s.VeryDrowsyFrames)
	}
}

func TestStatsLiveConsecutive(t *testing.T) {
	var s Stats
	for i := 0; i < 5; i++ {
		s.Apply(ModeLive, scored(70))
	}
	if s.ConsecutiveDrowsy != 5 {
		t.Errorf("ConsecutiveDrowsy = %d, want 5", s.ConsecutiveDrowsy)
	}

	s.Apply(ModeLive, scored(60))
	if s.ConsecutiveDrowsy != 0 {
		t.Errorf("ConsecutiveDrowsy = %d, want 0 after sub-threshold frame", s.ConsecutiveDrowsy)
	}
}

func TestStatsPlaybackCounting(t *testing.T) {
	var s Stats

	s.Apply(ModePlayback, scored(70))
	s.Apply(ModePlayback, scored(50))
	s.Apply(ModePlayback, scored(70))
	s.Apply(ModePlayback, scored(10))

	if s.DrowsyDetections != 3 {
		t.Errorf("DrowsyDetections = %d, want 3", s.DrowsyDetections)
	}
	// Cumulative, not reset by the low frame in between.
	if s.VeryDrowsyFrames != 2 {
		t.Errorf("VeryDrowsyFrames = %d, want 2", s.VeryDrowsyFrames)
	}
	if s.ConsecutiveDrowsy != 0 {
		t.Errorf("ConsecutiveDrowsy = %d, want 0 in playback mode", s.ConsecutiveDrowsy)
	}
}

func TestStatsNoFaceResetsConsecutive(t *testing.T) {
	var s Stats
	s.Apply(ModeLive, scored(70))
	s.Apply(ModeLive, scored(70))
	s.Apply(ModeLive, noFace())

	if s.ConsecutiveDrowsy != 0 {
		t.Errorf("ConsecutiveDrowsy = %d, want 0 after no-face frame", s.ConsecutiveDrowsy)
	}
	// No-face frames still count as analyzed.
	if s.FramesAnalyzed != 3 {
		t.Errorf("FramesAnalyzed = %d, want 3", s.FramesAnalyzed)
	}
	if s.DrowsyDetections != 2 {
		t.Errorf("DrowsyDetections = %d, want 2", s.DrowsyDetections)
	}
}

func TestStatsErrorResetsConsecutive(t *testing.T) {
	var s Stats
	s.Apply(ModeLive, scored(70))
	s.Apply(ModeLive, detection.FrameResult{Status: detection.StatusError})

	if s.ConsecutiveDrowsy != 0 {
		t.Errorf("ConsecutiveDrowsy = %d, want 0 after error frame", s.ConsecutiveDrowsy)
	}
	if s.FramesAnalyzed != 2 {
		t.Errorf("FramesAnalyzed = %d, want 2", s.FramesAnalyzed)
	}
}

func TestStatsPercentage(t *testing.T) {
	var s Stats
	if s.Percentage() != 0 {
		t.Errorf("empty session percentage = %v, want 0", s.Percentage())
	}

	// 3 drowsy out of 10.
	for i := 0; i < 3; i++ {
		s.Apply(ModeLive, scored(50))
	}
	for i := 0; i < 7; i++ {
		s.Apply(ModeLive, scored(0))
	}
	if got := s.Percentage(); got != 30 {
		t.Errorf("percentage = %v, want 30", got)
	}
}

func TestStatsReset(t *testing.T) {
	var s Stats
	s.Apply(ModeLive, scored(70))
	s.Apply(ModePlayback, scored(70))
	s.Reset()

	if s != (Stats{}) {
		t.Errorf("reset left counters: %+v", s)
	}
}

func TestSummary(t *testing.T) {
	var s Stats
	s.Apply(ModePlayback, scored(70))
	s.Apply(ModePlayback, scored(50))
	s.Apply(ModePlayback, scored(0))
	s.Apply(ModePlayback, scored(0))

	sum := s.Summary()
	if sum.TotalFrames != 4 {
		t.Errorf("TotalFrames = %d, want 4", sum.TotalFrames)
	}
	if sum.DrowsyFrames != 2 {
		t.Errorf("DrowsyFrames = %d, want 2", sum.DrowsyFrames)
	}
	if sum.DrowsyPercentage != 50 {
		t.Errorf("DrowsyPercentage = %v, want 50", sum.DrowsyPercentage)
	}
	if sum.VeryDrowsyFrames != 1 {
		t.Errorf("VeryDrowsyFrames = %d, want 1", sum.VeryDrowsyFrames)
	}
}
