package session

import "DROWSY_DETECTOR/go-backend/internal/detection"

// Mode selects the drowsy-counting rules. Live sessions feed the alert
// debounce with a consecutive counter; playback sessions accumulate a
// very-drowsy total for the end-of-session summary instead.
type Mode string

const (
	ModeLive     Mode = "live"
	ModePlayback Mode = "playback"
)

// Stats holds the running counters for one session. Owned exclusively
// by the session worker; other goroutines only see Snapshot copies.
type Stats struct {
	FramesAnalyzed    int
	DrowsyDetections  int
	ConsecutiveDrowsy int
	VeryDrowsyFrames  int
}

// Snapshot is an immutable copy of the counters for display.
type Snapshot struct {
	FramesAnalyzed    int     `json:"frames_analyzed"`
	DrowsyDetections  int     `json:"drowsy_detections"`
	ConsecutiveDrowsy int     `json:"consecutive_drowsy"`
	VeryDrowsyFrames  int     `json:"very_drowsy_frames"`
	DrowsyPercentage  float64 `json:"drowsy_percentage"`
}

// Summary is the end-of-session report for playback/batch runs. A
// degraded session still reports whatever was counted.
type Summary struct {
	TotalFrames      int     `json:"total_frames"`
	DrowsyFrames     int     `json:"drowsy_frames"`
	DrowsyPercentage float64 `json:"drowsy_percentage"`
	VeryDrowsyFrames int     `json:"very_drowsy_frames"`
}

// Apply folds one frame result into the counters. Every processed frame
// counts toward FramesAnalyzed, including no-face and error frames.
// No-face/error frames carry no reliable signal, so they always reset
// the consecutive counter.
func (s *Stats) Apply(mode Mode, result detection.FrameResult) {
	s.FramesAnalyzed++

	if result.NoFace() || result.Failed() {
		s.ConsecutiveDrowsy = 0
		return
	}

	if result.Score >= detection.ScoreDrowsy {
		s.DrowsyDetections++
	}

	switch mode {
	case ModePlayback:
		if result.Score >= detection.ScoreVeryDrowsy {
			s.VeryDrowsyFrames++
		}
	default:
		if result.Score >= detection.ScoreVeryDrowsy {
			s.ConsecutiveDrowsy++
		} else {
			s.ConsecutiveDrowsy = 0
		}
	}
}

// Percentage is drowsy detections over frames analyzed, 0 for an empty
// session.
func (s *Stats) Percentage() float64 {
	if s.FramesAnalyzed == 0 {
		return 0
	}
	return float64(s.DrowsyDetections) / float64(s.FramesAnalyzed) * 100
}

// Reset zeroes all counters. Called when a session starts.
func (s *Stats) Reset() {
	*s = Stats{}
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		FramesAnalyzed:    s.FramesAnalyzed,
		DrowsyDetections:  s.DrowsyDetections,
		ConsecutiveDrowsy: s.ConsecutiveDrowsy,
		VeryDrowsyFrames:  s.VeryDrowsyFrames,
		DrowsyPercentage:  s.Percentage(),
	}
}

func (s *Stats) Summary() Summary {
	return Summary{
		TotalFrames:      s.FramesAnalyzed,
		DrowsyFrames:     s.DrowsyDetections,
		DrowsyPercentage: s.Percentage(),
		VeryDrowsyFrames: s.VeryDrowsyFrames,
	}
}
