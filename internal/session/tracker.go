package session

import (
	"log"
	"time"

	"DROWSY_DETECTOR/go-backend/internal/detection"
)

// Tracker is the synchronous core of a session: scoring, statistics,
// and alert evaluation for one frame at a time. It is not safe for
// concurrent use; the Worker (or a gRPC stream handler) owns one
// exclusively and feeds it frames in arrival order.
type Tracker struct {
	mode  Mode
	stats Stats
	alert *AlertController
	sinks []AlertSink

	// Gate, when set, is consulted after the alert decision and before
	// the sinks fire; returning false suppresses the emission. The
	// worker uses it to honor a stop requested mid-frame.
	Gate func() bool

	now func() time.Time
}

func NewTracker(opts Options) *Tracker {
	mode := opts.Mode
	if mode == "" {
		mode = ModeLive
	}
	return &Tracker{
		mode:  mode,
		alert: NewAlertController(opts.AlertThreshold, opts.AlertCooldown),
		sinks: opts.Sinks,
		now:   time.Now,
	}
}

// Track processes one observation: score, fold into statistics,
// evaluate the alert controller, emit to sinks if an alert fires.
func (t *Tracker) Track(obs Observation) Update {
	result := detection.ProcessFrame(obs.Landmarks)
	if result.Failed() {
		log.Printf("Frame #%d: extraction failed (%d landmarks)", obs.Seq, len(obs.Landmarks))
	}

	t.stats.Apply(t.mode, result)

	fired := false
	if t.mode == ModeLive {
		fired = t.alert.Observe(t.stats.ConsecutiveDrowsy)
	}

	if fired && (t.Gate == nil || t.Gate()) {
		at := t.now()
		log.Printf("Drowsiness alert fired at frame #%d (score %d)", obs.Seq, result.Score)
		for _, sink := range t.sinks {
			sink.AlertFired(at)
		}
	}

	state := StateIdle
	if t.mode == ModeLive {
		state = t.alert.State()
	}

	return Update{
		Seq:         obs.Seq,
		Timestamp:   obs.Timestamp,
		Result:      result,
		Stats:       t.stats.Snapshot(),
		AlertState:  state,
		AlertActive: state == StateAlerting,
	}
}

// Mode reports the counting rules in effect.
func (t *Tracker) Mode() Mode {
	return t.mode
}

// Snapshot returns the current counters.
func (t *Tracker) Snapshot() Snapshot {
	return t.stats.Snapshot()
}

// Summary returns the end-of-session report.
func (t *Tracker) Summary() Summary {
	return t.stats.Summary()
}

// Reset zeroes the statistics and clears the alert cooldown.
func (t *Tracker) Reset() {
	t.stats.Reset()
	t.alert.Reset()
}
