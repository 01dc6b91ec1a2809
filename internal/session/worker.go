package session

import (
	"errors"
	"log"
	"sync"
	"time"

	"DROWSY_DETECTOR/go-backend/internal/detection"
)

// Observation is one input frame for the worker: a landmark set (nil
// when no face was found) or a stream-level failure that terminates the
// session.
type Observation struct {
	Seq       int32
	Timestamp int64
	Landmarks detection.LandmarkSet
	StreamErr error
}

// Update is the per-frame output delivered to the presentation side.
type Update struct {
	Seq         int32
	Timestamp   int64
	Result      detection.FrameResult
	Stats       Snapshot
	AlertState  State
	AlertActive bool
}

// AlertSink receives fired alerts. Implementations must not block the
// worker; anything slow has to hand off internally.
type AlertSink interface {
	AlertFired(at time.Time)
}

// ErrStreamEnded marks a session terminated by an input stream failure
// rather than an explicit stop.
var ErrStreamEnded = errors.New("input stream ended")

const updateBuffer = 16

// Options configures one session.
type Options struct {
	Mode           Mode
	AlertThreshold int
	AlertCooldown  time.Duration
	// TargetFPS > 0 enables pacing: live sessions sleep a fixed frame
	// delay, playback sessions compensate for processing time so long
	// videos do not drift.
	TargetFPS float64
	Sinks     []AlertSink
}

// Worker runs one session on its own goroutine: it pulls observations
// in arrival order, tracks them, and pushes snapshots to the updates
// channel. Frame N is fully applied before frame N+1 is read. The
// tracker (stats and alert state) belongs to the worker alone.
type Worker struct {
	tracker *Tracker

	targetFPS float64
	sleep     func(time.Duration)
	now       func() time.Time

	in      chan Observation
	updates chan Update
	stop    chan struct{}
	done    chan struct{}

	stopOnce sync.Once

	inMu     sync.Mutex
	finished bool

	mu  sync.Mutex
	err error
}

// NewWorker builds a worker with fresh statistics and alert state. Call
// Run on its own goroutine.
func NewWorker(opts Options) *Worker {
	w := &Worker{
		tracker:   NewTracker(opts),
		targetFPS: opts.TargetFPS,
		sleep:     time.Sleep,
		now:       time.Now,
		in:        make(chan Observation, updateBuffer),
		updates:   make(chan Update, updateBuffer),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	// No alert may escape once a stop has been requested, even if the
	// threshold check already passed for this frame.
	w.tracker.Gate = func() bool {
		select {
		case <-w.stop:
			return false
		default:
			return true
		}
	}
	return w
}

// Submit queues one observation. Returns false once the worker has been
// stopped or its input finished, so producers can abandon the stream
// without blocking.
func (w *Worker) Submit(obs Observation) bool {
	w.inMu.Lock()
	defer w.inMu.Unlock()
	if w.finished {
		return false
	}
	select {
	case <-w.stop:
		return false
	case <-w.done:
		return false
	case w.in <- obs:
		return true
	}
}

// Finish closes the input. The worker drains everything already queued
// and then exits, so playback summaries cover every submitted frame.
func (w *Worker) Finish() {
	w.inMu.Lock()
	defer w.inMu.Unlock()
	if !w.finished {
		w.finished = true
		close(w.in)
	}
}

// Updates is the stream of per-frame snapshots. Closed when the session
// ends. Stale updates are dropped under backpressure, never reordered.
func (w *Worker) Updates() <-chan Update {
	return w.updates
}

// Done is closed when the worker loop has exited.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Stop requests termination. The worker observes it within one frame's
// processing. Safe to call more than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Err reports why the session ended: nil for an explicit stop or
// drained input, ErrStreamEnded (wrapped) for an input stream failure.
func (w *Worker) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

// Summary reports the session counters. Valid once Done is closed; a
// failed session still reports the partial statistics.
func (w *Worker) Summary() Summary {
	return w.tracker.Summary()
}

// Run executes the session loop until the input is finished, a stream
// error arrives, or Stop is called.
func (w *Worker) Run() {
	defer close(w.done)
	defer close(w.updates)

	var frameDelay time.Duration
	if w.targetFPS > 0 {
		frameDelay = time.Duration(float64(time.Second) / w.targetFPS)
	}

	for {
		select {
		case <-w.stop:
			return
		case obs, ok := <-w.in:
			if !ok {
				return
			}
			start := w.now()

			if obs.StreamErr != nil {
				log.Printf("Session input stream failed: %v", obs.StreamErr)
				w.mu.Lock()
				w.err = errors.Join(ErrStreamEnded, obs.StreamErr)
				w.mu.Unlock()
				return
			}

			update := w.tracker.Track(obs)

			// Presentation delivery is best effort: drop the newest
			// snapshot rather than stall the frame loop.
			select {
			case w.updates <- update:
			default:
			}

			if frameDelay > 0 {
				w.pace(frameDelay, w.now().Sub(start))
			}
		}
	}
}

func (w *Worker) pace(frameDelay, elapsed time.Duration) {
	if w.tracker.Mode() == ModePlayback {
		// Match the source's native frame rate, compensating for
		// processing time to avoid drift.
		if remaining := frameDelay - elapsed; remaining > 0 {
			w.sleep(remaining)
		}
		return
	}
	w.sleep(frameDelay)
}

// Manager enforces the single-active-session invariant: starting a new
// session stops the previous one and waits for its worker to exit, so
// fresh statistics and alert state are in place before any new frame.
type Manager struct {
	mu     sync.Mutex
	active *Worker
}

func NewManager() *Manager {
	return &Manager{}
}

// Start stops any running session and launches a new worker.
func (m *Manager) Start(opts Options) *Worker {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil {
		m.active.Stop()
		<-m.active.Done()
	}

	w := NewWorker(opts)
	m.active = w
	go w.Run()
	return w
}

// Stop terminates the active session, if any, and waits for it.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != nil {
		m.active.Stop()
		<-m.active.Done()
		m.active = nil
	}
}

// Active returns the running worker or nil.
func (m *Manager) Active() *Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}
