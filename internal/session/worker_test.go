package session

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"DROWSY_DETECTOR/go-backend/internal/detection"
)

// drowsyLandmarks builds a full mesh with both eyes nearly shut
// (EAR 0.15, eye score 70).
func drowsyLandmarks() detection.LandmarkSet {
	ls := alertLandmarks()
	closeEye(ls, detection.LeftEyeLandmarks)
	closeEye(ls, detection.RightEyeLandmarks)
	return ls
}

// alertLandmarks builds a full mesh with wide-open eyes and a closed
// mouth (score 0).
func alertLandmarks() detection.LandmarkSet {
	ls := make(detection.LandmarkSet, detection.NumLandmarks)
	for i := range ls {
		ls[i] = detection.Landmark{X: 0.5, Y: 0.5}
	}
	openEye(ls, detection.LeftEyeLandmarks)
	openEye(ls, detection.RightEyeLandmarks)
	ls[detection.MouthLandmarks[0]] = detection.Landmark{X: 0.3, Y: 0.7}
	ls[detection.MouthLandmarks[2]] = detection.Landmark{X: 0.5, Y: 0.7}
	ls[detection.MouthLandmarks[1]] = detection.Landmark{X: 0.4, Y: 0.695}
	ls[detection.MouthLandmarks[3]] = detection.Landmark{X: 0.4, Y: 0.705}
	return ls
}

func openEye(ls detection.LandmarkSet, eye [6]int) {
	shapeEye(ls, eye, 0.10)
}

func closeEye(ls detection.LandmarkSet, eye [6]int) {
	shapeEye(ls, eye, 0.03)
}

func shapeEye(ls detection.LandmarkSet, eye [6]int, opening float64) {
	ls[eye[0]] = detection.Landmark{X: 0.1, Y: 0.5}
	ls[eye[3]] = detection.Landmark{X: 0.3, Y: 0.5}
	ls[eye[1]] = detection.Landmark{X: 0.15, Y: 0.5 - opening/2}
	ls[eye[5]] = detection.Landmark{X: 0.15, Y: 0.5 + opening/2}
	ls[eye[2]] = detection.Landmark{X: 0.17, Y: 0.5 - opening/2}
	ls[eye[4]] = detection.Landmark{X: 0.17, Y: 0.5 + opening/2}
}

type countingSink struct {
	fires atomic.Int32
}

func (s *countingSink) AlertFired(time.Time) {
	s.fires.Add(1)
}

func drainUpdates(w *Worker) []Update {
	var updates []Update
	for u := range w.Updates() {
		updates = append(updates, u)
	}
	return updates
}

func TestWorkerProcessesInOrder(t *testing.T) {
	w := NewWorker(Options{Mode: ModePlayback})

	collected := make(chan []Update, 1)
	go func() { collected <- drainUpdates(w) }()
	go w.Run()

	for i := int32(1); i <= 10; i++ {
		if !w.Submit(Observation{Seq: i, Landmarks: alertLandmarks()}) {
			t.Fatalf("submit %d rejected", i)
		}
	}
	w.Finish()
	<-w.Done()

	updates := <-collected
	last := int32(0)
	for _, u := range updates {
		if u.Seq <= last {
			t.Fatalf("updates out of order: %d after %d", u.Seq, last)
		}
		last = u.Seq
	}

	if got := w.Summary().TotalFrames; got != 10 {
		t.Errorf("TotalFrames = %d, want 10", got)
	}
}

func TestWorkerAlertDebounce(t *testing.T) {
	sink := &countingSink{}
	w := NewWorker(Options{
		Mode:           ModeLive,
		AlertThreshold: 30,
		AlertCooldown:  5 * time.Second,
		Sinks:          []AlertSink{sink},
	})

	go func() {
		for range w.Updates() {
		}
	}()
	go w.Run()

	drowsy := drowsyLandmarks()
	for i := int32(1); i <= 29; i++ {
		w.Submit(Observation{Seq: i, Landmarks: drowsy})
	}
	// Submit the 30th and 30 more inside the cooldown window.
	for i := int32(30); i <= 60; i++ {
		w.Submit(Observation{Seq: i, Landmarks: drowsy})
	}
	w.Finish()
	<-w.Done()

	if got := sink.fires.Load(); got != 1 {
		t.Errorf("alert fired %d times, want exactly 1", got)
	}
	if got := w.Summary().DrowsyFrames; got != 60 {
		t.Errorf("DrowsyFrames = %d, want 60", got)
	}
}

func TestWorkerNoFaceBreaksStreak(t *testing.T) {
	sink := &countingSink{}
	w := NewWorker(Options{
		Mode:           ModeLive,
		AlertThreshold: 30,
		Sinks:          []AlertSink{sink},
	})

	go func() {
		for range w.Updates() {
		}
	}()
	go w.Run()

	drowsy := drowsyLandmarks()
	// 29 drowsy, one no-face, 29 more drowsy: the streak never reaches
	// 30, so no alert.
	for i := int32(1); i <= 29; i++ {
		w.Submit(Observation{Seq: i, Landmarks: drowsy})
	}
	w.Submit(Observation{Seq: 30})
	for i := int32(31); i <= 59; i++ {
		w.Submit(Observation{Seq: i, Landmarks: drowsy})
	}
	w.Finish()
	<-w.Done()

	if got := sink.fires.Load(); got != 0 {
		t.Errorf("alert fired %d times, want 0", got)
	}
}

func TestWorkerStreamFailure(t *testing.T) {
	w := NewWorker(Options{Mode: ModePlayback})

	go func() {
		for range w.Updates() {
		}
	}()
	go w.Run()

	w.Submit(Observation{Seq: 1, Landmarks: alertLandmarks()})
	w.Submit(Observation{Seq: 2, Landmarks: alertLandmarks()})
	w.Submit(Observation{Seq: 3, StreamErr: errors.New("read failed")})

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not terminate on stream failure")
	}

	if !errors.Is(w.Err(), ErrStreamEnded) {
		t.Errorf("Err() = %v, want ErrStreamEnded", w.Err())
	}
	// Partial statistics survive the failure.
	if got := w.Summary().TotalFrames; got != 2 {
		t.Errorf("TotalFrames = %d, want 2", got)
	}
}

func TestWorkerStop(t *testing.T) {
	w := NewWorker(Options{Mode: ModeLive})
	go w.Run()

	w.Stop()
	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	if w.Submit(Observation{Seq: 1}) {
		t.Error("Submit should be rejected after stop")
	}
	if w.Err() != nil {
		t.Errorf("explicit stop should not report an error, got %v", w.Err())
	}
}

func TestManagerSingleActiveSession(t *testing.T) {
	m := NewManager()

	first := m.Start(Options{Mode: ModeLive})
	second := m.Start(Options{Mode: ModePlayback})

	select {
	case <-first.Done():
	default:
		t.Fatal("starting a new session must stop the previous worker")
	}

	if m.Active() != second {
		t.Fatal("manager should track the newest worker")
	}

	// The new worker starts from zeroed statistics.
	if got := second.Summary().TotalFrames; got != 0 {
		t.Errorf("fresh session TotalFrames = %d, want 0", got)
	}

	m.Stop()
	select {
	case <-second.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("manager stop did not terminate the worker")
	}
	if m.Active() != nil {
		t.Error("Active() should be nil after stop")
	}
}
