package services

import (
	"testing"
	"time"

	"DROWSY_DETECTOR/go-backend/internal/config"
)

func TestAlarmSinkDisabled(t *testing.T) {
	store := config.NewSettingsStore(config.Settings{AlarmEnabled: false})

	ran := make(chan string, 1)
	sink := NewAlarmSink(store)
	sink.run = func(name string, args ...string) error {
		ran <- name
		return nil
	}

	sink.AlertFired(time.Now())

	select {
	case name := <-ran:
		t.Errorf("player %q ran while alarm disabled", name)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestAlarmSinkCustomSound(t *testing.T) {
	store := config.NewSettingsStore(config.Settings{
		AlarmEnabled:    true,
		AlarmVolume:     0.5,
		CustomAlarmPath: "/sounds/alarm.wav",
	})

	ran := make(chan []string, 1)
	sink := NewAlarmSink(store)
	sink.run = func(name string, args ...string) error {
		ran <- append([]string{name}, args...)
		return nil
	}

	sink.AlertFired(time.Now())

	select {
	case cmd := <-ran:
		found := false
		for _, arg := range cmd {
			if arg == "/sounds/alarm.wav" {
				found = true
			}
		}
		if !found {
			t.Errorf("player invocation %v missing custom path", cmd)
		}
	case <-time.After(time.Second):
		t.Fatal("player never ran")
	}
}

func TestAlarmSinkNeverBlocks(t *testing.T) {
	store := config.NewSettingsStore(config.Settings{AlarmEnabled: true, CustomAlarmPath: "/x.wav"})

	block := make(chan struct{})
	sink := NewAlarmSink(store)
	sink.run = func(name string, args ...string) error {
		<-block
		return nil
	}

	// Far more fires than the buffer holds; none may block the caller.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			sink.AlertFired(time.Now())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AlertFired blocked the caller")
	}
	close(block)
}

func TestMetricsSink(t *testing.T) {
	m := NewMetrics()
	sink := NewMetricsSink(m)

	sink.AlertFired(time.Now())
	sink.AlertFired(time.Now())

	if got := m.GetAlertsFired(); got != 2 {
		t.Errorf("alerts fired = %d, want 2", got)
	}
}

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrementFrames()
	m.IncrementFrames()
	m.IncrementDrowsyDetections()
	m.RecordLatency(10 * time.Millisecond)
	m.RecordLatency(30 * time.Millisecond)

	if m.GetTotalFrames() != 2 {
		t.Errorf("total frames = %d, want 2", m.GetTotalFrames())
	}
	if m.GetAvgLatency() != 20 {
		t.Errorf("avg latency = %v, want 20", m.GetAvgLatency())
	}
	if m.GetDetectionRate() != 0.5 {
		t.Errorf("detection rate = %v, want 0.5", m.GetDetectionRate())
	}
}

func TestMetricsEmpty(t *testing.T) {
	m := NewMetrics()
	if m.GetAvgLatency() != 0 {
		t.Error("avg latency with no frames should be 0")
	}
	if m.GetDetectionRate() != 0 {
		t.Error("detection rate with no frames should be 0")
	}
}
