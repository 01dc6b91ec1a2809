package services

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"time"

	"DROWSY_DETECTOR/go-backend/internal/config"
)

// Alert sinks consume AlertFired events from the session worker. The
// worker calls them inline, so every sink here hands the real work to a
// single dispatch goroutine through a small buffer; when the buffer is
// full the event is dropped rather than stalling the frame loop.

const sinkBuffer = 4

// AlarmSink plays the alarm sound through an external player, falling
// back to the terminal bell when no player works. Volume, enablement,
// and the custom sound path come from the settings snapshot at fire
// time.
type AlarmSink struct {
	settings *config.SettingsStore
	pending  chan time.Time

	// run is swappable for tests; defaults to exec'ing the player.
	run func(name string, args ...string) error
}

func NewAlarmSink(settings *config.SettingsStore) *AlarmSink {
	s := &AlarmSink{
		settings: settings,
		pending:  make(chan time.Time, sinkBuffer),
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
	go s.dispatch()
	return s
}

func (s *AlarmSink) AlertFired(at time.Time) {
	select {
	case s.pending <- at:
	default:
		log.Println("Alarm sink busy, dropping alert sound")
	}
}

func (s *AlarmSink) dispatch() {
	for range s.pending {
		cfg := s.settings.Current()
		if !cfg.AlarmEnabled {
			continue
		}
		s.play(cfg)
	}
}

func (s *AlarmSink) play(cfg config.Settings) {
	if cfg.CustomAlarmPath != "" {
		if err := s.playFile(cfg.CustomAlarmPath, cfg.AlarmVolume); err == nil {
			return
		} else {
			log.Printf("Error playing custom alarm: %v", err)
		}
	}
	// Fallback: terminal bell.
	fmt.Fprint(os.Stderr, "\a")
}

func (s *AlarmSink) playFile(path string, volume float64) error {
	switch runtime.GOOS {
	case "darwin":
		return s.run("afplay", "-v", fmt.Sprintf("%.2f", volume), path)
	case "windows":
		return s.run("powershell", "-c", fmt.Sprintf("(New-Object Media.SoundPlayer %q).PlaySync()", path))
	default:
		// paplay volume is 0..65536.
		if err := s.run("paplay", fmt.Sprintf("--volume=%d", int(volume*65536)), path); err == nil {
			return nil
		}
		return s.run("aplay", "-q", path)
	}
}

// NotifySink raises an OS notification for each alert. Degrades to a
// log line when no notifier binary is available.
type NotifySink struct {
	pending chan time.Time
	run     func(name string, args ...string) error
}

const (
	notifyTitle = "Drowsiness Detected!"
	notifyBody  = "You appear to be drowsy or falling asleep. Take a break!"
)

func NewNotifySink() *NotifySink {
	s := &NotifySink{
		pending: make(chan time.Time, sinkBuffer),
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
	go s.dispatch()
	return s
}

func (s *NotifySink) AlertFired(at time.Time) {
	select {
	case s.pending <- at:
	default:
		log.Println("Notify sink busy, dropping notification")
	}
}

func (s *NotifySink) dispatch() {
	for at := range s.pending {
		if err := s.notify(); err != nil {
			log.Printf("Notification fallback (%v): %s at %s", err, notifyTitle, at.Format(time.RFC3339))
		}
	}
}

func (s *NotifySink) notify() error {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", notifyBody, notifyTitle)
		return s.run("osascript", "-e", script)
	case "windows":
		return fmt.Errorf("no native notifier")
	default:
		return s.run("notify-send", "-u", "critical", notifyTitle, notifyBody)
	}
}

// MetricsSink counts fired alerts in the process-wide metrics.
type MetricsSink struct {
	metrics *Metrics
}

func NewMetricsSink(m *Metrics) *MetricsSink {
	return &MetricsSink{metrics: m}
}

func (s *MetricsSink) AlertFired(time.Time) {
	s.metrics.IncrementAlerts()
}
