package session

import "time"

// Alert controller defaults: 30 consecutive very-drowsy frames at
// ~30 FPS is about one second of sustained drowsiness, which filters
// out single blinks that transiently score high.
const (
	DefaultAlertThreshold = 30
	DefaultAlertCooldown  = 5 * time.Second

	// How long a fired alert stays in the alerting state before it
	// reverts to idle. Matches the visual alert display window.
	alertingWindow = 3 * time.Second
)

// State of the alert controller.
type State string

const (
	StateIdle     State = "idle"
	StateAlerting State = "alerting"
	StateCooldown State = "cooldown"
)

// AlertController debounces the per-frame score stream into rate-limited
// alerts. It fires at most once per cooldown window and never queues or
// coalesces missed alerts: if the drowsy condition persists through a
// cooldown, the next evaluation starts from current state.
type AlertController struct {
	threshold int
	cooldown  time.Duration

	lastAlert time.Time
	fired     bool

	now func() time.Time
}

// NewAlertController builds a controller with the given consecutive-frame
// threshold and cooldown. Non-positive values fall back to the defaults.
func NewAlertController(threshold int, cooldown time.Duration) *AlertController {
	if threshold <= 0 {
		threshold = DefaultAlertThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultAlertCooldown
	}
	return &AlertController{
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
	}
}

// Observe evaluates the consecutive very-drowsy counter for one frame
// and reports whether an alert fires now. Firing stamps the cooldown
// window.
func (c *AlertController) Observe(consecutive int) bool {
	if consecutive < c.threshold {
		return false
	}
	now := c.now()
	if c.fired && now.Sub(c.lastAlert) <= c.cooldown {
		return false
	}
	c.lastAlert = now
	c.fired = true
	return true
}

// State reports the controller's current phase: alerting for a short
// window after a fire, cooldown until the rate limit expires, idle
// otherwise.
func (c *AlertController) State() State {
	if !c.fired {
		return StateIdle
	}
	since := c.now().Sub(c.lastAlert)
	switch {
	case since < alertingWindow:
		return StateAlerting
	case since <= c.cooldown:
		return StateCooldown
	default:
		return StateIdle
	}
}

// Reset clears the fire timestamp so a new session is not blocked by the
// previous session's cooldown.
func (c *AlertController) Reset() {
	c.lastAlert = time.Time{}
	c.fired = false
}
