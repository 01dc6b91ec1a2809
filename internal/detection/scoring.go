package detection

// Status is the discrete drowsiness label derived from the score.
type Status string

const (
	StatusAlert          Status = "alert"
	StatusMildlyTired    Status = "mildly_tired"
	StatusSlightlyDrowsy Status = "slightly_drowsy"
	StatusDrowsy         Status = "drowsy"
	StatusVeryDrowsy     Status = "very_drowsy"
	StatusNoFace         Status = "no_face"
	StatusError          Status = "error"
)

// Indicator tags one detected condition. Eye and mouth indicators are
// independent; at most one of each can fire per frame.
type Indicator string

const (
	EyesFullyClosed     Indicator = "eyes_fully_closed"
	EyesNearlyClosed    Indicator = "eyes_nearly_closed"
	EyesPartiallyClosed Indicator = "eyes_partially_closed"
	EyesSlightlyClosing Indicator = "eyes_slightly_closing"
	EyesNarrowing       Indicator = "eyes_narrowing"
	WideYawn            Indicator = "wide_yawn"
	Yawning             Indicator = "yawning"
	MouthOpening        Indicator = "mouth_opening"
)

// Human-readable text for each indicator. Kept out of the scoring path
// so results compare by tag, not by display string.
var indicatorText = map[Indicator]string{
	EyesFullyClosed:     "Eyes fully closed (asleep)",
	EyesNearlyClosed:    "Eyes nearly closed (very drowsy)",
	EyesPartiallyClosed: "Eyes partially closed (drowsy)",
	EyesSlightlyClosing: "Eyes slightly closing",
	EyesNarrowing:       "Eyes narrowing slightly",
	WideYawn:            "Wide yawning detected",
	Yawning:             "Yawning detected",
	MouthOpening:        "Mouth opening (possible yawn)",
}

var statusText = map[Status]string{
	StatusAlert:          "Alert",
	StatusMildlyTired:    "Mildly Tired",
	StatusSlightlyDrowsy: "Slightly Drowsy",
	StatusDrowsy:         "Drowsy",
	StatusVeryDrowsy:     "Very Drowsy / Asleep",
	StatusNoFace:         "No Face",
	StatusError:          "Error",
}

// Text returns the display string for an indicator.
func (i Indicator) Text() string {
	if s, ok := indicatorText[i]; ok {
		return s
	}
	return string(i)
}

// Text returns the display string for a status.
func (s Status) Text() string {
	if t, ok := statusText[s]; ok {
		return t
	}
	return string(s)
}

// EAR thresholds, optimized against the MRL Eye Dataset (optimal = 0.343).
// The other bands are fixed offsets around it. Do not round these.
const (
	earClosed    = 0.20
	earNearly    = 0.293 // 0.343 - 0.05
	earOptimal   = 0.343
	earSlightly  = 0.393 // 0.343 + 0.05
	earNarrowing = 0.443 // 0.343 + 0.10
)

// MAR thresholds, optimized against the YawDD Dataset (optimal = 0.167).
const (
	marWideYawn = 0.267 // 0.167 + 0.10
	marYawn     = 0.167
	marOpening  = 0.117 // 0.167 - 0.05
)

// Score cutoffs for the status label and the two counting rules.
const (
	ScoreVeryDrowsy = 65
	ScoreDrowsy     = 45

	scoreSlightlyDrowsy = 25
	scoreMildlyTired    = 10
	maxScore            = 100
)

// Assess maps the per-frame eye/mouth ratios to a drowsiness score in
// [0,100], a status label, and the set of fired indicators. Pure
// function: same ratios always produce the same assessment.
func Assess(leftEAR, rightEAR, mar float64) (int, Status, []Indicator) {
	score := 0
	indicators := []Indicator{}

	avgEAR := (leftEAR + rightEAR) / 2.0

	switch {
	case avgEAR < earClosed:
		score += 70
		indicators = append(indicators, EyesFullyClosed)
	case avgEAR < earNearly:
		score += 60
		indicators = append(indicators, EyesNearlyClosed)
	case avgEAR < earOptimal:
		score += 40
		indicators = append(indicators, EyesPartiallyClosed)
	case avgEAR < earSlightly:
		score += 25
		indicators = append(indicators, EyesSlightlyClosing)
	case avgEAR < earNarrowing:
		score += 10
		indicators = append(indicators, EyesNarrowing)
	}

	switch {
	case mar > marWideYawn:
		score += 35
		indicators = append(indicators, WideYawn)
	case mar > marYawn:
		score += 30
		indicators = append(indicators, Yawning)
	case mar > marOpening:
		score += 15
		indicators = append(indicators, MouthOpening)
	}

	if score > maxScore {
		score = maxScore
	}

	var status Status
	switch {
	case score >= ScoreVeryDrowsy:
		status = StatusVeryDrowsy
	case score >= ScoreDrowsy:
		status = StatusDrowsy
	case score >= scoreSlightlyDrowsy:
		status = StatusSlightlyDrowsy
	case score >= scoreMildlyTired:
		status = StatusMildlyTired
	default:
		status = StatusAlert
	}

	return score, status, indicators
}
