package detection

import "testing"

func TestAssessEyeBands(t *testing.T) {
	cases := []struct {
		name      string
		avgEAR    float64
		score     int
		status    Status
		indicator Indicator
	}{
		{"fully closed", 0.15, 70, StatusVeryDrowsy, EyesFullyClosed},
		{"nearly closed", 0.25, 60, StatusDrowsy, EyesNearlyClosed},
		{"partially closed", 0.30, 40, StatusSlightlyDrowsy, EyesPartiallyClosed},
		{"slightly closing", 0.35, 25, StatusSlightlyDrowsy, EyesSlightlyClosing},
		{"narrowing", 0.40, 10, StatusMildlyTired, EyesNarrowing},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, status, indicators := Assess(tc.avgEAR, tc.avgEAR, 0)
			if score != tc.score {
				t.Errorf("score = %d, want %d", score, tc.score)
			}
			if status != tc.status {
				t.Errorf("status = %s, want %s", status, tc.status)
			}
			if len(indicators) != 1 || indicators[0] != tc.indicator {
				t.Errorf("indicators = %v, want [%s]", indicators, tc.indicator)
			}
		})
	}
}

func TestAssessWideOpenEyes(t *testing.T) {
	score, status, indicators := Assess(0.5, 0.5, 0)
	if score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
	if status != StatusAlert {
		t.Errorf("status = %s, want %s", status, StatusAlert)
	}
	if len(indicators) != 0 {
		t.Errorf("expected no indicators, got %v", indicators)
	}
}

func TestAssessMouthBands(t *testing.T) {
	cases := []struct {
		name      string
		mar       float64
		score     int
		indicator Indicator
	}{
		{"wide yawn", 0.30, 35, WideYawn},
		{"yawn", 0.20, 30, Yawning},
		{"mouth opening", 0.15, 15, MouthOpening},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Eyes wide open so only the mouth band contributes.
			score, _, indicators := Assess(0.5, 0.5, tc.mar)
			if score != tc.score {
				t.Errorf("score = %d, want %d", score, tc.score)
			}
			if len(indicators) != 1 || indicators[0] != tc.indicator {
				t.Errorf("indicators = %v, want [%s]", indicators, tc.indicator)
			}
		})
	}
}

// Every documented threshold, checked exactly at the cutoff. The eye
// bands are half-open on the upper side (avgEAR < threshold), the mouth
// bands on the lower side (mar > threshold).
func TestAssessBandBoundaries(t *testing.T) {
	eyeCases := []struct {
		avgEAR float64
		score  int
	}{
		{0.20, 60},  // not < 0.20, so nearly-closed band
		{0.293, 40}, // partially closed
		{0.343, 25}, // slightly closing
		{0.393, 10}, // narrowing
		{0.443, 0},  // no band
	}
	for _, tc := range eyeCases {
		score, _, _ := Assess(tc.avgEAR, tc.avgEAR, 0)
		if score != tc.score {
			t.Errorf("avgEAR=%v: score = %d, want %d", tc.avgEAR, score, tc.score)
		}
	}

	mouthCases := []struct {
		mar   float64
		score int
	}{
		{0.267, 30}, // not > 0.267, still yawning band
		{0.167, 15}, // mouth opening
		{0.117, 0},  // no band
	}
	for _, tc := range mouthCases {
		score, _, _ := Assess(0.5, 0.5, tc.mar)
		if score != tc.score {
			t.Errorf("mar=%v: score = %d, want %d", tc.mar, score, tc.score)
		}
	}
}

func TestAssessCombinedClamped(t *testing.T) {
	// 70 (eyes fully closed) + 35 (wide yawn) clamps to 100.
	score, status, indicators := Assess(0.15, 0.15, 0.30)
	if score != 100 {
		t.Errorf("score = %d, want 100", score)
	}
	if status != StatusVeryDrowsy {
		t.Errorf("status = %s, want %s", status, StatusVeryDrowsy)
	}
	hasEyes, hasMouth := false, false
	for _, ind := range indicators {
		if ind == EyesFullyClosed {
			hasEyes = true
		}
		if ind == WideYawn {
			hasMouth = true
		}
	}
	if !hasEyes || !hasMouth {
		t.Errorf("indicators = %v, want both %s and %s", indicators, EyesFullyClosed, WideYawn)
	}
}

func TestAssessDeterministic(t *testing.T) {
	s1, st1, _ := Assess(0.31, 0.33, 0.18)
	s2, st2, _ := Assess(0.31, 0.33, 0.18)
	if s1 != s2 || st1 != st2 {
		t.Errorf("same inputs gave (%d,%s) then (%d,%s)", s1, st1, s2, st2)
	}
}

func TestAssessScoreRange(t *testing.T) {
	ears := []float64{0, 0.1, 0.2, 0.293, 0.3, 0.343, 0.393, 0.443, 0.5, 1.0}
	mars := []float64{0, 0.117, 0.15, 0.167, 0.2, 0.267, 0.3, 1.0}
	for _, ear := range ears {
		for _, mar := range mars {
			score, _, _ := Assess(ear, ear, mar)
			if score < 0 || score > 100 {
				t.Fatalf("Assess(%v, %v, %v) score %d outside [0,100]", ear, ear, mar, score)
			}
		}
	}
}

func TestStatusCutoffs(t *testing.T) {
	// score 60 = nearly closed band alone: Drowsy, not VeryDrowsy.
	_, status, _ := Assess(0.25, 0.25, 0)
	if status != StatusDrowsy {
		t.Errorf("score 60: status = %s, want %s", status, StatusDrowsy)
	}

	// 40 + 30 = 70 crosses the very-drowsy cutoff.
	score, status, _ := Assess(0.30, 0.30, 0.20)
	if score != 70 {
		t.Fatalf("score = %d, want 70", score)
	}
	if status != StatusVeryDrowsy {
		t.Errorf("score 70: status = %s, want %s", status, StatusVeryDrowsy)
	}
}

func TestIndicatorText(t *testing.T) {
	if EyesFullyClosed.Text() != "Eyes fully closed (asleep)" {
		t.Errorf("unexpected text: %s", EyesFullyClosed.Text())
	}
	if StatusVeryDrowsy.Text() != "Very Drowsy / Asleep" {
		t.Errorf("unexpected text: %s", StatusVeryDrowsy.Text())
	}
	// Unknown tags fall back to the raw value.
	if Indicator("custom").Text() != "custom" {
		t.Errorf("unknown indicator should echo its tag")
	}
}
