package detection

// FrameResult is the per-frame assessment handed to session statistics
// and to the presentation side. Built once per analyzed frame, never
// mutated afterwards.
type FrameResult struct {
	Score      int         `json:"score"`
	Status     Status      `json:"status"`
	Indicators []Indicator `json:"indicators"`
	LeftEAR    float64     `json:"left_ear"`
	RightEAR   float64     `json:"right_ear"`
	MAR        float64     `json:"mar"`
}

// NoFace reports whether the frame had no detectable face.
func (r FrameResult) NoFace() bool {
	return r.Status == StatusNoFace
}

// Failed reports whether the frame failed extraction.
func (r FrameResult) Failed() bool {
	return r.Status == StatusError
}

// ProcessFrame runs feature extraction and scoring for one landmark
// observation. A nil set yields a NoFace result; a short set yields an
// Error result. No side effects: statistics and alert state are applied
// separately by the session driver.
func ProcessFrame(landmarks LandmarkSet) FrameResult {
	if landmarks == nil {
		return FrameResult{Status: StatusNoFace, Indicators: []Indicator{}}
	}
	if !landmarks.Complete() {
		return FrameResult{Status: StatusError, Indicators: []Indicator{}}
	}

	leftEAR := EyeAspectRatio(LeftEyeLandmarks, landmarks)
	rightEAR := EyeAspectRatio(RightEyeLandmarks, landmarks)
	mar := MouthAspectRatio(MouthLandmarks, landmarks)

	score, status, indicators := Assess(leftEAR, rightEAR, mar)

	return FrameResult{
		Score:      score,
		Status:     status,
		Indicators: indicators,
		LeftEAR:    leftEAR,
		RightEAR:   rightEAR,
		MAR:        mar,
	}
}
