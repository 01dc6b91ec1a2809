package detection

import "math"

// Landmark indices following the MediaPipe 468-point face mesh.
// These must stay in sync with the thresholds in scoring.go, which were
// tuned against datasets using exactly these points.
var (
	LeftEyeLandmarks  = [6]int{33, 160, 159, 133, 145, 144}
	RightEyeLandmarks = [6]int{362, 385, 386, 263, 374, 373}
	MouthLandmarks    = [4]int{61, 13, 291, 14}
)

// NumLandmarks is the point count of the face mesh topology.
const NumLandmarks = 468

// Landmark is a normalized 2D facial keypoint, x and y in [0,1]
// relative to the frame dimensions.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LandmarkSet is one face's landmarks, index-addressable per the mesh
// topology. A nil set means no face was detected in the frame.
type LandmarkSet []Landmark

func distance(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// EyeAspectRatio computes the classic 6-point EAR:
// (|p2-p6| + |p3-p5|) / (2*|p1-p4|). Returns 0 when the horizontal
// reference distance is degenerate.
func EyeAspectRatio(eye [6]int, landmarks LandmarkSet) float64 {
	p1 := landmarks[eye[0]]
	p2 := landmarks[eye[1]]
	p3 := landmarks[eye[2]]
	p4 := landmarks[eye[3]]
	p5 := landmarks[eye[4]]
	p6 := landmarks[eye[5]]

	vertical1 := distance(p2, p6)
	vertical2 := distance(p3, p5)
	horizontal := distance(p1, p4)

	if horizontal == 0 {
		return 0
	}
	return (vertical1 + vertical2) / (2.0 * horizontal)
}

// MouthAspectRatio computes the 4-point MAR: lip gap over mouth width.
// Returns 0 when the mouth corners coincide.
func MouthAspectRatio(mouth [4]int, landmarks LandmarkSet) float64 {
	corner1 := landmarks[mouth[0]]
	top := landmarks[mouth[1]]
	corner2 := landmarks[mouth[2]]
	bottom := landmarks[mouth[3]]

	vertical := distance(top, bottom)
	horizontal := distance(corner1, corner2)

	if horizontal == 0 {
		return 0
	}
	return vertical / horizontal
}

// maxIndex is the highest landmark index the extractor dereferences.
func maxIndex() int {
	m := 0
	for _, idx := range LeftEyeLandmarks {
		if idx > m {
			m = idx
		}
	}
	for _, idx := range RightEyeLandmarks {
		if idx > m {
			m = idx
		}
	}
	for _, idx := range MouthLandmarks {
		if idx > m {
			m = idx
		}
	}
	return m
}

var minLandmarks = maxIndex() + 1

// Complete reports whether the set has enough points to cover every
// index the extractor reads. Short sets come from malformed detector
// responses and are treated as extraction failures upstream.
func (ls LandmarkSet) Complete() bool {
	return len(ls) >= minLandmarks
}
