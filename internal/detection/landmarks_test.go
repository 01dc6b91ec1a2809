package detection

import (
	"math"
	"testing"
)

// fullSet builds a landmark set covering every mesh index, with all
// points at a harmless default position.
func fullSet() LandmarkSet {
	ls := make(LandmarkSet, NumLandmarks)
	for i := range ls {
		ls[i] = Landmark{X: 0.5, Y: 0.5}
	}
	return ls
}

// setEye places the six points of one eye so the EAR comes out to
// (v1+v2)/(2*width).
func setEye(ls LandmarkSet, eye [6]int, width, v1, v2 float64) {
	ls[eye[0]] = Landmark{X: 0.1, Y: 0.5}         // p1 left corner
	ls[eye[3]] = Landmark{X: 0.1 + width, Y: 0.5} // p4 right corner
	ls[eye[1]] = Landmark{X: 0.15, Y: 0.5 - v1/2} // p2
	ls[eye[5]] = Landmark{X: 0.15, Y: 0.5 + v1/2} // p6
	ls[eye[2]] = Landmark{X: 0.17, Y: 0.5 - v2/2} // p3
	ls[eye[4]] = Landmark{X: 0.17, Y: 0.5 + v2/2} // p5
}

func setMouth(ls LandmarkSet, width, gap float64) {
	ls[MouthLandmarks[0]] = Landmark{X: 0.3, Y: 0.7}
	ls[MouthLandmarks[2]] = Landmark{X: 0.3 + width, Y: 0.7}
	ls[MouthLandmarks[1]] = Landmark{X: 0.35, Y: 0.7 - gap/2}
	ls[MouthLandmarks[3]] = Landmark{X: 0.35, Y: 0.7 + gap/2}
}

func TestEyeAspectRatio(t *testing.T) {
	ls := fullSet()
	setEye(ls, LeftEyeLandmarks, 0.2, 0.06, 0.06)

	got := EyeAspectRatio(LeftEyeLandmarks, ls)
	want := 0.3 // (0.06+0.06)/(2*0.2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("EAR = %v, want %v", got, want)
	}
}

func TestEyeAspectRatioDegenerate(t *testing.T) {
	ls := fullSet()
	// Corners coincide: zero horizontal distance must give 0, not a
	// division error.
	got := EyeAspectRatio(LeftEyeLandmarks, ls)
	if got != 0 {
		t.Errorf("EAR = %v, want 0 for coincident corners", got)
	}
}

func TestMouthAspectRatio(t *testing.T) {
	ls := fullSet()
	setMouth(ls, 0.2, 0.05)

	got := MouthAspectRatio(MouthLandmarks, ls)
	want := 0.25 // 0.05/0.2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("MAR = %v, want %v", got, want)
	}
}

func TestMouthAspectRatioDegenerate(t *testing.T) {
	ls := fullSet()
	got := MouthAspectRatio(MouthLandmarks, ls)
	if got != 0 {
		t.Errorf("MAR = %v, want 0 for coincident corners", got)
	}
}

func TestComplete(t *testing.T) {
	if !fullSet().Complete() {
		t.Error("full mesh should be complete")
	}
	if LandmarkSet(make([]Landmark, 100)).Complete() {
		t.Error("100 points cannot cover the eye indices")
	}
	if (LandmarkSet{}).Complete() {
		t.Error("empty set should be incomplete")
	}
}
