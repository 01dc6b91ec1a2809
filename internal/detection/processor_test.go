package detection

import "testing"

func TestProcessFrameNoFace(t *testing.T) {
	result := ProcessFrame(nil)
	if result.Status != StatusNoFace {
		t.Errorf("status = %s, want %s", result.Status, StatusNoFace)
	}
	if result.Score != 0 || result.LeftEAR != 0 || result.RightEAR != 0 || result.MAR != 0 {
		t.Errorf("no-face result should be all zeros: %+v", result)
	}
	if len(result.Indicators) != 0 {
		t.Errorf("no-face result should have no indicators: %v", result.Indicators)
	}
	if !result.NoFace() {
		t.Error("NoFace() should be true")
	}
}

func TestProcessFrameShortSet(t *testing.T) {
	result := ProcessFrame(make(LandmarkSet, 50))
	if result.Status != StatusError {
		t.Errorf("status = %s, want %s", result.Status, StatusError)
	}
	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	if !result.Failed() {
		t.Error("Failed() should be true")
	}
}

func TestProcessFrameDrowsy(t *testing.T) {
	ls := fullSet()
	// Both eyes nearly shut, wide yawn.
	setEye(ls, LeftEyeLandmarks, 0.2, 0.03, 0.03)  // EAR 0.15
	setEye(ls, RightEyeLandmarks, 0.2, 0.03, 0.03) // EAR 0.15
	setMouth(ls, 0.2, 0.06)                        // MAR 0.30

	result := ProcessFrame(ls)
	if result.Score != 100 {
		t.Errorf("score = %d, want 100", result.Score)
	}
	if result.Status != StatusVeryDrowsy {
		t.Errorf("status = %s, want %s", result.Status, StatusVeryDrowsy)
	}
	if result.LeftEAR == 0 || result.MAR == 0 {
		t.Errorf("ratios should be carried through: %+v", result)
	}
}

func TestProcessFrameAlert(t *testing.T) {
	ls := fullSet()
	setEye(ls, LeftEyeLandmarks, 0.2, 0.10, 0.10)  // EAR 0.5
	setEye(ls, RightEyeLandmarks, 0.2, 0.10, 0.10) // EAR 0.5
	setMouth(ls, 0.2, 0.01)                        // MAR 0.05

	result := ProcessFrame(ls)
	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	if result.Status != StatusAlert {
		t.Errorf("status = %s, want %s", result.Status, StatusAlert)
	}
}
