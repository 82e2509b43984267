package classify

import (
	"testing"

	"github.com/ayusman/hasta/internal/landmark"
)

func TestStatic_Poses(t *testing.T) {
	tests := []struct {
		name           string
		hand           landmark.Hand
		wantLabel      string
		wantConfidence float64
	}{
		{"thumbs up", landmark.ThumbsUpHand(), LabelThumbsUp, 92},
		{"peace sign", landmark.PeaceSignHand(), LabelPeaceSign, 88},
		{"pointing", landmark.PointingHand(), LabelPointing, 85},
		{"open palm", landmark.OpenPalmHand(), LabelOpenPalm, 83},
		{"fist", landmark.FistHand(), LabelFist, 80},
		{"ok hand", landmark.OKHand(), LabelOKHand, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Static(&tt.hand)
			if got == nil {
				t.Fatalf("Static() = nil, want %q", tt.wantLabel)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Static() label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Static() confidence = %f, want %f", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestStatic_Deterministic(t *testing.T) {
	hand := landmark.ThumbsUpHand()

	first := Static(&hand)
	for i := 0; i < 10; i++ {
		got := Static(&hand)
		if got == nil || got.Label != first.Label || got.Confidence != first.Confidence {
			t.Fatalf("run %d: Static() = %+v, want %+v", i, got, first)
		}
	}
}

func TestStatic_OKOverridesOpenPalm(t *testing.T) {
	// The OK fixture keeps all four fingers extended (open palm geometry)
	// while bringing the thumb tip within the pinch distance. The pinch
	// check must win.
	hand := landmark.OKHand()

	if !hand.Extended(landmark.IndexTip, landmark.IndexPIP) ||
		!hand.Extended(landmark.MiddleTip, landmark.MiddlePIP) ||
		!hand.Extended(landmark.RingTip, landmark.RingPIP) ||
		!hand.Extended(landmark.PinkyTip, landmark.PinkyPIP) {
		t.Fatal("fixture must satisfy the open palm conditions")
	}

	got := Static(&hand)
	if got == nil || got.Label != LabelOKHand {
		t.Errorf("Static() = %+v, want %q", got, LabelOKHand)
	}
}

func TestStatic_OKDistanceBoundary(t *testing.T) {
	// At the threshold is not OK; just inside is.
	hand := landmark.OpenPalmHand()
	hand.Points[landmark.IndexTip] = landmark.Point3D{X: 0.5, Y: 0.5}

	hand.Points[landmark.ThumbTip] = landmark.Point3D{X: 0.55, Y: 0.5}
	got := Static(&hand)
	if got != nil && got.Label == LabelOKHand {
		t.Errorf("distance 0.05 classified as OK Hand, comparison must be strict")
	}

	hand.Points[landmark.ThumbTip] = landmark.Point3D{X: 0.549, Y: 0.5}
	got = Static(&hand)
	if got == nil || got.Label != LabelOKHand {
		t.Errorf("distance 0.049 = %+v, want %q", got, LabelOKHand)
	}
}

func TestStatic_DegenerateHand(t *testing.T) {
	hand := landmark.Hand{Points: make([]landmark.Point3D, landmark.NumLandmarks)}
	if got := Static(&hand); got != nil {
		t.Errorf("Static() on all-zero hand = %+v, want nil", got)
	}
}

func TestStatic_MalformedHand(t *testing.T) {
	hand := landmark.Hand{Points: make([]landmark.Point3D, 5)}
	if got := Static(&hand); got != nil {
		t.Errorf("Static() on short hand = %+v, want nil", got)
	}

	if got := Static(nil); got != nil {
		t.Errorf("Static(nil) = %+v, want nil", got)
	}
}
