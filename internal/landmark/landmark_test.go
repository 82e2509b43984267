package landmark

import (
	"math"
	"testing"
)

func TestHand_Valid(t *testing.T) {
	hand := OpenPalmHand()
	if !hand.Valid() {
		t.Error("expected preset open palm hand to be valid")
	}
}

func TestHand_Valid_Nil(t *testing.T) {
	var hand *Hand
	if hand.Valid() {
		t.Error("nil hand should not be valid")
	}
}

func TestHand_Valid_ShortHand(t *testing.T) {
	hand := Hand{Points: make([]Point3D, 10)}
	if hand.Valid() {
		t.Error("hand with fewer than 21 points should not be valid")
	}
}

func TestHand_Valid_NonFinite(t *testing.T) {
	hand := OpenPalmHand()
	hand.Points[IndexTip].X = math.NaN()
	if hand.Valid() {
		t.Error("hand with NaN coordinate should not be valid")
	}

	hand = OpenPalmHand()
	hand.Points[Wrist].Y = math.Inf(1)
	if hand.Valid() {
		t.Error("hand with infinite coordinate should not be valid")
	}
}

func TestHand_Valid_AllZero(t *testing.T) {
	hand := Hand{Points: make([]Point3D, NumLandmarks)}
	if hand.Valid() {
		t.Error("hand with all landmarks at the origin should not be valid")
	}
}

func TestDistance2D(t *testing.T) {
	a := Point3D{X: 0, Y: 0, Z: 5}
	b := Point3D{X: 3, Y: 4, Z: -5}

	// Depth must not contribute
	if got := Distance2D(a, b); got != 5 {
		t.Errorf("Distance2D = %f, want 5", got)
	}
}

func TestExtendedAndCurled(t *testing.T) {
	palm := OpenPalmHand()
	if !palm.Extended(IndexTip, IndexPIP) {
		t.Error("open palm index finger should be extended")
	}
	if palm.Curled(IndexTip, IndexPIP) {
		t.Error("open palm index finger should not be curled")
	}

	fist := FistHand()
	if !fist.Curled(IndexTip, IndexPIP) {
		t.Error("fist index finger should be curled")
	}
	if fist.Extended(IndexTip, IndexPIP) {
		t.Error("fist index finger should not be extended")
	}
}
