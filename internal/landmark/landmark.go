// Package landmark provides hand landmark types and geometry helpers for
// gesture classification.
package landmark

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a detected landmark position. X and Y are normalized to
// [0,1] relative to the frame width and height in screen space (the origin is
// the top-left corner, so smaller Y means higher on screen). Z is relative
// depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hand represents one detected hand as an ordered sequence of 21 landmarks.
// Hands carry no identity across frames; the detector produces them fresh on
// every frame.
type Hand struct {
	Points     []Point3D `json:"points"`
	Handedness string    `json:"handedness"` // "Left" or "Right"
	Score      float64   `json:"score"`
}

// Valid reports whether the hand carries a full, finite set of landmarks.
// Partial detections (occlusion, hand leaving the frame) produce short or
// NaN-bearing hands; classifiers treat those as "no match" rather than
// erroring.
func (h *Hand) Valid() bool {
	if h == nil || len(h.Points) != NumLandmarks {
		return false
	}
	degenerate := true
	for _, p := range h.Points {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) {
			return false
		}
		if p.X != 0 || p.Y != 0 || p.Z != 0 {
			degenerate = false
		}
	}
	// A hand with every landmark at the origin is a dropped detection, not a
	// pose.
	return !degenerate
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Distance2D calculates the Euclidean distance between two points in the
// normalized x/y image plane, ignoring depth.
func Distance2D(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Extended reports whether the finger with the given tip and PIP joint
// indices is extended: the tip sits above its lower joint in screen space.
func (h *Hand) Extended(tip, pip int) bool {
	return h.Points[tip].Y < h.Points[pip].Y
}

// Curled reports whether the finger with the given tip and PIP joint indices
// is curled down: the tip sits below its lower joint in screen space.
func (h *Hand) Curled(tip, pip int) bool {
	return h.Points[tip].Y > h.Points[pip].Y
}
