package landmark

// Preset hands for tests and the mock detector. Coordinates are normalized
// screen space: the origin is the top-left corner and Y grows downward, so
// an extended finger has its tip at a smaller Y than its lower joints.

// ThumbsUpHand returns a hand with the thumb extended upward and all four
// fingers curled down.
func ThumbsUpHand() Hand {
	h := Hand{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb pointing up
	h.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.65, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.50, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Index finger curled
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.70, Z: -0.02}
	h.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.68, Z: -0.05}
	h.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.70, Z: -0.04}
	h.Points[IndexTip] = Point3D{X: 0.50, Y: 0.72, Z: -0.02}

	// Middle finger curled
	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.68, Z: -0.02}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.66, Z: -0.05}
	h.Points[MiddleDIP] = Point3D{X: 0.47, Y: 0.68, Z: -0.04}
	h.Points[MiddleTip] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}

	// Ring finger curled
	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}
	h.Points[RingPIP] = Point3D{X: 0.45, Y: 0.68, Z: -0.05}
	h.Points[RingDIP] = Point3D{X: 0.42, Y: 0.70, Z: -0.04}
	h.Points[RingTip] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}

	// Pinky finger curled
	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}
	h.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.70, Z: -0.05}
	h.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.72, Z: -0.04}
	h.Points[PinkyTip] = Point3D{X: 0.35, Y: 0.74, Z: -0.02}

	return h
}

// OpenPalmHand returns a hand with all four fingers extended upward and the
// thumb out to the side.
func OpenPalmHand() Hand {
	h := Hand{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb out to the side
	h.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	h.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	h.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	h.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended
	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended
	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	h.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	h.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	h.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky finger extended
	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	h.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	h.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	h.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return h
}

// PeaceSignHand returns a hand with index and middle fingers extended and
// ring and pinky curled.
func PeaceSignHand() Hand {
	h := Hand{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: "Right",
		Score:      0.94,
	}

	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb folded across the palm
	h.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.57, Y: 0.68, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.55, Y: 0.66, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.52, Y: 0.68, Z: 0.0}

	// Index finger extended
	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.55, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.45, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.57, Y: 0.35, Z: 0.0}

	// Middle finger extended
	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.40, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.30, Z: 0.0}

	// Ring finger curled
	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: -0.02}
	h.Points[RingPIP] = Point3D{X: 0.44, Y: 0.62, Z: -0.05}
	h.Points[RingDIP] = Point3D{X: 0.43, Y: 0.65, Z: -0.04}
	h.Points[RingTip] = Point3D{X: 0.43, Y: 0.68, Z: -0.02}

	// Pinky finger curled
	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: -0.02}
	h.Points[PinkyPIP] = Point3D{X: 0.39, Y: 0.64, Z: -0.05}
	h.Points[PinkyDIP] = Point3D{X: 0.38, Y: 0.67, Z: -0.04}
	h.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.70, Z: -0.02}

	return h
}

// PointingHand returns a hand with only the index finger extended.
func PointingHand() Hand {
	h := PeaceSignHand()

	// Curl the middle finger back down
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.62, Z: -0.05}
	h.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.65, Z: -0.04}
	h.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.68, Z: -0.02}

	return h
}

// FistHand returns a hand with all four fingers curled and the thumb folded
// to the side.
func FistHand() Hand {
	h := ThumbsUpHand()

	// Fold the thumb down so it no longer points upward, keeping its tip
	// clear of the index tip.
	h.Points[ThumbMCP] = Point3D{X: 0.58, Y: 0.68, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.66, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.60, Y: 0.70, Z: 0.0}

	return h
}

// OKHand returns an open-palm hand with the thumb tip touching the index
// tip. It deliberately satisfies both the open-palm curl conditions and the
// thumb-index pinch distance.
func OKHand() Hand {
	h := OpenPalmHand()

	// Bring the thumb tip within the pinch threshold of the index tip.
	h.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.60, Z: 0.02}
	h.Points[ThumbIP] = Point3D{X: 0.60, Y: 0.45, Z: 0.02}
	h.Points[ThumbTip] = Point3D{X: 0.56, Y: 0.33, Z: 0.02}

	return h
}

// PinchHand returns a hand with all four fingertips clustered tightly
// together, curled toward the palm.
func PinchHand() Hand {
	h := Hand{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: "Right",
		Score:      0.93,
	}

	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	h.Points[ThumbCMC] = Point3D{X: 0.58, Y: 0.74, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.63, Y: 0.68, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.66, Y: 0.55, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.70, Y: 0.60, Z: 0.0}

	h.Points[IndexMCP] = Point3D{X: 0.50, Y: 0.60, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.50, Y: 0.38, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.50, Y: 0.39, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}

	h.Points[MiddleMCP] = Point3D{X: 0.52, Y: 0.60, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: 0.52, Y: 0.38, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.52, Y: 0.39, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.52, Y: 0.40, Z: 0.0}

	h.Points[RingMCP] = Point3D{X: 0.54, Y: 0.61, Z: 0.0}
	h.Points[RingPIP] = Point3D{X: 0.54, Y: 0.39, Z: 0.0}
	h.Points[RingDIP] = Point3D{X: 0.54, Y: 0.40, Z: 0.0}
	h.Points[RingTip] = Point3D{X: 0.54, Y: 0.41, Z: 0.0}

	h.Points[PinkyMCP] = Point3D{X: 0.56, Y: 0.62, Z: 0.0}
	h.Points[PinkyPIP] = Point3D{X: 0.56, Y: 0.40, Z: 0.0}
	h.Points[PinkyDIP] = Point3D{X: 0.56, Y: 0.41, Z: 0.0}
	h.Points[PinkyTip] = Point3D{X: 0.56, Y: 0.42, Z: 0.0}

	return h
}

// SpreadHand returns a hand with the four fingertips fanned wide apart.
func SpreadHand() Hand {
	h := Hand{
		Points:     make([]Point3D, NumLandmarks),
		Handedness: "Right",
		Score:      0.93,
	}

	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	h.Points[ThumbCMC] = Point3D{X: 0.42, Y: 0.74, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.32, Y: 0.68, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.18, Y: 0.50, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.15, Y: 0.55, Z: 0.0}

	h.Points[IndexMCP] = Point3D{X: 0.38, Y: 0.65, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.32, Y: 0.50, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.31, Y: 0.42, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.30, Y: 0.35, Z: 0.0}

	h.Points[MiddleMCP] = Point3D{X: 0.47, Y: 0.63, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: 0.45, Y: 0.45, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.45, Y: 0.37, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.45, Y: 0.30, Z: 0.0}

	h.Points[RingMCP] = Point3D{X: 0.55, Y: 0.64, Z: 0.0}
	h.Points[RingPIP] = Point3D{X: 0.58, Y: 0.47, Z: 0.0}
	h.Points[RingDIP] = Point3D{X: 0.59, Y: 0.39, Z: 0.0}
	h.Points[RingTip] = Point3D{X: 0.60, Y: 0.32, Z: 0.0}

	h.Points[PinkyMCP] = Point3D{X: 0.62, Y: 0.68, Z: 0.0}
	h.Points[PinkyPIP] = Point3D{X: 0.72, Y: 0.52, Z: 0.0}
	h.Points[PinkyDIP] = Point3D{X: 0.74, Y: 0.45, Z: 0.0}
	h.Points[PinkyTip] = Point3D{X: 0.75, Y: 0.40, Z: 0.0}

	return h
}
