package classify

import "github.com/ayusman/hasta/internal/landmark"

// Labels produced by the fingertip-spread classifier.
const (
	LabelPinch  = "Pinch"
	LabelSpread = "Spread"

	confPinch  = 87
	confSpread = 85
)

// Spread thresholds on the summed distance between consecutive non-thumb
// fingertips, in normalized image space.
const (
	pinchSpread  = 0.15
	spreadSpread = 0.4
)

// Tracking classifies pinch and spread poses from the distances between
// consecutive non-thumb fingertips (index-middle, middle-ring, ring-pinky).
// The wrist landmark is not part of the arithmetic. Malformed or degenerate
// hands return nil, as does any spread between the two thresholds.
func Tracking(hand *landmark.Hand) *Result {
	if !hand.Valid() {
		return nil
	}

	p := hand.Points
	totalSpread := landmark.Distance2D(p[landmark.IndexTip], p[landmark.MiddleTip]) +
		landmark.Distance2D(p[landmark.MiddleTip], p[landmark.RingTip]) +
		landmark.Distance2D(p[landmark.RingTip], p[landmark.PinkyTip])

	switch {
	case totalSpread < pinchSpread:
		return &Result{Label: LabelPinch, Confidence: confPinch}
	case totalSpread > spreadSpread:
		return &Result{Label: LabelSpread, Confidence: confSpread}
	}

	return nil
}
