package classify

import "github.com/ayusman/hasta/internal/landmark"

// Static pose labels and their confidences.
const (
	LabelThumbsUp  = "Thumbs Up"
	LabelPeaceSign = "Peace Sign"
	LabelPointing  = "Pointing"
	LabelOpenPalm  = "Open Palm"
	LabelFist      = "Fist"
	LabelOKHand    = "OK Hand"

	confThumbsUp  = 92
	confOKHand    = 90
	confPeaceSign = 88
	confPointing  = 85
	confOpenPalm  = 83
	confFist      = 80
)

// okPinchDistance is the maximum thumb-index tip distance for the OK pose,
// in normalized image space. The comparison is strict.
const okPinchDistance = 0.05

// Static classifies a single hand pose from its 21 landmarks. It is pure and
// deterministic: the same hand always yields the same result. Malformed or
// degenerate hands return nil.
//
// The thumb-index pinch check runs first because it holds regardless of the
// curl state of the remaining fingers; after that the curl rules are tried
// in fixed priority order and the first match wins.
func Static(hand *landmark.Hand) *Result {
	if !hand.Valid() {
		return nil
	}

	p := hand.Points

	// OK pose: thumb tip touching index tip.
	if landmark.Distance2D(p[landmark.ThumbTip], p[landmark.IndexTip]) < okPinchDistance {
		return &Result{Label: LabelOKHand, Confidence: confOKHand}
	}

	indexExt := hand.Extended(landmark.IndexTip, landmark.IndexPIP)
	middleExt := hand.Extended(landmark.MiddleTip, landmark.MiddlePIP)
	ringExt := hand.Extended(landmark.RingTip, landmark.RingPIP)
	pinkyExt := hand.Extended(landmark.PinkyTip, landmark.PinkyPIP)

	indexCurl := hand.Curled(landmark.IndexTip, landmark.IndexPIP)
	middleCurl := hand.Curled(landmark.MiddleTip, landmark.MiddlePIP)
	ringCurl := hand.Curled(landmark.RingTip, landmark.RingPIP)
	pinkyCurl := hand.Curled(landmark.PinkyTip, landmark.PinkyPIP)

	// Thumb points upward when its tip sits above both the IP and MCP
	// joints in screen space.
	thumbUp := p[landmark.ThumbTip].Y < p[landmark.ThumbIP].Y &&
		p[landmark.ThumbTip].Y < p[landmark.ThumbMCP].Y

	switch {
	case thumbUp && indexCurl && middleCurl && ringCurl && pinkyCurl:
		return &Result{Label: LabelThumbsUp, Confidence: confThumbsUp}
	case indexExt && middleExt && ringCurl && pinkyCurl:
		return &Result{Label: LabelPeaceSign, Confidence: confPeaceSign}
	case indexExt && middleCurl && ringCurl && pinkyCurl:
		return &Result{Label: LabelPointing, Confidence: confPointing}
	case indexExt && middleExt && ringExt && pinkyExt:
		return &Result{Label: LabelOpenPalm, Confidence: confOpenPalm}
	case indexCurl && middleCurl && ringCurl && pinkyCurl:
		return &Result{Label: LabelFist, Confidence: confFist}
	}

	return nil
}
