package classify

import (
	"math"

	"github.com/ayusman/hasta/internal/frame"
)

// Swipe labels produced by the motion classifier.
const (
	LabelSwipeRight = "Swipe Right"
	LabelSwipeLeft  = "Swipe Left"
	LabelSwipeDown  = "Swipe Down"
	LabelSwipeUp    = "Swipe Up"
)

const (
	// minMotionFrames is the buffer depth required before frame differencing
	// is meaningful.
	minMotionFrames = 3

	// swipeMagnitude is the accumulated luminance change required to call a
	// swipe.
	swipeMagnitude = 1000
)

// Motion classifies swipe gestures by differencing the two most recent
// buffered frames. Pixels whose absolute luminance change exceeds the
// threshold contribute to a total motion magnitude and to signed horizontal
// and vertical accumulators; the outer 40% bands of the frame decide the
// sign, so change in the middle of the frame moves only the magnitude.
//
// Returns nil when fewer than three frames are buffered, when the two
// frames disagree on dimensions, or when the total magnitude stays at or
// below the swipe threshold.
func Motion(frames []*frame.PixelBuffer, threshold float64) *Result {
	if len(frames) < minMotionFrames {
		return nil
	}

	curr := frames[len(frames)-1]
	prev := frames[len(frames)-2]
	if curr == nil || prev == nil {
		return nil
	}
	if curr.Width != prev.Width || curr.Height != prev.Height {
		return nil
	}

	w, h := curr.Width, curr.Height
	leftBand := 0.4 * float64(w)
	rightBand := 0.6 * float64(w)
	topBand := 0.4 * float64(h)
	bottomBand := 0.6 * float64(h)

	var magnitude, horizontal, vertical float64

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			diff := math.Abs(curr.LuminanceAt(x, y) - prev.LuminanceAt(x, y))
			if diff <= threshold {
				continue
			}

			magnitude += diff

			fx, fy := float64(x), float64(y)
			if fx > rightBand {
				horizontal += diff
			} else if fx < leftBand {
				horizontal -= diff
			}
			if fy > bottomBand {
				vertical += diff
			} else if fy < topBand {
				vertical -= diff
			}
		}
	}

	if magnitude <= swipeMagnitude {
		return nil
	}

	confidence := math.Min(85, 60+magnitude/100)

	var label string
	if math.Abs(horizontal) > math.Abs(vertical) {
		if horizontal > 0 {
			label = LabelSwipeRight
		} else {
			label = LabelSwipeLeft
		}
	} else {
		if vertical > 0 {
			label = LabelSwipeDown
		} else {
			label = LabelSwipeUp
		}
	}

	return &Result{Label: label, Confidence: confidence}
}
