// Package classify provides the rule-based gesture classifiers: static hand
// poses, motion-difference swipes, and fingertip-spread tracking.
package classify

import "fmt"

// Result is the outcome of one classifier invocation. A nil *Result means
// "no match". Confidence is a heuristic 0-100 score, not a calibrated
// probability.
type Result struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Method selects which secondary classifier runs alongside the static rules.
type Method int

const (
	// MethodManual runs only the static pose classifier.
	MethodManual Method = iota
	// MethodFrameDiff additionally runs the motion-difference classifier.
	MethodFrameDiff
	// MethodObjectTracking additionally runs the fingertip-spread classifier.
	MethodObjectTracking
)

// Wire names for detection methods, as the dashboard sends them.
const (
	methodManualName         = "manual"
	methodFrameDiffName      = "frame-diff"
	methodObjectTrackingName = "object-detection"
)

// String returns the wire name of the method.
func (m Method) String() string {
	switch m {
	case MethodFrameDiff:
		return methodFrameDiffName
	case MethodObjectTracking:
		return methodObjectTrackingName
	default:
		return methodManualName
	}
}

// ParseMethod converts a wire name into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case methodManualName:
		return MethodManual, nil
	case methodFrameDiffName:
		return MethodFrameDiff, nil
	case methodObjectTrackingName:
		return MethodObjectTracking, nil
	}
	return MethodManual, fmt.Errorf("unknown detection method %q", s)
}

// Motion threshold bounds for frame differencing.
const (
	DefaultMotionThreshold = 50
	MinMotionThreshold     = 10
	MaxMotionThreshold     = 100
)

// Settings holds the externally owned classifier configuration. The
// classification core reads it; only the dashboard writes it.
type Settings struct {
	Method          Method
	MotionThreshold float64
	LearningMode    bool

	// BackgroundSubtraction is accepted from the dashboard but not used by
	// any classifier. It is preserved so the settings round-trip stays
	// intact.
	BackgroundSubtraction bool
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		Method:          MethodManual,
		MotionThreshold: DefaultMotionThreshold,
	}
}

// ClampedMotionThreshold returns the motion threshold forced into its valid
// range.
func (s Settings) ClampedMotionThreshold() float64 {
	t := s.MotionThreshold
	if t < MinMotionThreshold {
		return MinMotionThreshold
	}
	if t > MaxMotionThreshold {
		return MaxMotionThreshold
	}
	return t
}
