// Package session provides the gesture session arbiter: it runs the
// classifiers over each submitted frame, picks the best result, and maintains
// the bounded gesture history, recent-gesture sequence, custom gesture set
// and running statistics.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/hasta/internal/classify"
	"github.com/ayusman/hasta/internal/frame"
	"github.com/ayusman/hasta/internal/landmark"
)

// Bounds and thresholds for per-session state.
const (
	// HistorySize is the capacity of the gesture history log.
	HistorySize = 20
	// SequenceSize is the capacity of the recent-gesture sequence.
	SequenceSize = 5
	// LearnConfidence is the confidence a classification must exceed for
	// its label to be captured as a custom gesture in learning mode.
	LearnConfidence = 70
)

// labelUnknown is a sentinel some detectors emit for an unclassifiable pose.
// It is never recorded.
const labelUnknown = "Unknown"

// State is the arbiter's operating state.
type State int

const (
	// StateIdle means the session is not recording; submitted frames are
	// ignored.
	StateIdle State = iota
	// StateActive means the session processes every submitted frame.
	StateActive
)

// String returns the wire name of the state.
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "idle"
}

// HistoryEntry is one accepted classification in the bounded history log.
type HistoryEntry struct {
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}

// Stats holds the running session statistics. Accuracy is a two-point
// running mean of previous accuracy and the newest confidence, so it is
// recency-weighted rather than a true cumulative average. The dashboard
// displays it as-is.
type Stats struct {
	GesturesDetected int     `json:"gestures_detected"`
	Accuracy         float64 `json:"accuracy"`
	SessionTime      int     `json:"session_time"`
}

// Outcome is the event emitted for an accepted classification. All slices
// are snapshot copies, safe to hand to another goroutine.
type Outcome struct {
	Label          string         `json:"label"`
	Confidence     float64        `json:"confidence"`
	History        []HistoryEntry `json:"history"`
	Sequence       []string       `json:"sequence"`
	Stats          Stats          `json:"stats"`
	CustomGestures []string       `json:"custom_gestures"`
}

// Snapshot is the full observable session state, served to the dashboard.
type Snapshot struct {
	ID             string         `json:"id"`
	State          string         `json:"state"`
	History        []HistoryEntry `json:"history"`
	Sequence       []string       `json:"sequence"`
	Stats          Stats          `json:"stats"`
	CustomGestures []string       `json:"custom_gestures"`
}

// Session arbitrates between the static, motion and tracking classifiers for
// each submitted frame and owns all per-session state. The classifiers are
// pure; the session serializes its own mutations with a mutex so the frame
// pipeline and the HTTP layer can share it.
type Session struct {
	id string

	mu       sync.Mutex
	state    State
	frames   *frame.Buffer
	history  []HistoryEntry
	sequence []string
	customs  []string
	stats    Stats

	now func() time.Time
}

// New creates an idle session.
func New() *Session {
	return &Session{
		id:     uuid.NewString(),
		state:  StateIdle,
		frames: frame.NewBuffer(frame.DefaultBufferSize),
		now:    time.Now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Start begins recording. Starting an active session is a no-op.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateActive
}

// Stop halts recording. Already-buffered state is kept for display.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
}

// State returns the current operating state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset clears the frame buffer, history, sequence and stats. Custom
// gestures survive a reset; they live for the session object's lifetime.
// Reset is allowed in either state and does not change the state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frames.Reset()
	s.history = nil
	s.sequence = nil
	s.stats = Stats{}
}

// SubmitFrame runs one classification pass over a detected frame. It returns
// nil without mutating any state when the session is idle, when no hands are
// present, or when no classifier matches.
//
// The static classifier always runs on the first hand. The settings' method
// selects an additional classifier whose result replaces the static one only
// on strictly greater confidence.
func (s *Session) SubmitFrame(hands []landmark.Hand, raw *frame.PixelBuffer, settings classify.Settings) *Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateActive {
		return nil
	}
	if len(hands) == 0 {
		return nil
	}

	s.frames.Push(raw)

	winner := classify.Static(&hands[0])

	switch settings.Method {
	case classify.MethodFrameDiff:
		if motion := classify.Motion(s.frames.Frames(), settings.ClampedMotionThreshold()); motion != nil {
			if winner == nil || motion.Confidence > winner.Confidence {
				winner = motion
			}
		}
	case classify.MethodObjectTracking:
		if tracked := classify.Tracking(&hands[0]); tracked != nil {
			if winner == nil || tracked.Confidence > winner.Confidence {
				winner = tracked
			}
		}
	}

	if winner == nil || winner.Label == labelUnknown {
		return nil
	}

	s.record(winner, settings)

	return &Outcome{
		Label:          winner.Label,
		Confidence:     winner.Confidence,
		History:        s.historySnapshot(),
		Sequence:       s.sequenceSnapshot(),
		Stats:          s.stats,
		CustomGestures: s.customsSnapshot(),
	}
}

// record applies an accepted classification to history, sequence, stats and
// the custom gesture set. Caller holds the mutex.
func (s *Session) record(r *classify.Result, settings classify.Settings) {
	entry := HistoryEntry{
		Label:      r.Label,
		Confidence: r.Confidence,
		Timestamp:  s.now(),
	}
	if len(s.history) >= HistorySize {
		copy(s.history, s.history[1:])
		s.history = s.history[:HistorySize-1]
	}
	s.history = append(s.history, entry)

	if len(s.sequence) >= SequenceSize {
		copy(s.sequence, s.sequence[1:])
		s.sequence = s.sequence[:SequenceSize-1]
	}
	s.sequence = append(s.sequence, r.Label)

	s.stats.GesturesDetected++
	s.stats.Accuracy = (s.stats.Accuracy + r.Confidence) / 2
	s.stats.SessionTime++

	if settings.LearningMode && r.Confidence > LearnConfidence && !s.hasCustom(r.Label) {
		s.customs = append(s.customs, r.Label)
	}
}

// hasCustom reports whether a label was already learned. Caller holds the
// mutex.
func (s *Session) hasCustom(label string) bool {
	for _, c := range s.customs {
		if c == label {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the observable session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:             s.id,
		State:          s.state.String(),
		History:        s.historySnapshot(),
		Sequence:       s.sequenceSnapshot(),
		Stats:          s.stats,
		CustomGestures: s.customsSnapshot(),
	}
}

// BufferLen returns the number of buffered frames.
func (s *Session) BufferLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames.Len()
}

func (s *Session) historySnapshot() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) sequenceSnapshot() []string {
	out := make([]string, len(s.sequence))
	copy(out, s.sequence)
	return out
}

func (s *Session) customsSnapshot() []string {
	out := make([]string, len(s.customs))
	copy(out, s.customs)
	return out
}
