package app

import (
	"testing"
	"time"

	"github.com/ayusman/hasta/internal/capture"
	"github.com/ayusman/hasta/internal/classify"
	"github.com/ayusman/hasta/internal/detector"
	"github.com/ayusman/hasta/internal/frame"
	"github.com/ayusman/hasta/internal/landmark"
	"github.com/ayusman/hasta/internal/session"
)

func TestApp_PipelineDeliversOutcomes(t *testing.T) {
	a := New(Config{})

	mockCam := capture.NewMockCamera([]*frame.PixelBuffer{frame.NewPixelBuffer(8, 8)}, true)
	a.SetCamera(mockCam)

	mockDet := detector.NewMockDetector()
	mockDet.SetHands([]landmark.Hand{landmark.ThumbsUpHand()})
	a.SetDetector(mockDet)

	outcomes := make(chan *session.Outcome, 16)
	a.OnOutcome(func(o *session.Outcome) {
		select {
		case outcomes <- o:
		default:
		}
	})

	a.Session().Start()

	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Stop()

	select {
	case o := <-outcomes:
		if o.Label != classify.LabelThumbsUp {
			t.Errorf("outcome label = %q, want %q", o.Label, classify.LabelThumbsUp)
		}
		if o.Stats.GesturesDetected < 1 {
			t.Errorf("stats gestures detected = %d, want >= 1", o.Stats.GesturesDetected)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no outcome delivered within 3s")
	}
}

func TestApp_IdleSessionProducesNoOutcomes(t *testing.T) {
	a := New(Config{})

	mockCam := capture.NewMockCamera([]*frame.PixelBuffer{frame.NewPixelBuffer(8, 8)}, true)
	a.SetCamera(mockCam)

	mockDet := detector.NewMockDetector()
	mockDet.SetHands([]landmark.Hand{landmark.ThumbsUpHand()})
	a.SetDetector(mockDet)

	outcomes := make(chan *session.Outcome, 16)
	a.OnOutcome(func(o *session.Outcome) {
		select {
		case outcomes <- o:
		default:
		}
	})

	// Session stays idle: no Start() on it.
	if err := a.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Stop()

	select {
	case o := <-outcomes:
		t.Errorf("idle session delivered outcome %+v", o)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestApp_FallsBackToMockDetector(t *testing.T) {
	// No MediaPipe script exists in the test environment, so construction
	// must degrade rather than fail.
	a := New(Config{})

	if !a.Degraded() {
		t.Skip("MediaPipe available; degraded fallback not exercised")
	}

	if a.Detector() == nil {
		t.Error("degraded app must still have a detector")
	}
}

func TestApp_UpdateSettingsWithoutStore(t *testing.T) {
	a := New(Config{})

	settings := classify.Settings{
		Method:          classify.MethodFrameDiff,
		MotionThreshold: 40,
		LearningMode:    true,
	}

	if err := a.UpdateSettings(settings); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	if got := a.Settings(); got != settings {
		t.Errorf("Settings() = %+v, want %+v", got, settings)
	}
}
