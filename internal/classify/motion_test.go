package classify

import (
	"testing"

	"github.com/ayusman/hasta/internal/frame"
)

// uniformFrame returns a w x h frame with every pixel at the given gray
// level.
func uniformFrame(w, h int, level uint8) *frame.PixelBuffer {
	pb := frame.NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pb.SetRGB(x, y, level, level, level)
		}
	}
	return pb
}

// shiftRegion returns a copy of the frame with every pixel satisfying keep
// shifted by delta gray levels.
func shiftRegion(src *frame.PixelBuffer, delta uint8, keep func(x, y int) bool) *frame.PixelBuffer {
	pb := frame.NewPixelBuffer(src.Width, src.Height)
	copy(pb.Pix, src.Pix)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if !keep(x, y) {
				continue
			}
			i := (y*src.Width + x) * 4
			pb.Pix[i] = src.Pix[i] + delta
			pb.Pix[i+1] = src.Pix[i+1] + delta
			pb.Pix[i+2] = src.Pix[i+2] + delta
		}
	}
	return pb
}

func TestMotion_InsufficientFrames(t *testing.T) {
	base := uniformFrame(8, 8, 100)

	if got := Motion(nil, 50); got != nil {
		t.Errorf("Motion(nil frames) = %+v, want nil", got)
	}
	if got := Motion([]*frame.PixelBuffer{base, base}, 50); got != nil {
		t.Errorf("Motion(2 frames) = %+v, want nil", got)
	}
}

func TestMotion_NoChange(t *testing.T) {
	base := uniformFrame(8, 8, 100)
	frames := []*frame.PixelBuffer{base, base, base}

	if got := Motion(frames, 50); got != nil {
		t.Errorf("Motion() on identical frames = %+v, want nil", got)
	}
}

func TestMotion_BelowMagnitudeThreshold(t *testing.T) {
	// A handful of changed pixels keeps the magnitude at or below 1000:
	// 12 pixels x 80 = 960.
	base := uniformFrame(64, 64, 100)
	moved := shiftRegion(base, 80, func(x, y int) bool {
		return y == 0 && x < 12
	})
	frames := []*frame.PixelBuffer{base, base, moved}

	if got := Motion(frames, 50); got != nil {
		t.Errorf("Motion() below magnitude threshold = %+v, want nil", got)
	}
}

func TestMotion_SwipeRight(t *testing.T) {
	// Uniform +80 luminance shift across the right 50% of the frame.
	// Vertical band contributions cancel; horizontal ones land in the
	// right band only.
	base := uniformFrame(64, 64, 100)
	moved := shiftRegion(base, 80, func(x, y int) bool {
		return x >= 32
	})
	frames := []*frame.PixelBuffer{base, base, moved}

	got := Motion(frames, 50)
	if got == nil {
		t.Fatal("Motion() = nil, want Swipe Right")
	}
	if got.Label != LabelSwipeRight {
		t.Errorf("Motion() label = %q, want %q", got.Label, LabelSwipeRight)
	}
	if got.Confidence > 85 {
		t.Errorf("Motion() confidence = %f, want <= 85", got.Confidence)
	}
}

func TestMotion_SwipeLeft(t *testing.T) {
	base := uniformFrame(64, 64, 100)
	moved := shiftRegion(base, 80, func(x, y int) bool {
		return x < 32
	})
	frames := []*frame.PixelBuffer{base, base, moved}

	got := Motion(frames, 50)
	if got == nil || got.Label != LabelSwipeLeft {
		t.Errorf("Motion() = %+v, want %q", got, LabelSwipeLeft)
	}
}

func TestMotion_SwipeDown(t *testing.T) {
	base := uniformFrame(64, 64, 100)
	moved := shiftRegion(base, 80, func(x, y int) bool {
		return y >= 32
	})
	frames := []*frame.PixelBuffer{base, base, moved}

	got := Motion(frames, 50)
	if got == nil || got.Label != LabelSwipeDown {
		t.Errorf("Motion() = %+v, want %q", got, LabelSwipeDown)
	}
}

func TestMotion_SwipeUp(t *testing.T) {
	base := uniformFrame(64, 64, 100)
	moved := shiftRegion(base, 80, func(x, y int) bool {
		return y < 32
	})
	frames := []*frame.PixelBuffer{base, base, moved}

	got := Motion(frames, 50)
	if got == nil || got.Label != LabelSwipeUp {
		t.Errorf("Motion() = %+v, want %q", got, LabelSwipeUp)
	}
}

func TestMotion_MismatchedDimensions(t *testing.T) {
	frames := []*frame.PixelBuffer{
		uniformFrame(8, 8, 100),
		uniformFrame(8, 8, 100),
		uniformFrame(16, 16, 200),
	}

	if got := Motion(frames, 50); got != nil {
		t.Errorf("Motion() with mismatched dimensions = %+v, want nil", got)
	}
}

func TestMotion_ConfidenceCap(t *testing.T) {
	base := uniformFrame(64, 64, 50)
	moved := uniformFrame(64, 64, 200)
	frames := []*frame.PixelBuffer{base, base, moved}

	got := Motion(frames, 50)
	if got == nil {
		t.Fatal("Motion() = nil, want a swipe")
	}
	if got.Confidence != 85 {
		t.Errorf("Motion() confidence = %f, want capped at 85", got.Confidence)
	}
}
