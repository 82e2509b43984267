package frame

// DefaultBufferSize is the number of recent frames kept for motion analysis.
const DefaultBufferSize = 10

// Buffer holds the most recent pixel frames in arrival order, evicting the
// oldest frame once capacity is reached.
type Buffer struct {
	frames []*PixelBuffer
	max    int
}

// NewBuffer creates a frame buffer with the given capacity. Capacities less
// than 1 fall back to DefaultBufferSize.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultBufferSize
	}
	return &Buffer{
		frames: make([]*PixelBuffer, 0, capacity),
		max:    capacity,
	}
}

// Push appends a frame, evicting the oldest if the buffer is full.
// Nil frames are ignored.
func (b *Buffer) Push(pb *PixelBuffer) {
	if pb == nil {
		return
	}
	if len(b.frames) >= b.max {
		copy(b.frames, b.frames[1:])
		b.frames = b.frames[:b.max-1]
	}
	b.frames = append(b.frames, pb)
}

// Frames returns the buffered frames in arrival order, oldest first.
// The returned slice is a snapshot; the buffer may evict afterwards.
func (b *Buffer) Frames() []*PixelBuffer {
	out := make([]*PixelBuffer, len(b.frames))
	copy(out, b.frames)
	return out
}

// Len returns the number of buffered frames.
func (b *Buffer) Len() int {
	return len(b.frames)
}

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int {
	return b.max
}

// Reset discards all buffered frames.
func (b *Buffer) Reset() {
	b.frames = b.frames[:0]
}
