// Package frame provides raw pixel frame snapshots and the bounded buffer of
// recent frames used for motion analysis.
package frame

import (
	"image"
	"image/color"
)

// PixelBuffer is a raw RGBA snapshot of one video frame. Pixels are stored
// row-major, four bytes per pixel, so the classification core never touches
// a camera or OpenCV type directly.
type PixelBuffer struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewPixelBuffer creates an all-black pixel buffer of the given dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
	}
}

// FromImage copies an image into a new PixelBuffer.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	pb := NewPixelBuffer(bounds.Dx(), bounds.Dy())

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			pb.Pix[i] = uint8(r >> 8)
			pb.Pix[i+1] = uint8(g >> 8)
			pb.Pix[i+2] = uint8(b >> 8)
			pb.Pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}

	return pb
}

// SetRGB sets the pixel at (x, y) to the given color with full opacity.
func (pb *PixelBuffer) SetRGB(x, y int, r, g, b uint8) {
	i := (y*pb.Width + x) * 4
	pb.Pix[i] = r
	pb.Pix[i+1] = g
	pb.Pix[i+2] = b
	pb.Pix[i+3] = 255
}

// LuminanceAt returns the luminance of the pixel at (x, y), computed as the
// mean of the R, G and B channels.
func (pb *PixelBuffer) LuminanceAt(x, y int) float64 {
	i := (y*pb.Width + x) * 4
	return (float64(pb.Pix[i]) + float64(pb.Pix[i+1]) + float64(pb.Pix[i+2])) / 3.0
}

// ToImage converts the buffer back to an image for JPEG encoding.
func (pb *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, pb.Width, pb.Height))
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			i := (y*pb.Width + x) * 4
			img.SetRGBA(x, y, color.RGBA{
				R: pb.Pix[i],
				G: pb.Pix[i+1],
				B: pb.Pix[i+2],
				A: pb.Pix[i+3],
			})
		}
	}
	return img
}
