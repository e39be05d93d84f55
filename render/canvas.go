package render

import (
	"image"
	"image/color"
	"math"
)

// Canvas is a rectangular RGBA pixel buffer in image coordinates (origin at
// the top-left). It implements image.Image.
type Canvas struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewCanvas creates a new canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Clone returns an independent copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	return &Canvas{
		width:  c.width,
		height: c.height,
		data:   append([]uint8(nil), c.data...),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// SetPixel sets the color of a single pixel. Out of range writes are
// ignored.
func (c *Canvas) SetPixel(x, y int, col color.RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
	c.data[i+3] = col.A
}

// GetPixel returns the color of a single pixel, or the zero color when out
// of range.
func (c *Canvas) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return color.RGBA{}
	}
	i := (y*c.width + x) * 4
	return color.RGBA{R: c.data[i+0], G: c.data[i+1], B: c.data[i+2], A: c.data[i+3]}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col color.RGBA) {
	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = col.R
		c.data[i+1] = col.G
		c.data[i+2] = col.B
		c.data[i+3] = col.A
	}
}

// ToImage copies the canvas into a new image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// DepthBuffer holds one depth value per canvas pixel. Larger values are
// closer to the viewer.
type DepthBuffer struct {
	width  int
	height int
	z      []float64
}

// NewDepthBuffer creates a depth buffer where every pixel is infinitely far.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{
		width:  width,
		height: height,
		z:      make([]float64, width*height),
	}
	d.Clear()
	return d
}

// Clear resets every pixel to infinitely far.
func (d *DepthBuffer) Clear() {
	for i := range d.z {
		d.z[i] = math.Inf(-1)
	}
}

// At returns the depth stored for pixel (x, y), or -Inf when out of range.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return math.Inf(-1)
	}
	return d.z[y*d.width+x]
}

// Test stores z for pixel (x, y) and reports true if z is closer than the
// stored value. Out of range pixels always fail.
func (d *DepthBuffer) Test(x, y int, z float64) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	i := y*d.width + x
	if z <= d.z[i] {
		return false
	}
	d.z[i] = z
	return true
}
