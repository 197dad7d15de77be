package particle

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the 2D drawing target of the network.
type Surface interface {
	Size() (width, height int)
	Resize(width, height int)
	Clear()
	FillCircle(x, y, radius float64, clr color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
}

// Canvas is an offscreen ebiten image used as a Surface.
// The host scene draws Image() underneath the rest of the frame.
type Canvas struct {
	image *ebiten.Image
}

// NewCanvas allocates a canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Size implements Surface.
func (c *Canvas) Size() (int, int) {
	if c.image == nil {
		return 0, 0
	}
	b := c.image.Bounds()
	return b.Dx(), b.Dy()
}

// Resize implements Surface. The content is discarded when the size changes.
func (c *Canvas) Resize(width, height int) {
	width, height = max(1, width), max(1, height)
	if c.image != nil {
		if w, h := c.Size(); w == width && h == height {
			return
		}
		c.image.Deallocate()
	}
	c.image = ebiten.NewImage(width, height)
}

// Clear implements Surface.
func (c *Canvas) Clear() {
	c.image.Clear()
}

// FillCircle implements Surface.
func (c *Canvas) FillCircle(x, y, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.image, float32(x), float32(y), float32(radius), clr, true)
}

// StrokeLine implements Surface.
func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(c.image, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}
