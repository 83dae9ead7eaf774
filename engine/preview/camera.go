package preview

import "math"

// Camera is the viewport onto one full-size asset. X, Y is the image pixel
// shown at the centre of the screen.
type Camera struct {
	X, Y    float64
	Zoom    float64 // 1.0 = one image pixel per screen pixel
	MinZoom float64
	MaxZoom float64
	ScreenW int
	ScreenH int
	Speed   float64 // pan speed in screen pixels per second

	// Image bounds for clamping
	ImageW int
	ImageH int
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    1.0,
		MinZoom: 0.25,
		MaxZoom: 8.0,
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   500,
	}
}

// Frame centres the camera on a w×h image at the largest power-of-two
// zoom that still fits it on screen, capped at 1.
func (c *Camera) Frame(w, h int) {
	c.ImageW, c.ImageH = w, h
	c.X, c.Y = float64(w)/2, float64(h)/2
	z := 1.0
	for z > c.MinZoom && (float64(w)*z > float64(c.ScreenW) || float64(h)*z > float64(c.ScreenH)) {
		z /= 2
	}
	c.SetZoom(z)
}

// Pan moves the camera by a screen-pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.Zoom
	c.Y += dy / c.Zoom
	c.clamp()
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt multiplies the zoom by factor, keeping the image pixel under the
// screen point where it is.
func (c *Camera) ZoomAt(factor float64, screenX, screenY int) {
	wx, wy := c.ScreenToImage(screenX, screenY)
	c.SetZoom(c.Zoom * factor)
	wx2, wy2 := c.ScreenToImage(screenX, screenY)
	c.X += wx - wx2
	c.Y += wy - wy2
	c.clamp()
}

// ImageToScreen converts an image position to a screen position
func (c *Camera) ImageToScreen(ix, iy float64) (float64, float64) {
	sx := (ix-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (iy-c.Y)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToImage converts a screen pixel to an image position
func (c *Camera) ScreenToImage(sx, sy int) (float64, float64) {
	ix := (float64(sx)-float64(c.ScreenW)/2)/c.Zoom + c.X
	iy := (float64(sy)-float64(c.ScreenH)/2)/c.Zoom + c.Y
	return ix, iy
}

// Transform returns the scale and translation that draw the image at the
// camera's view: screen = image*scale + (tx, ty).
func (c *Camera) Transform() (scale, tx, ty float64) {
	tx, ty = c.ImageToScreen(0, 0)
	return c.Zoom, tx, ty
}

// clamp keeps the centre inside the image.
func (c *Camera) clamp() {
	c.X = math.Max(0, math.Min(float64(c.ImageW), c.X))
	c.Y = math.Max(0, math.Min(float64(c.ImageH), c.Y))
}
