package preview

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCameraFrame(t *testing.T) {
	tests := []struct {
		w, h     int
		wantZoom float64
	}{
		{128, 128, 1},
		{512, 512, 1},
		{2048, 512, 0.5},
		{4096, 100, 0.25},
	}
	for _, tt := range tests {
		c := NewCamera(1024, 720)
		c.Frame(tt.w, tt.h)
		if c.Zoom != tt.wantZoom {
			t.Errorf("Frame(%d,%d) zoom = %v, want %v", tt.w, tt.h, c.Zoom, tt.wantZoom)
		}
		sx, sy := c.ImageToScreen(float64(tt.w)/2, float64(tt.h)/2)
		if !near(sx, 512) || !near(sy, 360) {
			t.Errorf("Frame(%d,%d) centre at (%v,%v)", tt.w, tt.h, sx, sy)
		}
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(1024, 720)
	c.Frame(512, 512)
	c.SetZoom(3)
	c.Pan(40, -25)
	for _, p := range [][2]int{{0, 0}, {512, 360}, {1000, 700}} {
		ix, iy := c.ScreenToImage(p[0], p[1])
		sx, sy := c.ImageToScreen(ix, iy)
		if !near(sx, float64(p[0])) || !near(sy, float64(p[1])) {
			t.Errorf("%v -> (%v,%v) -> (%v,%v)", p, ix, iy, sx, sy)
		}
	}
}

func TestCameraZoomAtKeepsPoint(t *testing.T) {
	c := NewCamera(1024, 720)
	c.Frame(512, 512)
	bx, by := c.ScreenToImage(600, 400)
	c.ZoomAt(2, 600, 400)
	if c.Zoom != 2 {
		t.Fatalf("zoom = %v", c.Zoom)
	}
	ax, ay := c.ScreenToImage(600, 400)
	if !near(bx, ax) || !near(by, ay) {
		t.Errorf("point moved from (%v,%v) to (%v,%v)", bx, by, ax, ay)
	}
}

func TestCameraClamp(t *testing.T) {
	c := NewCamera(1024, 720)
	c.Frame(256, 256)

	c.SetZoom(100)
	if c.Zoom != c.MaxZoom {
		t.Errorf("zoom %v above max %v", c.Zoom, c.MaxZoom)
	}
	c.SetZoom(0)
	if c.Zoom != c.MinZoom {
		t.Errorf("zoom %v below min %v", c.Zoom, c.MinZoom)
	}

	c.SetZoom(1)
	c.Pan(-10000, 10000)
	if c.X != 0 || c.Y != 256 {
		t.Errorf("centre (%v,%v) left the image", c.X, c.Y)
	}

	scale, tx, ty := c.Transform()
	if scale != 1 || !near(tx, 512) || !near(ty, 360-256) {
		t.Errorf("Transform = %v, %v, %v", scale, tx, ty)
	}
}
