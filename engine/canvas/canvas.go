// Package canvas is the drawing surface used by the asset generators: a
// fixed-size pixel buffer plus the handful of primitives the placeholder
// sprites are built from.
//
// Primitives paint with replace semantics. Inside a shape the new colour
// overwrites whatever was there, so the order of calls is the stacking order
// of the sprite; anti-aliased edges blend toward the existing pixels.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"
)

var (
	ErrOutOfCanvas     = errors.New("canvas: geometry outside canvas")
	ErrInvalidGeometry = errors.New("canvas: invalid geometry")
)

// Mode is the colour mode a canvas is created and encoded with.
type Mode int

const (
	// ModeRGB is opaque; the canvas starts black and is written as an RGB PNG.
	ModeRGB Mode = iota
	// ModeRGBA starts fully transparent and keeps per-pixel alpha.
	ModeRGBA
)

func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Point is a position in canvas pixel space.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{x, y} }

// Canvas is one asset's pixel buffer.
type Canvas struct {
	img  *image.NRGBA
	mode Mode
}

// New allocates a blank w×h canvas.
func New(w, h int, mode Mode) *Canvas {
	bg := Transparent
	if mode == ModeRGB {
		bg = Black
	}
	return &Canvas{img: imaging.New(w, h, bg), mode: mode}
}

func (c *Canvas) Mode() Mode              { return c.mode }
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }
func (c *Canvas) Width() int              { return c.img.Bounds().Dx() }
func (c *Canvas) Height() int             { return c.img.Bounds().Dy() }

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) Color { return c.img.NRGBAAt(x, y) }

// Image returns the canvas pixels. The result aliases the canvas.
// RGB canvases are opaque throughout since every primitive paints through
// adapt.
func (c *Canvas) Image() image.Image { return c.img }

// EncodePNG writes the canvas as a PNG stream.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return imaging.Encode(w, c.Image(), imaging.PNG)
}

// SavePNG writes the canvas to path, replacing any existing file.
func (c *Canvas) SavePNG(path string) error {
	if err := imaging.Save(c.Image(), path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}

// adapt fits a colour to the canvas mode. RGB canvases drop alpha.
func (c *Canvas) adapt(col Color) Color {
	if c.mode == ModeRGB {
		col.A = 0xff
	}
	return col
}

func (c *Canvas) checkRect(r image.Rectangle) error {
	if r.Empty() {
		return fmt.Errorf("%w: empty rectangle %v", ErrInvalidGeometry, r)
	}
	if !r.In(c.img.Bounds()) {
		return fmt.Errorf("%w: rectangle %v, canvas %v", ErrOutOfCanvas, r, c.img.Bounds())
	}
	return nil
}

func (c *Canvas) checkPoints(pts []Point) error {
	w, h := float64(c.Width()), float64(c.Height())
	for _, p := range pts {
		if p.X < 0 || p.Y < 0 || p.X > w || p.Y > h {
			return fmt.Errorf("%w: point (%g,%g), canvas %dx%d", ErrOutOfCanvas, p.X, p.Y, c.Width(), c.Height())
		}
	}
	return nil
}

// FillRect fills the half-open rectangle r.
func (c *Canvas) FillRect(r image.Rectangle, col Color) error {
	if err := c.checkRect(r); err != nil {
		return err
	}
	draw.Draw(c.img, r, &image.Uniform{C: c.adapt(col)}, image.Point{}, draw.Src)
	return nil
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(pts []Point, col Color) error {
	if len(pts) < 3 {
		return fmt.Errorf("%w: polygon needs 3 points, got %d", ErrInvalidGeometry, len(pts))
	}
	if err := c.checkPoints(pts); err != nil {
		return err
	}
	c.fill(col, func(z *vector.Rasterizer) { addPolygon(z, pts) })
	return nil
}

// FillEllipse fills the ellipse inscribed in bbox.
func (c *Canvas) FillEllipse(bbox image.Rectangle, col Color) error {
	if err := c.checkRect(bbox); err != nil {
		return err
	}
	cx := float64(bbox.Min.X+bbox.Max.X) / 2
	cy := float64(bbox.Min.Y+bbox.Max.Y) / 2
	c.fill(col, func(z *vector.Rasterizer) {
		addEllipse(z, cx, cy, float64(bbox.Dx())/2, float64(bbox.Dy())/2)
	})
	return nil
}

// StrokePolyline draws the open path through pts with the given width.
// Ends are butt, interior joints are round.
func (c *Canvas) StrokePolyline(pts []Point, width float64, col Color) error {
	if len(pts) < 2 {
		return fmt.Errorf("%w: polyline needs 2 points, got %d", ErrInvalidGeometry, len(pts))
	}
	if width <= 0 {
		return fmt.Errorf("%w: stroke width %g", ErrInvalidGeometry, width)
	}
	if err := c.checkPoints(pts); err != nil {
		return err
	}
	c.fill(col, func(z *vector.Rasterizer) {
		for i := 0; i+1 < len(pts); i++ {
			addSegment(z, pts[i], pts[i+1], width/2)
		}
		for _, p := range pts[1 : len(pts)-1] {
			addEllipse(z, p.X, p.Y, width/2, width/2)
		}
	})
	return nil
}

// fill rasterizes one coverage mask and paints it in a single pass, so
// overlapping sub-shapes of one primitive never double-blend.
func (c *Canvas) fill(col Color, build func(z *vector.Rasterizer)) {
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src
	build(z)
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})

	src := c.adapt(col)
	for i, m := range mask.Pix {
		if m != 0 {
			replace(c.img.Pix[i*4:i*4+4], src, uint32(m))
		}
	}
}

// replace moves pixel d toward s by coverage m (0..255), interpolating in
// premultiplied space. Full coverage writes s verbatim.
func replace(d []uint8, s Color, m uint32) {
	if m == 0xff {
		d[0], d[1], d[2], d[3] = s.R, s.G, s.B, s.A
		return
	}
	inv := 0xff - m
	sa, da := uint32(s.A), uint32(d[3])
	a := (sa*m + da*inv) / 0xff
	if a == 0 {
		d[0], d[1], d[2], d[3] = 0, 0, 0, 0
		return
	}
	for k, sc := range [3]uint8{s.R, s.G, s.B} {
		v := (uint32(sc)*sa*m + uint32(d[k])*da*inv) / (a * 0xff)
		d[k] = uint8(min(v, 0xff))
	}
	d[3] = uint8(a)
}
