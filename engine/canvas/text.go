package canvas

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Anchor says which part of a string's box is pinned to the draw position.
type Anchor int

const (
	// AnchorBaseline puts the pen origin (left end of the baseline) at the point.
	AnchorBaseline Anchor = iota
	// AnchorCenter centres the inked glyph box on the point.
	AnchorCenter
)

var errNoFace = errors.New("canvas: nil font face")

// DrawText renders s with face. Glyph edges blend over the existing pixels.
func (c *Canvas) DrawText(s string, at Point, anchor Anchor, face font.Face, col Color) error {
	if face == nil {
		return errNoFace
	}
	if err := c.checkPoints([]Point{at}); err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: c.adapt(col)},
		Face: face,
	}
	dot := fixed.Point26_6{X: fixed.Int26_6(at.X * 64), Y: fixed.Int26_6(at.Y * 64)}
	switch anchor {
	case AnchorBaseline:
	case AnchorCenter:
		b, _ := d.BoundString(s)
		dot.X -= (b.Min.X + b.Max.X) / 2
		dot.Y -= (b.Min.Y + b.Max.Y) / 2
	default:
		return fmt.Errorf("%w: unknown anchor %d", ErrInvalidGeometry, int(anchor))
	}
	d.Dot = dot
	d.DrawString(s)
	return nil
}
