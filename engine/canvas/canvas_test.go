package canvas

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#7cbd6b", Color{R: 0x7c, G: 0xbd, B: 0x6b, A: 0xff}, false},
		{"7CBD6B", Color{R: 0x7c, G: 0xbd, B: 0x6b, A: 0xff}, false},
		{"#fff", Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"#00000050", Color{R: 0, G: 0, B: 0, A: 0x50}, false},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#654321", "#4dd0e1", "#000000aa"} {
		if got := Hex(MustHex(s)); got != s {
			t.Errorf("Hex(MustHex(%q)) = %q", s, got)
		}
	}
}

func TestClampAlpha(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{-5, 0}, {0, 0}, {170, 170}, {255, 255}, {290, 255},
	}
	for _, tt := range tests {
		if got := ClampAlpha(tt.in); got != tt.want {
			t.Errorf("ClampAlpha(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewBackground(t *testing.T) {
	if got := New(4, 4, ModeRGB).At(1, 1); got != Black {
		t.Errorf("RGB canvas starts %v, want opaque black", got)
	}
	if got := New(4, 4, ModeRGBA).At(1, 1); got != Transparent {
		t.Errorf("RGBA canvas starts %v, want transparent", got)
	}
}

func TestFillRectExact(t *testing.T) {
	c := New(16, 16, ModeRGBA)
	red := Color{R: 200, G: 10, B: 10, A: 255}
	if err := c.FillRect(image.Rect(2, 3, 6, 9), red); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := Transparent
			if image.Pt(x, y).In(image.Rect(2, 3, 6, 9)) {
				want = red
			}
			if got := c.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestGeometryChecks(t *testing.T) {
	c := New(32, 32, ModeRGBA)
	tests := []struct {
		name string
		draw func() error
		want error
	}{
		{"rect past edge", func() error { return c.FillRect(image.Rect(30, 0, 33, 4), Black) }, ErrOutOfCanvas},
		{"rect negative", func() error { return c.FillRect(image.Rect(-1, 0, 4, 4), Black) }, ErrOutOfCanvas},
		{"rect empty", func() error { return c.FillRect(image.Rect(4, 4, 4, 8), Black) }, ErrInvalidGeometry},
		{"ellipse past edge", func() error { return c.FillEllipse(image.Rect(0, 0, 40, 10), Black) }, ErrOutOfCanvas},
		{"polygon two points", func() error { return c.FillPolygon([]Point{{0, 0}, {4, 4}}, Black) }, ErrInvalidGeometry},
		{"polygon outside", func() error { return c.FillPolygon([]Point{{0, 0}, {40, 4}, {4, 8}}, Black) }, ErrOutOfCanvas},
		{"polyline one point", func() error { return c.StrokePolyline([]Point{{1, 1}}, 2, Black) }, ErrInvalidGeometry},
		{"polyline zero width", func() error { return c.StrokePolyline([]Point{{1, 1}, {5, 5}}, 0, Black) }, ErrInvalidGeometry},
		{"polyline outside", func() error { return c.StrokePolyline([]Point{{1, 1}, {5, 33}}, 2, Black) }, ErrOutOfCanvas},
		{"text outside", func() error { return c.DrawText("x", Pt(-1, 4), AnchorCenter, basicfont.Face7x13, Black) }, ErrOutOfCanvas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.draw(); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFillPolygonKeepsOutside(t *testing.T) {
	c := New(64, 64, ModeRGBA)
	bg := Color{R: 0, G: 0, B: 255, A: 255}
	if err := c.FillRect(image.Rect(0, 0, 64, 64), bg); err != nil {
		t.Fatal(err)
	}
	green := Color{R: 0, G: 255, B: 0, A: 255}
	if err := c.FillPolygon([]Point{{10, 10}, {50, 10}, {50, 50}, {10, 50}}, green); err != nil {
		t.Fatal(err)
	}
	if got := c.At(30, 30); got != green {
		t.Errorf("inside = %v, want %v", got, green)
	}
	for _, p := range []image.Point{{0, 0}, {5, 30}, {63, 63}, {30, 55}} {
		if got := c.At(p.X, p.Y); got != bg {
			t.Errorf("outside %v = %v, want untouched %v", p, got, bg)
		}
	}
}

func TestFillPolygonEitherWinding(t *testing.T) {
	cw := []Point{{4, 4}, {28, 4}, {28, 28}, {4, 28}}
	ccw := []Point{{4, 28}, {28, 28}, {28, 4}, {4, 4}}
	for name, pts := range map[string][]Point{"cw": cw, "ccw": ccw} {
		c := New(32, 32, ModeRGBA)
		if err := c.FillPolygon(pts, Black); err != nil {
			t.Fatal(err)
		}
		if got := c.At(16, 16); got != Black {
			t.Errorf("%s: centre = %v, want black", name, got)
		}
	}
}

func TestFillEllipse(t *testing.T) {
	c := New(128, 128, ModeRGBA)
	gold := MustHex("#ffd700")
	if err := c.FillEllipse(image.Rect(10, 10, 118, 118), gold); err != nil {
		t.Fatal(err)
	}
	if got := c.At(64, 64); got != gold {
		t.Errorf("centre = %v, want %v", got, gold)
	}
	if got := c.At(64, 12); got != gold {
		t.Errorf("near top = %v, want %v", got, gold)
	}
	for _, p := range []image.Point{{12, 12}, {0, 0}, {127, 127}, {115, 115}} {
		if got := c.At(p.X, p.Y); got.A != 0 {
			t.Errorf("corner %v = %v, want transparent", p, got)
		}
	}
}

func TestStrokePolylineOpacity(t *testing.T) {
	c := New(64, 64, ModeRGBA)
	ink := WithAlpha(Black, 110)
	pts := []Point{{8, 8}, {56, 32}, {8, 56}}
	if err := c.StrokePolyline(pts, 6, ink); err != nil {
		t.Fatal(err)
	}
	// A second, crossing stroke must not darken the overlap.
	if err := c.StrokePolyline([]Point{{8, 32}, {56, 32}}, 6, ink); err != nil {
		t.Fatal(err)
	}
	var solid int
	b := c.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := c.At(x, y)
			if p.R != 0 || p.G != 0 || p.B != 0 {
				t.Fatalf("pixel (%d,%d) = %v, want black ink", x, y, p)
			}
			if p.A > ink.A {
				t.Fatalf("pixel (%d,%d) alpha %d above stroke opacity %d", x, y, p.A, ink.A)
			}
			if p.A == ink.A {
				solid++
			}
		}
	}
	if solid < 100 {
		t.Errorf("only %d pixels at full stroke opacity", solid)
	}
	if got := c.At(56, 32); got != ink {
		t.Errorf("joint pixel = %v, want %v", got, ink)
	}
}

func TestRGBModeIgnoresAlpha(t *testing.T) {
	c := New(8, 8, ModeRGB)
	if err := c.FillRect(image.Rect(0, 0, 8, 8), Color{R: 10, G: 20, B: 30, A: 40}); err != nil {
		t.Fatal(err)
	}
	if got := c.At(3, 3); got != (Color{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("pixel = %v, want opaque", got)
	}
}

func TestRGBModeStaysOpaque(t *testing.T) {
	c := New(64, 64, ModeRGB)
	ink := Color{R: 200, G: 40, B: 40, A: 90}
	steps := []func() error{
		func() error { return c.FillRect(image.Rect(0, 0, 20, 20), ink) },
		func() error { return c.FillPolygon([]Point{{5, 5}, {60, 10}, {30, 60}}, ink) },
		func() error { return c.FillEllipse(image.Rect(10, 10, 50, 40), ink) },
		func() error { return c.StrokePolyline([]Point{{4, 60}, {32, 4}, {60, 60}}, 5, ink) },
		func() error { return c.DrawText("$", Pt(32, 32), AnchorCenter, basicfont.Face7x13, ink) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	before := make([]Color, 0, 64*64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			p := c.At(x, y)
			if p.A != 0xff {
				t.Fatalf("pixel (%d,%d) = %v, want opaque", x, y, p)
			}
			before = append(before, p)
		}
	}

	img := c.Image()
	var i int
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if got := c.At(x, y); got != before[i] {
				t.Fatalf("Image changed pixel (%d,%d) from %v to %v", x, y, before[i], got)
			}
			if r, g, b, a := img.At(x, y).RGBA(); a != 0xffff || r>>8 != uint32(before[i].R) || g>>8 != uint32(before[i].G) || b>>8 != uint32(before[i].B) {
				t.Fatalf("Image pixel (%d,%d) differs from At", x, y)
			}
			i++
		}
	}
}

func TestEncodePNGColorModel(t *testing.T) {
	tests := []struct {
		mode Mode
		want color.Model
	}{
		{ModeRGB, color.RGBAModel},   // 8-bit truecolour
		{ModeRGBA, color.NRGBAModel}, // 8-bit truecolour with alpha
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			c := New(16, 16, tt.mode)
			if err := c.FillRect(image.Rect(0, 0, 8, 8), MustHex("#808080")); err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := c.EncodePNG(&buf); err != nil {
				t.Fatal(err)
			}
			cfg, err := png.DecodeConfig(&buf)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Width != 16 || cfg.Height != 16 {
				t.Errorf("size %dx%d", cfg.Width, cfg.Height)
			}
			if cfg.ColorModel != tt.want {
				t.Errorf("colour model %v, want %v", cfg.ColorModel, tt.want)
			}
		})
	}
}

func TestDrawText(t *testing.T) {
	c := New(64, 64, ModeRGBA)
	if err := c.DrawText("$", Pt(32, 32), AnchorCenter, nil, Black); err == nil {
		t.Error("nil face accepted")
	}
	if err := c.DrawText("$", Pt(32, 32), Anchor(9), basicfont.Face7x13, Black); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("unknown anchor err = %v", err)
	}
	if err := c.DrawText("$", Pt(32, 32), AnchorCenter, basicfont.Face7x13, Black); err != nil {
		t.Fatal(err)
	}
	var inked int
	var minX, maxX = 64, 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if c.At(x, y).A != 0 {
				inked++
				minX, maxX = min(minX, x), max(maxX, x)
			}
		}
	}
	if inked == 0 {
		t.Fatal("no glyph pixels drawn")
	}
	if mid := (minX + maxX) / 2; mid < 29 || mid > 35 {
		t.Errorf("glyph centred at x=%d, want about 32", mid)
	}
}
