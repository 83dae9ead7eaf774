package assets

import (
	"fmt"
	"image"
	"math"

	"github.com/1siamBot/placeholder-assets/engine/canvas"
	"golang.org/x/image/font"
)

// ==================== TERRAIN ====================

// DrawTerrain paints the grass block: grass over dirt, then dark speckles
// scattered over the grass.
func DrawTerrain(rng Rand) (*canvas.Canvas, error) {
	cv := canvas.New(TerrainSize, TerrainSize, canvas.ModeRGB)
	if err := cv.FillRect(image.Rect(0, 0, TerrainSize, TerrainTopRows), TerrainTop); err != nil {
		return nil, err
	}
	if err := cv.FillRect(image.Rect(0, TerrainTopRows, TerrainSize, TerrainSize), TerrainSide); err != nil {
		return nil, err
	}
	for _, r := range Speckles(rng, SpeckleCount) {
		if err := cv.FillRect(r, SpeckleColor); err != nil {
			return nil, err
		}
	}
	return cv, nil
}

// Speckles places n SpeckleW×SpeckleH rectangles uniformly over the grass rows.
func Speckles(rng Rand, n int) []image.Rectangle {
	out := make([]image.Rectangle, n)
	for i := range out {
		x := rng.Intn(TerrainSize - SpeckleW + 1)
		y := rng.Intn(TerrainTopRows - SpeckleH + 1)
		out[i] = image.Rect(x, y, x+SpeckleW, y+SpeckleH)
	}
	return out
}

// ==================== CRACKS ====================

// CrackStyle is how hard a crack overlay level hits.
type CrackStyle struct {
	Level   int
	Strokes int
	Width   float64
	Opacity uint8
}

// CrackStyleFor derives the stroke count, width and opacity for level.
// All three grow with the level.
func CrackStyleFor(level int) (CrackStyle, error) {
	if level < 1 || level > MaxCrackLevel {
		return CrackStyle{}, fmt.Errorf("%w: %d (want 1..%d)", ErrCrackLevel, level, MaxCrackLevel)
	}
	return CrackStyle{
		Level:   level,
		Strokes: level + 3,
		Width:   float64(level + 3),
		Opacity: canvas.ClampAlpha(50 + 30*level),
	}, nil
}

// CrackStrokes picks the jagged lines for one overlay, CrackPoints each.
// Points are inset by half the stroke width so no stroke leaves the canvas.
func CrackStrokes(rng Rand, style CrackStyle) [][]canvas.Point {
	inset := int(math.Ceil(style.Width / 2))
	span := CrackSize - 2*inset
	strokes := make([][]canvas.Point, style.Strokes)
	for i := range strokes {
		pts := make([]canvas.Point, CrackPoints)
		for j := range pts {
			pts[j] = canvas.Pt(float64(inset+rng.Intn(span)), float64(inset+rng.Intn(span)))
		}
		strokes[i] = pts
	}
	return strokes
}

// DrawCrack paints the translucent crack overlay for level.
func DrawCrack(level int, rng Rand) (*canvas.Canvas, error) {
	style, err := CrackStyleFor(level)
	if err != nil {
		return nil, err
	}
	cv := canvas.New(CrackSize, CrackSize, canvas.ModeRGBA)
	ink := canvas.WithAlpha(CrackColor, style.Opacity)
	for _, pts := range CrackStrokes(rng, style) {
		if err := cv.StrokePolyline(pts, style.Width, ink); err != nil {
			return nil, err
		}
	}
	return cv, nil
}

// ==================== SPRITES ====================

// DrawHand paints the bare hand: forearm block with a cuff over it.
func DrawHand() (*canvas.Canvas, error) {
	cv := canvas.New(SpriteSize, SpriteSize, canvas.ModeRGBA)
	if err := cv.FillRect(ForearmRect, SkinTone); err != nil {
		return nil, err
	}
	if err := cv.FillRect(CuffRect, CuffTone); err != nil {
		return nil, err
	}
	return cv, nil
}

// DrawPickaxe paints one tool tier. The grip goes last so it covers the
// bottom of the handle.
func DrawPickaxe(head, handle canvas.Color) (*canvas.Canvas, error) {
	cv := canvas.New(SpriteSize, SpriteSize, canvas.ModeRGBA)
	if err := cv.FillRect(HandleRect, handle); err != nil {
		return nil, err
	}
	if err := cv.FillPolygon(PickaxeHead, head); err != nil {
		return nil, err
	}
	if err := cv.FillRect(GripRect, SkinTone); err != nil {
		return nil, err
	}
	return cv, nil
}

// DrawCoin paints the coin: rim, lighter face, and the currency glyph
// centred on the canvas.
func DrawCoin(face font.Face) (*canvas.Canvas, error) {
	cv := canvas.New(CoinSize, CoinSize, canvas.ModeRGBA)
	if err := cv.FillEllipse(CoinRimRect, CoinRimColor); err != nil {
		return nil, err
	}
	if err := cv.FillEllipse(CoinFaceRect, CoinFaceColor); err != nil {
		return nil, err
	}
	if err := cv.DrawText(CoinGlyph, CoinCenter, canvas.AnchorCenter, face, CoinGlyphTint); err != nil {
		return nil, err
	}
	return cv, nil
}
