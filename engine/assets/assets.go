// Package assets draws the placeholder sprites for the mining game and
// writes them as PNG files.
//
// Each asset family has a pure Draw* routine that returns a finished canvas,
// and the Generator wraps those with file output and a console line per file.
// The list of files to produce lives in an embedded YAML catalog; Run walks
// it in order and stops at the first failure.
package assets

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/1siamBot/placeholder-assets/engine/canvas"
	"github.com/1siamBot/placeholder-assets/engine/fonts"
)

// Canvas sizes
const (
	TerrainSize = 512
	CrackSize   = 512
	SpriteSize  = 256
	CoinSize    = 128
)

// Terrain block
const (
	TerrainTopRows = 358 // rows [0,358) are grass, the rest dirt
	SpeckleCount   = 100
	SpeckleW       = 2
	SpeckleH       = 3
)

// Crack overlays
const (
	MaxCrackLevel = 4
	CrackPoints   = 3
)

// Coin icon
const (
	CoinGlyph    = "$"
	CoinFontSize = 60
)

// DefaultDir is where the generator writes when nothing else is configured.
const DefaultDir = "assets"

// SoundsDir is reserved under the output root for audio; nothing here writes to it.
const SoundsDir = "sounds"

var (
	TerrainTop   = canvas.MustHex("#7cbd6b")
	TerrainSide  = canvas.MustHex("#8b4513")
	SpeckleColor = canvas.MustHex("#4a5d23")

	CrackColor = canvas.Black

	SkinTone      = canvas.MustHex("#d4a574")
	CuffTone      = canvas.MustHex("#c19463")
	DefaultHandle = canvas.MustHex("#654321")

	CoinRimColor  = canvas.MustHex("#ffd700")
	CoinFaceColor = canvas.MustHex("#ffed4e")
	CoinGlyphTint = canvas.MustHex("#ffd700")
)

// Fixed sprite geometry, half-open rectangles.
var (
	ForearmRect = image.Rect(50, 100, 121, 231)
	CuffRect    = image.Rect(60, 115, 101, 141)

	HandleRect  = image.Rect(75, 128, 111, 231)
	GripRect    = image.Rect(38, 178, 101, 231)
	PickaxeHead = []canvas.Point{{X: 50, Y: 76}, {X: 150, Y: 76}, {X: 125, Y: 51}, {X: 75, Y: 51}}

	CoinRimRect  = image.Rect(10, 10, 118, 118)
	CoinFaceRect = image.Rect(20, 20, 108, 108)
	CoinCenter   = canvas.Pt(CoinSize/2, CoinSize/2)
)

var (
	ErrCrackLevel  = errors.New("assets: crack level out of range")
	ErrUnknownKind = errors.New("assets: unknown asset kind")
)

// Rand is the randomness the noisy assets draw from. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Generator writes assets into Dir.
type Generator struct {
	Dir    string
	Rand   Rand
	Fonts  *fonts.Resolver
	Out    io.Writer    // console lines; nil discards them
	Logger *slog.Logger // diagnostics; nil discards them
}

// NewGenerator returns a generator writing to dir with a clock-seeded
// random source, the default font candidates and console output on stdout.
func NewGenerator(dir string) *Generator {
	return &Generator{
		Dir:   dir,
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Fonts: fonts.NewResolver(CoinFontSize),
		Out:   os.Stdout,
	}
}

// Generate draws d and writes it to Dir/d.Name.
func (g *Generator) Generate(d Descriptor) error {
	cv, err := g.Draw(d)
	if err != nil {
		return err
	}
	return g.save(cv, d.Name)
}

// Draw renders d without touching the filesystem.
func (g *Generator) Draw(d Descriptor) (*canvas.Canvas, error) {
	switch d.Kind {
	case KindTerrain:
		return DrawTerrain(g.rng())
	case KindCrack:
		return DrawCrack(d.Level, g.rng())
	case KindHand:
		return DrawHand()
	case KindPickaxe:
		head, handle, err := d.PickaxeColors()
		if err != nil {
			return nil, err
		}
		return DrawPickaxe(head, handle)
	case KindCoin:
		res := g.fontResolver().Resolve()
		g.logger().Debug("coin font", "tier", res.Tier, "source", res.Source)
		return DrawCoin(res.Face)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
}

// Terrain writes the grass block.
func (g *Generator) Terrain() error { return g.Generate(TerrainAsset()) }

// Cracks writes every crack overlay level in ascending order.
func (g *Generator) Cracks() error {
	for level := 1; level <= MaxCrackLevel; level++ {
		if err := g.Generate(CrackAsset(level)); err != nil {
			return err
		}
	}
	return nil
}

// Hand writes the bare-hand sprite.
func (g *Generator) Hand() error { return g.Generate(HandAsset()) }

// Pickaxe writes one tool tier. A zero handle colour means DefaultHandle.
func (g *Generator) Pickaxe(name string, head, handle canvas.Color) error {
	if handle == (canvas.Color{}) {
		handle = DefaultHandle
	}
	return g.Generate(PickaxeAsset(name, head, handle))
}

// Coin writes the coin icon.
func (g *Generator) Coin() error { return g.Generate(CoinAsset()) }

func (g *Generator) save(cv *canvas.Canvas, name string) error {
	path := filepath.Join(g.Dir, name)
	if err := cv.SavePNG(path); err != nil {
		return err
	}
	g.logger().Debug("asset written", "path", path, "size", cv.Bounds().Size(), "mode", cv.Mode())
	fmt.Fprintf(g.out(), "✓ Created %s\n", name)
	return nil
}

func (g *Generator) out() io.Writer {
	if g.Out == nil {
		return io.Discard
	}
	return g.Out
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.Logger
}

func (g *Generator) rng() Rand {
	if g.Rand == nil {
		g.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g.Rand
}

func (g *Generator) fontResolver() *fonts.Resolver {
	if g.Fonts == nil {
		g.Fonts = fonts.NewResolver(CoinFontSize)
		g.Fonts.Logger = g.Logger
	}
	return g.Fonts
}
