// preview opens a window showing every generated placeholder asset.
//
//	B        toggle the checkerboard behind transparent sprites
//	R / F5   reload from disk
//	click    show one asset at full size; Esc goes back
//	wheel    zoom the full-size view, arrows or right-drag to pan, 0 to reset
//	Q        quit
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/1siamBot/placeholder-assets/engine/assets"
	"github.com/1siamBot/placeholder-assets/engine/input"
	"github.com/1siamBot/placeholder-assets/engine/preview"
	"github.com/1siamBot/placeholder-assets/engine/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 720
	ThumbSize    = 128
)

var (
	colBG      = color.RGBA{R: 24, G: 26, B: 34, A: 255}
	colCell    = color.RGBA{R: 40, G: 44, B: 56, A: 255}
	colHover   = color.RGBA{R: 0, G: 160, B: 220, A: 255}
	colMissing = color.RGBA{R: 160, G: 40, B: 30, A: 255}
)

// Game implements ebiten.Game
type Game struct {
	root    string
	catalog assets.Catalog
	layout  preview.Layout
	input   *input.InputState
	camera  *preview.Camera

	entries  []preview.Entry
	sprites  *render.SpriteSet
	cells    []image.Rectangle
	backdrop *ebiten.Image
	status   string

	showBackdrop bool
	hover        int
	zoomed       int // -1 when the grid is showing
}

func NewGame(root string, cat assets.Catalog) *Game {
	g := &Game{
		root:         root,
		catalog:      cat,
		layout:       preview.Layout{Cell: ThumbSize, Gap: 16, Margin: 24, Label: 18},
		input:        input.NewInputState(),
		camera:       preview.NewCamera(ScreenWidth, ScreenHeight),
		backdrop:     ebiten.NewImageFromImage(preview.Checkerboard(assets.TerrainSize, assets.TerrainSize, 8)),
		showBackdrop: true,
		hover:        -1,
		zoomed:       -1,
	}
	g.reload()
	return g
}

func (g *Game) reload() {
	if g.sprites != nil {
		g.sprites.Dispose()
	}
	g.entries = preview.Load(g.root, g.catalog, ThumbSize)
	for _, e := range g.entries {
		if e.Err != nil {
			log.Printf("Warning: %s: %v", e.Desc.Name, e.Err)
		}
	}
	g.sprites = render.NewSpriteSet(g.entries)
	g.zoomed = -1
	g.cells = g.layout.Cells(len(g.entries), ScreenWidth)

	g.status = "all assets match the catalog"
	if err := assets.Verify(g.root, g.catalog); err != nil {
		g.status = "catalog mismatch, run `go run ./cmd/genassets`"
		log.Printf("Verify: %v", err)
	}
}

func (g *Game) Update() error {
	g.input.Update()

	if g.input.Has(input.ActQuit) {
		return ebiten.Termination
	}
	if g.input.Has(input.ActReload) {
		g.reload()
	}
	if g.input.Has(input.ActToggleBackdrop) {
		g.showBackdrop = !g.showBackdrop
	}
	if g.input.Has(input.ActClose) {
		if g.zoomed < 0 {
			return ebiten.Termination
		}
		g.zoomed = -1
	}

	if g.zoomed >= 0 {
		g.updateZoomed()
		return nil
	}

	g.hover = preview.Hit(g.cells, image.Pt(g.input.MouseX, g.input.MouseY))
	if g.input.LeftJustPressed && g.hover >= 0 {
		if img := g.sprites.Image(g.entries[g.hover].Desc.Name); img != nil {
			g.zoomed = g.hover
			g.camera.Frame(img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
	return nil
}

func (g *Game) updateZoomed() {
	in, cam := g.input, g.camera
	if in.Has(input.ActResetView) {
		cam.Frame(cam.ImageW, cam.ImageH)
	}
	if in.WheelY != 0 {
		cam.ZoomAt(math.Pow(1.25, in.WheelY), in.MouseX, in.MouseY)
	}
	dt := 1.0 / float64(ebiten.TPS())
	cam.Pan(in.PanX*cam.Speed*dt, in.PanY*cam.Speed*dt)
	if in.RightDown {
		cam.Pan(-float64(in.DragDX), -float64(in.DragDY))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)
	if g.zoomed >= 0 {
		g.drawZoomed(screen, g.zoomed)
		return
	}

	for i, r := range g.cells {
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())
		vector.DrawFilledRect(screen, x, y, w, h, colCell, false)

		if img := g.sprites.Thumb(g.entries[i].Desc.Name); img != nil {
			if g.showBackdrop {
				g.drawBackdrop(screen, r)
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
			screen.DrawImage(img, op)
		} else {
			vector.StrokeRect(screen, x, y, w, h, 2, colMissing, false)
			ebitenutil.DebugPrintAt(screen, "missing", r.Min.X+8, r.Min.Y+8)
		}
		if i == g.hover {
			vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, colHover, false)
		}
		ebitenutil.DebugPrintAt(screen, g.entries[i].Desc.Name, r.Min.X, r.Max.Y+2)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s | %d assets, %d missing | B backdrop  R reload  Q quit",
		g.status, len(g.entries), len(g.sprites.Missing)), 8, ScreenHeight-20)
}

func (g *Game) drawBackdrop(screen *ebiten.Image, r image.Rectangle) {
	sub := g.backdrop.SubImage(image.Rect(0, 0, r.Dx(), r.Dy())).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(sub, op)
}

func (g *Game) drawZoomed(screen *ebiten.Image, i int) {
	d := g.entries[i].Desc
	img := g.sprites.Image(d.Name)
	if img == nil {
		return
	}
	scale, tx, ty := g.camera.Transform()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(tx, ty)
	if g.showBackdrop {
		b := img.Bounds()
		screen.DrawImage(g.backdrop.SubImage(image.Rect(0, 0, b.Dx(), b.Dy())).(*ebiten.Image), op)
	}
	screen.DrawImage(img, op)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %dx%d %s  zoom %.2fx  (Esc to go back)",
		d.Name, d.Width, d.Height, d.Mode, g.camera.Zoom), 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	cat, err := assets.DefaultCatalog()
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Placeholder assets")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(preview.FindRoot(assets.DefaultDir), cat)); err != nil {
		log.Fatal(err)
	}
}
