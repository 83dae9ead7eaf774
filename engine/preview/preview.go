// Package preview holds the window-independent half of the asset preview
// app: loading generated files, scaling thumbnails and laying out the grid.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"runtime"

	"github.com/1siamBot/placeholder-assets/engine/assets"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Entry is one catalog asset as found on disk.
type Entry struct {
	Desc  assets.Descriptor
	Full  image.Image  // nil when the file could not be read
	Thumb *image.NRGBA // nil when the file could not be read
	Err   error
}

// FindRoot locates the generated asset directory called name: first under
// the working directory, then next to the executable, then at the top of
// the source tree. When none exists it returns name unchanged.
func FindRoot(name string) string {
	if isDir(name) {
		return name
	}
	if exe, err := os.Executable(); err == nil {
		if dir := filepath.Join(filepath.Dir(exe), name); isDir(dir) {
			return dir
		}
	}
	if _, file, _, ok := runtime.Caller(0); ok {
		if dir := filepath.Join(filepath.Dir(file), "..", "..", name); isDir(dir) {
			return dir
		}
	}
	return name
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// Load reads every catalog entry from root and scales it to a thumb×thumb
// thumbnail. Missing or broken files are kept as entries with Err set.
func Load(root string, cat assets.Catalog, thumb int) []Entry {
	out := make([]Entry, len(cat))
	for i, d := range cat {
		out[i].Desc = d
		img, err := imaging.Open(filepath.Join(root, d.Name))
		if err != nil {
			out[i].Err = err
			continue
		}
		out[i].Full = img
		out[i].Thumb = Thumbnail(img, thumb)
	}
	return out
}

// Thumbnail fits src into a size×size transparent square, keeping its
// aspect ratio and centring it.
func Thumbnail(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	sb := src.Bounds()
	if sb.Empty() {
		return dst
	}
	w, h := size, size
	if sb.Dx() > sb.Dy() {
		h = max(1, size*sb.Dy()/sb.Dx())
	} else if sb.Dy() > sb.Dx() {
		w = max(1, size*sb.Dx()/sb.Dy())
	}
	x0, y0 := (size-w)/2, (size-h)/2
	xdraw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), src, sb, xdraw.Over, nil)
	return dst
}

// Layout describes the thumbnail grid.
type Layout struct {
	Cell   int // thumbnail edge
	Gap    int // space between cells
	Margin int // space around the grid
	Label  int // room under each cell for the file name
}

// Columns is how many cells fit across a screen of width w (at least one).
func (l Layout) Columns(w int) int {
	n := (w - 2*l.Margin + l.Gap) / (l.Cell + l.Gap)
	return max(1, n)
}

// Cells places n thumbnails left to right, top to bottom on a screen of width w.
func (l Layout) Cells(n, w int) []image.Rectangle {
	cols := l.Columns(w)
	out := make([]image.Rectangle, n)
	for i := range out {
		col, row := i%cols, i/cols
		x := l.Margin + col*(l.Cell+l.Gap)
		y := l.Margin + row*(l.Cell+l.Gap+l.Label)
		out[i] = image.Rect(x, y, x+l.Cell, y+l.Cell)
	}
	return out
}

// Hit returns the index of the cell containing p, or -1.
func Hit(cells []image.Rectangle, p image.Point) int {
	for i, r := range cells {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// Checkerboard is the usual transparency backdrop.
func Checkerboard(w, h, tile int) *image.NRGBA {
	light := color.NRGBA{R: 0x5a, G: 0x5a, B: 0x64, A: 0xff}
	dark := color.NRGBA{R: 0x3c, G: 0x3c, B: 0x46, A: 0xff}
	img := imaging.New(w, h, dark)
	for y := 0; y < h; y += tile {
		for x := (y / tile % 2) * tile; x < w; x += 2 * tile {
			draw.Draw(img, image.Rect(x, y, x+tile, y+tile), &image.Uniform{C: light}, image.Point{}, draw.Src)
		}
	}
	return img
}
