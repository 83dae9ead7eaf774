package assets

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/1siamBot/placeholder-assets/engine/canvas"
	"github.com/disintegration/imaging"
)

// EnsureTree creates root and its sounds directory if they are missing.
func EnsureTree(root string) error {
	for _, dir := range []string{root, filepath.Join(root, SoundsDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("assets: create %s: %w", dir, err)
		}
	}
	return nil
}

// Run generates every catalog entry in order into g.Dir. The first failure
// aborts the run; files already written stay on disk.
func Run(g *Generator, cat Catalog) error {
	if err := EnsureTree(g.Dir); err != nil {
		return err
	}
	out := g.out()
	fmt.Fprintln(out, "Generating placeholder assets...")
	fmt.Fprintln(out)

	for _, d := range cat {
		if err := g.Generate(d); err != nil {
			return fmt.Errorf("assets: %s: %w", d.Name, err)
		}
	}

	abs, err := filepath.Abs(g.Dir)
	if err != nil {
		return fmt.Errorf("assets: resolve %s: %w", g.Dir, err)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "✓ All placeholder images created successfully!")
	fmt.Fprintf(out, "Images saved to: %s%c\n", abs, filepath.Separator)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Open index.html to play the game, or run `go run ./cmd/preview` to look them over.")
	return nil
}

// Verify checks that root holds a decodable PNG of the declared size and
// colour mode for every catalog entry, plus the sounds directory. All
// problems are reported together.
func Verify(root string, cat Catalog) error {
	var errs []error
	if fi, err := os.Stat(filepath.Join(root, SoundsDir)); err != nil || !fi.IsDir() {
		errs = append(errs, fmt.Errorf("assets: %s directory missing under %s", SoundsDir, root))
	}
	for _, d := range cat {
		if err := verifyFile(filepath.Join(root, d.Name), d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func verifyFile(path string, d Descriptor) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("assets: %s: %w", d.Name, err)
	}
	if sz := img.Bounds().Size(); sz.X != d.Width || sz.Y != d.Height {
		return fmt.Errorf("assets: %s: size %dx%d, want %dx%d", d.Name, sz.X, sz.Y, d.Width, d.Height)
	}
	want, err := d.CanvasMode()
	if err != nil {
		return err
	}
	got, ok := DecodedMode(img)
	if !ok {
		return fmt.Errorf("assets: %s: unexpected pixel format %T", d.Name, img)
	}
	if got != want {
		return fmt.Errorf("assets: %s: mode %s, want %s", d.Name, got, want)
	}
	return nil
}

// DecodedMode maps a decoded 8-bit PNG back to the canvas mode it was
// written from: RGB files decode to *image.RGBA, RGBA files to *image.NRGBA.
func DecodedMode(img image.Image) (canvas.Mode, bool) {
	switch img.(type) {
	case *image.RGBA:
		return canvas.ModeRGB, true
	case *image.NRGBA:
		return canvas.ModeRGBA, true
	}
	return 0, false
}
