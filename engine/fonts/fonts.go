// Package fonts resolves the face used for text on generated sprites.
//
// Resolution never fails. Preferred faces are TrueType files that may or may
// not exist on the host; when none loads, the Go Bold face compiled into the
// binary is used, and if even that cannot be parsed the fixed 7x13 bitmap
// face takes over.
package fonts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Tier reports which level of the resolver produced a face.
type Tier int

const (
	TierPreferred Tier = iota
	TierFallback
	TierBitmap
)

func (t Tier) String() string {
	switch t {
	case TierPreferred:
		return "preferred"
	case TierFallback:
		return "fallback"
	case TierBitmap:
		return "bitmap"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	Face   font.Face
	Tier   Tier
	Source string // file path, or the name of the built-in face
}

// Resolver picks the first loadable candidate, falling back to built-ins.
// The first Resolve result is kept and shared by later calls until Close.
type Resolver struct {
	Candidates []string
	Size       float64 // points
	DPI        float64
	Logger     *slog.Logger

	mu       sync.Mutex
	resolved *Resolved
}

// DefaultCandidates lists bold sans faces commonly present on macOS, Linux
// and Windows hosts, plus anything dropped into assets/fonts.
func DefaultCandidates() []string {
	c := []string{
		"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
		"/Library/Fonts/Arial Bold.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
		`C:\Windows\Fonts\arialbd.ttf`,
	}
	if local, err := filepath.Glob(filepath.Join("assets", "fonts", "*.ttf")); err == nil {
		c = append(c, local...)
	}
	return c
}

// NewResolver returns a resolver over DefaultCandidates at the given size.
func NewResolver(size float64) *Resolver {
	return &Resolver{Candidates: DefaultCandidates(), Size: size, DPI: 72}
}

// Resolve returns a usable face. Load failures are logged at debug level
// and never returned. The face belongs to the resolver; release it with
// Close, not by closing the face.
func (r *Resolver) Resolve() Resolved {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved == nil {
		res := r.resolve()
		r.resolved = &res
	}
	return *r.resolved
}

// Close releases the cached face. The next Resolve searches again.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.resolved == nil {
		return nil
	}
	err := r.resolved.Face.Close()
	r.resolved = nil
	return err
}

func (r *Resolver) resolve() Resolved {
	log := r.logger()
	for _, path := range r.Candidates {
		face, err := r.load(path)
		if err != nil {
			log.Debug("font candidate unavailable", "path", path, "err", err)
			continue
		}
		log.Debug("font resolved", "tier", TierPreferred, "source", path)
		return Resolved{Face: face, Tier: TierPreferred, Source: path}
	}

	face, err := r.face(gobold.TTF)
	if err == nil {
		log.Debug("font resolved", "tier", TierFallback, "source", "gobold")
		return Resolved{Face: face, Tier: TierFallback, Source: "gobold"}
	}
	log.Warn("embedded font unusable, using bitmap face", "err", err)
	return Resolved{Face: basicfont.Face7x13, Tier: TierBitmap, Source: "basicfont.Face7x13"}
}

func (r *Resolver) load(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return r.face(data)
}

func (r *Resolver) face(data []byte) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	dpi := r.DPI
	if dpi <= 0 {
		dpi = 72
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    r.Size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}
