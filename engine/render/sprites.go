package render

import (
	"github.com/1siamBot/placeholder-assets/engine/preview"
	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSet holds the GPU copies of every loaded asset, keyed by file name.
type SpriteSet struct {
	Full   map[string]*ebiten.Image
	Thumbs map[string]*ebiten.Image

	// Missing lists catalog entries that could not be loaded, in catalog order
	Missing []string
}

// NewSpriteSet uploads the loaded entries. Entries with an error are
// recorded as missing instead.
func NewSpriteSet(entries []preview.Entry) *SpriteSet {
	s := &SpriteSet{
		Full:   make(map[string]*ebiten.Image, len(entries)),
		Thumbs: make(map[string]*ebiten.Image, len(entries)),
	}
	for _, e := range entries {
		name := e.Desc.Name
		if e.Err != nil || e.Full == nil {
			s.Missing = append(s.Missing, name)
			continue
		}
		s.Full[name] = ebiten.NewImageFromImage(e.Full)
		s.Thumbs[name] = ebiten.NewImageFromImage(e.Thumb)
	}
	return s
}

// Thumb returns the thumbnail for name, or nil.
func (s *SpriteSet) Thumb(name string) *ebiten.Image { return s.Thumbs[name] }

// Image returns the full-size sprite for name, or nil.
func (s *SpriteSet) Image(name string) *ebiten.Image { return s.Full[name] }

// Dispose frees the GPU images. The set is empty afterwards.
func (s *SpriteSet) Dispose() {
	for _, m := range []map[string]*ebiten.Image{s.Full, s.Thumbs} {
		for k, img := range m {
			img.Deallocate()
			delete(m, k)
		}
	}
	s.Missing = nil
}
