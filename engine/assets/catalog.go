package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/1siamBot/placeholder-assets/engine/canvas"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Kind selects the routine that draws an asset.
type Kind string

const (
	KindTerrain Kind = "terrain"
	KindCrack   Kind = "crack"
	KindHand    Kind = "hand"
	KindPickaxe Kind = "pickaxe"
	KindCoin    Kind = "coin"
)

// Descriptor is one catalog entry.
type Descriptor struct {
	Name   string `yaml:"name"`
	Kind   Kind   `yaml:"kind"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Mode   string `yaml:"mode"` // "rgb" or "rgba"
	Level  int    `yaml:"level,omitempty"`
	Head   string `yaml:"head,omitempty"`
	Handle string `yaml:"handle,omitempty"`
}

type kindShape struct {
	size int
	mode canvas.Mode
}

var kinds = map[Kind]kindShape{
	KindTerrain: {TerrainSize, canvas.ModeRGB},
	KindCrack:   {CrackSize, canvas.ModeRGBA},
	KindHand:    {SpriteSize, canvas.ModeRGBA},
	KindPickaxe: {SpriteSize, canvas.ModeRGBA},
	KindCoin:    {CoinSize, canvas.ModeRGBA},
}

func descriptor(name string, k Kind) Descriptor {
	s := kinds[k]
	return Descriptor{Name: name, Kind: k, Width: s.size, Height: s.size, Mode: modeName(s.mode)}
}

func TerrainAsset() Descriptor { return descriptor("grass_block.png", KindTerrain) }
func HandAsset() Descriptor    { return descriptor("hand.png", KindHand) }
func CoinAsset() Descriptor    { return descriptor("coin.png", KindCoin) }

func CrackAsset(level int) Descriptor {
	d := descriptor(fmt.Sprintf("crack_%d.png", level), KindCrack)
	d.Level = level
	return d
}

func PickaxeAsset(name string, head, handle canvas.Color) Descriptor {
	d := descriptor(name, KindPickaxe)
	d.Head = canvas.Hex(head)
	d.Handle = canvas.Hex(handle)
	return d
}

// CanvasMode parses Mode.
func (d Descriptor) CanvasMode() (canvas.Mode, error) {
	switch strings.ToLower(d.Mode) {
	case "rgb":
		return canvas.ModeRGB, nil
	case "rgba":
		return canvas.ModeRGBA, nil
	}
	return 0, fmt.Errorf("assets: %s: unknown mode %q", d.Name, d.Mode)
}

// PickaxeColors parses Head and Handle; an empty Handle is DefaultHandle.
func (d Descriptor) PickaxeColors() (head, handle canvas.Color, err error) {
	head, err = canvas.ParseHex(d.Head)
	if err != nil {
		return head, handle, fmt.Errorf("assets: %s head: %w", d.Name, err)
	}
	handle = DefaultHandle
	if d.Handle != "" {
		if handle, err = canvas.ParseHex(d.Handle); err != nil {
			return head, handle, fmt.Errorf("assets: %s handle: %w", d.Name, err)
		}
	}
	return head, handle, nil
}

// Validate checks one entry against what its kind draws.
func (d Descriptor) Validate() error {
	if d.Name == "" || !strings.HasSuffix(d.Name, ".png") {
		return fmt.Errorf("assets: bad file name %q", d.Name)
	}
	want, ok := kinds[d.Kind]
	if !ok {
		return fmt.Errorf("%w: %s: %q", ErrUnknownKind, d.Name, d.Kind)
	}
	if d.Width != want.size || d.Height != want.size {
		return fmt.Errorf("assets: %s: %s canvas is %dx%d, catalog says %dx%d",
			d.Name, d.Kind, want.size, want.size, d.Width, d.Height)
	}
	mode, err := d.CanvasMode()
	if err != nil {
		return err
	}
	if mode != want.mode {
		return fmt.Errorf("assets: %s: %s canvas is %s, catalog says %s", d.Name, d.Kind, want.mode, mode)
	}
	switch d.Kind {
	case KindCrack:
		if _, err := CrackStyleFor(d.Level); err != nil {
			return fmt.Errorf("assets: %s: %w", d.Name, err)
		}
	case KindPickaxe:
		if _, _, err := d.PickaxeColors(); err != nil {
			return err
		}
	}
	return nil
}

// Catalog is the ordered list of assets to generate.
type Catalog []Descriptor

// Validate checks every entry and rejects duplicate file names.
func (c Catalog) Validate() error {
	seen := make(map[string]bool, len(c))
	var errs []error
	for _, d := range c {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
		}
		if seen[d.Name] {
			errs = append(errs, fmt.Errorf("assets: duplicate entry %q", d.Name))
		}
		seen[d.Name] = true
	}
	return errors.Join(errs...)
}

// Names lists the output file names in order.
func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, d := range c {
		out[i] = d.Name
	}
	return out
}

// LoadCatalog decodes and validates a YAML catalog.
func LoadCatalog(data []byte) (Catalog, error) {
	var doc struct {
		Assets Catalog `yaml:"assets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("assets: decode catalog: %w", err)
	}
	if len(doc.Assets) == 0 {
		return nil, errors.New("assets: catalog is empty")
	}
	if err := doc.Assets.Validate(); err != nil {
		return nil, err
	}
	return doc.Assets, nil
}

// DefaultCatalog is the catalog compiled into the binary.
func DefaultCatalog() (Catalog, error) {
	return LoadCatalog(catalogYAML)
}

func modeName(m canvas.Mode) string {
	return strings.ToLower(m.String())
}
