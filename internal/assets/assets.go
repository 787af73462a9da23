// Package assets resolves sprite dimensions. Only sizes matter to the
// simulation; pixel data is left to whatever renders the game.
package assets

import (
	"fmt"
	"image"
	_ "image/png" // PNG header decoding
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Placeholder is the size substituted for any sprite that fails to load.
var Placeholder = Size{Width: 64, Height: 64}

// Size is a sprite extent in world units.
type Size struct {
	Width  float64
	Height float64
}

// Catalog maps sprite file names to their sizes.
type Catalog struct {
	sizes    map[string]Size
	fallback map[string]bool
}

// NewCatalog returns a catalog answering from the given sizes only.
func NewCatalog(sizes map[string]Size) *Catalog {
	c := &Catalog{
		sizes:    make(map[string]Size, len(sizes)),
		fallback: make(map[string]bool),
	}
	for name, s := range sizes {
		c.sizes[name] = s
	}
	return c
}

// Load reads the header of every named sprite under dir. A sprite that
// cannot be opened or decoded gets the Placeholder size and a warning.
// An empty dir keeps the given sizes untouched.
func Load(dir string, sizes map[string]Size, logger *log.Logger) *Catalog {
	c := NewCatalog(sizes)
	if dir == "" {
		return c
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for name := range sizes {
		s, err := decodeSize(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("sprite unavailable, using placeholder", "sprite", name, "error", err)
			c.sizes[name] = Placeholder
			c.fallback[name] = true
			continue
		}
		logger.Debug("loaded sprite", "sprite", name, "width", s.Width, "height", s.Height)
		c.sizes[name] = s
	}
	return c
}

func decodeSize(path string) (Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return Size{}, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Size{}, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Size{}, fmt.Errorf("assets: %s has no pixels", path)
	}
	return Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}, nil
}

// Size returns the size of a sprite, or Placeholder if it is unknown.
func (c *Catalog) Size(name string) Size {
	if s, ok := c.sizes[name]; ok && s.Width > 0 && s.Height > 0 {
		return s
	}
	return Placeholder
}

// IsPlaceholder reports whether the sprite failed to load.
func (c *Catalog) IsPlaceholder(name string) bool {
	return c.fallback[name]
}
