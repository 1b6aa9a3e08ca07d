// Package assets resolves the images the game draws: four directional dragon
// heads and the food glyph. Loading is all-or-nothing.
package assets

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/dragon/components"
	"github.com/pthm-cable/dragon/config"
)

// ErrAssetLoad is matched by every error returned from LoadAll.
var ErrAssetLoad = errors.New("asset load failed")

// Name identifies one image of the bundle.
type Name string

// Image names.
const (
	DragonUp    Name = "dragon_up"
	DragonDown  Name = "dragon_down"
	DragonLeft  Name = "dragon_left"
	DragonRight Name = "dragon_right"
	Food        Name = "food"
)

// Order is the fixed load order.
var Order = [...]Name{DragonUp, DragonDown, DragonLeft, DragonRight, Food}

// HeadName returns the head image name for a direction.
func HeadName(d components.Direction) Name {
	switch d {
	case components.Up:
		return DragonUp
	case components.Down:
		return DragonDown
	case components.Left:
		return DragonLeft
	default:
		return DragonRight
	}
}

// Image is a loaded, drawable image. Concrete types depend on the surface.
type Image interface {
	Name() Name
}

// Loader resolves one image.
type Loader interface {
	Load(name Name, path string) (Image, error)
	Unload(img Image)
}

// Manifest maps every image name to its source path.
type Manifest map[Name]string

// ManifestFromConfig builds the manifest from the assets section.
func ManifestFromConfig(cfg *config.Config) Manifest {
	a := cfg.Assets
	return Manifest{
		DragonUp:    cfg.AssetPath(a.DragonUp),
		DragonDown:  cfg.AssetPath(a.DragonDown),
		DragonLeft:  cfg.AssetPath(a.DragonLeft),
		DragonRight: cfg.AssetPath(a.DragonRight),
		Food:        cfg.AssetPath(a.Food),
	}
}

// LoadError describes which image failed.
type LoadError struct {
	Name Name
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s from %q: %v", e.Name, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrAssetLoad, e.Err}
}

// Bundle is a complete set of loaded images.
type Bundle struct {
	Heads [4]Image // Indexed by components.Direction
	Food  Image
}

// Head returns the head image for a direction.
func (b *Bundle) Head(d components.Direction) Image {
	return b.Heads[d]
}

// Get returns the image loaded under name, or nil for an unknown name.
func (b *Bundle) Get(name Name) Image {
	if name == Food {
		return b.Food
	}
	for _, d := range components.Directions {
		if HeadName(d) == name {
			return b.Heads[d]
		}
	}
	return nil
}

// LoadAll loads every image in Order. The first failure aborts the load,
// releases whatever was already loaded and returns a *LoadError.
func LoadAll(loader Loader, m Manifest) (*Bundle, error) {
	loaded := make(map[Name]Image, len(Order))

	release := func() {
		for _, img := range loaded {
			loader.Unload(img)
		}
	}

	for _, name := range Order {
		path, ok := m[name]
		if !ok || path == "" {
			release()
			return nil, &LoadError{Name: name, Path: path, Err: errors.New("missing from manifest")}
		}
		img, err := loader.Load(name, path)
		if err != nil {
			release()
			return nil, &LoadError{Name: name, Path: path, Err: err}
		}
		slog.Debug("image loaded", "name", name, "path", path)
		loaded[name] = img
	}

	b := &Bundle{Food: loaded[Food]}
	for _, d := range components.Directions {
		b.Heads[d] = loaded[HeadName(d)]
	}
	return b, nil
}

// Unload releases every image in the bundle.
func (b *Bundle) Unload(loader Loader) {
	if b == nil {
		return
	}
	for _, img := range b.Heads {
		if img != nil {
			loader.Unload(img)
		}
	}
	if b.Food != nil {
		loader.Unload(b.Food)
	}
}
