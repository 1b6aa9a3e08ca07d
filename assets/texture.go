package assets

import (
	"errors"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Texture is a GPU texture loaded through raylib.
type Texture struct {
	name Name
	Tex  rl.Texture2D
}

// Name implements Image.
func (t *Texture) Name() Name { return t.name }

// TextureLoader loads images into GPU textures. Requires an open window.
type TextureLoader struct{}

// Load implements Loader.
func (TextureLoader) Load(name Name, path string) (Image, error) {
	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	defer rl.UnloadImage(img)

	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return nil, errors.New("texture upload failed")
	}
	return &Texture{name: name, Tex: tex}, nil
}

// Unload implements Loader.
func (TextureLoader) Unload(img Image) {
	if t, ok := img.(*Texture); ok && t.Tex.ID != 0 {
		rl.UnloadTexture(t.Tex)
		t.Tex.ID = 0
	}
}

// Picture is an image decoded into CPU memory.
type Picture struct {
	name          Name
	Width, Height int32
	img           *rl.Image
}

// Name implements Image.
func (p *Picture) Name() Name { return p.name }

// ImageLoader decodes images without a window, for validation tools.
type ImageLoader struct{}

// Load implements Loader.
func (ImageLoader) Load(name Name, path string) (Image, error) {
	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	return &Picture{name: name, Width: img.Width, Height: img.Height, img: img}, nil
}

// Unload implements Loader.
func (ImageLoader) Unload(img Image) {
	if p, ok := img.(*Picture); ok && p.img != nil {
		rl.UnloadImage(p.img)
		p.img = nil
	}
}

func loadImage(path string) (*rl.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	img := rl.LoadImage(path)
	if img == nil || img.Data == nil || img.Width == 0 || img.Height == 0 {
		return nil, fmt.Errorf("decoding %s: unsupported or corrupt image", path)
	}
	return img, nil
}
