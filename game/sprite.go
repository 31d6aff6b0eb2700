package game // import "github.com/tonobo/fingersnake-go/game"

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"os"
)

const (
	defaultSpriteSize   = 50
	defaultSpriteRadius = 20
)

// FoodSprite is the image drawn for the food item. Its size defines the
// consumption hitbox.
type FoodSprite struct {
	Image image.Image
}

// DefaultFoodSprite is a 50x50 transparent tile with a filled red disc.
func DefaultFoodSprite() FoodSprite {
	img := image.NewNRGBA(image.Rect(0, 0, defaultSpriteSize, defaultSpriteSize))
	c := defaultSpriteSize / 2
	red := color.NRGBA{R: 255, A: 255}
	for y := 0; y < defaultSpriteSize; y++ {
		for x := 0; x < defaultSpriteSize; x++ {
			dx, dy := x-c, y-c
			if dx*dx+dy*dy <= defaultSpriteRadius*defaultSpriteRadius {
				img.SetNRGBA(x, y, red)
			}
		}
	}
	return FoodSprite{Image: img}
}

// LoadFoodSprite reads a png from path. A missing file yields
// ErrFoodAssetMissing and an undecodable one ErrFoodAssetInvalid; callers
// fall back to DefaultFoodSprite.
func LoadFoodSprite(path string) (FoodSprite, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return FoodSprite{}, fmt.Errorf("load %s: %w", path, ErrFoodAssetMissing)
	}
	if err != nil {
		return FoodSprite{}, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return FoodSprite{}, fmt.Errorf("decode %s: %w: %v", path, ErrFoodAssetInvalid, err)
	}
	return FoodSprite{Image: img}, nil
}

func (s FoodSprite) Size() (int, int) {
	if s.Image == nil {
		return defaultSpriteSize, defaultSpriteSize
	}
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// HalfExtent returns half the sprite width and height, rounded down.
func (s FoodSprite) HalfExtent() (int, int) {
	w, h := s.Size()
	return w / 2, h / 2
}

func (s FoodSprite) EncodePNG(w io.Writer) error {
	img := s.Image
	if img == nil {
		img = DefaultFoodSprite().Image
	}
	return png.Encode(w, img)
}
