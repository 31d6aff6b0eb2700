package game // import "github.com/tonobo/fingersnake-go/game"

import (
	"time"

	"golang.org/x/exp/rand"
)

// Food is the renderable view of the current food item.
type Food struct {
	Pos        Point `json:"pos"`
	HalfWidth  int   `json:"halfWidth"`
	HalfHeight int   `json:"halfHeight"`
}

// FoodSpawner keeps the single food item and rerolls it when eaten.
type FoodSpawner struct {
	pos   Point
	halfW int
	halfH int
	area  Rect
	rng   *rand.Rand
}

// NewFoodSpawner places the first food item. The hitbox half extents come
// from the sprite dimensions.
func NewFoodSpawner(area Rect, sprite FoodSprite, seed uint64) *FoodSpawner {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	halfW, halfH := sprite.HalfExtent()
	f := &FoodSpawner{
		halfW: halfW,
		halfH: halfH,
		area:  area,
		rng:   rand.New(rand.NewSource(seed)),
	}
	f.Respawn()
	return f
}

// Respawn draws a new position uniformly from the food area.
func (f *FoodSpawner) Respawn() {
	f.pos = Point{
		X: float64(f.area.MinX + f.rng.Intn(f.area.MaxX-f.area.MinX+1)),
		Y: float64(f.area.MinY + f.rng.Intn(f.area.MaxY-f.area.MinY+1)),
	}
}

// IsConsumed reports whether head lies strictly inside the food box.
func (f *FoodSpawner) IsConsumed(head Point) bool {
	return f.pos.X-float64(f.halfW) < head.X && head.X < f.pos.X+float64(f.halfW) &&
		f.pos.Y-float64(f.halfH) < head.Y && head.Y < f.pos.Y+float64(f.halfH)
}

func (f *FoodSpawner) Position() Point {
	return f.pos
}

func (f *FoodSpawner) Food() Food {
	return Food{Pos: f.pos, HalfWidth: f.halfW, HalfHeight: f.halfH}
}
