package game // import "github.com/tonobo/fingersnake-go/game"

// Surface size the fingertip coordinates are reported in.
const (
	SurfaceWidth  = 1280
	SurfaceHeight = 720
)

// Options holds the tuning values of a session.
type Options struct {
	// InitialLength is the length budget at start and after a restart.
	InitialLength float64
	// Growth is added to the budget for every food eaten.
	Growth float64
	// FoodArea bounds the food position draws.
	FoodArea Rect
	// Tolerance is the half-width of the band around the body outline
	// that counts as touching it.
	Tolerance float64
	// TrailingExclusion is the number of newest points left out of the
	// collision polygon.
	TrailingExclusion int
	// MinCollisionPoints is the body size the collision check waits for.
	MinCollisionPoints int
	// Seed feeds the food position source. Zero picks a time based seed.
	Seed uint64
}

func DefaultOptions() Options {
	return Options{
		InitialLength:      150,
		Growth:             50,
		FoodArea:           Rect{MinX: 100, MinY: 100, MaxX: 1000, MaxY: 600},
		Tolerance:          1,
		TrailingExclusion:  10,
		MinCollisionPoints: 5,
	}
}
