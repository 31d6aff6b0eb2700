package game // import "github.com/tonobo/fingersnake-go/game"

import (
	"math"

	"github.com/joonazan/vec2"
)

// Point is a position on the rendering surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Vec() vec2.Vector {
	return vec2.Vector{X: p.X, Y: p.Y}
}

// Valid reports whether both coordinates are finite.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) Distance(o Point) float64 {
	return o.Vec().Minus(p.Vec()).Length()
}

// Rect is an inclusive integer range used for food placement.
type Rect struct {
	MinX int `json:"minX"`
	MinY int `json:"minY"`
	MaxX int `json:"maxX"`
	MaxY int `json:"maxY"`
}

func (r Rect) Contains(p Point) bool {
	return p.X >= float64(r.MinX) && p.X <= float64(r.MaxX) &&
		p.Y >= float64(r.MinY) && p.Y <= float64(r.MaxY)
}
