package game // import "github.com/tonobo/fingersnake-go/game"

import (
	"math"

	"github.com/joonazan/vec2"
)

// SegmentDistance returns the distance from p to the segment a-b.
func SegmentDistance(p, a, b Point) float64 {
	ab := b.Vec().Minus(a.Vec())
	ap := p.Vec().Minus(a.Vec())
	den := ab.X*ab.X + ab.Y*ab.Y
	if den == 0 {
		return ap.Length()
	}
	t := (ap.X*ab.X + ap.Y*ab.Y) / den
	t = math.Max(0, math.Min(1, t))
	closest := vec2.Vector{X: a.X + ab.X*t, Y: a.Y + ab.Y*t}
	return p.Vec().Minus(closest).Length()
}

// SignedPolygonDistance measures p against the closed polygon poly.
// The result is positive inside, negative outside and zero on an edge; its
// magnitude is the distance to the nearest edge. Insideness uses the even-odd
// rule so self-intersecting outlines are handled. Polygons with fewer than
// three vertices have no interior and report -Inf.
func SignedPolygonDistance(poly []Point, p Point) float64 {
	n := len(poly)
	if n < 3 {
		return math.Inf(-1)
	}
	nearest := math.Inf(1)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[j], poly[i]
		if d := SegmentDistance(p, a, b); d < nearest {
			nearest = d
		}
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	if nearest == 0 {
		return 0
	}
	if inside {
		return nearest
	}
	return -nearest
}
