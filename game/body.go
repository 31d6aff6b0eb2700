package game // import "github.com/tonobo/fingersnake-go/game"

import "fmt"

// Body is the snake as a polyline ordered from tail to head.
type Body struct {
	points   []Point
	lengths  []float64
	length   float64
	allowed  float64
	prevHead Point

	tolerance  float64
	exclusion  int
	minPoints  int
	initLength float64
}

func NewBody(opts Options) *Body {
	return &Body{
		allowed:    opts.InitialLength,
		initLength: opts.InitialLength,
		tolerance:  opts.Tolerance,
		exclusion:  opts.TrailingExclusion,
		minPoints:  opts.MinCollisionPoints,
	}
}

// AppendHead extends the body with a new head. The first point of an empty
// body starts the polyline and adds no segment.
func (b *Body) AppendHead(p Point) error {
	if !p.Valid() {
		return fmt.Errorf("append head (%v, %v): %w", p.X, p.Y, ErrInvalidPoint)
	}
	if len(b.points) > 0 {
		d := b.prevHead.Distance(p)
		b.lengths = append(b.lengths, d)
		b.length += d
	}
	b.points = append(b.points, p)
	b.prevHead = p
	return nil
}

// Trim drops tail segments until the body fits its length budget.
func (b *Body) Trim() {
	for b.length > b.allowed && len(b.points) >= 2 {
		b.length -= b.lengths[0]
		b.lengths = b.lengths[1:]
		b.points = b.points[1:]
	}
	if len(b.lengths) == 0 {
		b.length = 0
	}
}

// CheckSelfCollision reports whether head touches the outline formed by the
// body minus its newest points.
func (b *Body) CheckSelfCollision(head Point) bool {
	if len(b.points) <= b.minPoints || len(b.points) <= b.exclusion {
		return false
	}
	poly := b.points[:len(b.points)-b.exclusion]
	if len(poly) < 3 {
		return false
	}
	d := SignedPolygonDistance(poly, head)
	return d >= -b.tolerance && d <= b.tolerance
}

// Grow raises the length budget by delta.
func (b *Body) Grow(delta float64) {
	if delta > 0 {
		b.allowed += delta
	}
}

// Reset empties the body and restores the initial budget.
func (b *Body) Reset() {
	b.points = nil
	b.lengths = nil
	b.length = 0
	b.allowed = b.initLength
	b.prevHead = Point{}
}

// Points returns a copy of the body points, tail first.
func (b *Body) Points() []Point {
	out := make([]Point, len(b.points))
	copy(out, b.points)
	return out
}

func (b *Body) SegmentLengths() []float64 {
	out := make([]float64, len(b.lengths))
	copy(out, b.lengths)
	return out
}

// Head returns the newest point, false when the body is empty.
func (b *Body) Head() (Point, bool) {
	if len(b.points) == 0 {
		return Point{}, false
	}
	return b.points[len(b.points)-1], true
}

func (b *Body) Len() int               { return len(b.points) }
func (b *Body) Length() float64        { return b.length }
func (b *Body) AllowedLength() float64 { return b.allowed }
func (b *Body) PreviousHead() Point    { return b.prevHead }
