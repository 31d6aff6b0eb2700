package game

import (
	"math"
	"testing"
)

func TestSegmentDistance(t *testing.T) {
	a, b := Point{X: 0, Y: 0}, Point{X: 10, Y: 0}
	tests := []struct {
		p    Point
		want float64
	}{
		{Point{X: 5, Y: 3}, 3},
		{Point{X: -3, Y: 4}, 5},
		{Point{X: 13, Y: -4}, 5},
		{Point{X: 10, Y: 0}, 0},
	}
	for _, tt := range tests {
		if got := SegmentDistance(tt.p, a, b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SegmentDistance(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := SegmentDistance(Point{X: 3, Y: 4}, a, a); got != 5 {
		t.Errorf("degenerate segment: got %v, want 5", got)
	}
}

func TestSignedPolygonDistance(t *testing.T) {
	square := []Point{{0, 0}, {200, 0}, {200, 200}, {0, 200}}
	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"inside", Point{X: 50, Y: 100}, 50},
		{"outside", Point{X: 250, Y: 100}, -50},
		{"on edge", Point{X: 200, Y: 30}, 0},
		{"on vertex", Point{X: 0, Y: 0}, 0},
		{"outside corner", Point{X: -3, Y: -4}, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedPolygonDistance(square, tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignedPolygonDistanceSelfIntersecting(t *testing.T) {
	// bow tie: the two lobes are inside, the crossing point is on the outline
	bowtie := []Point{{0, 0}, {100, 100}, {100, 0}, {0, 100}}
	if d := SignedPolygonDistance(bowtie, Point{X: 90, Y: 50}); d <= 0 {
		t.Errorf("expected right lobe inside, got %v", d)
	}
	if d := SignedPolygonDistance(bowtie, Point{X: 50, Y: 50}); d != 0 {
		t.Errorf("expected crossing on outline, got %v", d)
	}
	if d := SignedPolygonDistance(bowtie, Point{X: 50, Y: 10}); d >= 0 {
		t.Errorf("expected bottom notch outside, got %v", d)
	}
}

func TestSignedPolygonDistanceDegenerate(t *testing.T) {
	if d := SignedPolygonDistance([]Point{{0, 0}, {1, 1}}, Point{}); !math.IsInf(d, -1) {
		t.Errorf("expected -Inf for two vertices, got %v", d)
	}
}
