package main // import "github.com/tonobo/fingersnake-go"

import (
	"fmt"
	"io"
	"sort"

	"github.com/joonazan/vec2"
	"github.com/tonobo/fingersnake-go/game"
)

// Autopilot fakes a fingertip that chases the food. It stands in for the
// hand detector in demos and tests.
type Autopilot struct {
	Stride float64
	Margin float64

	pos        vec2.Vector
	StepCount  int
	Unresolved int
}

func NewAutopilot(start game.Point) *Autopilot {
	return &Autopilot{
		Stride: AutopilotStride,
		Margin: SurfaceMargin,
		pos:    start.Vec(),
	}
}

func (ap *Autopilot) Outside(v vec2.Vector) bool {
	if v.X < ap.Margin || v.X > game.SurfaceWidth-ap.Margin {
		return true
	}
	if v.Y < ap.Margin || v.Y > game.SurfaceHeight-ap.Margin {
		return true
	}
	return false
}

// Step is one candidate stride of the autopilot.
type Step struct {
	Heading  string
	Target   vec2.Vector
	Distance float64 // to the food after the stride
}

func (s *Step) Point() game.Point {
	return game.Point{X: s.Target.X, Y: s.Target.Y}
}

type Steps []*Step

func (p Steps) Len() int           { return len(p) }
func (p Steps) Less(i, j int) bool { return p[i].Distance < p[j].Distance }
func (p Steps) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// Moves returns the headings that stay on the surface and do not touch the
// body, nearest to the food first.
func (ap *Autopilot) Moves(food game.Point, blocked func(game.Point) bool) Steps {
	moves := Steps{}
	for _, h := range Headings {
		next := vec2.Vector{X: ap.pos.X + h.Vector.X*ap.Stride, Y: ap.pos.Y + h.Vector.Y*ap.Stride}
		if ap.Outside(next) {
			continue
		}
		m := &Step{Heading: h.Name, Target: next, Distance: next.Minus(food.Vec()).Length()}
		if blocked != nil && blocked(m.Point()) {
			continue
		}
		moves = append(moves, m)
	}
	sort.Stable(moves)
	return moves
}

// Next advances the fingertip one stride. When every heading is blocked the
// fingertip holds still and ok is false.
func (ap *Autopilot) Next(food game.Point, blocked func(game.Point) bool) (p game.Point, ok bool) {
	ap.StepCount++
	moves := ap.Moves(food, blocked)
	if len(moves) == 0 {
		ap.Unresolved++
		return game.Point{X: ap.pos.X, Y: ap.pos.Y}, false
	}
	ap.pos = moves[0].Target
	return moves[0].Point(), true
}

// RunDemo drives the arena with the autopilot for the given number of
// frames, restarting after every game over.
func RunDemo(a *Arena, frames int, w io.Writer) game.State {
	ap := NewAutopilot(game.Point{X: game.SurfaceWidth / 2, Y: game.SurfaceHeight / 2})
	games, best := 1, 0
	for i := 0; i < frames; i++ {
		st := a.State()
		if st.GameOver {
			fmt.Fprintf(w, "game %d over after %d steps, score: %d\n", games, ap.StepCount, st.Score)
			if st.Score > best {
				best = st.Score
			}
			a.Restart()
			games++
			continue
		}
		head, _ := ap.Next(st.Food.Pos, a.WouldCollide)
		if _, err := a.Frame(&head); err != nil {
			fmt.Fprintf(w, "frame %d: %v\n", i, err)
		}
	}
	st := a.State()
	if st.Score > best {
		best = st.Score
	}
	fmt.Fprintf(w, "%d frames, %d games, best score: %d, unresolved steps: %d\n",
		frames, games, best, ap.Unresolved)
	return st
}
