package game

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// walk returns the points from a to b in steps of 10, excluding a.
func walk(a, b Point) []Point {
	n := int(math.Round(a.Distance(b) / 10))
	pts := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t})
	}
	return pts
}

// loopBack runs along three sides of a square away from the food area and
// then cuts back across the first side.
func loopBack() []Point {
	corners := []Point{
		{X: -300, Y: -300},
		{X: -100, Y: -300},
		{X: -100, Y: -100},
		{X: -200, Y: -100},
		{X: -200, Y: -300},
	}
	path := []Point{corners[0]}
	for i := 1; i < len(corners); i++ {
		path = append(path, walk(corners[i-1], corners[i])...)
	}
	return path
}

func newTestSession(t *testing.T, budget float64) *Session {
	t.Helper()
	opts := DefaultOptions()
	opts.Seed = 2024
	if budget > 0 {
		opts.InitialLength = budget
	}
	return NewSession(opts, DefaultFoodSprite())
}

func TestSessionEatsFood(t *testing.T) {
	s := newTestSession(t, 0)
	s.food.pos = Point{X: 500, Y: 300}

	out, err := s.Update(Point{X: 500, Y: 300})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !out.Ate {
		t.Fatal("expected food to be eaten")
	}
	if s.Score() != 1 {
		t.Errorf("expected score 1, got %d", s.Score())
	}
	if s.body.AllowedLength() != 200 {
		t.Errorf("expected budget 200, got %v", s.body.AllowedLength())
	}
	if s.food.Position() == (Point{X: 500, Y: 300}) {
		t.Error("expected food to respawn")
	}

	s.food.pos = Point{X: 500, Y: 300}
	out, _ = s.Update(Point{X: 600, Y: 300})
	if out.Ate || s.Score() != 1 {
		t.Errorf("unexpected second meal: %+v score=%d", out, s.Score())
	}
}

func TestSessionCollisionEndsGame(t *testing.T) {
	s := newTestSession(t, 1000)
	path := loopBack()
	for i, p := range path {
		out, err := s.Update(p)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		last := i == len(path)-1
		if out.Collided != last {
			t.Fatalf("step %d at %v: collided=%v, expected %v", i, p, out.Collided, last)
		}
		if out.Ate {
			t.Fatalf("step %d: food eaten outside the food area", i)
		}
	}
	if !s.GameOver() || s.Status() != GameOver {
		t.Fatal("expected game over")
	}
}

func TestSessionGameOverIsNoop(t *testing.T) {
	s := newTestSession(t, 1000)
	for _, p := range loopBack() {
		s.Update(p)
	}
	if !s.GameOver() {
		t.Fatal("setup: expected game over")
	}

	before := s.State()
	food := s.food.Position()
	for _, p := range []Point{{X: 10, Y: 10}, food, {X: -200, Y: -300}, {X: math.NaN(), Y: 0}} {
		out, err := s.Update(p)
		if err != nil || out.Ate || out.Collided {
			t.Errorf("Update(%v) in game over: out=%+v err=%v", p, out, err)
		}
	}
	if after := s.State(); !reflect.DeepEqual(before, after) {
		t.Errorf("state changed during game over:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSessionRestart(t *testing.T) {
	s := newTestSession(t, 0)
	s.food.pos = Point{X: 500, Y: 300}
	s.Update(Point{X: 400, Y: 300})
	s.Update(Point{X: 500, Y: 300})
	if s.Score() != 1 {
		t.Fatalf("setup: expected score 1, got %d", s.Score())
	}
	s.status = GameOver
	food := s.food.Position()

	s.Restart()

	st := s.State()
	if st.Score != 0 || st.GameOver || len(st.Points) != 0 || st.Head != nil {
		t.Errorf("restart left state behind: %+v", st)
	}
	if st.AllowedLength != 150 || st.Length != 0 {
		t.Errorf("expected budget 150 and length 0, got %v and %v", st.AllowedLength, st.Length)
	}
	if s.body.PreviousHead() != (Point{}) {
		t.Errorf("expected previous head at origin, got %v", s.body.PreviousHead())
	}
	if st.Food.Pos == food {
		t.Error("expected restart to respawn the food")
	}
	if _, err := s.Update(Point{X: 50, Y: 50}); err != nil || s.Status() != Playing {
		t.Errorf("expected playing after restart, status=%v err=%v", s.Status(), err)
	}
}

func TestSessionRejectsInvalidPoint(t *testing.T) {
	s := newTestSession(t, 0)
	s.Update(Point{X: 10, Y: 10})
	before := s.State()

	_, err := s.Update(Point{X: math.Inf(1), Y: 10})
	if !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("expected ErrInvalidPoint, got %v", err)
	}
	if !reflect.DeepEqual(before, s.State()) {
		t.Error("invalid point changed the state")
	}
}

func TestSessionBudgetNeverShrinksWhilePlaying(t *testing.T) {
	s := newTestSession(t, 0)
	prev := s.body.AllowedLength()
	for i := 0; i < 300; i++ {
		head := Point{X: 640 + 200*math.Cos(float64(i)/7), Y: 360 + 150*math.Sin(float64(i)/5)}
		if i%15 == 0 {
			s.food.pos = head
		}
		if _, err := s.Update(head); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		allowed := s.body.AllowedLength()
		if allowed < prev {
			t.Fatalf("step %d: budget shrank from %v to %v", i, prev, allowed)
		}
		prev = allowed
		st := s.State()
		if st.Length > st.AllowedLength {
			t.Fatalf("step %d: length %v over budget %v", i, st.Length, st.AllowedLength)
		}
		if s.GameOver() {
			break
		}
	}
	if s.Score() == 0 {
		t.Error("expected at least one meal")
	}
}

func TestSessionWouldCollide(t *testing.T) {
	s := newTestSession(t, 1000)
	path := loopBack()
	for _, p := range path[:len(path)-1] {
		s.Update(p)
	}
	n := len(s.State().Points)
	if !s.WouldCollide(path[len(path)-1]) {
		t.Error("expected probe to report the crossing")
	}
	if s.WouldCollide(Point{X: math.NaN(), Y: 0}) {
		t.Error("expected invalid probe to report no collision")
	}
	if len(s.State().Points) != n || s.GameOver() {
		t.Error("probe changed the session")
	}
}

func TestStatusString(t *testing.T) {
	if Playing.String() != "playing" || GameOver.String() != "game_over" {
		t.Errorf("unexpected names %q %q", Playing, GameOver)
	}
}
