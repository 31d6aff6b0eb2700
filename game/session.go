package game // import "github.com/tonobo/fingersnake-go/game"

// Status is the session state machine position.
type Status int

const (
	Playing Status = iota
	GameOver
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome tells the driver what a frame did.
type Outcome struct {
	Ate      bool
	Collided bool
}

// State is the renderable snapshot of a session.
type State struct {
	Points        []Point `json:"points"`
	Head          *Point  `json:"head,omitempty"`
	Food          Food    `json:"food"`
	Score         int     `json:"score"`
	GameOver      bool    `json:"gameOver"`
	Length        float64 `json:"length"`
	AllowedLength float64 `json:"allowedLength"`
}

// Session runs one game: a body, a food spawner and the score. It is not
// safe for concurrent use.
type Session struct {
	opts   Options
	body   *Body
	food   *FoodSpawner
	score  int
	status Status
}

func NewSession(opts Options, sprite FoodSprite) *Session {
	return &Session{
		opts: opts,
		body: NewBody(opts),
		food: NewFoodSpawner(opts.FoodArea, sprite, opts.Seed),
	}
}

// Update advances the game by one input sample. While the game is over it
// changes nothing. A non-finite head is rejected before any mutation.
func (s *Session) Update(head Point) (Outcome, error) {
	var out Outcome
	if s.status == GameOver {
		return out, nil
	}
	if err := s.body.AppendHead(head); err != nil {
		return out, err
	}
	s.body.Trim()

	if s.food.IsConsumed(head) {
		s.score++
		s.body.Grow(s.opts.Growth)
		s.food.Respawn()
		out.Ate = true
	}

	if s.body.CheckSelfCollision(head) {
		s.status = GameOver
		out.Collided = true
	}
	return out, nil
}

// Restart resets the score and body and moves the food.
func (s *Session) Restart() {
	s.body.Reset()
	s.score = 0
	s.status = Playing
	s.food.Respawn()
}

// WouldCollide reports whether head would hit the current body. It does
// not change the session.
func (s *Session) WouldCollide(head Point) bool {
	return head.Valid() && s.body.CheckSelfCollision(head)
}

func (s *Session) State() State {
	st := State{
		Points:        s.body.Points(),
		Food:          s.food.Food(),
		Score:         s.score,
		GameOver:      s.status == GameOver,
		Length:        s.body.Length(),
		AllowedLength: s.body.AllowedLength(),
	}
	if h, ok := s.body.Head(); ok {
		st.Head = &h
	}
	return st
}

func (s *Session) Status() Status   { return s.status }
func (s *Session) Score() int       { return s.score }
func (s *Session) GameOver() bool   { return s.status == GameOver }
func (s *Session) Food() Food       { return s.food.Food() }
func (s *Session) Options() Options { return s.opts }
