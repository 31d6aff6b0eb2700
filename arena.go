package main // import "github.com/tonobo/fingersnake-go"

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tonobo/fingersnake-go/game"
)

type ArenaConfig struct {
	Options   game.Options
	Sprite    game.FoodSprite
	LogDir    string
	RecordDir string
	Debug     bool
}

// Arena is the single game this process hosts. It serialises access to the
// session for drivers that receive frames concurrently.
type Arena struct {
	ID   string
	Seed uint64

	mu       sync.Mutex
	session  *game.Session
	sprite   game.FoodSprite
	recorder *Recorder
	logFile  io.Writer
	closer   io.Closer
}

func NewArena(cfg ArenaConfig) (*Arena, error) {
	opts := cfg.Options
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	a := &Arena{
		ID:      uuid.New().String(),
		Seed:    opts.Seed,
		session: game.NewSession(opts, cfg.Sprite),
		sprite:  cfg.Sprite,
		logFile: io.Discard,
	}

	switch {
	case cfg.Debug:
		a.logFile = os.Stdout
	case cfg.LogDir != "":
		f, err := os.OpenFile(filepath.Join(cfg.LogDir, fmt.Sprintf("fingersnake-%s.log", a.ID)),
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open game log: %w", err)
		}
		a.logFile = f
		a.closer = f
	}

	if cfg.RecordDir != "" {
		path := filepath.Join(cfg.RecordDir, fmt.Sprintf("game_%s_%d.jsonl", a.ID, time.Now().Unix()))
		r, err := NewRecorder(path)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.recorder = r
	}

	w, h := cfg.Sprite.Size()
	a.record(FrameRecord{Action: ActionStart, Seed: a.Seed, Sprite: &[2]int{w, h}})
	fmt.Printf("Starting game: %s\n", a.ID)
	fmt.Fprintf(a.LogFile(), "seed: %d, food: %+v\n", a.Seed, a.session.Food())
	return a, nil
}

// LogFile is the per-game log writer.
func (a *Arena) LogFile() io.Writer {
	return a.logFile
}

// Frame feeds one input sample. A nil head means the frame had no
// fingertip and leaves the game untouched.
func (a *Arena) Frame(head *game.Point) (game.State, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if head == nil {
		a.record(FrameRecord{Action: ActionSkip})
		return a.session.State(), nil
	}
	out, err := a.session.Update(*head)
	if err != nil {
		fmt.Fprintf(a.LogFile(), "rejected frame: %v\n", err)
		return a.session.State(), err
	}
	a.record(FrameRecord{Action: ActionFrame, Head: head})
	if out.Ate {
		fmt.Fprintf(a.LogFile(), "Score: %d, food: %+v\n", a.session.Score(), a.session.Food().Pos)
	}
	if out.Collided {
		fmt.Printf("Game over: %s, score: %d\n", a.ID, a.session.Score())
	}
	return a.session.State(), nil
}

func (a *Arena) Restart() game.State {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.session.Restart()
	a.record(FrameRecord{Action: ActionRestart})
	fmt.Printf("Restarting game: %s\n", a.ID)
	return a.session.State()
}

func (a *Arena) State() game.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.State()
}

// WouldCollide probes the body without feeding a frame.
func (a *Arena) WouldCollide(head game.Point) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session.WouldCollide(head)
}

func (a *Arena) Sprite() game.FoodSprite {
	return a.sprite
}

func (a *Arena) Close() {
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.closer != nil {
		a.closer.Close()
	}
}

// record must be called with mu held.
func (a *Arena) record(rec FrameRecord) {
	if a.recorder == nil {
		return
	}
	rec.Time = time.Now()
	rec.Score = a.session.Score()
	rec.GameOver = a.session.GameOver()
	a.recorder.RecordStep(rec)
}
