package main // import "github.com/tonobo/fingersnake-go"

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/tonobo/fingersnake-go/game"
)

var errNoStartRecord = errors.New("recording does not begin with a start record")

// Replay rebuilds a game from a recording and returns its final state. The
// recorded seed and sprite size make the food draws repeat exactly, so any
// score mismatch means the recording and the engine disagree.
func Replay(r io.Reader) (game.State, error) {
	var session *game.Session
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if len(sc.Bytes()) == 0 {
			continue
		}
		var rec FrameRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return game.State{}, fmt.Errorf("line %d: %w", line, err)
		}
		if session == nil {
			if rec.Action != ActionStart {
				return game.State{}, errNoStartRecord
			}
			opts := game.DefaultOptions()
			opts.Seed = rec.Seed
			session = game.NewSession(opts, recordedSprite(rec.Sprite))
			continue
		}

		switch rec.Action {
		case ActionFrame:
			if rec.Head == nil {
				return game.State{}, fmt.Errorf("line %d: frame without head", line)
			}
			if _, err := session.Update(*rec.Head); err != nil {
				return game.State{}, fmt.Errorf("line %d: %w", line, err)
			}
		case ActionRestart:
			session.Restart()
		case ActionSkip:
			continue
		default:
			return game.State{}, fmt.Errorf("line %d: unknown action %q", line, rec.Action)
		}
		if session.Score() != rec.Score || session.GameOver() != rec.GameOver {
			return game.State{}, fmt.Errorf("replay diverged at seq %d: score %d/%d, game over %t/%t",
				rec.Seq, session.Score(), rec.Score, session.GameOver(), rec.GameOver)
		}
	}
	if err := sc.Err(); err != nil {
		return game.State{}, err
	}
	if session == nil {
		return game.State{}, errNoStartRecord
	}
	return session.State(), nil
}

// recordedSprite stands in for the sprite the game was played with. Only
// its size matters to the simulation.
func recordedSprite(size *[2]int) game.FoodSprite {
	if size == nil {
		return game.DefaultFoodSprite()
	}
	return game.FoodSprite{Image: image.NewNRGBA(image.Rect(0, 0, size[0], size[1]))}
}
