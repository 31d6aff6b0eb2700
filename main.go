package main // import "github.com/tonobo/fingersnake-go"

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joonazan/vec2"
	"github.com/tonobo/fingersnake-go/game"
)

type Heading struct {
	Name   string
	Vector vec2.Vector
}

var (
	Headings = []Heading{
		{"up", vec2.Vector{X: 0, Y: -1}},
		{"down", vec2.Vector{X: 0, Y: 1}},
		{"left", vec2.Vector{X: -1, Y: 0}},
		{"right", vec2.Vector{X: 1, Y: 0}},
		{"up-left", vec2.Vector{X: -diag, Y: -diag}},
		{"up-right", vec2.Vector{X: diag, Y: -diag}},
		{"down-left", vec2.Vector{X: -diag, Y: diag}},
		{"down-right", vec2.Vector{X: diag, Y: diag}},
	}

	AutopilotStride = 12.0
	SurfaceMargin   = 20.0
	RecordBuffer    = 1000
	ShutdownTimeout = 5 * time.Second
	SnakeColor      = "#ff00ff"
)

const diag = 0.7071067811865476

var (
	addr      = flag.String("addr", ":8080", "HTTP listen address")
	foodPath  = flag.String("food", "donut.png", "Food sprite (png)")
	seed      = flag.Uint64("seed", 0, "Food seed, 0 for time based")
	logDir    = flag.String("logdir", "", "Directory for per-game logs")
	recordDir = flag.String("record", "", "Directory for frame recordings")
	debug     = flag.Bool("debug", false, "Write the game log to stdout")
	replay    = flag.String("replay", "", "Replay a recording (- for stdin) and print the final state")
	demo      = flag.Int("demo", 0, "Run the autopilot for n frames")
	tui       = flag.Bool("tui", false, "Play in the terminal with the mouse")
	console   = flag.Bool("keyboard", false, "Read r/q operator keys while serving")
)

func loadSprite(path string) game.FoodSprite {
	sprite, err := game.LoadFoodSprite(path)
	if err != nil {
		fmt.Printf("Using default food sprite: %v\n", err)
		return game.DefaultFoodSprite()
	}
	return sprite
}

func printState(st game.State) {
	body, _ := json.MarshalIndent(st, "", "  ")
	fmt.Println(string(body))
}

func main() {
	flag.Parse()
	if *replay != "" {
		in := os.Stdin
		if *replay != "-" {
			f, err := os.Open(*replay)
			if err != nil {
				panic(err)
			}
			defer f.Close()
			in = f
		}
		st, err := Replay(in)
		if err != nil {
			panic(err)
		}
		printState(st)
		return
	}

	opts := game.DefaultOptions()
	opts.Seed = *seed
	a, err := NewArena(ArenaConfig{
		Options:   opts,
		Sprite:    loadSprite(*foodPath),
		LogDir:    *logDir,
		RecordDir: *recordDir,
		Debug:     *debug,
	})
	if err != nil {
		panic(err)
	}
	defer a.Close()

	switch {
	case *demo > 0:
		printState(RunDemo(a, *demo, os.Stdout))
		return
	case *tui:
		if err := RunTUI(a); err != nil {
			panic(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *console {
		if err := StartConsole(a, stop); err != nil {
			fmt.Printf("Console disabled: %v\n", err)
		}
	}

	srv := &http.Server{Addr: *addr, Handler: NewRouter(a)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
	fmt.Printf("End game: %s\n", a.ID)
}
