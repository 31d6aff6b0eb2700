package main // import "github.com/tonobo/fingersnake-go"

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tonobo/fingersnake-go/game"
)

const (
	ActionStart   = "start"
	ActionFrame   = "frame"
	ActionSkip    = "skip"
	ActionRestart = "restart"
)

// FrameRecord is one line of a game recording.
type FrameRecord struct {
	Seq      int         `json:"seq"`
	Time     time.Time   `json:"time"`
	Action   string      `json:"action"`
	Seed     uint64      `json:"seed,omitempty"`
	Sprite   *[2]int     `json:"sprite,omitempty"`
	Head     *game.Point `json:"head,omitempty"`
	Score    int         `json:"score"`
	GameOver bool        `json:"gameOver"`
}

// Recorder writes frame records as JSON lines from a background goroutine.
type Recorder struct {
	path    string
	file    *os.File
	writer  *bufio.Writer
	records chan FrameRecord
	wg      sync.WaitGroup
	mu      sync.Mutex
	seq     int
	closed  bool
}

func NewRecorder(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create record file: %w", err)
	}
	r := &Recorder{
		path:    path,
		file:    f,
		writer:  bufio.NewWriter(f),
		records: make(chan FrameRecord, RecordBuffer),
	}
	r.wg.Add(1)
	go r.writeLoop()
	return r, nil
}

func (r *Recorder) Path() string {
	return r.path
}

// RecordStep queues rec. It never blocks the frame loop: when the buffer is
// full the record is dropped.
func (r *Recorder) RecordStep(rec FrameRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	rec.Seq = r.seq
	select {
	case r.records <- rec:
		r.seq++
	default:
	}
}

// Close flushes pending records and closes the file.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.records)
	r.mu.Unlock()

	r.wg.Wait()
	r.file.Close()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	enc := json.NewEncoder(r.writer)
	for rec := range r.records {
		if err := enc.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording frame: %v\n", err)
		}
	}
	r.writer.Flush()
}
