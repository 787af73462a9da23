// Package replay records the per-tick input of a session and plays it
// back headlessly. Recordings are msgpack encoded.
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/flap-arcade/internal/core"
)

// FormatVersion is bumped whenever the encoding changes incompatibly.
const FormatVersion = 1

// ErrVersion is returned when loading a recording of another version.
var ErrVersion = errors.New("replay: unsupported recording version")

// Frame is the input of one tick. Ticks without input are not stored.
type Frame struct {
	Tick    int           `msgpack:"t"`
	Actions []core.Action `msgpack:"a"`
}

// Recording is everything needed to reproduce a session.
type Recording struct {
	Version    int     `msgpack:"v"`
	GameID     string  `msgpack:"game"`
	Difficulty string  `msgpack:"difficulty,omitempty"` // Preset the game was built with
	AssetsDir  string  `msgpack:"assets,omitempty"`     // Sprite directory that sized the hitboxes
	Seed       int64   `msgpack:"seed"`
	TickRate   int     `msgpack:"rate"`
	Ticks      int     `msgpack:"ticks"`
	Score      int     `msgpack:"score"` // Score observed when recording stopped
	Frames     []Frame `msgpack:"frames"`
}

// Marshal encodes a recording.
func Marshal(r *Recording) ([]byte, error) {
	data, err := msgpack.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a recording and checks its version.
func Unmarshal(data []byte) (*Recording, error) {
	var r Recording
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("replay: cannot decode: %w", err)
	}
	if r.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrVersion, r.Version)
	}
	return &r, nil
}

// Save writes a recording to path.
func Save(path string, r *Recording) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// Recorder collects the input of every tick.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a game run with cfg.
func NewRecorder(gameID string, cfg core.RuntimeConfig) *Recorder {
	return &Recorder{rec: Recording{
		Version:  FormatVersion,
		GameID:   gameID,
		Seed:     cfg.Seed,
		TickRate: cfg.TickRate,
	}}
}

// Record appends the input of the next tick.
func (r *Recorder) Record(in core.InputFrame) {
	if !in.Empty() {
		r.rec.Frames = append(r.rec.Frames, Frame{Tick: r.rec.Ticks, Actions: in.List()})
	}
	r.rec.Ticks++
}

// SetDifficulty notes the difficulty preset the game was created with.
func (r *Recorder) SetDifficulty(preset string) {
	r.rec.Difficulty = preset
}

// SetAssetsDir notes the sprite directory the game was created with.
func (r *Recorder) SetAssetsDir(dir string) {
	r.rec.AssetsDir = dir
}

// Ticks returns the number of recorded ticks.
func (r *Recorder) Ticks() int {
	return r.rec.Ticks
}

// Finish stamps the final score and returns a copy of the recording.
func (r *Recorder) Finish(score int) *Recording {
	out := r.rec
	out.Score = score
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return &out
}
