package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/charctl/internal/application/input"
	"github.com/younwookim/charctl/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid replay %s: %w", filename, err)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances.
// Returns false once every frame has been played. A frame that cannot be
// decoded plays as an empty frame so later frames keep their tick.
func (r *Replayer) Next() (input.Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.Frame{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++

	f, err := fi.Decode()
	if err != nil {
		return input.Frame{}, true
	}
	return f, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing, holding move every frame
func CreateTestReplayData(frames int, move entity.Vec2) ReplayData {
	data := ReplayData{
		Version:   Version,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: move.X,
			MY: move.Y,
		}
	}

	return data
}
