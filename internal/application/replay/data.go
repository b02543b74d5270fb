package replay

import (
	"fmt"

	"github.com/younwookim/charctl/internal/application/input"
	"github.com/younwookim/charctl/internal/domain/entity"
)

// Version is written into new recordings
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int      `json:"f"`            // Frame number
	MX float64  `json:"mx,omitempty"` // Move axis X
	MY float64  `json:"my,omitempty"` // Move axis Y, up positive
	P  []string `json:"p,omitempty"`  // Actions pressed this frame
	R  []string `json:"r,omitempty"`  // Actions released this frame
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Encode converts a hub frame into its recorded form
func Encode(n int, f input.Frame) FrameInput {
	return FrameInput{
		F:  n,
		MX: f.Move.X,
		MY: f.Move.Y,
		P:  actionNames(f.Pressed),
		R:  actionNames(f.Released),
	}
}

// Decode converts a recorded frame back into a hub frame
func (fi FrameInput) Decode() (input.Frame, error) {
	pressed, err := actionIDs(fi.P)
	if err != nil {
		return input.Frame{}, fmt.Errorf("frame %d: %w", fi.F, err)
	}
	released, err := actionIDs(fi.R)
	if err != nil {
		return input.Frame{}, fmt.Errorf("frame %d: %w", fi.F, err)
	}
	return input.Frame{
		Move:     entity.Vec2{X: fi.MX, Y: fi.MY},
		Pressed:  pressed,
		Released: released,
	}, nil
}

// Validate checks that every recorded action is known
func (d *ReplayData) Validate() error {
	for _, fi := range d.Frames {
		if _, err := fi.Decode(); err != nil {
			return err
		}
	}
	return nil
}

func actionNames(ids []input.ActionID) []string {
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}

func actionIDs(names []string) ([]input.ActionID, error) {
	if len(names) == 0 {
		return nil, nil
	}
	ids := make([]input.ActionID, 0, len(names))
	for _, name := range names {
		id, ok := input.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
