package replay

import "github.com/younwookim/mg/internal/application/system"

// Version of the replay file format
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	J   bool `json:"j,omitempty"`   // Jump
	S   bool `json:"s,omitempty"`   // Shoot
	Dbg bool `json:"dbg,omitempty"` // ToggleDebug
	Rst bool `json:"rst,omitempty"` // Reset
	Q   bool `json:"q,omitempty"`   // Quit
	MX  int  `json:"mx"`            // MouseX
	MY  int  `json:"my"`            // MouseY
	MM  bool `json:"mm,omitempty"`  // MouseMoved
	MP  bool `json:"mp,omitempty"`  // MousePressed
	MR  bool `json:"mr,omitempty"`  // MouseReleased
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	Rows      []string     `json:"rows,omitempty"` // layout the session started on
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FromInput encodes one tick of input as frame f
func FromInput(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:   f,
		L:   in.Left,
		R:   in.Right,
		J:   in.Jump,
		S:   in.Shoot,
		Dbg: in.ToggleDebug,
		Rst: in.Reset,
		Q:   in.Quit,
		MX:  in.MouseX,
		MY:  in.MouseY,
		MM:  in.MouseMoved,
		MP:  in.MousePressed,
		MR:  in.MouseReleased,
	}
}

// Input decodes the frame back into an InputState
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:          fi.L,
		Right:         fi.R,
		Jump:          fi.J,
		Shoot:         fi.S,
		ToggleDebug:   fi.Dbg,
		Reset:         fi.Rst,
		Quit:          fi.Q,
		MouseX:        fi.MX,
		MouseY:        fi.MY,
		MouseMoved:    fi.MM,
		MousePressed:  fi.MP,
		MouseReleased: fi.MR,
	}
}
