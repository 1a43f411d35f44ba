package state

// EditState is the paint mode of the debug tile editor
type EditState int

const (
	EditIdle EditState = iota
	EditCreate
	EditDelete
)

// String returns the string representation of the edit state
func (s EditState) String() string {
	switch s {
	case EditIdle:
		return "Idle"
	case EditCreate:
		return "Create"
	case EditDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Painting reports whether a drag paints tiles
func (s EditState) Painting() bool {
	return s == EditCreate || s == EditDelete
}
