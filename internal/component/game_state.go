package component

// Phase of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDefeat:
		return "defeat"
	}
	return "unknown"
}

// GameState is the run-level state shared by the systems.
type GameState struct {
	Phase Phase
	// EndedAt is the frame time at which the run was lost.
	EndedAt float64
}
