package invaders

// Phase is the game loop state.
type Phase int

const (
	PhaseIntro      Phase = iota // Level 1, waiting for confirm
	PhaseLevelIntro              // Level > 1, waiting for confirm
	PhasePlaying
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseLevelIntro:
		return "level-intro"
	case PhasePlaying:
		return "playing"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}
