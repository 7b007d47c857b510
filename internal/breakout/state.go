package breakout

// Phase identifies which State variant is active.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLevelCompleted
	PhaseDead
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLevelCompleted:
		return "level_completed"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// State is one of Menu, Playing, LevelCompleted or Dead.
// Each variant carries only the data its phase needs.
type State interface {
	Phase() Phase
}

// Menu waits for confirm before the first round.
type Menu struct{}

// Playing runs a round.
type Playing struct {
	Round *Round
}

// LevelCompleted holds the final score of a cleared round.
type LevelCompleted struct {
	Score int
}

// Dead holds the final score of a lost round.
type Dead struct {
	Score int
}

func (Menu) Phase() Phase           { return PhaseMenu }
func (Playing) Phase() Phase        { return PhasePlaying }
func (LevelCompleted) Phase() Phase { return PhaseLevelCompleted }
func (Dead) Phase() Phase           { return PhaseDead }

// Event drives a State transition.
type Event int

const (
	EventConfirm       Event = iota // Player pressed confirm
	EventBlocksCleared              // The round has no blocks left
	EventLastLifeLost               // The round ran out of lives
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventConfirm:
		return "confirm"
	case EventBlocksCleared:
		return "blocks_cleared"
	case EventLastLifeLost:
		return "last_life_lost"
	default:
		return "unknown"
	}
}

// Transition returns the state that follows s on ev.
// Pairs with no transition return s unchanged. newRound is called only
// when a round starts, so every start gets a freshly initialised round.
func Transition(s State, ev Event, newRound func() *Round) State {
	switch st := s.(type) {
	case Menu, LevelCompleted, Dead:
		if ev == EventConfirm {
			return Playing{Round: newRound()}
		}
	case Playing:
		switch ev {
		case EventLastLifeLost:
			return Dead{Score: st.Round.Score()}
		case EventBlocksCleared:
			return LevelCompleted{Score: st.Round.Score()}
		}
	}
	return s
}
