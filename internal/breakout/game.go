// Package breakout implements the brick breaker simulation: paddle, balls,
// blocks, shallow-axis collision resolution and the menu/playing/level
// complete/dead state machine. It draws nothing and reads no clock; hosts
// feed it input, elapsed time and the playfield size every frame.
package breakout

import (
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Game drives the state machine and the active round.
type Game struct {
	cfg   config.BreakoutConfig
	rng   core.Random
	state State
	tick  uint64
}

// New creates a game in the Menu state.
func New(cfg config.BreakoutConfig, rng core.Random) *Game {
	return &Game{
		cfg:   cfg,
		rng:   rng,
		state: Menu{},
	}
}

// Step advances the game by one frame of dt seconds.
// Negative dt is treated as zero. Confirm is expected to be edge-triggered.
func (g *Game) Step(in core.InputFrame, dt float64, bounds core.Bounds) core.StepResult {
	g.tick++
	dt = max(dt, 0)

	prev := g.state.Phase()
	newRound := func() *Round {
		return NewRound(g.cfg, bounds, g.rng)
	}

	switch st := g.state.(type) {
	case Playing:
		switch st.Round.Step(dt, Intent(in), bounds) {
		case OutcomeDead:
			g.state = Transition(g.state, EventLastLifeLost, newRound)
		case OutcomeCleared:
			g.state = Transition(g.state, EventBlocksCleared, newRound)
		}
	default:
		if in.Has(core.ActionConfirm) {
			g.state = Transition(g.state, EventConfirm, newRound)
		}
	}

	return core.StepResult{
		State:        g.State(),
		Transitioned: g.state.Phase() != prev,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase()
}

// Current returns the current state variant.
func (g *Game) Current() State {
	return g.state
}

// State returns the externally visible score and lives.
// Once a round has ended, lives are reported as zero.
func (g *Game) State() core.GameState {
	switch st := g.state.(type) {
	case Playing:
		return core.GameState{Score: st.Round.Score(), Lives: st.Round.Lives()}
	case LevelCompleted:
		return core.GameState{Score: st.Score, GameOver: true}
	case Dead:
		return core.GameState{Score: st.Score, GameOver: true}
	default:
		return core.GameState{Lives: g.cfg.Gameplay.Lives}
	}
}

// Tick returns the number of frames stepped so far.
func (g *Game) Tick() uint64 {
	return g.tick
}
