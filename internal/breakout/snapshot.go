package breakout

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// BlockView is the renderable state of one block.
type BlockView struct {
	Rect  core.Rect
	Lives int
	Kind  BlockKind
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// Entity fields are empty outside the Playing phase.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Score  int
	Lives  int
	Player core.Rect
	Balls  []core.Rect
	Blocks []BlockView
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		Tick:  g.tick,
		Phase: g.state.Phase(),
		Score: st.Score,
		Lives: st.Lives,
	}

	playing, ok := g.state.(Playing)
	if !ok {
		return snap
	}
	r := playing.Round

	snap.Player = r.player.Rect
	snap.Balls = make([]core.Rect, len(r.balls))
	for i, b := range r.balls {
		snap.Balls[i] = b.Rect
	}
	snap.Blocks = make([]BlockView, len(r.blocks))
	for i, b := range r.blocks {
		snap.Blocks[i] = BlockView{Rect: b.Rect, Lives: b.Lives, Kind: b.Kind}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = hashRect(h, snap.Player)

	h = h*31 + uint64(len(snap.Balls))
	for _, b := range snap.Balls {
		h = hashRect(h, b)
	}

	h = h*31 + uint64(len(snap.Blocks))
	for _, b := range snap.Blocks {
		h = hashRect(h, b.Rect)
		h = h*31 + uint64(b.Lives) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Kind)  //#nosec G115 -- hash computation
	}

	return h
}

func hashRect(h uint64, r core.Rect) uint64 {
	h = h*31 + math.Float64bits(r.X)
	h = h*31 + math.Float64bits(r.Y)
	h = h*31 + math.Float64bits(r.W)
	h = h*31 + math.Float64bits(r.H)
	return h
}
