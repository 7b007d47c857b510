package breakout

import (
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Player is the paddle controlled by the user.
type Player struct {
	Rect  core.Rect
	Speed float64
}

// NewPlayer creates a paddle centered horizontally, BottomOffset above the playfield bottom.
func NewPlayer(cfg config.PlayerConfig, bounds core.Bounds) *Player {
	return &Player{
		Rect: core.NewRect(
			bounds.W*0.5-cfg.Width*0.5,
			bounds.H-cfg.BottomOffset,
			cfg.Width,
			cfg.Height,
		),
		Speed: cfg.Speed,
	}
}

// Update moves the paddle by intent*speed*dt and keeps it inside the playfield.
func (p *Player) Update(dt, intent float64, bounds core.Bounds) {
	p.Rect.X += intent * p.Speed * dt
	p.Rect.X = core.ClampF(p.Rect.X, 0, max(0, bounds.W-p.Rect.W))
}

// Intent converts held directional input into -1, 0 or +1.
// Both directions held cancel out.
func Intent(in core.InputFrame) float64 {
	var intent float64
	if in.Has(core.ActionLeft) {
		intent--
	}
	if in.Has(core.ActionRight) {
		intent++
	}
	return intent
}

// Ball is a moving square. Vel is a direction scaled by Speed each update.
type Ball struct {
	Rect  core.Rect
	Vel   core.Vec2
	Speed float64
}

// NewBall creates a ball at pos heading downward at a random horizontal angle.
func NewBall(pos core.Vec2, cfg config.BallConfig, rng core.Random) *Ball {
	return &Ball{
		Rect:  core.NewRect(pos.X, pos.Y, cfg.Width, cfg.Height),
		Vel:   core.Vec2{X: rng.Range(-1, 1), Y: 1}.Normalize(),
		Speed: cfg.Speed,
	}
}

// Update advances the ball and applies wall rules.
// Walls force the direction sign instead of reflecting it, and the position is left alone.
// The bottom edge is open.
func (b *Ball) Update(dt float64, bounds core.Bounds) {
	b.Rect.X += b.Vel.X * b.Speed * dt
	b.Rect.Y += b.Vel.Y * b.Speed * dt

	if b.Rect.X < 0 {
		b.Vel.X = 1
	}
	if b.Rect.Right() > bounds.W {
		b.Vel.X = -1
	}
	if b.Rect.Y < 0 {
		b.Vel.Y = 1
	}
}

// BlockKind tags what happens when a block is destroyed.
type BlockKind int

const (
	BlockRegular          BlockKind = iota
	BlockSpawnBallOnDeath           // Spawns an extra ball where the breaking ball was
)

// String returns the kind name.
func (k BlockKind) String() string {
	switch k {
	case BlockRegular:
		return "regular"
	case BlockSpawnBallOnDeath:
		return "spawn_ball"
	default:
		return "unknown"
	}
}

// Block is a brick in the grid.
type Block struct {
	Rect  core.Rect
	Lives int
	Kind  BlockKind
}

// Alive reports whether the block still has lives left.
func (b *Block) Alive() bool {
	return b.Lives > 0
}
