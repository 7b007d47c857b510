package breakout

import (
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Outcome is the result of stepping a round.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeDead             // Last life lost
	OutcomeCleared          // No blocks left
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeDead:
		return "dead"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Round owns one playthrough: paddle, balls, blocks, score and lives.
// A restart replaces the whole Round; fields are never reset piecemeal.
type Round struct {
	cfg config.BreakoutConfig
	rng core.Random

	player *Player
	balls  []*Ball
	blocks []*Block
	score  int
	lives  int
}

// NewRound sets up a fresh round: one ball at the center, the block grid
// and SpecialCount distinct blocks retagged to spawn a ball on death.
func NewRound(cfg config.BreakoutConfig, bounds core.Bounds, rng core.Random) *Round {
	r := &Round{
		cfg:    cfg,
		rng:    rng,
		player: NewPlayer(cfg.Player, bounds),
		lives:  cfg.Gameplay.Lives,
	}
	r.balls = []*Ball{r.serveBall(bounds)}
	r.blocks = layoutBlocks(cfg.Blocks, bounds)
	pickSpecials(r.blocks, cfg.Blocks.SpecialCount, rng)
	return r
}

// layoutBlocks places Columns*Rows blocks, Columns per line, centered horizontally.
func layoutBlocks(cfg config.BlocksConfig, bounds core.Bounds) []*Block {
	stepX := cfg.Width + cfg.PaddingX
	stepY := cfg.Height + cfg.PaddingY
	startX := (bounds.W - stepX*float64(cfg.Columns)) * 0.5

	blocks := make([]*Block, 0, cfg.Columns*cfg.Rows)
	for i := range cfg.Columns * cfg.Rows {
		col, row := i%cfg.Columns, i/cfg.Columns
		blocks = append(blocks, &Block{
			Rect:  core.NewRect(startX+float64(col)*stepX, cfg.Top+float64(row)*stepY, cfg.Width, cfg.Height),
			Lives: cfg.Lives,
			Kind:  BlockRegular,
		})
	}
	return blocks
}

// pickSpecials retags n distinct blocks using a partial Fisher-Yates shuffle.
func pickSpecials(blocks []*Block, n int, rng core.Random) {
	n = min(n, len(blocks))
	order := make([]int, len(blocks))
	for i := range order {
		order[i] = i
	}
	for i := range n {
		j := i + rng.Index(len(order)-i)
		order[i], order[j] = order[j], order[i]
		blocks[order[i]].Kind = BlockSpawnBallOnDeath
	}
}

// serveBall creates a ball at the playfield center.
func (r *Round) serveBall(bounds core.Bounds) *Ball {
	pos := core.Vec2{X: bounds.W*0.5 - r.cfg.Ball.Width*0.5, Y: bounds.H * 0.5}
	return NewBall(pos, r.cfg.Ball, r.rng)
}

// Step advances the round by dt seconds. The order of the phases matters:
// paddle, ball motion, paddle bounces, block hits, pruning, then life loss.
func (r *Round) Step(dt, intent float64, bounds core.Bounds) Outcome {
	r.player.Update(dt, intent, bounds)

	for _, b := range r.balls {
		b.Update(dt, bounds)
	}

	var spawn []*Ball
	for _, b := range r.balls {
		resolve(&b.Rect, &b.Vel, r.player.Rect, r.rng, r.cfg.Gameplay.BounceJitter)

		for _, blk := range r.blocks {
			// Depleted earlier this frame by another ball.
			if !blk.Alive() {
				continue
			}
			if !resolve(&b.Rect, &b.Vel, blk.Rect, r.rng, r.cfg.Gameplay.BounceJitter) {
				continue
			}
			blk.Lives--
			if blk.Alive() {
				continue
			}
			r.score += r.cfg.Gameplay.BlockPoints
			if blk.Kind == BlockSpawnBallOnDeath {
				spawn = append(spawn, NewBall(b.Rect.Point(), r.cfg.Ball, r.rng))
			}
		}
	}
	// Spawned balls join after the pass so they skip this frame's collisions.
	r.balls = append(r.balls, spawn...)

	r.blocks = pruneBlocks(r.blocks)

	wasLast := len(r.balls) == 1
	before := len(r.balls)
	r.balls = pruneBalls(r.balls, bounds)

	if len(r.balls) < before && wasLast {
		r.lives--
		if r.lives <= 0 {
			return OutcomeDead
		}
		r.balls = append(r.balls, r.serveBall(bounds))
	}

	if len(r.blocks) == 0 {
		return OutcomeCleared
	}
	return OutcomeContinue
}

func pruneBlocks(blocks []*Block) []*Block {
	kept := blocks[:0]
	for _, b := range blocks {
		if b.Alive() {
			kept = append(kept, b)
		}
	}
	clear(blocks[len(kept):])
	return kept
}

// pruneBalls drops balls whose top edge has reached the playfield bottom.
func pruneBalls(balls []*Ball, bounds core.Bounds) []*Ball {
	kept := balls[:0]
	for _, b := range balls {
		if b.Rect.Y < bounds.H {
			kept = append(kept, b)
		}
	}
	clear(balls[len(kept):])
	return kept
}

// Score returns the points collected this round.
func (r *Round) Score() int { return r.score }

// Lives returns the remaining lives.
func (r *Round) Lives() int { return r.lives }

// Player returns the paddle.
func (r *Round) Player() *Player { return r.player }

// Balls returns the live balls. The slice is owned by the round.
func (r *Round) Balls() []*Ball { return r.balls }

// Blocks returns the remaining blocks. The slice is owned by the round.
func (r *Round) Blocks() []*Block { return r.blocks }
