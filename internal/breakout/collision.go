package breakout

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// DefaultBounceJitter is the largest horizontal nudge added on a vertical bounce.
const DefaultBounceJitter = 0.2

// Resolve pushes moving out of static and redirects vel away from it.
// Returns false, with nothing mutated, when the rectangles do not overlap.
//
// The bounce axis is the shallower penetration: an overlap wider than it is
// tall bounces on Y, anything else bounces on X. This approximates which face
// was hit first and is not exact for fast or small colliders; there is no
// swept collision. A vertical bounce also nudges vel.X by a random amount in
// [-DefaultBounceJitter, DefaultBounceJitter) without renormalizing.
func Resolve(moving *core.Rect, vel *core.Vec2, static core.Rect, rng core.Random) bool {
	return resolve(moving, vel, static, rng, DefaultBounceJitter)
}

func resolve(moving *core.Rect, vel *core.Vec2, static core.Rect, rng core.Random, jitter float64) bool {
	overlap, ok := moving.Intersect(static)
	if !ok {
		return false
	}

	// A zero delta counts as positive.
	toSign := static.Center().Sub(moving.Center()).Signum()

	if overlap.W > overlap.H {
		moving.Y -= toSign.Y * overlap.H
		vel.Y = -toSign.Y * math.Abs(vel.Y)
		if jitter > 0 {
			vel.X += rng.Range(-jitter, jitter)
		}
	} else {
		moving.X -= toSign.X * overlap.W
		vel.X = -toSign.X * math.Abs(vel.X)
	}
	return true
}
