package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// fakeRandom replays scripted draws. When a script runs out it returns the
// middle of the requested range and index 0.
type fakeRandom struct {
	ranges  []float64
	indexes []int

	rangeCalls [][2]float64
}

func (f *fakeRandom) Range(lo, hi float64) float64 {
	f.rangeCalls = append(f.rangeCalls, [2]float64{lo, hi})
	if len(f.ranges) == 0 {
		return (lo + hi) / 2
	}
	v := f.ranges[0]
	f.ranges = f.ranges[1:]
	return v
}

func (f *fakeRandom) Index(n int) int {
	if len(f.indexes) == 0 || n <= 0 {
		return 0
	}
	v := f.indexes[0]
	f.indexes = f.indexes[1:]
	return v % n
}

func TestResolveNoOverlap(t *testing.T) {
	tests := []struct {
		name   string
		moving core.Rect
		static core.Rect
	}{
		{"apart", core.NewRect(0, 0, 50, 50), core.NewRect(200, 200, 50, 50)},
		{"touching right edge", core.NewRect(0, 0, 50, 50), core.NewRect(50, 0, 50, 50)},
		{"touching bottom edge", core.NewRect(0, 0, 50, 50), core.NewRect(0, 50, 50, 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := &fakeRandom{}
			moving := tc.moving
			vel := core.Vec2{X: 0.3, Y: -0.7}

			if Resolve(&moving, &vel, tc.static, rng) {
				t.Error("Resolve() = true, expected false")
			}
			if moving != tc.moving {
				t.Errorf("moving = %+v, expected unchanged %+v", moving, tc.moving)
			}
			if vel != (core.Vec2{X: 0.3, Y: -0.7}) {
				t.Errorf("vel = %+v, expected unchanged", vel)
			}
			if len(rng.rangeCalls) != 0 {
				t.Errorf("no random draws expected, got %d", len(rng.rangeCalls))
			}
		})
	}
}

func TestResolveVerticalBounce(t *testing.T) {
	// Ball falling onto a paddle: overlap is 50 wide, 10 tall
	rng := &fakeRandom{ranges: []float64{0.1}}
	moving := core.NewRect(0, 0, 50, 50)
	vel := core.Vec2{X: 0.3, Y: 0.8}
	paddle := core.NewRect(-50, 40, 150, 40)

	if !Resolve(&moving, &vel, paddle, rng) {
		t.Fatal("Resolve() = false, expected true")
	}

	if moving.Y != -10 {
		t.Errorf("moving.Y = %v, expected -10", moving.Y)
	}
	if moving.X != 0 {
		t.Errorf("moving.X = %v, expected 0", moving.X)
	}
	if vel.Y != -0.8 {
		t.Errorf("vel.Y = %v, expected -0.8", vel.Y)
	}
	if vel.X != 0.4 {
		t.Errorf("vel.X = %v, expected 0.3 + 0.1 jitter", vel.X)
	}
	if len(rng.rangeCalls) != 1 || rng.rangeCalls[0] != [2]float64{-DefaultBounceJitter, DefaultBounceJitter} {
		t.Errorf("jitter draws = %v, expected one draw in [-0.2, 0.2)", rng.rangeCalls)
	}
}

func TestResolveVerticalBounceFromBelow(t *testing.T) {
	// Ball rising into a block: overlap is 50 wide, 5 tall
	rng := &fakeRandom{}
	moving := core.NewRect(0, 45, 50, 50)
	vel := core.Vec2{X: 0, Y: -1}
	block := core.NewRect(-35, 0, 120, 50)

	if !Resolve(&moving, &vel, block, rng) {
		t.Fatal("Resolve() = false, expected true")
	}

	if moving.Y != 50 {
		t.Errorf("moving.Y = %v, expected 50", moving.Y)
	}
	if vel.Y != 1 {
		t.Errorf("vel.Y = %v, expected 1", vel.Y)
	}
}

func TestResolveHorizontalBounce(t *testing.T) {
	// Overlap is 10 wide, 50 tall
	rng := &fakeRandom{}
	moving := core.NewRect(90, 10, 50, 50)
	vel := core.Vec2{X: 0.6, Y: 0.8}
	wall := core.NewRect(130, 0, 40, 100)

	if !Resolve(&moving, &vel, wall, rng) {
		t.Fatal("Resolve() = false, expected true")
	}

	if moving.X != 80 {
		t.Errorf("moving.X = %v, expected 80", moving.X)
	}
	if moving.Y != 10 {
		t.Errorf("moving.Y = %v, expected 10", moving.Y)
	}
	if vel.X != -0.6 {
		t.Errorf("vel.X = %v, expected -0.6", vel.X)
	}
	if vel.Y != 0.8 {
		t.Errorf("vel.Y = %v, expected unchanged 0.8", vel.Y)
	}
	if len(rng.rangeCalls) != 0 {
		t.Error("horizontal bounce should not draw jitter")
	}
}

func TestResolveTieBreak(t *testing.T) {
	tests := []struct {
		name      string
		static    core.Rect
		flipsX    bool
		expectedX float64
		expectedY float64
	}{
		// 10x10 corner overlap: width == height bounces on X
		{"square overlap", core.NewRect(40, 40, 50, 50), true, -10, 0},
		// 11 wide, 10 tall bounces on Y
		{"wider overlap", core.NewRect(39, 40, 50, 50), false, 0, -10},
		// 10 wide, 11 tall bounces on X
		{"taller overlap", core.NewRect(40, 39, 50, 50), true, -10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			moving := core.NewRect(0, 0, 50, 50)
			vel := core.Vec2{X: 0.6, Y: 0.8}

			if !Resolve(&moving, &vel, tc.static, &fakeRandom{}) {
				t.Fatal("Resolve() = false, expected true")
			}

			if tc.flipsX {
				if vel.X >= 0 || vel.Y != 0.8 {
					t.Errorf("vel = %+v, expected only X flipped", vel)
				}
			} else {
				if vel.Y >= 0 || vel.X != 0.6 {
					t.Errorf("vel = %+v, expected only Y flipped", vel)
				}
			}
			if moving.X != tc.expectedX || moving.Y != tc.expectedY {
				t.Errorf("moving = (%v, %v), expected (%v, %v)", moving.X, moving.Y, tc.expectedX, tc.expectedY)
			}
		})
	}
}

func TestResolveCenteredOverlap(t *testing.T) {
	// Identical rectangles have a zero center delta, which counts as positive
	moving := core.NewRect(0, 0, 50, 50)
	vel := core.Vec2{X: 0.5, Y: 0.5}

	if !Resolve(&moving, &vel, core.NewRect(0, 0, 50, 50), &fakeRandom{}) {
		t.Fatal("Resolve() = false, expected true")
	}

	if moving.X != -50 {
		t.Errorf("moving.X = %v, expected -50", moving.X)
	}
	if vel.X != -0.5 {
		t.Errorf("vel.X = %v, expected -0.5", vel.X)
	}
}

func TestResolveStaticUntouched(t *testing.T) {
	static := core.NewRect(10, 10, 100, 20)
	before := static
	moving := core.NewRect(0, 0, 50, 50)
	vel := core.Vec2{X: 1, Y: 1}

	Resolve(&moving, &vel, static, &fakeRandom{})

	if static != before {
		t.Errorf("static = %+v, expected unchanged %+v", static, before)
	}
}
