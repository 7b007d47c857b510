package core

import "testing"

func TestRandomDeterminism(t *testing.T) {
	a := NewRandom(12345)
	b := NewRandom(12345)

	for i := 0; i < 100; i++ {
		if x, y := a.Range(-1, 1), b.Range(-1, 1); x != y {
			t.Fatalf("Range() diverged at draw %d: %v vs %v", i, x, y)
		}
		if x, y := a.Index(30), b.Index(30); x != y {
			t.Fatalf("Index() diverged at draw %d: %d vs %d", i, x, y)
		}
	}
}

func TestRandomRange(t *testing.T) {
	r := NewRandom(7)

	for i := 0; i < 1000; i++ {
		v := r.Range(-0.2, 0.2)
		if v < -0.2 || v >= 0.2 {
			t.Fatalf("Range(-0.2, 0.2) = %v, out of bounds", v)
		}
	}

	// Empty range collapses to lo
	if v := r.Range(3, 3); v != 3 {
		t.Errorf("Range(3, 3) = %v, expected 3", v)
	}
}

func TestRandomIndex(t *testing.T) {
	r := NewRandom(99)

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		idx := r.Index(5)
		if idx < 0 || idx >= 5 {
			t.Fatalf("Index(5) = %d, out of bounds", idx)
		}
		seen[idx] = true
	}
	if len(seen) != 5 {
		t.Errorf("Index(5) should eventually produce every value, saw %d", len(seen))
	}

	if idx := r.Index(0); idx != 0 {
		t.Errorf("Index(0) = %d, expected 0", idx)
	}
}
