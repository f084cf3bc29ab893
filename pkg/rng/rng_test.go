package rng

import "testing"

func TestBetween_Bounds(t *testing.T) {
	t.Parallel()

	r := NewSeeded(1)

	for _i := 0; _i < 10_000; _i++ {
		v := Between(r, 50, 250)
		if v < 50 || v > 250 {
			t.Fatalf("Between out of range: %d", v)
		}
	}

	if got := Between(r, 100, 100); got != 100 {
		t.Fatalf("degenerate range: want 100, got %d", got)
	}
	if got := Between(r, 100, 50); got != 100 {
		t.Fatalf("inverted range: want min, got %d", got)
	}
}

func TestChance_Extremes(t *testing.T) {
	t.Parallel()

	r := NewSeeded(2)

	if Chance(r, 0) {
		t.Fatal("p=0 must never succeed")
	}
	if !Chance(r, 1) {
		t.Fatal("p=1 must always succeed")
	}
}

func TestCrypto_Float64Range(t *testing.T) {
	t.Parallel()

	c := NewCrypto()

	for _i := 0; _i < 10_000; _i++ {
		f := c.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", f)
		}
	}
}

func TestCrypto_IntnRange(t *testing.T) {
	t.Parallel()

	c := NewCrypto()
	seen := make(map[int]bool)

	for _i := 0; _i < 10_000; _i++ {
		v := c.Intn(6)
		if v < 0 || v > 5 {
			t.Fatalf("Intn out of range: %d", v)
		}
		seen[v] = true
	}

	// All six faces should appear over 10k draws.
	if len(seen) != 6 {
		t.Fatalf("expected full coverage of [0,6), saw %d values", len(seen))
	}
}
