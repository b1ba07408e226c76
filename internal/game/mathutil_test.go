package game

import "testing"

func TestRandDeterminism(t *testing.T) {
	a := NewRand(12345)
	b := NewRand(12345)
	for i := 0; i < 1000; i++ {
		if av, bv := a.NextU64(), b.NextU64(); av != bv {
			t.Fatalf("sequences diverged at draw %d: %d vs %d", i, av, bv)
		}
	}
}

func TestRandSeedsDiffer(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.NextU64() == b.NextU64() {
			same++
		}
	}
	if same > 0 {
		t.Errorf("different seeds produced %d identical draws out of 100", same)
	}
}

func TestRandZeroSeed(t *testing.T) {
	r := NewRand(0)
	if r.NextU64() == 0 {
		t.Error("zero seed must not produce the all-zero fixed point")
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 1000; i++ {
		if v := r.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", v)
		}
		if v := r.Intn(7); v < 0 || v >= 7 {
			t.Fatalf("Intn(7) out of range: %d", v)
		}
		if v := r.RangeF(5, 10); v < 5 || v >= 10 {
			t.Fatalf("RangeF(5,10) out of range: %v", v)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
	if r.RangeF(3, 3) != 3 {
		t.Error("RangeF with empty range should return min")
	}
}

func TestWrapTrack(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{100, 100},
		{TrackLength, 0},
		{TrackLength + 50, 50},
		{-50, TrackLength - 50},
		{2*TrackLength + 1, 1},
	}
	for _, c := range cases {
		if got := wrapTrack(c.in); got != c.want {
			t.Errorf("wrapTrack(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClampApproach(t *testing.T) {
	if got := clampF(5, 0, 1); got != 1 {
		t.Errorf("clampF(5,0,1) = %v", got)
	}
	if got := clampF(-5, 0, 1); got != 0 {
		t.Errorf("clampF(-5,0,1) = %v", got)
	}
	if got := clamp(7, 0, 2); got != 2 {
		t.Errorf("clamp(7,0,2) = %d", got)
	}
	if got := approach(0, 10, 3); got != 3 {
		t.Errorf("approach up = %v, want 3", got)
	}
	if got := approach(10, 0, 3); got != 7 {
		t.Errorf("approach down = %v, want 7", got)
	}
	if got := approach(9, 10, 3); got != 10 {
		t.Errorf("approach overshoot = %v, want 10", got)
	}
}
