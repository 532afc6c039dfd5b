package utils

import (
	"math/rand"
	"testing"
)

func TestRandRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := RandRange(rng, 3, 5)
		if v < 3 || v >= 8 {
			t.Fatalf("RandRange(3, 5) = %f, want [3, 8)", v)
		}
	}
	if v := RandRange(rng, 2, 0); v != 2 {
		t.Errorf("zero span should return min, got %f", v)
	}
}

func TestRandCentered(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sawNegative, sawPositive := false, false
	for i := 0; i < 1000; i++ {
		v := RandCentered(rng, 50)
		if v < -25 || v >= 25 {
			t.Fatalf("RandCentered(50) = %f, want [-25, 25)", v)
		}
		sawNegative = sawNegative || v < 0
		sawPositive = sawPositive || v > 0
	}
	if !sawNegative || !sawPositive {
		t.Error("expected values on both sides of zero")
	}
}
