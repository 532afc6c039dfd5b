package utils

import (
	"image/color"
	"testing"
)

func TestColorPaletteUniqueAmongOwners(t *testing.T) {
	p := NewColorPalette()
	seen := make(map[color.RGBA]uint64)

	for owner := uint64(1); owner <= 500; owner++ {
		c := p.Acquire(owner)
		if c.A != 0xff {
			t.Fatalf("owner %d: color should be opaque, got %+v", owner, c)
		}
		if prev, dup := seen[c]; dup {
			t.Fatalf("owner %d got the same color as owner %d: %+v", owner, prev, c)
		}
		seen[c] = owner
	}

	if p.Len() != 500 {
		t.Errorf("expected 500 owners, got %d", p.Len())
	}
}

func TestColorPaletteAcquireIsStable(t *testing.T) {
	p := NewColorPalette()
	first := p.Acquire(7)
	second := p.Acquire(7)
	if first != second {
		t.Errorf("repeated Acquire should return the same color: %+v vs %+v", first, second)
	}

	owner, ok := p.Owner(first)
	if !ok || owner != 7 {
		t.Errorf("expected owner 7, got %d (ok=%v)", owner, ok)
	}
}

func TestColorPaletteRelease(t *testing.T) {
	p := NewColorPalette()
	c := p.Acquire(1)
	p.Release(1)

	if p.Len() != 0 {
		t.Errorf("expected empty palette after release, got %d", p.Len())
	}
	if _, ok := p.Owner(c); ok {
		t.Error("released color should have no owner")
	}

	// 释放未知 owner 不应出错
	p.Release(42)
}

func TestFrameClock(t *testing.T) {
	var clock FrameClock

	if dt := clock.Tick(0); dt != 0 {
		t.Errorf("first tick at 0 should give 0, got %f", dt)
	}
	if dt := clock.Tick(16); dt != 16 {
		t.Errorf("expected 16, got %f", dt)
	}
	if dt := clock.Tick(48); dt != 32 {
		t.Errorf("expected 32, got %f", dt)
	}
	if dt := clock.Tick(40); dt != 0 {
		t.Errorf("time going backwards should give 0, got %f", dt)
	}
	if clock.LastTime() != 40 {
		t.Errorf("expected last time 40, got %f", clock.LastTime())
	}
}
