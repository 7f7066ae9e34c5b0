package util

import "testing"

func TestBitSetSetTestClear(t *testing.T) {
	b := NewBitSet(70) // spans two words
	if b.Test(5) {
		t.Error("bit 5 should start clear")
	}
	b.Set(5)
	b.Set(65)
	if !b.Test(5) || !b.Test(65) {
		t.Error("Set bits should read back as set")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	b.Clear(5)
	if b.Test(5) {
		t.Error("bit 5 should be clear after Clear")
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBitSetOutOfRangeIsNoop(t *testing.T) {
	b := NewBitSet(10)
	b.Set(100)
	if b.Test(100) {
		t.Error("out-of-range Set should not be observable via Test")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestBitSetUnion(t *testing.T) {
	a := NewBitSet(10)
	a.Set(1)
	c := NewBitSet(10)
	c.Set(2)
	a.Union(c)
	if !a.Test(1) || !a.Test(2) {
		t.Error("Union should contain bits from both sets")
	}
}

func TestBitSetClone(t *testing.T) {
	a := NewBitSet(10)
	a.Set(3)
	clone := a.Clone()
	clone.Set(4)
	if a.Test(4) {
		t.Error("mutating clone should not affect original")
	}
	if !clone.Test(3) {
		t.Error("clone should carry over original bits")
	}
}

func TestBitSetUnionMismatchedWidthsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Union of mismatched widths should panic")
		}
	}()
	NewBitSet(10).Union(NewBitSet(20))
}
