package span

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestNewSwapsReversedBounds(t *testing.T) {
	sp := New(10, 4)
	assert.Equal(t, sp.Start, uint32(4))
	assert.Equal(t, sp.End, uint32(10))
}

func TestLenReturnsByteWidth(t *testing.T) {
	sp := New(4, 10)
	assert.Equal(t, sp.Len(), uint32(6))
}

func TestContains(t *testing.T) {
	outer := New(0, 10)
	assert.Assert(t, outer.Contains(New(2, 8)))
	assert.Assert(t, outer.Contains(New(0, 10)))
	assert.Assert(t, !outer.Contains(New(5, 11)))
}

func TestOverlaps(t *testing.T) {
	a := New(0, 5)
	assert.Assert(t, a.Overlaps(New(4, 9)))
	assert.Assert(t, !a.Overlaps(New(5, 9)))
	assert.Assert(t, !a.Overlaps(New(9, 12)))
}

func TestZeroIsEmptySpanAtOrigin(t *testing.T) {
	assert.Equal(t, Zero.Start, uint32(0))
	assert.Equal(t, Zero.End, uint32(0))
	assert.Equal(t, Zero.Len(), uint32(0))
}
