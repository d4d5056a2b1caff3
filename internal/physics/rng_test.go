package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceFloat64IsWithinUnitInterval(t *testing.T) {
	src := NewSource(42)
	for i := 0; i < 200; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestSourceIsDeterministicGivenSameSeed(t *testing.T) {
	a := NewSource(1234)
	b := NewSource(1234)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSourceDiffersAcrossSeeds(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestUniformRangeStaysWithinBounds(t *testing.T) {
	src := NewSource(9)
	for i := 0; i < 200; i++ {
		v := src.UniformRange(-2, 5)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 5.0)
	}
}
