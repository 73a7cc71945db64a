package astitally

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterEach(t *testing.T) {
	c := NewCounter(2, CounterModeNormal, 1)
	var states [][]uint64
	c.Each(func(vs []uint64) bool {
		states = append(states, vs)
		return true
	})
	assert.Equal(t, [][]uint64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, states)
	assert.True(t, c.Overflowed())

	// Each starts over from the initial state, even mid-enumeration
	c.Advance()
	states = states[:0]
	c.Each(func(vs []uint64) bool {
		states = append(states, vs)
		return len(states) < 2
	})
	assert.Equal(t, [][]uint64{{0, 0}, {1, 0}}, states)
	assert.False(t, c.Overflowed())
}

func TestCounterStateCount(t *testing.T) {
	// Product of the number of values of each digit
	c := NewCounterWithLimits([]uint64{1, 2, 3})
	assert.Equal(t, big.NewInt(24), c.StateCount())
	assert.Len(t, enumerate(c), 24)

	// Ordered selections: 4*3*2
	c = NewCounter(3, CounterModeUniqueValues, 3)
	assert.Equal(t, big.NewInt(24), c.StateCount())
	assert.Len(t, enumerate(c), 24)

	// 5 choose 3
	c = NewCounter(3, CounterModeUniqueCombination, 4)
	assert.Equal(t, big.NewInt(10), c.StateCount())
	assert.Len(t, enumerate(c), 10)

	// Exactly one combination when the amount uses every distinct value
	c = NewCounter(4, CounterModeUniqueCombination, 3)
	assert.Equal(t, big.NewInt(1), c.StateCount())
	assert.Len(t, enumerate(c), 1)

	// Exceeds an uint64
	c = NewCounterWithLimits([]uint64{1<<32 - 1, 1<<32 - 1, 1})
	assert.Equal(t, "36893488147419103232", c.StateCount().String())
}
