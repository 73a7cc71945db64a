package astitally

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// Errors
var ErrInvalidCounterMode = errors.New("astitally: invalid counter mode")

// CounterMode represents the way a counter advances through its states
type CounterMode int

const (
	// CounterModeNormal accepts every combination of digit values, like a
	// mechanical tally counter
	CounterModeNormal CounterMode = iota
	// CounterModeUniqueValues never lets two digits hold the same value
	CounterModeUniqueValues
	// CounterModeUniqueCombination never lets a set of values that appeared
	// together appear together again, regardless of order
	CounterModeUniqueCombination
)

// String implements the fmt.Stringer interface
func (m CounterMode) String() string {
	switch m {
	case CounterModeNormal:
		return "normal"
	case CounterModeUniqueValues:
		return "unique-values"
	case CounterModeUniqueCombination:
		return "unique-combination"
	default:
		return "unknown"
	}
}

// ParseCounterMode parses a counter mode out of its string representation
func ParseCounterMode(s string) (CounterMode, error) {
	switch s {
	case "normal":
		return CounterModeNormal, nil
	case "unique-values":
		return CounterModeUniqueValues, nil
	case "unique-combination":
		return CounterModeUniqueCombination, nil
	default:
		return 0, fmt.Errorf("astitally: parsing counter mode %q failed: %w", s, ErrInvalidCounterMode)
	}
}

// Counter represents a fixed-size ordered sequence of bounded digits that
// advances through a deterministic enumeration order
// https://en.wikipedia.org/wiki/Tally_counter
type Counter struct {
	// Digits are stored least significant first
	digits     []uint64
	limits     []uint64
	mode       CounterMode
	overflowed bool
}

// NewCounterWithLimits creates a new normal counter with one digit per
// provided maximum value. Maximum values smaller than 1 are raised to 1 and
// an empty input defaults to a single digit with a maximum value of 1
func NewCounterWithLimits(limits []uint64) (c *Counter) {
	c = &Counter{mode: CounterModeNormal}
	if len(limits) == 0 {
		c.limits = []uint64{1}
	} else {
		c.limits = slices.Clone(limits)
		for i, l := range c.limits {
			if l < 1 {
				c.limits[i] = 1
			}
		}
	}
	c.digits = make([]uint64, len(c.limits))
	return
}

// NewCounter creates a new counter with the provided amount of digits, all
// sharing the same maximum value. The maximum value and the amount are
// raised to 1 if smaller. In non normal modes there are only maxValue+1
// distinct values available therefore the amount is capped to that many
// digits
func NewCounter(amount int, mode CounterMode, maxValue uint64) (c *Counter) {
	if maxValue < 1 {
		maxValue = 1
	}
	if amount < 1 {
		amount = 1
	}
	if mode != CounterModeNormal {
		// maxValue+1 wraps to 0 when maxValue is the maximum uint64, in which
		// case no amount can exceed the number of distinct values
		if available := maxValue + 1; available != 0 && uint64(amount) > available {
			amount = int(available)
		}
	}
	c = &Counter{
		digits: make([]uint64, amount),
		limits: make([]uint64, amount),
		mode:   mode,
	}
	for i := range c.limits {
		c.limits[i] = maxValue
	}
	c.Reset(false)
	return
}

// Len returns the amount of digits
func (c *Counter) Len() int {
	return len(c.digits)
}

// Mode returns the counter mode
func (c *Counter) Mode() CounterMode {
	return c.mode
}

// Overflowed indicates whether the last advance wrapped past the final state
func (c *Counter) Overflowed() bool {
	return c.overflowed
}

// Limits returns a copy of the per-digit maximum values, least significant
// digit first
func (c *Counter) Limits() []uint64 {
	return slices.Clone(c.limits)
}

// Values returns a copy of the digits, least significant digit first
func (c *Counter) Values() []uint64 {
	return slices.Clone(c.digits)
}

// ReadableValues returns a copy of the digits in human readable order (as
// they appear on mechanical tally counters, most significant digit first)
func (c *Counter) ReadableValues() (vs []uint64) {
	vs = slices.Clone(c.digits)
	slices.Reverse(vs)
	return
}

// HasRepeatedValues indicates whether at least two digits hold the same value
func (c *Counter) HasRepeatedValues() bool {
	for j := 0; j < len(c.digits)-1; j++ {
		for i := j + 1; i < len(c.digits); i++ {
			if c.digits[i] == c.digits[j] {
				return true
			}
		}
	}
	return false
}

// HasRepeatedCombination indicates whether the current state is a reordering
// of a set of values already enumerated. Only states that decrease strictly
// along the digit axis are first occurrences, e.g. 01 is the first
// occurrence and 10 is the repeated one
func (c *Counter) HasRepeatedCombination() bool {
	for i := 0; i < len(c.digits)-1; i++ {
		if c.digits[i] <= c.digits[i+1] {
			return true
		}
	}
	return false
}

// rawAdvance increments the least significant digit and carries over digits
// that exceeded their maximum value. When the most significant digit
// overflows, the counter wraps back to its initial state
func (c *Counter) rawAdvance() {
	c.digits[0]++
	for i := 0; i < len(c.digits); i++ {
		if c.digits[i] != c.limits[i]+1 {
			continue
		}
		if i == len(c.digits)-1 {
			c.Reset(true)
			return
		}
		c.digits[i] = 0
		c.digits[i+1]++
	}
}

// Advance mutates the counter to its next state under the active mode. In
// non normal modes states violating the mode's constraint are skipped by
// advancing again until a valid state is reached, which the overflow reset
// pattern always is
func (c *Counter) Advance() {
	switch c.mode {
	case CounterModeUniqueValues:
		for {
			c.rawAdvance()
			if !c.HasRepeatedValues() {
				return
			}
		}
	case CounterModeUniqueCombination:
		for {
			c.rawAdvance()
			if !c.HasRepeatedCombination() {
				return
			}
		}
	default:
		c.rawAdvance()
	}
}

// Reset restores the counter to its initial state and sets the overflow
// flag. In normal mode all digits are set to zero; in non normal modes the
// digits are set to the descending pattern, the first state free of
// repeated values
func (c *Counter) Reset(overflow bool) {
	if c.mode == CounterModeNormal {
		for i := range c.digits {
			c.digits[i] = 0
		}
	} else {
		for i := range c.digits {
			c.digits[i] = uint64(len(c.digits) - 1 - i)
		}
	}
	c.overflowed = overflow
}

// String implements the fmt.Stringer interface, least significant digit
// first
func (c *Counter) String() string {
	return fmt.Sprint(c.digits)
}

// ReadableString returns a string representation of the counter in human
// readable order, most significant digit first
func (c *Counter) ReadableString() string {
	return fmt.Sprint(c.ReadableValues())
}
