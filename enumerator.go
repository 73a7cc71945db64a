package astitally

import "math/big"

// Each resets the counter then calls fn once per state, in enumeration
// order, until every valid state has been visited or fn returns false. Each
// call of fn receives a fresh copy of the digits, least significant first.
// After a complete walk the counter has wrapped back to its initial state
// with its overflow flag set
func (c *Counter) Each(fn func(values []uint64) bool) {
	c.Reset(false)
	for !c.overflowed {
		if !fn(c.Values()) {
			return
		}
		c.Advance()
	}
}

// StateCount returns the number of distinct valid states one full
// enumeration visits before overflowing. The count is exact even when it
// exceeds the range of an uint64
func (c *Counter) StateCount() *big.Int {
	one := big.NewInt(1)
	n := big.NewInt(1)
	switch c.mode {
	case CounterModeNormal:
		// Product of the number of values of each digit
		for _, l := range c.limits {
			v := new(big.Int).SetUint64(l)
			n.Mul(n, v.Add(v, one))
		}
	default:
		// Falling factorial: ordered selections of len(digits) distinct
		// values out of limit+1
		v := new(big.Int).SetUint64(c.limits[0])
		v.Add(v, one)
		for range c.digits {
			n.Mul(n, v)
			v.Sub(v, one)
		}
		if c.mode == CounterModeUniqueCombination {
			// Order doesn't matter, divide out the orderings
			n.Quo(n, new(big.Int).MulRange(1, int64(len(c.digits))))
		}
	}
	return n
}
