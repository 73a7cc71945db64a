// Package astitally implements a counter as a fixed-size sequence of bounded
// digits, like a mechanical tally counter.
//
// The counter operates in one of three modes. The normal mode works like
// mechanical counters: advancing it increments the first digit and when a
// digit rolls over, the next digit increments:
//
//	c := astitally.NewCounter(2, astitally.CounterModeNormal, 1)
//	for !c.Overflowed() {
//	    fmt.Println(c.ReadableString())
//	    c.Advance()
//	}
//	// [0 0]
//	// [0 1]
//	// [1 0]
//	// [1 1]
//
// The unique values mode never lets two digits hold the same value, which is
// useful to enumerate arrangements where every value stands for a distinct
// object. The same loop in that mode prints [0 1] then [1 0]. The unique
// combination mode additionally never lets a set of values that appeared
// together appear together again, regardless of order, which is useful to
// enumerate subsets: the same loop prints [0 1] only.
//
// The counter replaces statically nested for loops when the nesting depth is
// only known at runtime: each digit stands for one loop and each digit value
// for the value it would iterate over, which makes brute-force searches easy
// to write without recursion:
//
//	c := astitally.NewCounterWithLimits([]uint64{1, 2})
//	c.Each(func(vs []uint64) bool {
//	    fmt.Println(ops[vs[0]], operands[vs[1]])
//	    return true
//	})
//
// A Counter is not safe for concurrent use, callers sharing one across
// goroutines must serialize access themselves.
package astitally
