package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/asticode/go-astikit"
	"github.com/asticode/go-astitally"
	"github.com/pkg/profile"
)

const (
	cmdCount = "count"
	cmdEnum  = "enum"
)

var (
	amount       = flag.Int("n", 2, "the amount of digits")
	cpuProfiling = flag.Bool("cpu-profiling", false, "if true, cpu profiling is enabled")
	limits       = flag.String("limits", "", "comma separated per-digit maximum values (forces normal mode)")
	maxValue     = flag.Uint64("max", 1, "the maximum value of each digit")
	mode         = flag.String("mode", astitally.CounterModeNormal.String(), "the counter mode (normal, unique-values or unique-combination)")
)

func main() {
	// Parse flags
	cmd := astikit.FlagCmd()
	flag.Parse()

	// Handle cpu profiling
	if *cpuProfiling {
		defer profile.Start(profile.CPUProfile, profile.NoShutdownHook).Stop()
	}

	// Create logger
	l := astikit.AdaptStdLogger(log.New(log.Writer(), log.Prefix(), log.Flags()))

	// Build counter
	c, err := newCounter()
	if err != nil {
		l.Fatal(fmt.Errorf("astitally: building counter failed: %w", err))
	}

	// Switch on command
	switch cmd {
	case cmdCount:
		fmt.Println(c.StateCount())
	case cmdEnum, "":
		c.Each(func(_ []uint64) bool {
			fmt.Println(c.ReadableString())
			return true
		})
	default:
		l.Fatalf("astitally: unknown command %s", cmd)
	}
}

func newCounter() (*astitally.Counter, error) {
	// Explicit limits force normal mode
	if *limits != "" {
		var ls []uint64
		for _, s := range strings.Split(*limits, ",") {
			v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("astitally: parsing limit %q failed: %w", s, err)
			}
			ls = append(ls, v)
		}
		return astitally.NewCounterWithLimits(ls), nil
	}
	m, err := astitally.ParseCounterMode(*mode)
	if err != nil {
		return nil, fmt.Errorf("astitally: parsing mode failed: %w", err)
	}
	return astitally.NewCounter(*amount, m, *maxValue), nil
}
