package benchmark

import (
	"sort"
	"time"
)

// Measure runs op exactly loopCount times sequentially and returns the
// wall-clock duration of each iteration in milliseconds. The first error
// aborts the measurement and propagates.
func Measure(loopCount int, op func() error) ([]float64, error) {
	times := make([]float64, 0, loopCount)
	for i := 0; i < loopCount; i++ {
		start := time.Now()
		if err := op(); err != nil {
			return nil, err
		}
		times = append(times, float64(time.Since(start))/float64(time.Millisecond))
	}
	return times, nil
}

// Stats summarizes a series of millisecond timings
type Stats struct {
	Min    float64
	Median float64
	Mean   float64
}

// Summarize computes order statistics over a copy of samples, leaving the
// input untouched. The median of an even-length series is the upper middle
// element. samples must not be empty.
func Summarize(samples []float64) Stats {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	sum := 0.0
	for _, s := range sorted {
		sum += s
	}
	return Stats{
		Min:    sorted[0],
		Median: sorted[len(sorted)/2],
		Mean:   sum / float64(len(sorted)),
	}
}
