package rangemap

import (
	"github.com/b97tsk/rangeset"
)

// A SeedSet is a collection of input intervals. Seeds may overlap.
type SeedSet []Interval

// SeedValues returns one single-point interval per value.
func SeedValues(values ...int64) SeedSet {
	seeds := make(SeedSet, len(values))
	for i, v := range values {
		seeds[i] = Interval{v, v + 1}
	}
	return seeds
}

// SeedPairs reads values as (start, length) pairs.
func SeedPairs(values ...int64) (SeedSet, error) {
	if len(values)%2 != 0 {
		return nil, errorf("%w: %d", ErrOddSeedPairs, len(values))
	}
	seeds := make(SeedSet, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		start, length := values[i], values[i+1]
		if length < 0 {
			return nil, errorf("%w: negative length %d at pair %d", ErrEmptySeed, length, i/2)
		}
		seeds = append(seeds, Interval{start, start + length})
	}
	return seeds, nil
}

func (seeds SeedSet) set() rangeset.RangeSet[int64] {
	var s rangeset.RangeSet[int64]
	for _, r := range seeds {
		s.AddRange(r.Start, r.End)
	}
	return s
}

// Merge returns the seeds sorted, with overlapping and adjacent intervals
// joined and empty ones dropped.
func (seeds SeedSet) Merge() SeedSet {
	s := seeds.set()
	merged := make(SeedSet, len(s))
	for i, r := range s {
		merged[i] = Interval{r.Low, r.High}
	}
	return merged
}

// Count returns the number of distinct integers covered by the seeds.
func (seeds SeedSet) Count() int64 {
	var n int64
	for _, r := range seeds.set() {
		n += r.High - r.Low
	}
	return n
}
