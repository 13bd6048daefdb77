package rangemap

import (
	"github.com/b97tsk/rangeset"
)

func checkSeeds(seeds SeedSet) error {
	if len(seeds) == 0 {
		return ErrNoSeeds
	}
	for i, r := range seeds {
		if r.IsEmpty() {
			return errorf("%w: seed %d is %v", ErrEmptySeed, i, r)
		}
	}
	return nil
}

// Minimize returns the smallest forward image of any integer in seeds.
// Its cost grows with the number of rules the seeds touch, not with their
// lengths.
func Minimize(seeds SeedSet, s Stage) (int64, error) {
	if err := checkSeeds(seeds); err != nil {
		return 0, err
	}

	var (
		lowest int64
		found  bool
	)
	for _, r := range seeds {
		for _, g := range s.Partition(r) {
			if v := g.Min(); !found || v < lowest {
				lowest, found = v, true
			}
		}
	}
	return lowest, nil
}

// Image returns the forward image of seeds under s.
func Image(seeds SeedSet, s Stage) (rangeset.RangeSet[int64], error) {
	if err := checkSeeds(seeds); err != nil {
		return nil, err
	}

	var image rangeset.RangeSet[int64]
	for _, r := range seeds {
		for _, g := range s.Partition(r) {
			m := g.Image()
			image.AddRange(m.Start, m.End)
		}
	}
	return image, nil
}
