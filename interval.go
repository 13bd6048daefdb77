// Package rangemap maps integers through stages of offset-shifted intervals.
package rangemap

import (
	"strconv"
)

// An Interval is a half-open range [Start, End) of int64.
type Interval struct {
	Start, End int64
}

func NewInterval(start, end int64) Interval {
	if start > end {
		panic("rangemap: inverted interval " + Interval{start, end}.String())
	}
	return Interval{start, end}
}

func (r Interval) Len() int64 {
	return r.End - r.Start
}

func (r Interval) IsEmpty() bool {
	return r.Start >= r.End
}

func (r Interval) Contains(x int64) bool {
	return r.Start <= x && x < r.End
}

func (r Interval) Overlaps(o Interval) bool {
	return r.Start < o.End && o.Start < r.End
}

// Intersect returns the common part of r and o, or an empty interval
// positioned at the larger start.
func (r Interval) Intersect(o Interval) Interval {
	low, high := max(r.Start, o.Start), min(r.End, o.End)
	if low > high {
		high = low
	}
	return Interval{low, high}
}

func (r Interval) Shift(d int64) Interval {
	return Interval{r.Start + d, r.End + d}
}

func (r Interval) String() string {
	return "[" + strconv.FormatInt(r.Start, 10) + "," + strconv.FormatInt(r.End, 10) + ")"
}
