package rangemap

import (
	"sort"
	"strings"
)

// A Stage is a set of non-overlapping rules, sorted by Src.Start.
// Points outside every rule map to themselves. The zero Stage is the identity.
type Stage struct {
	rules []Rule
}

// NewStage sorts rules by source start and drops duplicates. It fails if a
// rule is malformed or if two rules overlap on their source side.
// Empty rules are discarded.
func NewStage(rules ...Rule) (Stage, error) {
	s := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if !r.valid() {
			return Stage{}, errorf("%w: %v", ErrInvalidRule, r)
		}
		if !r.Src.IsEmpty() {
			s = append(s, r)
		}
	}

	sort.Slice(s, func(i, j int) bool {
		if s[i].Src.Start != s[j].Src.Start {
			return s[i].Src.Start < s[j].Src.Start
		}
		return s[i].Dst.Start < s[j].Dst.Start
	})

	j := 0
	for i := range s {
		if j > 0 && s[i] == s[j-1] {
			continue
		}
		if j > 0 && s[i].Src.Overlaps(s[j-1].Src) {
			return Stage{}, errorf("%w: %v and %v", ErrOverlappingRules, s[j-1], s[i])
		}
		s[j] = s[i]
		j++
	}

	return Stage{s[:j]}, nil
}

// MustStage is like NewStage but panics on error.
func MustStage(rules ...Rule) Stage {
	s, err := NewStage(rules...)
	if err != nil {
		panic("rangemap: " + err.Error())
	}
	return s
}

func (s Stage) Len() int {
	return len(s.rules)
}

// Rules returns a copy of the stage's rules.
func (s Stage) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// search returns the index of the first rule whose Src ends after x.
func (s Stage) search(x int64) int {
	return sort.Search(len(s.rules), func(i int) bool { return s.rules[i].Src.End > x })
}

// Lookup maps x through the stage in the given direction.
func (s Stage) Lookup(x int64, dir Direction) int64 {
	if dir == Forward {
		i := s.search(x)
		if i < len(s.rules) && s.rules[i].Contains(x, Forward) {
			return s.rules[i].Apply(x, Forward)
		}
		return x
	}
	for _, r := range s.rules {
		if r.Contains(x, Reverse) {
			return r.Apply(x, Reverse)
		}
	}
	return x
}

// A Segment is a piece of an interval that a Stage maps by a single offset.
// When Mapped is false the segment lies in a gap and maps to itself.
type Segment struct {
	Interval
	Rule   Rule
	Mapped bool
}

// Min returns the forward image of the segment's smallest point.
func (g Segment) Min() int64 {
	if g.Mapped {
		return g.Rule.Apply(g.Start, Forward)
	}
	return g.Start
}

// Image returns the forward image of the whole segment.
func (g Segment) Image() Interval {
	if g.Mapped {
		return g.Interval.Shift(g.Rule.Offset())
	}
	return g.Interval
}

// Partition splits r at every rule boundary that falls inside it. The
// segments are in ascending order and cover r exactly.
func (s Stage) Partition(r Interval) []Segment {
	if r.IsEmpty() {
		return nil
	}

	var segs []Segment
	low := r.Start
	for i := s.search(r.Start); i < len(s.rules) && s.rules[i].Src.Start < r.End; i++ {
		rule := s.rules[i]
		if low < rule.Src.Start {
			segs = append(segs, Segment{Interval: Interval{low, rule.Src.Start}})
			low = rule.Src.Start
		}
		high := min(rule.Src.End, r.End)
		segs = append(segs, Segment{Interval: Interval{low, high}, Rule: rule, Mapped: true})
		low = high
	}
	if low < r.End {
		segs = append(segs, Segment{Interval: Interval{low, r.End}})
	}
	return segs
}

func (s Stage) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range s.rules {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte('}')
	return b.String()
}
