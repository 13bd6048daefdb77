package rangemap

import (
	"sort"
)

// Compose returns a Stage that maps x the way second.Lookup(first.Lookup(x))
// does in the forward direction.
//
// Each rule of first is split by second's source boundaries on the
// intermediate domain, so that both legs are a single offset on every piece.
// Where first is the identity, second's rules apply unchanged, minus the
// parts already claimed by first's sources.
//
// The result drops pieces whose total offset is zero and merges adjacent
// pieces that share an offset, so equivalent compositions compare equal.
func Compose(first, second Stage) Stage {
	var rules []Rule

	for _, r := range first.rules {
		for _, g := range second.Partition(r.Dst) {
			rules = append(rules, Rule{
				Src: g.Interval.Shift(-r.Offset()),
				Dst: g.Image(),
			})
		}
	}

	for _, r := range second.rules {
		for _, g := range first.Partition(r.Src) {
			if g.Mapped {
				continue
			}
			rules = append(rules, Rule{
				Src: g.Interval,
				Dst: g.Interval.Shift(r.Offset()),
			})
		}
	}

	return Stage{canonical(rules)}
}

// canonical sorts disjoint rules, drops identity pieces and coalesces
// contiguous rules with equal offsets.
func canonical(rules []Rule) []Rule {
	sort.Slice(rules, func(i, j int) bool { return rules[i].Src.Start < rules[j].Src.Start })

	j := 0
	for _, r := range rules {
		if r.Src.IsEmpty() || r.Offset() == 0 {
			continue
		}
		if j > 0 {
			last := &rules[j-1]
			if last.Src.Overlaps(r.Src) {
				panic("rangemap: composition produced overlapping rules " + last.String() + " and " + r.String())
			}
			if last.Src.End == r.Src.Start && last.Offset() == r.Offset() {
				last.Src.End = r.Src.End
				last.Dst.End = r.Dst.End
				continue
			}
		}
		rules[j] = r
		j++
	}

	if j == 0 {
		return nil
	}
	return rules[:j:j]
}

// Reduce composes the steps of p, left to right, into a single Stage.
// An empty Pipeline reduces to the identity.
func Reduce(p Pipeline) Stage {
	if len(p) == 0 {
		return Stage{}
	}
	s := p[0].Stage
	for _, step := range p[1:] {
		s = Compose(s, step.Stage)
	}
	return s
}
