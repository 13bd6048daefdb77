package rangemap

// Direction selects which side of a Rule a point is matched against.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return "Direction(" + itoa(int(d)) + ")"
}

// A Rule maps Src onto Dst, which have the same length, by a constant offset.
type Rule struct {
	Src, Dst Interval
}

// NewRule builds a Rule from a (dst, src, length) triple.
func NewRule(dst, src, length int64) Rule {
	return Rule{
		Src: Interval{src, src + length},
		Dst: Interval{dst, dst + length},
	}
}

func (r Rule) Offset() int64 {
	return r.Dst.Start - r.Src.Start
}

func (r Rule) valid() bool {
	return r.Src.Start <= r.Src.End && r.Src.Len() == r.Dst.Len()
}

func (r Rule) side(dir Direction) Interval {
	if dir == Reverse {
		return r.Dst
	}
	return r.Src
}

func (r Rule) Contains(x int64, dir Direction) bool {
	return r.side(dir).Contains(x)
}

// Apply shifts x across the rule. x must be contained on the requested side.
func (r Rule) Apply(x int64, dir Direction) int64 {
	if !r.Contains(x, dir) {
		panic("rangemap: " + r.String() + " does not contain " + i64toa(x) + " (" + dir.String() + ")")
	}
	if dir == Reverse {
		return x - r.Offset()
	}
	return x + r.Offset()
}

func (r Rule) String() string {
	return r.Src.String() + "->" + r.Dst.String()
}
