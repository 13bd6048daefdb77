package rangemap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const domain = 200

// randomStage cuts [0, domain) into blocks, keeps some of them as rule
// sources and lays their destinations out in shuffled order, so that both
// sides are disjoint.
func randomStage(rng *rand.Rand) Stage {
	var srcs []Interval
	low := int64(rng.Intn(20))
	for low < domain {
		high := low + 1 + int64(rng.Intn(30))
		if rng.Intn(3) > 0 {
			srcs = append(srcs, Interval{low, high})
		}
		low = high + int64(rng.Intn(10))
	}

	rng.Shuffle(len(srcs), func(i, j int) { srcs[i], srcs[j] = srcs[j], srcs[i] })

	rules := make([]Rule, len(srcs))
	dst := int64(rng.Intn(domain)) - domain/2
	for i, src := range srcs {
		rules[i] = Rule{Src: src, Dst: Interval{dst, dst + src.Len()}}
		dst += src.Len() + int64(rng.Intn(5))
	}
	return MustStage(rules...)
}

// randomLossyStage is like randomStage, but destinations may overlap.
func randomLossyStage(rng *rand.Rand) Stage {
	var rules []Rule
	low := int64(rng.Intn(20))
	for low < domain {
		high := low + 1 + int64(rng.Intn(30))
		dst := int64(rng.Intn(domain))
		rules = append(rules, Rule{Src: Interval{low, high}, Dst: Interval{dst, dst + high - low}})
		low = high + int64(rng.Intn(10))
	}
	return MustStage(rules...)
}

func TestNewStage(t *testing.T) {
	s, err := NewStage(NewRule(52, 50, 48), NewRule(50, 98, 2), NewRule(50, 98, 2), NewRule(0, 10, 0))
	require.NoError(t, err)
	assert.Equal(t, []Rule{NewRule(52, 50, 48), NewRule(50, 98, 2)}, s.Rules())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "{[50,98)->[52,100) [98,100)->[50,52)}", s.String())

	_, err = NewStage(NewRule(0, 10, 5), NewRule(100, 14, 5))
	assert.ErrorIs(t, err, ErrOverlappingRules)

	_, err = NewStage(Rule{Src: Interval{0, 5}, Dst: Interval{0, 4}})
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewStage(Rule{Src: Interval{5, 0}, Dst: Interval{5, 0}})
	assert.ErrorIs(t, err, ErrInvalidRule)

	// Touching rules are fine.
	_, err = NewStage(NewRule(0, 10, 5), NewRule(100, 15, 5))
	assert.NoError(t, err)

	assert.Panics(t, func() { MustStage(NewRule(0, 10, 5), NewRule(100, 12, 5)) })
}

func TestStageLookup(t *testing.T) {
	s := MustStage(NewRule(50, 98, 2), NewRule(52, 50, 48))

	tests := []struct {
		in, out int64
	}{
		{0, 0},
		{49, 49},
		{50, 52},
		{79, 81},
		{97, 99},
		{98, 50},
		{99, 51},
		{100, 100},
		{-7, -7},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.out, s.Lookup(tc.in, Forward), "forward %d", tc.in)
	}

	assert.Equal(t, int64(98), s.Lookup(50, Reverse))
	assert.Equal(t, int64(50), s.Lookup(52, Reverse))
	assert.Equal(t, int64(200), s.Lookup(200, Reverse))

	var identity Stage
	assert.Equal(t, int64(42), identity.Lookup(42, Forward))
	assert.Equal(t, int64(42), identity.Lookup(42, Reverse))
}

func TestStageIdentityOnHoles(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		s := randomStage(rng)
		for x := int64(-20); x < domain+20; x++ {
			covered := false
			for _, r := range s.Rules() {
				covered = covered || r.Src.Contains(x)
			}
			if !covered {
				require.Equal(t, x, s.Lookup(x, Forward), "stage %v, point %d", s, x)
			}
		}
	}
}

func TestStageRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 0; n < 50; n++ {
		s := randomStage(rng)
		for _, r := range s.Rules() {
			for x := r.Src.Start; x < r.Src.End; x++ {
				y := s.Lookup(x, Forward)
				require.Equal(t, x, s.Lookup(y, Reverse), "stage %v, point %d", s, x)
			}
		}
	}
}

func TestStagePartition(t *testing.T) {
	s := MustStage(NewRule(50, 98, 2), NewRule(52, 50, 48))

	assert.Nil(t, s.Partition(Interval{7, 7}))

	assert.Equal(t, []Segment{
		{Interval: Interval{79, 93}, Rule: NewRule(52, 50, 48), Mapped: true},
	}, s.Partition(Interval{79, 93}))

	assert.Equal(t, []Segment{
		{Interval: Interval{40, 50}},
		{Interval: Interval{50, 98}, Rule: NewRule(52, 50, 48), Mapped: true},
		{Interval: Interval{98, 100}, Rule: NewRule(50, 98, 2), Mapped: true},
		{Interval: Interval{100, 120}},
	}, s.Partition(Interval{40, 120}))

	// A rule ending exactly where the range starts contributes nothing.
	assert.Equal(t, []Segment{
		{Interval: Interval{100, 105}},
	}, s.Partition(Interval{100, 105}))

	// A rule starting exactly where the range ends contributes nothing.
	assert.Equal(t, []Segment{
		{Interval: Interval{45, 50}},
	}, s.Partition(Interval{45, 50}))
}

func TestStagePartitionCovers(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 200; n++ {
		s := randomLossyStage(rng)
		low := int64(rng.Intn(domain+40)) - 20
		r := Interval{low, low + int64(rng.Intn(domain))}

		segs := s.Partition(r)
		next := r.Start
		for _, g := range segs {
			require.False(t, g.IsEmpty(), "empty segment in %v", segs)
			require.Equal(t, next, g.Start, "segments of %v are not contiguous: %v", r, segs)
			next = g.End
			for x := g.Start; x < g.End; x++ {
				require.Equal(t, s.Lookup(x, Forward), g.Min()+(x-g.Start))
			}
		}
		require.Equal(t, r.End, next, "segments of %v do not reach its end: %v", r, segs)
	}
}

func TestPipelineLookup(t *testing.T) {
	p := Pipeline{
		{"seed-to-soil", MustStage(NewRule(50, 98, 2), NewRule(52, 50, 48))},
		{"soil-to-fertilizer", MustStage(NewRule(0, 15, 37), NewRule(37, 52, 2), NewRule(39, 0, 15))},
	}

	assert.Equal(t, []string{"seed-to-soil", "soil-to-fertilizer"}, p.Names())
	assert.Equal(t, int64(81), p.Lookup(79))
	assert.Equal(t, int64(53), p.Lookup(14))
	assert.Equal(t, []int64{79, 81, 81}, p.Trace(79))
	assert.Equal(t, []int64{14, 14, 53}, p.Trace(14))
	assert.Equal(t, int64(5), Pipeline(nil).Lookup(5))
}
