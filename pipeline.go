package rangemap

// A Step is a named Stage within a Pipeline.
type Step struct {
	Name  string
	Stage Stage
}

// A Pipeline applies its steps in order.
type Pipeline []Step

func (p Pipeline) Lookup(x int64) int64 {
	for _, step := range p {
		x = step.Stage.Lookup(x, Forward)
	}
	return x
}

// Trace returns x followed by its value after each step.
func (p Pipeline) Trace(x int64) []int64 {
	trace := make([]int64, 0, len(p)+1)
	trace = append(trace, x)
	for _, step := range p {
		x = step.Stage.Lookup(x, Forward)
		trace = append(trace, x)
	}
	return trace
}

func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, step := range p {
		names[i] = step.Name
	}
	return names
}
