// Package almanac reads pipelines of range maps and their seeds from text or
// YAML input.
package almanac

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/b97tsk/rangemap"
)

// An Almanac is a parsed input: the seed values and the stages to run them
// through, in input order.
type Almanac struct {
	Seeds    []int64
	Pipeline rangemap.Pipeline
}

// ValueSeeds treats every seed as a single value.
func (a *Almanac) ValueSeeds() rangemap.SeedSet {
	return rangemap.SeedValues(a.Seeds...)
}

// PairSeeds treats the seeds as (start, length) pairs.
func (a *Almanac) PairSeeds() (rangemap.SeedSet, error) {
	return rangemap.SeedPairs(a.Seeds...)
}

// Options control parsing.
type Options struct {
	// CheckChain requires stage names of the form "a-to-b" to link up,
	// each stage starting where the previous one ended.
	CheckChain bool
}

var ErrBrokenChain = errors.New("stages do not chain")

// A SyntaxError reports malformed input at a given line.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Load reads an almanac from the named file. Files ending in .yaml or .yml
// are decoded as YAML, anything else as text.
func Load(name string, opts Options) (*Almanac, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var a *Almanac
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		a, err = DecodeYAML(file)
	default:
		a, err = Parse(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	if opts.CheckChain {
		if err := CheckChain(a.Pipeline); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return a, nil
}

// CheckChain verifies that consecutive "a-to-b" stage names link up.
// Stages not named that way are not checked.
func CheckChain(p rangemap.Pipeline) error {
	var prev string
	for i, step := range p {
		from, to, ok := strings.Cut(step.Name, "-to-")
		if !ok {
			prev = ""
			continue
		}
		if i > 0 && prev != "" && from != prev {
			return fmt.Errorf("%w: %q follows %q", ErrBrokenChain, step.Name, p[i-1].Name)
		}
		prev = to
	}
	return nil
}
