package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/b97tsk/rangemap"
)

const (
	_seedsPrefix  = "seeds:"
	_headerSuffix = "map:"
	_maxLineSize  = 1024 * 1024
)

// Parse reads the text form of an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Every block is a header followed by "dest src length" lines, and ends at
// a blank line or at the end of input.
func Parse(r io.Reader) (*Almanac, error) {
	var (
		a      Almanac
		seeded bool
		name   string
		inMap  bool
		rules  []rangemap.Rule
		start  int
		lineNo int
	)

	flush := func() error {
		if !inMap {
			return nil
		}
		s, err := rangemap.NewStage(rules...)
		if err != nil {
			return &SyntaxError{Line: start, Msg: "map " + strconv.Quote(name), Err: err}
		}
		a.Pipeline = append(a.Pipeline, rangemap.Step{Name: name, Stage: s})
		name, inMap, rules = "", false, nil
		return nil
	}

	s := bufio.NewScanner(r)
	s.Buffer(nil, _maxLineSize)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())

		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}

		case strings.HasPrefix(line, _seedsPrefix):
			if seeded {
				return nil, &SyntaxError{Line: lineNo, Msg: "duplicate seeds line"}
			}
			seeds, err := parseInts(line[len(_seedsPrefix):])
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Msg: "bad seeds", Err: err}
			}
			a.Seeds, seeded = seeds, true

		case strings.HasSuffix(line, _headerSuffix):
			if err := flush(); err != nil {
				return nil, err
			}
			name = strings.TrimSpace(strings.TrimSuffix(line, _headerSuffix))
			if name == "" {
				return nil, &SyntaxError{Line: lineNo, Msg: "map without a name"}
			}
			inMap, start = true, lineNo

		default:
			if !inMap {
				return nil, &SyntaxError{Line: lineNo, Msg: "rule outside of a map: " + strconv.Quote(line)}
			}
			rule, err := parseRule(line)
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Msg: "bad rule", Err: err}
			}
			rules = append(rules, rule)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if !seeded {
		return nil, &SyntaxError{Line: lineNo, Msg: "missing seeds line"}
	}
	return &a, nil
}

func parseInts(s string) ([]int64, error) {
	fields := strings.Fields(s)
	values := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func parseRule(line string) (rangemap.Rule, error) {
	values, err := parseInts(line)
	if err != nil {
		return rangemap.Rule{}, err
	}
	if len(values) != 3 {
		return rangemap.Rule{}, fmt.Errorf("want 3 numbers, got %d", len(values))
	}
	if values[2] < 0 {
		return rangemap.Rule{}, fmt.Errorf("negative length %d", values[2])
	}
	return rangemap.NewRule(values[0], values[1], values[2]), nil
}
