package almanac

import (
	"fmt"
	"io"

	"github.com/b97tsk/rangemap"
	"gopkg.in/yaml.v3"
)

type yamlRule struct {
	Dst int64 `yaml:"dst"`
	Src int64 `yaml:"src"`
	Len int64 `yaml:"len"`
}

type yamlStage struct {
	Name  string     `yaml:"name"`
	Rules []yamlRule `yaml:"rules,flow"`
}

type yamlAlmanac struct {
	Seeds  []int64     `yaml:"seeds,flow"`
	Stages []yamlStage `yaml:"stages"`
}

// DecodeYAML reads an almanac from a YAML document of the form
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - name: seed-to-soil
//	    rules:
//	      - {dst: 50, src: 98, len: 2}
func DecodeYAML(r io.Reader) (*Almanac, error) {
	var doc yamlAlmanac
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	a := &Almanac{Seeds: doc.Seeds}
	for i, st := range doc.Stages {
		rules := make([]rangemap.Rule, len(st.Rules))
		for j, r := range st.Rules {
			if r.Len < 0 {
				return nil, fmt.Errorf("stage %d (%s), rule %d: negative length %d", i, st.Name, j, r.Len)
			}
			rules[j] = rangemap.NewRule(r.Dst, r.Src, r.Len)
		}
		s, err := rangemap.NewStage(rules...)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, st.Name, err)
		}
		a.Pipeline = append(a.Pipeline, rangemap.Step{Name: st.Name, Stage: s})
	}
	return a, nil
}

func encodeStage(name string, s rangemap.Stage) yamlStage {
	st := yamlStage{Name: name, Rules: []yamlRule{}}
	for _, r := range s.Rules() {
		st.Rules = append(st.Rules, yamlRule{Dst: r.Dst.Start, Src: r.Src.Start, Len: r.Src.Len()})
	}
	return st
}

// EncodeYAML writes a in the form DecodeYAML reads.
func EncodeYAML(w io.Writer, a *Almanac) error {
	doc := yamlAlmanac{Seeds: a.Seeds}
	for _, step := range a.Pipeline {
		doc.Stages = append(doc.Stages, encodeStage(step.Name, step.Stage))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
