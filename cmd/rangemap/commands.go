package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/b97tsk/rangemap"
	"github.com/b97tsk/rangemap/almanac"
	"github.com/spf13/cobra"
)

type namedSeeds struct {
	name  string
	seeds rangemap.SeedSet
}

func (a *app) load(name string) (*almanac.Almanac, error) {
	al, err := almanac.Load(name, almanac.Options{CheckChain: a.cfg.CheckChain})
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded almanac", "file", name, "seeds", len(al.Seeds), "stages", len(al.Pipeline))
	return al, nil
}

func (a *app) reduce(al *almanac.Almanac) rangemap.Stage {
	s := rangemap.Reduce(al.Pipeline)
	a.logger.Debug("reduced pipeline", "stages", strings.Join(al.Pipeline.Names(), ","), "rules", s.Len())
	return s
}

func (a *app) seedSets(al *almanac.Almanac) ([]namedSeeds, error) {
	var sets []namedSeeds
	if a.cfg.Seeds == _seedsValues || a.cfg.Seeds == _seedsBoth {
		sets = append(sets, namedSeeds{_seedsValues, al.ValueSeeds()})
	}
	if a.cfg.Seeds == _seedsPairs || a.cfg.Seeds == _seedsBoth {
		seeds, err := al.PairSeeds()
		if err != nil {
			return nil, err
		}
		sets = append(sets, namedSeeds{_seedsPairs, seeds})
	}

	if a.cfg.MergeSeeds {
		for i := range sets {
			before := len(sets[i].seeds)
			sets[i].seeds = sets[i].seeds.Merge()
			a.logger.Debug("merged seeds", "mode", sets[i].name, "before", before, "after", len(sets[i].seeds))
		}
	}
	return sets, nil
}

// composedName names the stage that results from folding p, e.g.
// "seed-to-location" for a chain running from seed-to-soil to
// humidity-to-location.
func composedName(p rangemap.Pipeline) string {
	if len(p) == 0 {
		return "identity"
	}
	from, _, ok1 := strings.Cut(p[0].Name, "-to-")
	_, to, ok2 := strings.Cut(p[len(p)-1].Name, "-to-")
	if ok1 && ok2 {
		return from + "-to-" + to
	}
	return strings.Join(p.Names(), "+")
}

func (a *app) newMinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "min FILE",
		Short: "Print the lowest value any seed maps to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			al, err := a.load(args[0])
			if err != nil {
				return err
			}
			sets, err := a.seedSets(al)
			if err != nil {
				return err
			}
			s := a.reduce(al)

			for _, set := range sets {
				v, err := rangemap.Minimize(set.seeds, s)
				if err != nil {
					return fmt.Errorf("%s: %w", set.name, err)
				}
				a.logger.Debug("minimized", "mode", set.name, "ranges", len(set.seeds), "count", set.seeds.Count())
				fprintf(cmd.OutOrStdout(), "%s: %d\n", set.name, v)
			}
			return nil
		},
	}
}

func (a *app) newComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose FILE",
		Short: "Fold all maps of an almanac into a single map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			al, err := a.load(args[0])
			if err != nil {
				return err
			}
			s := a.reduce(al)
			name := composedName(al.Pipeline)

			w := cmd.OutOrStdout()
			if a.cfg.Output == _outputYAML {
				return almanac.EncodeYAML(w, &almanac.Almanac{
					Seeds:    al.Seeds,
					Pipeline: rangemap.Pipeline{{Name: name, Stage: s}},
				})
			}

			fprint(w, "seeds:")
			for _, v := range al.Seeds {
				fprint(w, " ", v)
			}
			fprintln(w)
			fprintln(w)
			fprintln(w, name, "map:")
			for _, r := range s.Rules() {
				fprintln(w, r.Dst.Start, r.Src.Start, r.Src.Len())
			}
			return nil
		},
	}
}

func (a *app) newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup FILE VALUE...",
		Short: "Trace values through every map of an almanac",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			al, err := a.load(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, arg := range args[1:] {
				x, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("bad value %q: %w", arg, err)
				}
				trace := al.Pipeline.Trace(x)
				parts := make([]string, len(trace))
				for i, v := range trace {
					parts[i] = strconv.FormatInt(v, 10)
				}
				fprintln(w, strings.Join(parts, " -> "))
			}
			return nil
		},
	}
}

func (a *app) newImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "image FILE",
		Short: "Print every range the seeds map to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			al, err := a.load(args[0])
			if err != nil {
				return err
			}
			sets, err := a.seedSets(al)
			if err != nil {
				return err
			}
			s := a.reduce(al)

			w := cmd.OutOrStdout()
			for _, set := range sets {
				image, err := rangemap.Image(set.seeds, s)
				if err != nil {
					return fmt.Errorf("%s: %w", set.name, err)
				}
				fprint(w, set.name, ":")
				for _, r := range image {
					fprint(w, " ", rangemap.Interval{Start: r.Low, End: r.High})
				}
				fprintln(w)
			}
			return nil
		},
	}
}
