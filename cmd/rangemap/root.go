package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

type app struct {
	cfgFile string
	cfg     *Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rangemap",
		Short: "Map integers through chains of range maps",
		Long: `rangemap reads an almanac of seeds and range maps, folds the maps into
a single stage and answers questions about where the seeds end up.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := loadConfig(a.cfgFile, cmd)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./rangemap.yaml)")
	flags.String("seeds", _defaultSeeds, "how to read the seeds line (values|pairs|both)")
	flags.Bool("merge-seeds", true, "merge overlapping seed ranges before mapping")
	flags.Bool("check-chain", true, "require a-to-b map names to link up")
	flags.StringP("output", "o", _defaultOutput, "output format (text|yaml)")
	flags.BoolP("verbose", "v", false, "log progress to stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("seeds", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{_seedsValues, _seedsPairs, _seedsBoth}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{_outputText, _outputYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(a.newMinCmd())
	rootCmd.AddCommand(a.newComposeCmd())
	rootCmd.AddCommand(a.newLookupCmd())
	rootCmd.AddCommand(a.newImageCmd())

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
