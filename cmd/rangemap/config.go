package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	_seedsValues = "values"
	_seedsPairs  = "pairs"
	_seedsBoth   = "both"

	_outputText = "text"
	_outputYAML = "yaml"

	_defaultSeeds  = _seedsBoth
	_defaultOutput = _outputText
	_configName    = "rangemap"
	_envPrefix     = "RANGEMAP"
)

// Config holds the settings shared by all commands.
type Config struct {
	Seeds      string `mapstructure:"seeds"`
	MergeSeeds bool   `mapstructure:"merge_seeds"`
	CheckChain bool   `mapstructure:"check_chain"`
	Output     string `mapstructure:"output"`
	Verbose    bool   `mapstructure:"verbose"`
}

// flag name -> config key
var _configFlags = map[string]string{
	"seeds":       "seeds",
	"merge-seeds": "merge_seeds",
	"check-chain": "check_chain",
	"output":      "output",
	"verbose":     "verbose",
}

// loadConfig merges, highest first: flags, RANGEMAP_* environment variables,
// the config file, defaults. With cfgFile empty, rangemap.yaml in the
// working directory is used if present.
func loadConfig(cfgFile string, cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetDefault("seeds", _defaultSeeds)
	v.SetDefault("merge_seeds", true)
	v.SetDefault("check_chain", true)
	v.SetDefault("output", _defaultOutput)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(_configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	for name, key := range _configFlags {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Seeds {
	case _seedsValues, _seedsPairs, _seedsBoth:
	default:
		return fmt.Errorf("invalid seeds mode %q (want %s, %s or %s)", cfg.Seeds, _seedsValues, _seedsPairs, _seedsBoth)
	}
	switch cfg.Output {
	case _outputText, _outputYAML:
	default:
		return fmt.Errorf("invalid output format %q (want %s or %s)", cfg.Output, _outputText, _outputYAML)
	}
	return nil
}
