package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/freeslots/internal/scenario"
	"github.com/nikmy/freeslots/pkg/environment"
	"github.com/nikmy/freeslots/pkg/errors"
)

type Config struct {
	Environment environment.Env   `yaml:"Environment"`
	Meeting     scenario.Scenario `yaml:"Meeting"`
}

type flags struct {
	config   string
	scenario string
	env      string
	duration int
}

func parseFlags(args []string) (flags, error) {
	var f flags

	fs := flag.NewFlagSet("freeslots", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "path to yaml config, built-in sample when empty")
	fs.StringVar(&f.scenario, "scenario", "", "path to a plain scenario file, replaces the config's Meeting")
	fs.StringVar(&f.env, "env", "", "environment (dev, prod)")
	fs.IntVar(&f.duration, "duration", 0, "meeting duration in minutes, overrides config")

	err := fs.Parse(args)
	if err != nil {
		return flags{}, errors.WrapFail(err, "parse flags")
	}

	return f, nil
}

func loadConfig(args []string) (*Config, error) {
	f, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := Config{
		Environment: environment.Development,
		Meeting:     scenario.Sample(),
	}

	if f.config != "" {
		cfg, err = readConfig(f.config)
		if err != nil {
			return nil, err
		}
	}

	if f.scenario != "" {
		cfg.Meeting, err = scenario.Load(f.scenario)
		if err != nil {
			return nil, err
		}
	}

	if f.env != "" {
		cfg.Environment = environment.FromString(f.env)
	}

	if f.duration != 0 {
		cfg.Meeting.Duration = f.duration
	}

	err = scenario.Validate(cfg.Meeting)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(name string) (Config, error) {
	path, err := filepath.Abs(name)
	if err != nil {
		return Config{}, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WrapFailf(err, "read %q", name)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, errors.WrapFail(err, "parse yaml")
	}

	return cfg, nil
}
