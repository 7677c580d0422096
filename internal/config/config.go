// Package config reads gridagents settings from gridagents.yaml, the
// environment and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CodeStranger-Fred/gridagents/gridworld"
	"github.com/CodeStranger-Fred/gridagents/internal/logging"
	"github.com/CodeStranger-Fred/gridagents/qlearning"
	"github.com/CodeStranger-Fred/gridagents/search"
)

const (
	EnvPrefix = "GRIDAGENTS"
	FileName  = "gridagents"
)

var extractors = []string{"", "identity", "distance"}

type Config struct {
	// Layout is a builtin layout name or the path of a YAML layout file.
	Layout       string   `mapstructure:"layout"`
	Noise        *float64 `mapstructure:"noise"`
	LivingReward *float64 `mapstructure:"living_reward"`
	Colors       bool     `mapstructure:"colors"`

	Iterations int `mapstructure:"iterations"`

	qlearning.Config `mapstructure:",squash"`
	Extractor        string `mapstructure:"extractor"`
	MaxSteps         int    `mapstructure:"max_steps"`
	Runs             int    `mapstructure:"runs"`
	Seed             int64  `mapstructure:"seed"`
	Chart            string `mapstructure:"chart"`

	Algorithm string `mapstructure:"algorithm"`
	Heuristic string `mapstructure:"heuristic"`
}

func setDefaults(v *viper.Viper) {
	q := qlearning.DefaultConfig()
	v.SetDefault("layout", "book")
	v.SetDefault("colors", true)
	v.SetDefault("iterations", 100)
	v.SetDefault("epsilon", q.Epsilon)
	v.SetDefault("alpha", q.Alpha)
	v.SetDefault("discount", 0.9)
	v.SetDefault("episodes", 100)
	v.SetDefault("extractor", "")
	v.SetDefault("max_steps", 1000)
	v.SetDefault("runs", 1)
	v.SetDefault("seed", 0)
	v.SetDefault("chart", "")
	v.SetDefault("algorithm", "astar")
	v.SetDefault("heuristic", "manhattan")
}

// Read loads configDir/gridagents.yaml if present, then GRIDAGENTS_* env
// vars, then any flag in flags the user actually set. Flag names use
// dashes where config keys use underscores.
func Read(v *viper.Viper, configDir string, flags *pflag.FlagSet) (*Config, error) {
	setDefaults(v)

	if configDir != "" {
		v.AddConfigPath(configDir)
		v.SetConfigType("yaml")
		v.SetConfigName(FileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config in %s: %w", configDir, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	// keys without a default are unknown to AutomaticEnv
	_ = v.BindEnv("noise")
	_ = v.BindEnv("living_reward")
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.Visit(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				bindErr = multierror.Append(bindErr, err)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate reports every out of range setting at once.
func (c *Config) Validate() error {
	var errs error
	unit := func(name string, x float64) {
		if x < 0 || x > 1 {
			errs = multierror.Append(errs, fmt.Errorf("%s must be in [0, 1], got %v", name, x))
		}
	}
	if c.Noise != nil {
		unit("noise", *c.Noise)
	}
	unit("discount", c.Discount)
	unit("epsilon", c.Epsilon)
	unit("alpha", c.Alpha)
	if c.Iterations < 0 {
		errs = multierror.Append(errs, fmt.Errorf("iterations must not be negative, got %d", c.Iterations))
	}
	if c.NumTraining < 0 {
		errs = multierror.Append(errs, fmt.Errorf("episodes must not be negative, got %d", c.NumTraining))
	}
	if c.MaxSteps < 0 {
		errs = multierror.Append(errs, fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps))
	}
	if c.Runs < 1 {
		errs = multierror.Append(errs, fmt.Errorf("runs must be at least 1, got %d", c.Runs))
	}
	if !contains(search.Algorithms(), c.Algorithm) {
		errs = multierror.Append(errs, fmt.Errorf("unknown algorithm %q, want one of %v", c.Algorithm, search.Algorithms()))
	}
	if _, ok := gridworld.Heuristics(c.Heuristic); !ok {
		errs = multierror.Append(errs, fmt.Errorf("unknown heuristic %q", c.Heuristic))
	}
	if !contains(extractors, c.Extractor) {
		errs = multierror.Append(errs, fmt.Errorf("unknown extractor %q, want identity or distance", c.Extractor))
	}
	return errs
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// World builds the configured grid. Noise and living reward, when set,
// override what the layout says.
func (c *Config) World() (*gridworld.World, error) {
	var (
		w   *gridworld.World
		err error
	)
	if contains(gridworld.Builtins(), c.Layout) {
		w, err = gridworld.Builtin(c.Layout)
	} else {
		w, err = loadLayoutFile(c.Layout)
	}
	if err != nil {
		return nil, err
	}
	if c.Noise != nil {
		w.Noise = *c.Noise
	}
	if c.LivingReward != nil {
		w.LivingReward = *c.LivingReward
	}
	return w, w.Check()
}

func loadLayoutFile(path string) (*gridworld.World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout %q is neither a builtin (%s) nor a readable file: %w",
			path, strings.Join(gridworld.Builtins(), ", "), err)
	}
	defer f.Close()
	return gridworld.LoadLayout(f)
}

// NewLogger honours the debug, quiet and logfile settings.
func NewLogger(v *viper.Viper, stdout io.Writer) (*logrus.Logger, error) {
	logger := logging.New(stdout, logging.LevelFor(v.GetBool("debug")))

	logfile := v.GetString("logfile")
	if logfile == "" {
		if v.GetBool("quiet") {
			logger.SetOutput(io.Discard)
		}
		return logger, nil
	}

	o, err := os.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fs.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("opening %s for logging: %w", logfile, err)
	}
	if v.GetBool("quiet") {
		logger.SetOutput(o)
	} else {
		logger.SetOutput(io.MultiWriter(stdout, o))
	}
	return logger, nil
}
