package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Read(viper.New(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "book", cfg.Layout)
	assert.Nil(t, cfg.Noise)
	assert.Nil(t, cfg.LivingReward)
	assert.Equal(t, 100, cfg.Iterations)
	assert.Equal(t, 0.9, cfg.Discount)
	assert.Equal(t, 0.05, cfg.Epsilon)
	assert.Equal(t, 0.2, cfg.Alpha)
	assert.Equal(t, 100, cfg.NumTraining)
	assert.Equal(t, "astar", cfg.Algorithm)
	assert.Equal(t, "manhattan", cfg.Heuristic)
	assert.Equal(t, 1, cfg.Runs)
	assert.True(t, cfg.Colors)
}

func TestReadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gridagents.yaml", `
layout: maze
noise: 0.1
discount: 0.5
episodes: 20
algorithm: bfs
`)
	t.Setenv("GRIDAGENTS_DISCOUNT", "0.7")
	t.Setenv("GRIDAGENTS_LIVING_REWARD", "-0.5")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("episodes", 5, "")
	flags.String("algorithm", "astar", "")
	flags.Int("max-steps", 10, "")
	require.NoError(t, flags.Parse([]string{"--episodes", "50", "--max-steps", "3"}))

	cfg, err := Read(viper.New(), dir, flags)
	require.NoError(t, err)
	assert.Equal(t, "maze", cfg.Layout)
	require.NotNil(t, cfg.Noise)
	assert.Equal(t, 0.1, *cfg.Noise)
	require.NotNil(t, cfg.LivingReward)
	assert.Equal(t, -0.5, *cfg.LivingReward)
	assert.Equal(t, 0.7, cfg.Discount)
	assert.Equal(t, 50, cfg.NumTraining)
	assert.Equal(t, 3, cfg.MaxSteps)
	// an unchanged flag does not shadow the file
	assert.Equal(t, "bfs", cfg.Algorithm)
}

func TestReadBadFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gridagents.yaml", "layout: [unclosed")
	_, err := Read(viper.New(), dir, nil)
	assert.ErrorContains(t, err, "reading config")
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg, err := Read(viper.New(), "", nil)
	require.NoError(t, err)

	bad := 1.5
	cfg.Noise = &bad
	cfg.Epsilon = -0.1
	cfg.Runs = 0
	cfg.Algorithm = "greedy"
	cfg.Extractor = "pixels"

	err = cfg.Validate()
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 5)
	assert.ErrorContains(t, err, "noise must be in [0, 1]")
	assert.ErrorContains(t, err, "unknown algorithm")
}

func TestWorld(t *testing.T) {
	cfg, err := Read(viper.New(), "", nil)
	require.NoError(t, err)

	w, err := cfg.World()
	require.NoError(t, err)
	assert.Equal(t, "book", w.Name)
	assert.Equal(t, 0.2, w.Noise)

	zero, living := 0.0, -0.04
	cfg.Noise = &zero
	cfg.LivingReward = &living
	w, err = cfg.World()
	require.NoError(t, err)
	assert.Equal(t, 0.0, w.Noise)
	assert.Equal(t, -0.04, w.LivingReward)

	cfg.Layout = writeFile(t, t.TempDir(), "tiny.yaml", "name: tiny\nrows:\n  - \"S 1\"\n")
	w, err = cfg.World()
	require.NoError(t, err)
	assert.Equal(t, "tiny", w.Name)

	cfg.Layout = "missing"
	_, err = cfg.World()
	assert.ErrorContains(t, err, "neither a builtin")
}

func TestNewLogger(t *testing.T) {
	v := viper.New()
	var out bytes.Buffer
	logger, err := NewLogger(v, &out)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	logger.Info("hello")
	assert.Contains(t, out.String(), "hello")

	v.Set("debug", true)
	v.Set("quiet", true)
	logfile := filepath.Join(t.TempDir(), "run.log")
	v.Set("logfile", logfile)
	out.Reset()
	logger, err = NewLogger(v, &out)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.Debug("to file")
	assert.Empty(t, out.String())
	data, err := os.ReadFile(logfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
