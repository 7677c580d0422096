package cmd

import (
	"io"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/CodeStranger-Fred/gridagents/gridworld"
	"github.com/CodeStranger-Fred/gridagents/internal/config"
)

// runContext is what every subcommand needs once flags are parsed.
type runContext struct {
	cfg   *config.Config
	log   *logrus.Logger
	world *gridworld.World
	out   io.Writer
}

func setup(cmd *cobra.Command) (*runContext, error) {
	configDir, _ := cmd.Flags().GetString("config-dir")
	v := viper.New()
	cfg, err := config.Read(v, configDir, cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, err := config.NewLogger(v, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	w, err := cfg.World()
	if err != nil {
		return nil, err
	}
	// errors past this point are not usage errors
	cmd.SilenceUsage = true

	log.WithFields(logrus.Fields{
		"layout":        w.Name,
		"noise":         w.Noise,
		"living_reward": w.LivingReward,
	}).Debug("world loaded")
	return &runContext{cfg: cfg, log: log, world: w, out: cmd.OutOrStdout()}, nil
}

func (rc *runContext) printer() *gridworld.Printer {
	return rc.world.Printer(rc.out, rc.cfg.Colors)
}

// newRand seeds from the clock when seed is 0.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
