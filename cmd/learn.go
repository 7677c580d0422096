package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/gridagents/gridworld"
	"github.com/CodeStranger-Fred/gridagents/internal/config"
	"github.com/CodeStranger-Fred/gridagents/qlearning"
)

func NewLearnCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "learn",
		Short: "Train a Q-learning agent by playing episodes",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := setup(cmd)
			if err != nil {
				return err
			}
			cfg := rc.cfg
			log := rc.log.WithField("run", uuid.NewString())
			log.WithFields(logrus.Fields{
				"epsilon":   cfg.Epsilon,
				"alpha":     cfg.Alpha,
				"discount":  cfg.Discount,
				"episodes":  cfg.NumTraining,
				"extractor": cfg.Extractor,
			}).Info("Training started")

			var agent *qlearning.Agent
			curve := qlearning.RunRepeatedly(curveName(cfg), cfg.Runs, func(run int) []float64 {
				rng := newRand(seedFor(cfg.Seed, run))
				agent = newAgent(cfg, rc.world, rng, log.WithField("repetition", run))
				return qlearning.Train(rc.world, rc.world.Start(), agent, cfg.NumTraining, rng, cfg.MaxSteps)
			})

			p := rc.printer()
			fmt.Fprintf(rc.out, "VALUES AFTER %d EPISODES\n", agent.EpisodesSoFar())
			p.PrintValues(agent.Value)
			fmt.Fprintln(rc.out, "POLICY")
			p.PrintPolicy(agent.Policy)
			fmt.Fprintf(rc.out, "average return: %.4f\n", mean(curve.Returns))

			if cfg.Chart != "" {
				if err := writeChart(cfg.Chart, rc.world.Name, curve); err != nil {
					return err
				}
				log.Infof("Learning curve written to %s", cfg.Chart)
			}
			return nil
		},
	}
	root.AddCommand(c)
	c.Flags().Float64("epsilon", 0.05, "Exploration rate")
	c.Flags().Float64("alpha", 0.2, "Learning rate")
	c.Flags().Float64("discount", 0.9, "Discount factor")
	c.Flags().Int("episodes", 100, "Number of training episodes")
	c.Flags().String("extractor", "", "Approximate Q-learning features: identity or distance (empty for tabular)")
	c.Flags().Int("max-steps", 1000, "Cut episodes off after this many steps (0 for no limit)")
	c.Flags().Int("runs", 1, "Independent training runs averaged into the learning curve")
	c.Flags().Int64("seed", 0, "Random seed (0 seeds from the clock)")
	c.Flags().String("chart", "", "Write the learning curve as an HTML chart to this file")
	return c
}

func newAgent(cfg *config.Config, w *gridworld.World, rng *rand.Rand, log logrus.FieldLogger) *qlearning.Agent {
	opts := []qlearning.AgentOption{qlearning.WithRand(rng), qlearning.WithLogger(log)}
	switch cfg.Extractor {
	case "identity":
		return qlearning.NewApproximateAgent(cfg.Config, w.PossibleActions, qlearning.IdentityExtractor{}, opts...)
	case "distance":
		return qlearning.NewApproximateAgent(cfg.Config, w.PossibleActions, gridworld.DistanceExtractor{World: w}, opts...)
	}
	return qlearning.NewAgent(cfg.Config, w.PossibleActions, opts...)
}

func curveName(cfg *config.Config) string {
	if cfg.Extractor == "" {
		return fmt.Sprintf("q-learning eps=%g alpha=%g", cfg.Epsilon, cfg.Alpha)
	}
	return fmt.Sprintf("approximate q-learning (%s) eps=%g alpha=%g", cfg.Extractor, cfg.Epsilon, cfg.Alpha)
}

func seedFor(seed int64, run int) int64 {
	if seed == 0 {
		return 0
	}
	return seed + int64(run)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	total := 0.0
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}

func writeChart(path, title string, curves ...qlearning.Curve) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart: %w", err)
	}
	if err := qlearning.Plot(f, title, curves...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var _ = NewLearnCmd(rootCmd)
