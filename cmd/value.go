package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/gridagents/mdp"
)

func NewValueCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "value",
		Short: "Run value iteration and print the values and greedy policy",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := setup(cmd)
			if err != nil {
				return err
			}
			vi := mdp.NewValueIteration(rc.world, rc.cfg.Discount, rc.cfg.Iterations, mdp.WithLogger(rc.log))
			rc.log.Infof("Value iteration on %s finished after %d iterations", rc.world.Name, vi.Iterations())

			p := rc.printer()
			fmt.Fprintf(rc.out, "VALUES AFTER %d ITERATIONS\n", vi.Iterations())
			p.PrintValues(vi.Value)
			fmt.Fprintln(rc.out, "POLICY")
			p.PrintPolicy(vi.Policy)
			start := rc.world.Start()
			fmt.Fprintf(rc.out, "start value: %.4f\n", vi.Value(start))
			return nil
		},
	}
	root.AddCommand(c)
	c.Flags().Float64("discount", 0.9, "Discount factor")
	c.Flags().Int("iterations", 100, "Number of value iteration sweeps")
	return c
}

var _ = NewValueCmd(rootCmd)
