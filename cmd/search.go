package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/gridagents/gridworld"
	"github.com/CodeStranger-Fred/gridagents/mdp"
	"github.com/CodeStranger-Fred/gridagents/search"
)

func NewSearchCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "search",
		Short: "Find a path from the start cell to the best exit",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := setup(cmd)
			if err != nil {
				return err
			}
			heuristic, ok := gridworld.Heuristics(rc.cfg.Heuristic)
			if !ok {
				return fmt.Errorf("unknown heuristic %q", rc.cfg.Heuristic)
			}
			solve, err := search.Lookup(rc.cfg.Algorithm, heuristic)
			if err != nil {
				return err
			}

			problem := gridworld.NewPositionProblem(rc.world, "")
			if problem.Goal() == "" {
				rc.log.Warnf("Layout %s has no exit to search for", rc.world.Name)
				return fmt.Errorf("%w: layout %s has no exit", search.ErrNoPath, rc.world.Name)
			}
			path, err := solve(problem)
			if errors.Is(err, search.ErrNoPath) {
				rc.log.Warnf("No path from %s to %s", problem.StartState(), problem.Goal())
				return err
			}
			if err != nil {
				return err
			}

			cost := problem.CostOfActions(path)
			rc.log.WithFields(logrus.Fields{
				"algorithm": rc.cfg.Algorithm,
				"cost":      cost,
				"expanded":  len(problem.Expanded),
			}).Info("Search finished")

			p := rc.printer()
			p.PrintState(problem.StartState())
			fmt.Fprintf(rc.out, "path: %v\ncost: %v\nexpanded: %d\n", path, cost, len(problem.Expanded))
			p.PrintPolicy(pathPolicy(rc.world, problem.StartState(), path))
			return nil
		},
	}
	root.AddCommand(c)
	c.Flags().String("algorithm", "astar", fmt.Sprintf("Search algorithm, one of %v", search.Algorithms()))
	c.Flags().String("heuristic", "manhattan", "Heuristic for astar: null or manhattan")
	return c
}

// pathPolicy maps every cell on path to the action taken there.
func pathPolicy(w *gridworld.World, start mdp.State, path []mdp.Action) func(mdp.State) mdp.Action {
	taken := map[mdp.State]mdp.Action{}
	s := start
	for _, a := range path {
		taken[s] = a
		s = w.Shift(s, a)
	}
	return func(s mdp.State) mdp.Action { return taken[s] }
}

var _ = NewSearchCmd(rootCmd)
