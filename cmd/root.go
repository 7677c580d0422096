package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridagents",
		Short: "Search, planning and learning agents for grid worlds",
	}
	cmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	cmd.PersistentFlags().String("config-dir", "", "Directory holding gridagents.yaml")
	cmd.PersistentFlags().String("logfile", "", "Set logfile")
	cmd.PersistentFlags().Bool("quiet", false, "Do not log to stderr")
	cmd.PersistentFlags().String("layout", "book", "Builtin layout name or path to a YAML layout")
	cmd.PersistentFlags().Float64("noise", 0.2, "Probability of slipping sideways (overrides the layout)")
	cmd.PersistentFlags().Float64("living-reward", 0, "Reward for every non-exit step (overrides the layout)")
	cmd.PersistentFlags().Bool("colors", true, "Colorize grid output")
	return cmd
}

var rootCmd = NewRootCmd()

// Execute runs the gridagents command line and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
