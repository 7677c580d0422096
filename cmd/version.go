package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/gridagents/internal/version"
)

func NewVersionCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Args:  cobra.ExactArgs(0),
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			v := version.Get()
			commit := v.GitCommit
			if commit == "" {
				commit = "unknown"
			} else if len(commit) > 7 {
				commit = commit[:7]
			}
			if cmd.Flag("long").Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", v)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s+g%s\n", v.Version, commit)
			}
		},
	}
	root.AddCommand(c)
	c.Flags().Bool("long", false, "Print the full build info including the Go version")
	return c
}

var _ = NewVersionCmd(rootCmd)
