package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
)

func newTestRoot() *cobra.Command {
	root := NewRootCmd()
	_ = NewSearchCmd(root)
	_ = NewValueCmd(root)
	_ = NewLearnCmd(root)
	_ = NewVersionCmd(root)
	return root
}

// executeCommandC runs root with args and returns what it printed on
// stdout and stderr.
func executeCommandC(root *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	_, err = root.ExecuteC()
	return out.String(), errOut.String(), err
}
