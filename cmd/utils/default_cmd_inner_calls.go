package utils

import "github.com/spf13/cobra"

// DefaultPersistentPreRun runs the parent's PersistentPreRun, which cobra skips when a child
// defines its own.
var DefaultPersistentPreRun = func(cmd *cobra.Command, args []string) {
	if parent := cmd.Parent(); parent != nil && parent.PersistentPreRun != nil {
		parent.PersistentPreRun(parent, args)
	}
}
