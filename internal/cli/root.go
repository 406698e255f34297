// Package cli implements the adt command line tool.
package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in at link time.
var Version = "dev"

const greeting = "Hello from adt!"

// NewRootCmd builds the adt command and all of its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "adt",
		Short: "Evaluate arithmetic expressions and sort labeled trees.",
		Long: "adt loads arithmetic expressions and integer-labeled trees from YAML files\n" +
			"and runs operations on them.",
		Version:      Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), greeting)
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().Bool("dump", false, "print the decoded input before running")

	root.AddCommand(newExprCmd())
	root.AddCommand(newTreeCmd())
	return root
}

// Execute runs the adt command with the process arguments.
// It is called by main.main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
