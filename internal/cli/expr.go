package cli

import (
	"fmt"

	"github.com/magical/recursive-adts/expr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newExprCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expr",
		Short: "Operations on arithmetic expressions.",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show FILE",
		Short: "Print an expression in infix form.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := load(cmd, args[0], expr.Decode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), expr.Show(e))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "vars FILE",
		Short: "List the variables used by an expression.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := load(cmd, args[0], expr.Decode)
			if err != nil {
				return err
			}
			for _, name := range expr.Vars(e).Sorted() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})
	cmd.AddCommand(newEvalCmd())
	return cmd
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Evaluate an expression.",
		Long: "Evaluate an expression. Variables are assigned with --set name=value;\n" +
			"unassigned variables take the --default value.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := cmd.Flags().GetStringArray("set")
			if err != nil {
				return err
			}
			env, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			e, err := load(cmd, args[0], expr.Decode)
			if err != nil {
				return err
			}
			def := getInt(cmd, "default")
			for _, name := range expr.Vars(e).Sorted() {
				if _, ok := env[name]; !ok {
					log.Debugf("%s is unassigned, using default %d", name, def)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), expr.Eval(e, expr.Env(env), def))
			return nil
		},
	}
	cmd.Flags().StringArray("set", nil, "assign a variable, as name=value (repeatable)")
	cmd.Flags().Int("default", 0, "value of unassigned variables")
	return cmd
}
