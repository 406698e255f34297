package cli

import (
	"fmt"
	"strconv"

	"github.com/magical/recursive-adts/tree"
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Operations on labeled trees.",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "sort FILE",
		Short: "Relabel a tree so its pre-order reading is ascending.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd, args[0], tree.Decode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.Sort(t))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "leaves FILE",
		Short: "Count the leaves of a tree.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd, args[0], tree.Decode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.CountLeaves(t))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "has FILE VALUE",
		Short: "Report whether a value labels any node of a tree.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			t, err := load(cmd, args[0], tree.Decode)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tree.Has(t, v))
			return nil
		},
	})
	cmd.AddCommand(newMapCmd())
	return cmd
}

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map FILE",
		Short: "Replace every label v with v*MUL + ADD.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(cmd, args[0], tree.Decode)
			if err != nil {
				return err
			}
			add, mul := getInt(cmd, "add"), getInt(cmd, "mul")
			fmt.Fprintln(cmd.OutOrStdout(), tree.Map(t, func(v int) int { return v*mul + add }))
			return nil
		},
	}
	cmd.Flags().Int("add", 0, "amount added to every label")
	cmd.Flags().Int("mul", 1, "factor applied to every label before adding")
	return cmd
}
