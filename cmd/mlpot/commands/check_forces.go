package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mlpot/internal/app"
)

func (c *CLI) newCheckForcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-forces <file>",
		Short: "Compare gradient-backend forces with finite differences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			frame, _ := cmd.Flags().GetInt("frame")
			check, err := c.app.CheckForces(cmd.Context(), app.CheckForcesOptions{
				ConfigPath: configPath(cmd),
				File:       args[0],
				Frame:      frame,
			})
			if err != nil {
				return err
			}

			method := "finite differences"
			if check.Analytic {
				method = "chain rule"
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s frame %d: %d atoms, energy %.8f eV\n",
				check.Source, check.Frame, check.Atoms, check.Energy)
			_, _ = fmt.Fprintf(out, "max force deviation %.3e eV/Å (gradient backend used %s)\n",
				check.MaxDeviation, method)
			return nil
		},
	}
	cmd.Flags().Int("frame", -1, "Frame index to check; negative values count from the end")
	return cmd
}
