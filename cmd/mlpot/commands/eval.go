package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mlpot/internal/app"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [files...]",
		Short: "Evaluate every frame of the given structure files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			properties, _ := cmd.Flags().GetStringSlice("properties")
			asJSON, _ := cmd.Flags().GetBool("json")
			showForces, _ := cmd.Flags().GetBool("show-forces")
			return c.app.Evaluate(cmd.Context(), app.EvalOptions{
				ConfigPath: configPath(cmd),
				Files:      args,
				Properties: properties,
				JSON:       asJSON,
				ShowForces: showForces,
				Overrides:  overrides(cmd),
			})
		},
	}
	addReportFlags(cmd)
	return cmd
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("properties", "p", []string{"energy"}, "Properties to compute (energy, forces)")
	cmd.Flags().Bool("json", false, "Write results as JSON")
	cmd.Flags().Bool("show-forces", false, "List per-atom forces in the text report")
}
