package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mlpot/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-evaluate the last frame of a file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			properties, _ := cmd.Flags().GetStringSlice("properties")
			asJSON, _ := cmd.Flags().GetBool("json")
			showForces, _ := cmd.Flags().GetBool("show-forces")
			metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				ConfigPath:  configPath(cmd),
				File:        args[0],
				Properties:  properties,
				JSON:        asJSON,
				ShowForces:  showForces,
				MetricsAddr: metricsAddr,
				Overrides:   overrides(cmd),
			})
		},
	}
	addReportFlags(cmd)
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}
