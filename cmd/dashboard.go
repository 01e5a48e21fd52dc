package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mapointeuse/pointeuse/internal/tui"
)

// dashboardCmd opens the live terminal dashboard.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the live dashboard",
	Long: `Open a live terminal dashboard showing the current session, today's
sessions and this week's totals. The elapsed time updates every second
while a session is open.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(tui.DashboardConfig{
			Engine:      ctx.Engine,
			SessionRepo: ctx.SessionRepo,
		})
	},
}
