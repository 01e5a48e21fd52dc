package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/output"
	"github.com/mapointeuse/pointeuse/internal/stats"
)

var logFlagLimit int

// logCmd lists stored sessions.
var logCmd = &cobra.Command{
	Use:   "log [day|week|month|year]",
	Short: "List sessions",
	Long: `List stored sessions, newest first.

With a period argument, only sessions in the current period are shown.

Examples:
  pointeuse log
  pointeuse log week
  pointeuse log month --limit 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var sessions []*model.Session
		var err error

		if len(args) == 1 {
			period, ok := stats.ParsePeriod(args[0])
			if !ok {
				return errInvalidPeriod(args[0])
			}
			start, end := stats.RangeFor(period, ctx.Clock.Now())
			sessions, err = ctx.SessionRepo.ListBetween(start, end)
		} else {
			sessions, err = ctx.SessionRepo.List()
		}
		if err != nil {
			return err
		}

		if logFlagLimit > 0 && len(sessions) > logFlagLimit {
			sessions = sessions[:logFlagLimit]
		}

		return printSessions(sessions)
	},
}

// todayCmd lists today's sessions with the daily total.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's sessions and total",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := ctx.Engine.Today()
		if err != nil {
			return err
		}
		if err := printSessions(sessions); err != nil {
			return err
		}
		if ctx.IsJSON() {
			return nil
		}

		// The open session is not part of the total until it closes, so its
		// live elapsed time is reported on its own line.
		open, err := ctx.Engine.Open()
		if err != nil {
			return err
		}
		if open != nil {
			cli := ctx.CLIFormatter()
			cli.Printf("Open:  %s elapsed\n",
				cli.Duration(output.FormatDuration(open.Elapsed(ctx.Clock.Now()))))
		}
		return nil
	},
}

func init() {
	logCmd.Flags().IntVarP(&logFlagLimit, "limit", "n", 0, "Maximum number of sessions to show")
}

func printSessions(sessions []*model.Session) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewSessionsResponse(sessions))
	}

	cli := ctx.CLIFormatter()
	if len(sessions) == 0 {
		cli.Muted("No sessions.")
		return nil
	}
	for _, s := range sessions {
		cli.PrintSessionRow(s)
	}
	cli.Printf("Total: %s\n", cli.Duration(output.FormatMinutes(model.DailyTotal(sessions))))
	return nil
}
