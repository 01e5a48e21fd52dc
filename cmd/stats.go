package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/output"
	"github.com/mapointeuse/pointeuse/internal/stats"
)

var statsFlagChart bool

// statsCmd shows aggregated statistics for a period.
var statsCmd = &cobra.Command{
	Use:   "stats [day|week|month|year]",
	Short: "Show worked-time statistics",
	Long: `Show totals, averages and the trend against the previous period.

The default period is the current week.

Examples:
  pointeuse stats
  pointeuse stats month
  pointeuse stats year --chart`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsFlagChart, "chart", false, "Show a per-day breakdown chart")
}

func errInvalidPeriod(arg string) error {
	return errors.NewValidationError("period",
		"unknown period '"+arg+"'",
		"Use one of: day, week, month, year")
}

func runStats(cmd *cobra.Command, args []string) error {
	period := stats.PeriodWeek
	if len(args) == 1 {
		p, ok := stats.ParsePeriod(args[0])
		if !ok {
			return errInvalidPeriod(args[0])
		}
		period = p
	}

	now := ctx.Clock.Now()
	start, end := stats.RangeFor(period, now)
	sessions, err := ctx.SessionRepo.ListBetween(start, end)
	if err != nil {
		return err
	}
	summary := stats.Aggregate(sessions)

	prevStart, prevEnd := stats.PreviousRange(start, end)
	previous, err := ctx.SessionRepo.ListBetween(prevStart, prevEnd)
	if err != nil {
		return err
	}
	trend := stats.TrendPercent(summary.TotalMinutes, stats.Aggregate(previous).TotalMinutes)

	if ctx.IsJSON() {
		resp := &output.StatsResponse{
			Period:       string(period),
			RangeStart:   start.Format(model.DateLayout),
			RangeEnd:     end.Format(model.DateLayout),
			Summary:      summary,
			TrendPercent: trend,
		}
		if period == stats.PeriodWeek {
			resp.ByWeekday = stats.ByWeekday(sessions)
		} else if period != stats.PeriodDay {
			resp.ByDate = stats.ByDate(sessions)
		}
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.PrintSummary(period, summary, trend)

	if statsFlagChart {
		cli.Println()
		if period == stats.PeriodWeek {
			cli.PrintWeekdayChart(stats.ByWeekday(sessions))
		} else {
			cli.PrintDateChart(stats.ByDate(sessions))
		}
	}
	return nil
}
