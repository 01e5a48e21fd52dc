package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/output"
)

// startCmd clocks in a new session.
var startCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"in"},
	Short:   "Start a work session",
	Long: `Start a work session for today.

Fails if a session is already open; end or delete it first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := ctx.Engine.StartWork()
		if err != nil {
			return err
		}
		return printSessionResult(session, "started", func(cli *output.CLIFormatter) {
			cli.PrintSessionStarted(session)
		})
	},
}

// pauseCmd pauses the open session.
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := ctx.Engine.StartPause()
		if err != nil {
			return err
		}
		return printSessionResult(session, "paused", func(cli *output.CLIFormatter) {
			cli.Success("Session paused")
		})
	},
}

// resumeCmd resumes a paused session.
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused session",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := ctx.Engine.EndPause()
		if err != nil {
			return err
		}
		return printSessionResult(session, "resumed", func(cli *output.CLIFormatter) {
			cli.Success("Session resumed")
		})
	},
}

// stopCmd clocks out the open session.
var stopCmd = &cobra.Command{
	Use:     "stop",
	Aliases: []string{"end", "out"},
	Short:   "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := ctx.Engine.EndWork()
		if err != nil {
			return err
		}
		return printSessionResult(session, "ended", func(cli *output.CLIFormatter) {
			cli.PrintSessionEnded(session)
		})
	},
}

// printSessionResult renders a session mutation in the active format.
func printSessionResult(session *model.Session, status string, cliPrint func(*output.CLIFormatter)) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.SessionResponse{
			Status:  status,
			Session: output.NewSessionOutput(session),
		})
	}
	cliPrint(ctx.CLIFormatter())
	return nil
}
