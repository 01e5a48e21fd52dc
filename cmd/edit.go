package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/output"
	"github.com/mapointeuse/pointeuse/internal/parser"
	"github.com/mapointeuse/pointeuse/internal/storage"
)

// Edit command flags.
var (
	editFlagStart  string
	editFlagEnd    string
	editFlagNoEnd  bool
	editFlagStatus string
)

// editCmd adjusts a stored session.
var editCmd = &cobra.Command{
	Use:   "edit SESSION",
	Short: "Edit a session's times or status",
	Long: `Edit a stored session. Timestamps accept natural language.

Changing the end time recomputes the worked minutes. Clearing the end
time with --no-end reopens the session.

Examples:
  pointeuse edit 0195f1a2 --start "8:45"
  pointeuse edit 0195f1a2 --end "yesterday 17:30"
  pointeuse edit 0195f1a2 --no-end`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

// deleteCmd removes a session.
var deleteCmd = &cobra.Command{
	Use:     "delete SESSION",
	Aliases: []string{"rm"},
	Short:   "Delete a session",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := sessionKey(args[0])
		if _, err := ctx.SessionRepo.Get(key); err != nil {
			if storage.IsErrKeyNotFound(err) {
				return errors.NewNotFoundError("session not found",
					"Use 'pointeuse log' to list sessions and their keys")
			}
			return err
		}
		if err := ctx.Engine.DeleteSession(key); err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]string{"status": "deleted", "key": key})
		}
		ctx.CLIFormatter().Success("Session deleted")
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editFlagStart, "start", "", "New start timestamp")
	editCmd.Flags().StringVar(&editFlagEnd, "end", "", "New end timestamp")
	editCmd.Flags().BoolVar(&editFlagNoEnd, "no-end", false, "Clear the end time and reopen the session")
	editCmd.Flags().StringVar(&editFlagStatus, "status", "", "New status: in_progress, paused, completed")
}

// sessionKey normalizes a user-supplied session reference to a full key.
func sessionKey(ref string) string {
	if strings.HasPrefix(ref, model.PrefixSession+":") {
		return ref
	}
	return model.PrefixSession + ":" + ref
}

func runEdit(cmd *cobra.Command, args []string) error {
	key := sessionKey(args[0])

	session, err := ctx.SessionRepo.Get(key)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return errors.NewNotFoundError("session not found",
				"Use 'pointeuse log' to list sessions and their keys")
		}
		return err
	}

	now := ctx.Clock.Now()

	if editFlagStart != "" {
		start, err := parser.ParseTimestampAt(editFlagStart, now)
		if err != nil {
			return errors.Wrap(errors.ErrInvalidTimestamp, err.Error())
		}
		session.StartTime = start
	}

	if editFlagNoEnd {
		session.EndTime = time.Time{}
	} else if editFlagEnd != "" {
		end, err := parser.ParseTimestampAt(editFlagEnd, now)
		if err != nil {
			return errors.Wrap(errors.ErrInvalidTimestamp, err.Error())
		}
		session.EndTime = end
	}

	if editFlagStatus != "" {
		session.Status = model.Status(editFlagStatus)
	}

	if err := ctx.Engine.UpdateSession(session); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.SessionResponse{
			Status:  "updated",
			Session: output.NewSessionOutput(session),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success("Session updated")
	cli.PrintSessionRow(session)
	return nil
}
