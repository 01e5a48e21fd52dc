// Package cmd provides the CLI commands for Pointeuse.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/logging"
	"github.com/mapointeuse/pointeuse/internal/output"
	"github.com/mapointeuse/pointeuse/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pointeuse",
	Short: "A personal time clock with geofenced automation",
	Long: `Pointeuse tracks your work day as clock-in-to-clock-out sessions and
can start or pause them automatically when you arrive at or leave your
workplace.

Examples:
  pointeuse start
  pointeuse pause
  pointeuse stop
  pointeuse stats week
  pointeuse workplace set --name Office --lat 48.8566 --lon 2.3522
  pointeuse watch run`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		if flagDebug {
			logging.InitDebug()
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the current session status.
		return runStatus(cmd, args)
	},
}

// runStatus shows the current open session, if any.
func runStatus(cmd *cobra.Command, args []string) error {
	open, err := ctx.Engine.Open()
	if err != nil {
		return err
	}

	now := ctx.Clock.Now()
	if ctx.IsJSON() {
		resp := &output.StatusResponse{Status: "idle"}
		if open != nil {
			resp.Status = string(open.Status)
			resp.Session = output.NewSessionOutput(open)
			resp.ElapsedSeconds = int64(open.Elapsed(now).Seconds())
		}
		return ctx.Formatter.JSON(resp)
	}

	ctx.CLIFormatter().PrintStatus(open, now)
	return nil
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(workplaceCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(versionCmd)
}

// statusCmd shows the current session status explicitly.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session status",
	RunE:  runStatus,
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("pointeuse %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil {
		ctx.ReportError(err)
	} else {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		if s := errors.Suggestion(err); s != "" {
			os.Stderr.WriteString(s + "\n")
		}
	}
	os.Exit(1)
}
