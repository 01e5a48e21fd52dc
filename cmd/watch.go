package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/mapointeuse/pointeuse/internal/location"
	"github.com/mapointeuse/pointeuse/internal/notify"
	"github.com/mapointeuse/pointeuse/internal/watch"
)

// Watch command flags.
var (
	watchFlagSource   string
	watchFlagInterval time.Duration
	watchFlagWebhook  string
)

// watchCmd manages the geofence automation watcher.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run geofenced session automation",
}

// watchRunCmd runs the watcher in the foreground.
var watchRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the watcher in the foreground",
	Long: `Run the location watcher in the foreground.

The watcher samples the location source on an interval, detects arrival
at and departure from the active workplace, and starts or pauses the
work session after a cancellable countdown.

The location source is a text file holding the current coordinates as
'lat,lon' (last non-empty line wins), or '-' to stream fixes from stdin.

The watcher holds an exclusive lock on the database while it runs, so
other pointeuse commands fail with a lock error from a second terminal.
Stop it with 'pointeuse watch stop' before clocking in or out manually,
or let the geofence automation drive the session.

Examples:
  pointeuse watch run
  pointeuse watch run --source /tmp/position --interval 10s
  pointeuse watch run --webhook https://example.com/hooks/pointeuse`,
	RunE: runWatchRun,
}

// watchStopCmd signals a running watcher to shut down.
var watchStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running watcher",
	RunE:  runWatchStop,
}

// watchStatusCmd reports whether the watcher is running.
var watchStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show watcher status",
	RunE:  runWatchStatus,
}

func init() {
	watchRunCmd.Flags().StringVar(&watchFlagSource, "source",
		filepath.Join(xdg.StateHome, watch.AppName, "position"),
		"Location source file, or '-' for stdin")
	watchRunCmd.Flags().DurationVar(&watchFlagInterval, "interval", 30*time.Second,
		"Polling interval")
	watchRunCmd.Flags().StringVar(&watchFlagWebhook, "webhook", "",
		"Forward notifications to this URL as JSON")

	watchCmd.AddCommand(watchRunCmd)
	watchCmd.AddCommand(watchStopCmd)
	watchCmd.AddCommand(watchStatusCmd)
}

func runWatchRun(cmd *cobra.Command, args []string) error {
	pidFile := watch.NewPIDFile()
	if pid := pidFile.RunningPID(); pid != 0 {
		return fmt.Errorf("%w (pid %d)", watch.ErrAlreadyRunning, pid)
	}
	if err := pidFile.Write(); err != nil {
		return err
	}
	defer pidFile.Remove()

	var source location.Source
	if watchFlagSource == "-" {
		source = location.NewReaderSource(os.Stdin)
	} else {
		source = location.NewFileSource(watchFlagSource)
	}

	notifier := notify.Multi{notify.NewConsole()}
	if watchFlagWebhook != "" {
		notifier = append(notifier, notify.NewWebhook(watchFlagWebhook))
	}

	runner, err := watch.NewRunner(ctx.DB, ctx.Engine, ctx.Clock, watch.Options{
		Source:       source,
		Notifier:     notifier,
		PollInterval: watchFlagInterval,
	})
	if err != nil {
		return err
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Watching '%s' (every %s)", runner.Workplace().Name, watchFlagInterval))
	cli.Muted("Press Ctrl+C to stop.")

	runCtx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	handler := watch.NewSignalHandler()
	handler.Setup()
	go func() {
		handler.Wait(runCtx)
		cancel()
	}()
	defer handler.Stop()

	return runner.Run(runCtx)
}

func runWatchStop(cmd *cobra.Command, args []string) error {
	pidFile := watch.NewPIDFile()
	pid := pidFile.RunningPID()
	if pid == 0 {
		return watch.ErrNotRunning
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal watcher: %w", err)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{"status": "stopped", "pid": pid})
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Watcher stopped (pid %d)", pid))
	return nil
}

func runWatchStatus(cmd *cobra.Command, args []string) error {
	pid := watch.NewPIDFile().RunningPID()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"running": pid != 0,
			"pid":     pid,
		})
	}

	cli := ctx.CLIFormatter()
	if pid == 0 {
		cli.Muted("Watcher is not running.")
		return nil
	}
	cli.Success(fmt.Sprintf("Watcher is running (pid %d)", pid))
	return nil
}
