package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapointeuse/pointeuse/internal/errors"
	"github.com/mapointeuse/pointeuse/internal/model"
	"github.com/mapointeuse/pointeuse/internal/output"
	"github.com/mapointeuse/pointeuse/internal/validate"
)

// Workplace set flags.
var (
	wpFlagName        string
	wpFlagLat         float64
	wpFlagLon         float64
	wpFlagRadius      int
	wpFlagAutoStart   bool
	wpFlagAutoStop    bool
	wpFlagNotifyEnter bool
	wpFlagNotifyExit  bool
)

// workplaceCmd manages the geofenced workplace configuration.
var workplaceCmd = &cobra.Command{
	Use:     "workplace",
	Aliases: []string{"wp"},
	Short:   "Manage the workplace used for geofenced automation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorkplaceShow(cmd, args)
	},
}

// workplaceSetCmd creates or replaces the active workplace.
var workplaceSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace the active workplace",
	Long: `Create or replace the active workplace. Saving deactivates any
previously configured workplace; the watcher monitors the active one.

Examples:
  pointeuse workplace set --name Office --lat 48.8566 --lon 2.3522
  pointeuse workplace set --name Office --lat 48.8566 --lon 2.3522 --radius 150 --auto-start --auto-stop`,
	RunE: runWorkplaceSet,
}

// workplaceShowCmd prints the active workplace.
var workplaceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active workplace",
	RunE:  runWorkplaceShow,
}

// workplaceRemoveCmd deletes the active workplace.
var workplaceRemoveCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Remove the active workplace",
	RunE:    runWorkplaceRemove,
}

func init() {
	workplaceSetCmd.Flags().StringVar(&wpFlagName, "name", "", "Workplace name")
	workplaceSetCmd.Flags().Float64Var(&wpFlagLat, "lat", 0, "Latitude in degrees")
	workplaceSetCmd.Flags().Float64Var(&wpFlagLon, "lon", 0, "Longitude in degrees")
	workplaceSetCmd.Flags().IntVar(&wpFlagRadius, "radius", model.DefaultRadiusMeters, "Detection radius in meters")
	workplaceSetCmd.Flags().BoolVar(&wpFlagAutoStart, "auto-start", false, "Start a session automatically on arrival")
	workplaceSetCmd.Flags().BoolVar(&wpFlagAutoStop, "auto-stop", false, "Pause the session automatically on departure")
	workplaceSetCmd.Flags().BoolVar(&wpFlagNotifyEnter, "notify-enter", true, "Notify on arrival")
	workplaceSetCmd.Flags().BoolVar(&wpFlagNotifyExit, "notify-exit", true, "Notify on departure")

	workplaceCmd.AddCommand(workplaceSetCmd)
	workplaceCmd.AddCommand(workplaceShowCmd)
	workplaceCmd.AddCommand(workplaceRemoveCmd)
}

func runWorkplaceSet(cmd *cobra.Command, args []string) error {
	w := model.NewWorkplace(wpFlagName, wpFlagLat, wpFlagLon, wpFlagRadius)
	w.AutoStart = wpFlagAutoStart
	w.AutoStop = wpFlagAutoStop
	w.NotifyOnEnter = wpFlagNotifyEnter
	w.NotifyOnExit = wpFlagNotifyExit

	if err := validate.Workplace(w); err != nil {
		return err
	}
	if err := ctx.WorkplaceRepo.Upsert(w); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.WorkplaceResponse{Status: "saved", Workplace: w})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Workplace '%s' saved", w.Name))
	printWorkplaceDetails(w)
	return nil
}

func runWorkplaceShow(cmd *cobra.Command, args []string) error {
	w, err := ctx.WorkplaceRepo.GetActive()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		status := "active"
		if w == nil {
			status = "none"
		}
		return ctx.Formatter.JSON(&output.WorkplaceResponse{Status: status, Workplace: w})
	}

	cli := ctx.CLIFormatter()
	if w == nil {
		cli.Muted("No workplace configured.")
		cli.Muted("Use 'pointeuse workplace set' to create one.")
		return nil
	}
	cli.Title(w.Name)
	printWorkplaceDetails(w)
	return nil
}

func runWorkplaceRemove(cmd *cobra.Command, args []string) error {
	w, err := ctx.WorkplaceRepo.GetActive()
	if err != nil {
		return err
	}
	if w == nil {
		return errors.ErrWorkplaceNotFound
	}
	if err := ctx.WorkplaceRepo.Delete(w); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.WorkplaceResponse{Status: "removed", Workplace: w})
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Workplace '%s' removed", w.Name))
	return nil
}

func printWorkplaceDetails(w *model.Workplace) {
	cli := ctx.CLIFormatter()
	cli.Printf("  Location:  %.4f, %.4f\n", w.Latitude, w.Longitude)
	cli.Printf("  Radius:    %dm\n", w.RadiusMeters)
	cli.Printf("  Auto:      start=%v stop=%v\n", w.AutoStart, w.AutoStop)
	cli.Printf("  Notify:    enter=%v exit=%v\n", w.NotifyOnEnter, w.NotifyOnExit)
}
