package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/ui"
)

var runLayout string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the quadchat window",
	Long: `Open the GTK4 window and build the four chat quadrants.

The layout mode defaults to the configured one:
  script   rebuild the host page into a grid and create views from the
           positions it reports
  direct   place the views at computed coordinates

Examples:
  quadchat run                   # Use the configured layout mode
  quadchat run --layout direct   # Skip the page round trip`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runLayout, "layout", "", "layout mode override (script or direct)")
}

func parseLayoutFlag(value string) (entity.LayoutMode, error) {
	if value == "" {
		return "", nil
	}
	mode := entity.LayoutMode(strings.ToLower(strings.TrimSpace(value)))
	if !mode.Valid() {
		return "", fmt.Errorf("invalid layout %q: must be %q or %q", value, entity.LayoutModeScript, entity.LayoutModeDirect)
	}
	return mode, nil
}

func runRun(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}
	if app.LoadErr != nil {
		return fmt.Errorf("load config: %w", app.LoadErr)
	}

	mode, err := parseLayoutFlag(runLayout)
	if err != nil {
		return err
	}

	code := ui.Launch(app.Ctx(), ui.LaunchOptions{
		Manager: app.Manager,
		Mode:    mode,
		Args:    os.Args[:1],
	})
	if code != 0 {
		return fmt.Errorf("quadchat exited with code %d", code)
	}
	return nil
}
