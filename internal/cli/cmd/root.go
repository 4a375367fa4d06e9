// Package cmd provides Cobra CLI commands for quadchat.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/quadchat/internal/cli"
	"github.com/bnema/quadchat/internal/domain/build"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "quadchat",
		Short: "Four chat assistants in one window",
		Long: `QuadChat - four AI chat assistants side by side in a 2x2 grid.

One window, one WebKitGTK page, four quadrants. The host page is rebuilt
into a grid whose cells report their positions back; a child view is then
created on top of every cell. A direct mode skips the page round trip and
places the views at computed coordinates.

Use 'quadchat run' to open the window, or explore the subcommands to inspect
the chat targets, the quadrant geometry and the configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
