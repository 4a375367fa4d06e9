package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/quadchat/internal/cli/styles"
	"github.com/bnema/quadchat/internal/domain/entity"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the chat services loaded into each quadrant",
	Long: `Show both target tables: the one used when views are provisioned from
reported positions (script layout) and the one used by the direct layout.`,
	Args: cobra.NoArgs,
	RunE: runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

func runTargets(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	renderer := styles.NewQuadrantRenderer(app.Theme)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, renderer.RenderTargets("Script layout", entity.ProvisionTargets, entity.ProvisionedViewID))
	fmt.Fprintln(out, renderer.RenderTargets("Direct layout", entity.DirectTargets, func(i int) string {
		return entity.DirectViewID(entity.Slot(i))
	}))
	return nil
}
