package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/quadchat/internal/cli/styles"
	"github.com/bnema/quadchat/internal/domain/entity"
)

var (
	geometryWidth  int
	geometryHeight int
	geometryGap    float64
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Print the quadrant rectangles for a window size",
	Long: `Compute the four quadrant rectangles for a window size.

Width and height default to the configured window size. Without --gap the
quadrants tile the window exactly.

Examples:
  quadchat geometry
  quadchat geometry --width 1920 --height 1080 --gap 4`,
	Args: cobra.NoArgs,
	RunE: runGeometry,
}

func init() {
	rootCmd.AddCommand(geometryCmd)
	geometryCmd.Flags().IntVar(&geometryWidth, "width", 0, "window width in pixels (default: config window.width)")
	geometryCmd.Flags().IntVar(&geometryHeight, "height", 0, "window height in pixels (default: config window.height)")
	geometryCmd.Flags().Float64Var(&geometryGap, "gap", 0, "gutter between quadrants in pixels")
}

func runGeometry(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	width, height := geometryWidth, geometryHeight
	if width == 0 {
		width = app.Config.Window.Width
	}
	if height == 0 {
		height = app.Config.Window.Height
	}
	if width < 0 || height < 0 || geometryGap < 0 {
		return fmt.Errorf("size and gap must not be negative")
	}

	size := entity.Size{Width: float64(width), Height: float64(height)}
	rects := entity.ComputeQuadrantsWithGap(size, geometryGap)

	renderer := styles.NewQuadrantRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderGeometry(size, geometryGap, rects))
	return nil
}
