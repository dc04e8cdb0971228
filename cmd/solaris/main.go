package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "solaris",
		Short:         "Imperium Solaris interactive map engine",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(regionsCmd())
	rootCmd.AddCommand(serveCmd(&verbose))
	return rootCmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a map catalog and generate its layout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), projectArg(args))
		},
	}
}

func renderCmd() *cobra.Command {
	var (
		format   string
		selected string
		out      string
		width    int
		height   int
	)

	cmd := &cobra.Command{
		Use:   "render [project-path]",
		Short: "Render the map as SVG, PNG or GeoJSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), projectArg(args), renderOptions{
				format:   format,
				selected: selected,
				out:      out,
				width:    width,
				height:   height,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, png or geojson")
	cmd.Flags().StringVarP(&selected, "select", "s", "", `region id or "capital" to frame`)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&width, "width", 0, "PNG width in pixels (default canvas width)")
	cmd.Flags().IntVar(&height, "height", 0, "PNG height in pixels (default canvas height)")
	return cmd
}

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions [project-path]",
		Short: "List regions with their populations and layout offsets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegions(cmd.OutOrStdout(), projectArg(args))
		},
	}
}

func serveCmd(verbose *bool) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local map server with live interactive sessions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), projectArg(args), port, *verbose)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}

// projectArg returns the optional project directory; empty selects the
// embedded catalog.
func projectArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
