package cli

import (
	"github.com/spf13/cobra"

	"github.com/Shokesu/chartify/pkg/serve"
)

// serveCommand creates the serve command exposing a chart over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve [spec.toml]",
		Short: "Serve a chart spec over HTTP",
		Long: `Serve renders a chart spec and exposes it over HTTP:

  GET /     the interactive HTML chart
  GET /png  the rasterized PNG export

The server shuts down gracefully on interrupt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			globalOpts, err := c.loadOptions()
			if err != nil {
				return err
			}
			spec, err := LoadSpec(args[0])
			if err != nil {
				return err
			}
			ch, err := BuildChart(spec, globalOpts, logger)
			if err != nil {
				return err
			}

			printInfo("Serving %s on http://%s", args[0], addr)
			printDetail("GET /     interactive chart")
			printDetail("GET /png  rasterized export")

			return serve.New(ch, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")

	return cmd
}
