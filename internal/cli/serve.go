package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/castcolor/internal/server"
	"github.com/matzehuels/castcolor/pkg/cache"
	"github.com/matzehuels/castcolor/pkg/pipeline"
)

// serverKeyPrefix scopes server cache entries apart from CLI entries.
const serverKeyPrefix = "server:"

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		maxNodes int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver and reductions over HTTP",
		Long: `Serve the solver and reductions over HTTP.

Routes:
  GET  /healthz
  POST /v1/solve?leads_apart=true|false
  POST /v1/reduce/to-coloring
  POST /v1/reduce/to-casting
  GET  /v1/demos
  GET  /v1/demos/{name}

Instances are sent as text/plain request bodies. Results are cached in
memory for the [server] cache_ttl of the config file. The server stops
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Server
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Addr
			}
			if !cmd.Flags().Changed("max-nodes") {
				maxNodes = cfg.MaxNodes
			}

			keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), serverKeyPrefix)
			runner := pipeline.NewRunner(cache.NewMemoryCache(), keyer, c.Logger)
			runner.TTL = cfg.CacheTTL.Duration
			if runner.TTL == 0 {
				runner.TTL = pipeline.DefaultCacheTTL
			}
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.Options{
				MaxNodes:   maxNodes,
				LeadsApart: c.Config.Solve.LeadsApart,
			})
			printInfo("Listening on %s", StyleHighlight.Render(addr))
			printDetail("Search limit: %d states, cache TTL: %s", maxNodes, runner.TTL)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "search state limit per request (0 for no limit)")

	return cmd
}
