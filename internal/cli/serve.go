package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alnah/go-promptgen/internal/config"
	"github.com/alnah/go-promptgen/internal/interrupt"
	"github.com/alnah/go-promptgen/internal/server"
)

// serveOptions holds the parsed flags of the serve command.
type serveOptions struct {
	addr    string
	delay   time.Duration
	origins []string
}

// ServeCmd creates the serve command.
// The env parameter provides injectable dependencies for testing.
func ServeCmd(env *Env) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the prompt generator over HTTP",
		Long: `Serve the prompt generator as a JSON API.

Routes:
  POST /api/prompts              generate from a request document
  POST /api/prompts/:kind        generate from the fields of a kind
  POST /api/templates/:name      fill a template {topic, platform, values}
  GET  /api/templates[/:name]    list templates, or show one with its text
  GET  /api/forms/:kind          form fields, choices and defaults
  GET  /api/kinds, /api/tools    vocabularies
  GET  /health, /metrics         liveness and Prometheus metrics

--addr and --delay default to the addr and delay settings. The server
drains in-flight requests on the first Ctrl+C and exits
immediately on a second one within two seconds.`,
		Example: `  promptgen serve
  promptgen serve --addr 127.0.0.1:9000 --delay 1.5s
  promptgen serve --origin https://prompts.example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd, env, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", fmt.Sprintf("Listen address (default %q)", config.DefaultAddr))
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "Simulated latency before each generation")
	cmd.Flags().StringArrayVar(&opts.origins, "origin", nil, "Allowed CORS origin (repeatable)")

	return cmd
}

// runServe resolves settings and runs the server until ctx is cancelled.
func runServe(ctx context.Context, cmd *cobra.Command, env *Env, opts serveOptions) error {
	cfg := loadConfig(env)
	sc, err := serverConfig(cfg, opts, cmd.Flags().Changed("delay"))
	if err != nil {
		return err
	}
	sc.Logger = env.Logger

	h, ctx := interrupt.NewHandler(ctx, env.Stderr)
	defer h.Stop()

	_, _ = fmt.Fprintf(env.Stderr, "Listening on %s\n", sc.Addr)
	if err := server.New(sc).Run(ctx); err != nil {
		return err
	}
	if h.WasInterrupted() {
		_, _ = fmt.Fprintln(env.Stderr, "Server stopped.")
	}
	return nil
}

// serverConfig merges flags over settings. Flags win; --delay 0 explicitly
// disables a configured delay.
func serverConfig(cfg config.Config, opts serveOptions, delaySet bool) (server.Config, error) {
	sc := server.Config{
		Addr:         cfg.ListenAddr(),
		Delay:        cfg.Delay,
		AllowOrigins: opts.origins,
	}
	if opts.addr != "" {
		sc.Addr = opts.addr
	}
	if delaySet {
		if opts.delay < 0 {
			return server.Config{}, fmt.Errorf("--delay must not be negative: %w", config.ErrInvalidValue)
		}
		sc.Delay = opts.delay
	}
	return sc, nil
}
