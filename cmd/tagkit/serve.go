package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/pkg/server"
	"github.com/vango-dev/tagkit/pkg/theme"
)

func serveCmd() *cobra.Command {
	var (
		address   string
		themeFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start an HTTP server that renders requests.

Endpoints:
  POST /render       render one request
  POST /render/batch render a list of requests
  POST /begin-end    render an element with begin and end calls
  GET  /healthz      liveness
  GET  /metrics      Prometheus metrics

Examples:
  tagkit serve
  tagkit serve --addr localhost:3000 --theme themes.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if address != "" {
				cfg.Server.Address = address
			}
			if themeFile != "" {
				cfg.Theme.File = themeFile
			}
			logger := cfg.Logger(os.Stderr)

			scfg := server.DefaultServerConfig()
			scfg.Address = cfg.Server.Address
			scfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
			scfg.MaxBodyBytes = cfg.Server.MaxBodyBytes
			scfg.MetricsNamespace = cfg.Metrics.Namespace
			scfg.Theme = cfg.Theme.Default
			scfg.Logger = logger

			if path := cfg.ThemePath(); path != "" {
				themes, err := theme.LoadFile(path)
				if err != nil {
					return err
				}
				scfg.Defaults = themes
				scfg.Themes = themes
				info("Loaded %d theme(s) from %s", len(themes.Themes()), path)
				if scfg.Theme != "" && !themes.HasTheme(scfg.Theme) {
					warn("Default theme %q is not defined in %s", scfg.Theme, path)
				}
			}

			success("Serving on %s", scfg.Address)
			return server.New(scfg).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&address, "addr", "", "Listen address (default from config)")
	cmd.Flags().StringVar(&themeFile, "theme", "", "Theme file (toml, yaml or json)")

	return cmd
}
