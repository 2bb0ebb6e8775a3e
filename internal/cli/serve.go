package cli

import (
	"fmt"

	"resumeforge/internal/config"
	"resumeforge/internal/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server for resume analysis and rendering",
	Long: `Start an HTTP server that provides REST API endpoints for resume
analysis, rendering and storage.

Available endpoints:
- POST /analyze: Analyze a resume for completeness and industry fit
- POST /suggest: Suggest improvements for a target industry
- POST /render: Render a resume through a template
- POST /export: Export a rendered resume as PDF
- GET/POST /resumes: List, search or save resumes
- GET/DELETE /resumes/{name}: Load or delete a saved resume
- GET /resumes-export, POST /resumes-import: Bulk export and import
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
}

// applyServeOverrides applies non-empty flag values on top of the
// loaded configuration. Config is loaded on its own viper instance, so
// the flags have to be applied here rather than through flag binding.
func applyServeOverrides(cfg *config.Config, host, port string) {
	if host != "" {
		cfg.Server.Host = host
	}
	if port != "" {
		cfg.Server.Port = port
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetString("port")
	applyServeOverrides(cfg, host, port)

	serverCfg := server.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		Version:        Version,
		APIKeys:        cfg.Server.APIKeys,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxRequestSize: cfg.App.MaxFileSize,
		RateLimit:      &cfg.Server.RateLimit,
	}

	srv, err := server.NewServer(cfg, serverCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	return srv.Start()
}
