package server

import (
	"time"

	"resumeforge/internal/config"
	resumeforgeErrors "resumeforge/internal/errors"
	"resumeforge/internal/pdf"
	"resumeforge/internal/storage"
	"resumeforge/internal/style"
	"resumeforge/internal/types"
)

// AnalyzeRequest represents the request body for the analyze endpoint
type AnalyzeRequest struct {
	Resume *types.Resume `json:"resume"`
}

// SuggestRequest represents the request body for the suggest endpoint
type SuggestRequest struct {
	Resume   *types.Resume `json:"resume"`
	Industry string        `json:"industry"`
}

// RenderRequest represents the request body for the render and export endpoints
type RenderRequest struct {
	Resume        *types.Resume        `json:"resume"`
	Template      string               `json:"template,omitempty"`
	Customization *style.Customization `json:"customization,omitempty"`
}

// SaveResumeRequest represents the request body for saving a resume
type SaveResumeRequest struct {
	Name          string               `json:"name"`
	Resume        *types.Resume        `json:"resume"`
	Customization *style.Customization `json:"customization,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Saved resume store
	Store storage.Store

	// PDF exporter
	Exporter *pdf.Exporter

	// Logger
	Logger *resumeforgeErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *resumeforgeErrors.Logger) (*Server, error) {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	store, err := newStore(appCfg)
	if err != nil {
		return nil, err
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Store:          store,
		Exporter:       pdf.NewExporter(&appCfg.Export, logger),
		Logger:         logger,
	}, nil
}

// newStore picks the store backend from configuration. A configured
// path means file-backed persistence; otherwise resumes live in memory
// for the lifetime of the process.
func newStore(appCfg *config.Config) (storage.Store, error) {
	if appCfg.Storage.Path != "" {
		return storage.NewFileStore(appCfg.Storage.Path)
	}
	return storage.NewMemoryStore(), nil
}
