package cli

import (
	"testing"

	"resumeforge/internal/config"
)

func TestApplyServeOverrides(t *testing.T) {
	tests := []struct {
		name       string
		host, port string
		wantHost   string
		wantPort   string
	}{
		{"no flags keep config", "", "", "127.0.0.1", "8080"},
		{"port flag overrides", "", "9000", "127.0.0.1", "9000"},
		{"host flag overrides", "0.0.0.0", "", "0.0.0.0", "8080"},
		{"both flags override", "0.0.0.0", "9000", "0.0.0.0", "9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Host = "127.0.0.1"
			cfg.Server.Port = "8080"

			applyServeOverrides(cfg, tt.host, tt.port)

			if cfg.Server.Host != tt.wantHost {
				t.Errorf("host = %q, want %q", cfg.Server.Host, tt.wantHost)
			}
			if cfg.Server.Port != tt.wantPort {
				t.Errorf("port = %q, want %q", cfg.Server.Port, tt.wantPort)
			}
		})
	}
}
