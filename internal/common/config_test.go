package common

import (
	"testing"
	"time"

	"github.com/esgsentinel/sentinel/constants"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Server.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", cfg.Server.HTTPAddr)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v, want the two dev hosts", cfg.Server.AllowedOrigins)
	}
	if cfg.Analysis.ContextWindow != constants.DefaultContextWindow {
		t.Errorf("ContextWindow = %d, want %d", cfg.Analysis.ContextWindow, constants.DefaultContextWindow)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for defaults", err)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("EVIDENCE_CONTEXT_WINDOW", "120")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := LoadConfig()

	if cfg.Server.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q, want :9999", cfg.Server.HTTPAddr)
	}
	if cfg.Analysis.ContextWindow != 120 {
		t.Errorf("ContextWindow = %d, want 120", cfg.Analysis.ContextWindow)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Server.AllowedOrigins) != 2 ||
		cfg.Server.AllowedOrigins[0] != want[0] || cfg.Server.AllowedOrigins[1] != want[1] {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.Server.AllowedOrigins, want)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadConfig_BadValuesFallBack(t *testing.T) {
	t.Setenv("EVIDENCE_CONTEXT_WINDOW", "not-a-number")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg := LoadConfig()
	if cfg.Analysis.ContextWindow != constants.DefaultContextWindow {
		t.Errorf("ContextWindow = %d, want default on parse failure", cfg.Analysis.ContextWindow)
	}
	if cfg.Server.MaxUploadBytes != 32<<20 {
		t.Errorf("MaxUploadBytes = %d, want default", cfg.Server.MaxUploadBytes)
	}
}

func TestValidate_Errors(t *testing.T) {
	cfg := LoadConfig()
	cfg.Server.HTTPAddr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for empty HTTP_ADDR")
	}

	cfg = LoadConfig()
	cfg.Server.MaxUploadBytes = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for zero MAX_UPLOAD_BYTES")
	}
}
