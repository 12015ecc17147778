package bootstrap

import (
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppCfg() AppConfig {
	return AppConfig{
		BackendBaseURL: "http://localhost:8080",
		BackendTimeout: 15 * time.Second,
		SessionKey:     "0123456789abcdef0123456789abcdef",
		SessionName:    "userhub-session",
	}
}

func TestValidateConfig_OK(t *testing.T) {
	coreCfg := &config.CoreConfig{Env: "dev"}
	if err := ValidateConfig(coreCfg, validAppCfg(), testLogger()); err != nil {
		t.Errorf("ValidateConfig() error = %v", err)
	}
}

func TestValidateConfig_BadBackendURL(t *testing.T) {
	coreCfg := &config.CoreConfig{Env: "dev"}

	for _, bad := range []string{"", "not-a-url", "localhost:8080"} {
		cfg := validAppCfg()
		cfg.BackendBaseURL = bad
		if err := ValidateConfig(coreCfg, cfg, testLogger()); err == nil {
			t.Errorf("ValidateConfig() accepted backend_base_url %q", bad)
		}
	}
}

func TestValidateConfig_ProdRejectsDevSessionKey(t *testing.T) {
	cfg := validAppCfg()
	cfg.SessionKey = "dev-only-change-me-please-0123456789ABCDEF"

	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, cfg, testLogger()); err != nil {
		t.Errorf("dev env should accept the default key, got %v", err)
	}
	if err := ValidateConfig(&config.CoreConfig{Env: "prod"}, cfg, testLogger()); err == nil {
		t.Error("prod env accepted the dev default session key")
	}
}

func TestValidateConfig_EmptySessionKey(t *testing.T) {
	cfg := validAppCfg()
	cfg.SessionKey = ""
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, cfg, testLogger()); err == nil {
		t.Error("empty session key accepted")
	}
}
