package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingValues(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth == nil || cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("Auth.BcryptCost not defaulted: %+v", cfg.Auth)
	}
	if cfg.Auth.TokenTTL != defaultTokenTTL {
		t.Fatalf("Auth.TokenTTL = %v, want %v", cfg.Auth.TokenTTL, defaultTokenTTL)
	}
	if cfg.Metrics.Path != defaultMetricsPath {
		t.Fatalf("Metrics.Path = %q, want %q", cfg.Metrics.Path, defaultMetricsPath)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{BcryptCost: 12, TokenTTL: time.Hour}}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != "1MB" {
		t.Fatalf("MaxRequestBodySize overwritten: %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Auth.BcryptCost != 12 || cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("Auth overwritten: %+v", cfg.Auth)
	}
	if cfg.Metrics != nil {
		t.Fatalf("Metrics should stay disabled when unset")
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("AUTH_TOKENTTL", "2h")
	t.Setenv("RATELIMIT_LIMIT", "3")

	cfg, err := LoadWithEnv[Config]("config", ".")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.SecretKey.Access != "from-env" {
		t.Fatalf("SecretKey.Access = %q", cfg.SecretKey.Access)
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Fatalf("Auth.TokenTTL = %v", cfg.Auth.TokenTTL)
	}
	if cfg.RateLimit == nil || cfg.RateLimit.Limit != 3 {
		t.Fatalf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Env.ServiceName != "storerating" {
		t.Fatalf("ServiceName = %q", cfg.Env.ServiceName)
	}
}
