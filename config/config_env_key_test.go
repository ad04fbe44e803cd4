package config

import (
	"testing"
	"time"

	"landmarket/internal/domain/constants"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"auth": map[string]any{
			"localSecret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "AUTH_LOCALSECRET", want: "auth.localSecret"},
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

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth.SessionCookieName != "__session" {
		t.Fatalf("SessionCookieName = %q", cfg.Auth.SessionCookieName)
	}
	if cfg.Auth.SessionTTL != 5*24*time.Hour {
		t.Fatalf("SessionTTL = %v", cfg.Auth.SessionTTL)
	}
	if cfg.Search.DefaultLimit != defaultSearchLimit || cfg.Search.MaxLimit != defaultMaxSearchLimit {
		t.Fatalf("Search = %+v", cfg.Search)
	}
	if cfg.AI.Provider != constants.AIProviderDisabled {
		t.Fatalf("AI.Provider = %q", cfg.AI.Provider)
	}
}

func TestValidate_StartupFatalConditions(t *testing.T) {
	base := func() *Config {
		cfg := &Config{
			Auth:    &AuthConfig{Provider: constants.AuthProviderLocal, LocalSecret: "s"},
			Storage: &StorageConfig{BucketURL: "mem://"},
		}
		cfg.applyDefaults()

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid local", mutate: func(*Config) {}},
		{name: "missing bucket", mutate: func(c *Config) { c.Storage.BucketURL = "" }, wantErr: true},
		{name: "firebase without project", mutate: func(c *Config) { c.Auth.Provider = constants.AuthProviderFirebase }, wantErr: true},
		{name: "firebase with project", mutate: func(c *Config) {
			c.Auth.Provider = constants.AuthProviderFirebase
			c.Firebase = &FirebaseConfig{ProjectID: "p"}
		}},
		{name: "local secret missing", mutate: func(c *Config) { c.Auth.LocalSecret = "" }, wantErr: true},
		{name: "local in production", mutate: func(c *Config) { c.Env.Env = constants.EnvProduction }, wantErr: true},
		{name: "gemini without key", mutate: func(c *Config) { c.AI.Provider = constants.AIProviderGemini }, wantErr: true},
		{name: "unknown ai provider", mutate: func(c *Config) { c.AI.Provider = "other" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
