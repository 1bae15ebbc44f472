package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"site": map[string]any{
			"baseUrl":  "",
			"cacheTtl": "60s",
		},
		"pubsub": map[string]any{
			"localEndpoint": "",
		},
		"auth": map[string]any{
			"adminPasswordHash": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SITE_BASEURL", want: "site.baseUrl"},
		{envKey: "SITE_CACHETTL", want: "site.cacheTtl"},
		{envKey: "PUBSUB_LOCALENDPOINT", want: "pubsub.localEndpoint"},
		{envKey: "AUTH_ADMINPASSWORDHASH", want: "auth.adminPasswordHash"},
		{envKey: "STORAGE__BUCKETURL", want: "storage.bucketurl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Site.BaseURL = "https://example.com.au/"

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "https://example.com.au", cfg.Site.BaseURL)
	assert.Equal(t, defaultBusinessName, cfg.Site.DefaultName)
	assert.Equal(t, defaultCacheTTL, cfg.Site.CacheTTL)
	assert.NotNil(t, cfg.Auth)
	assert.False(t, cfg.Auth.Enabled)
	assert.Nil(t, cfg.Storage)
}

func TestApplyDefaults_EmptyBaseURL(t *testing.T) {
	cfg := &Config{Storage: &StorageConfig{BucketURL: "mem://"}}

	applyDefaults(cfg)

	assert.Equal(t, defaultBaseURL, cfg.Site.BaseURL)
	assert.Equal(t, int64(defaultMediaMaxBytes), cfg.Storage.MaxBytes)
}
