package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"remote": map[string]any{
			"baseUrl": "",
		},
		"session": map[string]any{
			"authKey": "",
			"csrfKey": "",
		},
		"notification": map[string]any{
			"topicId": "",
		},
		"previews": map[string]any{
			"bucketUrl": "mem://",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "REMOTE_BASEURL", want: "remote.baseUrl"},
		{envKey: "SESSION_AUTHKEY", want: "session.authKey"},
		{envKey: "NOTIFICATION_TOPICID", want: "notification.topicId"},
		{envKey: "PREVIEWS_BUCKETURL", want: "previews.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Remote.BaseURL = "https://shop.example.com/api"

	cfg.applyDefaults()

	assert.Equal(t, "https://shop.example.com/api/", cfg.Remote.BaseURL)
	assert.Equal(t, defaultPageSize, cfg.Pagination.PageSize)
	assert.Equal(t, "memory", cfg.Storage.Provider)
	assert.Equal(t, "mem://", cfg.Previews.BucketURL)
	assert.Equal(t, defaultRemoteTimeout, cfg.Remote.Timeout)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Remote.BaseURL = "https://shop.example.com/api/"
		cfg.Session.AuthKey = "0123456789abcdef0123456789abcdef"
		cfg.Session.CSRFKey = "abcdef0123456789abcdef0123456789"
		cfg.Storage.Provider = "memory"

		return cfg
	}

	require.NoError(t, valid().validate())

	missingURL := valid()
	missingURL.Remote.BaseURL = ""
	assert.Error(t, missingURL.validate())

	shortCSRF := valid()
	shortCSRF.Session.CSRFKey = "short"
	assert.Error(t, shortCSRF.validate())

	postgresWithoutDSN := valid()
	postgresWithoutDSN.Storage.Provider = "postgres"
	assert.Error(t, postgresWithoutDSN.validate())
}

func TestNewCLI(t *testing.T) {
	t.Setenv("REMOTE_BASEURL", "https://env.example.com/api")

	cfg, err := NewCLI("")
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api/", cfg.Remote.BaseURL)
	assert.Equal(t, "warn", cfg.Env.Log.Level)

	cfg, err = NewCLI("https://flag.example.com/api/")
	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com/api/", cfg.Remote.BaseURL)

	t.Setenv("REMOTE_BASEURL", "")
	_, err = NewCLI("")
	require.Error(t, err)
}
