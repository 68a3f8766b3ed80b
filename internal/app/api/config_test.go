package api

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CMS_BASE_URL", "http://cms.local/api")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.CMSTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL())
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, client.DefaultHostPort, cfg.TemporalAddress)
	assert.Equal(t, client.DefaultNamespace, cfg.TemporalNamespace)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("CMS_BASE_URL", "http://cms.local/api")
	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("SEARCH_DEBOUNCE", "250ms")
	t.Setenv("TEMPORAL_DISABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 250*time.Millisecond, cfg.SearchDebounce)
	assert.True(t, cfg.TemporalDisabled)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing cms url", env: map[string]string{}},
		{name: "zero ttl", env: map[string]string{"CMS_BASE_URL": "http://cms", "SESSION_TTL_HOURS": "0"}},
		{name: "unknown log level", env: map[string]string{"CMS_BASE_URL": "http://cms", "LOG_LEVEL": "verbose"}},
		{name: "page size too large", env: map[string]string{"CMS_BASE_URL": "http://cms", "DEFAULT_PAGE_SIZE": "1000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CMS_BASE_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
