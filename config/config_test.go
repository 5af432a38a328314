package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"STORAGE_BACKEND", "SIMULATE_LATENCY", "MOCK_PASSWORD", "KAFKA_BROKER", "STOREFRONT_ADDR"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.True(t, cfg.SimulateLatency)
	assert.Equal(t, "password", cfg.MockPassword)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, ":8081", cfg.StorefrontAddr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", BackendRedis)
	t.Setenv("SIMULATE_LATENCY", "false")
	t.Setenv("MOCK_PASSWORD", "letmein")
	t.Setenv("KAFKA_BROKER", "kafka:9092")

	cfg := Load()

	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.False(t, cfg.SimulateLatency)
	assert.Equal(t, "letmein", cfg.MockPassword)
	assert.True(t, cfg.KafkaEnabled)
}
