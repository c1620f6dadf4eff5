package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"http": map[string]any{"port": 8080},
		"pipeline": map[string]any{
			"defaultRadiusKm":  0.1,
			"operationTimeout": "5s",
		},
		"outbox": map[string]any{"maxAttempts": 8},
		"redis":  map[string]any{"deliveryDedupTtl": "24h"},
		"env": map[string]any{
			"log": map[string]any{"slowQuery": "200ms"},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "HTTP_PORT", want: "http.port"},
		{envKey: "PIPELINE_DEFAULTRADIUSKM", want: "pipeline.defaultRadiusKm"},
		{envKey: "PIPELINE_OPERATIONTIMEOUT", want: "pipeline.operationTimeout"},
		{envKey: "OUTBOX_MAXATTEMPTS", want: "outbox.maxAttempts"},
		{envKey: "REDIS_DELIVERYDEDUPTTL", want: "redis.deliveryDedupTtl"},
		{envKey: "ENV_LOG_SLOWQUERY", want: "env.log.slowQuery"},
		{envKey: "OUTBOX__BATCHSIZE", want: "outbox.batchsize"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectid"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := buildReplicasFromEnv()

	if assert.Len(t, replicas, 1) {
		assert.Equal(t, "replica-a", replicas[0].Host)
		assert.Equal(t, "5433", replicas[0].Port)
		assert.Equal(t, "reader", replicas[0].UserName)
	}
}
