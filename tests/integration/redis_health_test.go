package integration

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	laxhttp "github.com/laxmibeekeeping/multiservice-backend/internal/laxmihoney/http"
	"github.com/laxmibeekeeping/multiservice-backend/internal/laxmihoney/llm"
)

func TestLaxmihoneyHealthReportsRedisState(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	groq := llm.NewGroqClient()
	svc := laxhttp.New(groq, groq.Model, client)

	health := svc.Health()
	require.Equal(t, "ok", health["status"])
	assert.Equal(t, "up", health["cache"])

	mr.Close()

	health = svc.Health()
	assert.Equal(t, "down", health["cache"])
}

func TestLaxmihoneyHealthWithoutRedis(t *testing.T) {
	groq := llm.NewGroqClient()
	svc := laxhttp.New(groq, groq.Model, nil)

	assert.Equal(t, "disabled", svc.Health()["cache"])
}
