package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *GroqClient {
	c := NewGroqClient()
	c.BaseURL = baseURL
	return c
}

func TestCompleteMissingAPIKey(t *testing.T) {
	t.Setenv("GROQ_LLM_API", "")

	c := testClient("http://unused.invalid")
	_, err := c.Complete(context.Background(), "hello")

	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestCompleteSuccess(t *testing.T) {
	t.Setenv("GROQ_LLM_API", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi there"}}]}`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	answer, err := c.Complete(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "hi there", answer)
}

func TestCompleteUpstreamStatusError(t *testing.T) {
	t.Setenv("GROQ_LLM_API", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.Complete(context.Background(), "hello")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
	assert.Contains(t, upstream.Error(), "invalid api key")
}

func TestCompleteNetworkError(t *testing.T) {
	t.Setenv("GROQ_LLM_API", "test-key")

	c := testClient("http://127.0.0.1:1")
	_, err := c.Complete(context.Background(), "hello")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.False(t, errors.Is(err, ErrMissingAPIKey))
}

func TestCompleteEmptyChoices(t *testing.T) {
	t.Setenv("GROQ_LLM_API", "test-key")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.Complete(context.Background(), "hello")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
}
