package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/laxmibeekeeping/multiservice-backend/internal/laxmihoney/llm"
)

// Completer is the outbound LLM dependency, narrowed so handlers can be
// tested against a fake.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

// Service is the laxmihoney route group: a health check and a single-turn
// proxy to the completion API.
type Service struct {
	completer Completer
	model     string
	cache     *redis.Client
}

func New(completer Completer, model string, cache *redis.Client) *Service {
	return &Service{
		completer: completer,
		model:     model,
		cache:     cache,
	}
}

func (s *Service) Register(r gin.IRouter) {
	r.GET("/health", s.healthCheck)

	llmGroup := r.Group("/llm")
	llmGroup.POST("", s.proxyMessage)
	// Unauthenticated alias the frontend calls directly.
	llmGroup.POST("/public", s.proxyMessage)
}

// Health reports the service status and the state of the optional Redis
// connection. No keys are read or written; this is a bounded ping only.
func (s *Service) Health() map[string]any {
	cacheStatus := "disabled"
	if s.cache != nil {
		pingCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		if err := s.cache.Ping(pingCtx).Err(); err != nil {
			cacheStatus = "down"
		} else {
			cacheStatus = "up"
		}
	}

	return map[string]any{
		"status":  "ok",
		"service": "laxmihoney",
		"cache":   cacheStatus,
	}
}

func (s *Service) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, s.Health())
}

type MessageRequest struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message  string `json:"message"`
	Response string `json:"response"`
	Model    string `json:"model"`
	Status   string `json:"status"`
}

func (s *Service) proxyMessage(c *gin.Context) {
	var req MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request body: " + err.Error(),
			"kind":  "validation",
		})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "message cannot be empty",
			"kind":  "validation",
		})
		return
	}

	answer, err := s.completer.Complete(c.Request.Context(), req.Message)
	if err != nil {
		var upstream *llm.UpstreamError
		switch {
		case errors.Is(err, llm.ErrMissingAPIKey):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "LLM not configured. Check GROQ_LLM_API in .env file",
				"kind":  "configuration",
			})
		case errors.As(err, &upstream):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "error generating response: " + upstream.Error(),
				"kind":  "upstream",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "error generating response: " + err.Error(),
				"kind":  "internal",
			})
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message:  req.Message,
		Response: answer,
		Model:    s.model,
		Status:   "success",
	})
}
