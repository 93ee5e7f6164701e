package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laxmibeekeeping/multiservice-backend/internal/mindshipping/domain"
	"github.com/laxmibeekeeping/multiservice-backend/internal/mindshipping/service"
)

// Service is the mindshipping route group: health, a static info placeholder
// and the user signup surface. It mounts even without a database; only the
// database-backed routes degrade to a configuration error.
type Service struct {
	db    *pgxpool.Pool
	users *service.UserService
}

func New(db *pgxpool.Pool, users *service.UserService) *Service {
	return &Service{
		db:    db,
		users: users,
	}
}

func (s *Service) Register(r gin.IRouter) {
	r.GET("/health", s.healthCheck)
	r.GET("/info", s.info)
	r.POST("/signup", s.signup)
	r.GET("/check-email", s.checkEmail)
	r.GET("/check-username", s.checkUsername)
}

// Health reports the service status and the state of the optional user
// store connection.
func (s *Service) Health() map[string]any {
	dbStatus := "disabled"
	if s.db != nil {
		pingCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		if err := s.db.Ping(pingCtx); err != nil {
			dbStatus = "down"
		} else {
			dbStatus = "up"
		}
	}

	return map[string]any{
		"status":  "ok",
		"service": "mindshipping",
		"db":      dbStatus,
	}
}

func (s *Service) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, s.Health())
}

func (s *Service) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "mindshipping",
		"message": "MindShipping backend placeholder endpoint",
	})
}

type SignupRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=256"`
}

type SignupResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	UID      string `json:"uid"`
	Username string `json:"username"`
}

func (s *Service) signup(c *gin.Context) {
	if s.users == nil {
		s.storeUnavailable(c)
		return
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid signup request: " + err.Error(),
			"kind":  "validation",
		})
		return
	}

	user, err := s.users.Signup(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "email already registered",
				"kind":  "validation",
			})
		case errors.Is(err, domain.ErrStoreUnavailable):
			s.storeUnavailable(c)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "signup failed: " + err.Error(),
				"kind":  "internal",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, SignupResponse{
		Success:  true,
		Message:  "account created",
		UID:      user.UID.String(),
		Username: user.Username,
	})
}

func (s *Service) checkEmail(c *gin.Context) {
	if s.users == nil {
		s.storeUnavailable(c)
		return
	}

	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "email query parameter is required",
			"kind":  "validation",
		})
		return
	}

	exists, err := s.users.EmailExists(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "email lookup failed: " + err.Error(),
			"kind":  "internal",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (s *Service) checkUsername(c *gin.Context) {
	if s.users == nil {
		s.storeUnavailable(c)
		return
	}

	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "username query parameter is required",
			"kind":  "validation",
		})
		return
	}

	exists, err := s.users.UsernameExists(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "username lookup failed: " + err.Error(),
			"kind":  "internal",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

func (s *Service) storeUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error": "user store not configured. Set MINDSHIPPING_DATABASE_URL",
		"kind":  "configuration",
	})
}
