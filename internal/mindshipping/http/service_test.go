package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laxmibeekeeping/multiservice-backend/internal/mindshipping/domain"
	"github.com/laxmibeekeeping/multiservice-backend/internal/mindshipping/service"
)

type memoryStore struct {
	byEmail    map[string]*domain.User
	byUsername map[string]*domain.User
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		byEmail:    make(map[string]*domain.User),
		byUsername: make(map[string]*domain.User),
	}
}

func (m *memoryStore) CreateUser(_ context.Context, u *domain.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrEmailTaken
	}
	m.byEmail[u.Email] = u
	m.byUsername[u.Username] = u
	return nil
}

func (m *memoryStore) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memoryStore) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := m.byUsername[username]
	return ok, nil
}

func newTestRouter(users *service.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := New(nil, users)
	svc.Register(r.Group("/api2"))
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHealthWithoutDatabase(t *testing.T) {
	r := newTestRouter(nil)

	rr := doJSON(r, http.MethodGet, "/api2/health", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "mindshipping", body["service"])
	assert.Equal(t, "disabled", body["db"])
}

func TestInfoPlaceholder(t *testing.T) {
	r := newTestRouter(nil)

	rr := doJSON(r, http.MethodGet, "/api2/info", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "MindShipping backend placeholder endpoint")
}

func TestSignupWithoutStoreIsConfigurationError(t *testing.T) {
	r := newTestRouter(nil)

	rr := doJSON(r, http.MethodPost, "/api2/signup",
		`{"full_name":"Some User","email":"some@user.example","password":"hunter2hunter2"}`)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Contains(t, rr.Body.String(), "configuration")
	assert.Contains(t, rr.Body.String(), "MINDSHIPPING_DATABASE_URL")
}

func TestSignupValidation(t *testing.T) {
	r := newTestRouter(service.NewUserService(newMemoryStore()))

	cases := []string{
		`{"full_name":"A","email":"some@user.example","password":"hunter2hunter2"}`, // name too short
		`{"full_name":"Some User","email":"not-an-email","password":"hunter2hunter2"}`,
		`{"full_name":"Some User","email":"some@user.example","password":"short"}`,
		`{}`,
	}
	for _, body := range cases {
		rr := doJSON(r, http.MethodPost, "/api2/signup", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body=%s", body)
	}
}

func TestSignupSuccess(t *testing.T) {
	r := newTestRouter(service.NewUserService(newMemoryStore()))

	rr := doJSON(r, http.MethodPost, "/api2/signup",
		`{"full_name":"Some User","email":"some@user.example","password":"hunter2hunter2"}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp SignupResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "some", resp.Username)
	assert.NotEmpty(t, resp.UID)
}

func TestSignupDuplicateEmailConflict(t *testing.T) {
	r := newTestRouter(service.NewUserService(newMemoryStore()))
	body := `{"full_name":"Some User","email":"dup@user.example","password":"hunter2hunter2"}`

	first := doJSON(r, http.MethodPost, "/api2/signup", body)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(r, http.MethodPost, "/api2/signup", body)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestCheckEmailAndUsername(t *testing.T) {
	r := newTestRouter(service.NewUserService(newMemoryStore()))

	rr := doJSON(r, http.MethodPost, "/api2/signup",
		`{"full_name":"Some User","email":"some@user.example","password":"hunter2hunter2"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(r, http.MethodGet, "/api2/check-email?email=some@user.example", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"exists":true}`, rr.Body.String())

	rr = doJSON(r, http.MethodGet, "/api2/check-email?email=other@user.example", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"exists":false}`, rr.Body.String())

	rr = doJSON(r, http.MethodGet, "/api2/check-username?username=some", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"exists":true}`, rr.Body.String())

	rr = doJSON(r, http.MethodGet, "/api2/check-username", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
