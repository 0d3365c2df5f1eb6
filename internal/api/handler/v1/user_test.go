package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hskpro/warehouse-api/internal/api/middleware"
	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/service"
)

type stubUserService struct {
	created   domain.User
	createErr error
	got       *domain.User
}

func (s *stubUserService) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	s.got = &user

	return s.created, s.createErr
}

func newUserRouter(svc UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewUserHandler(svc)
	router := gin.New()
	router.POST("/api/v1/users", middleware.NewAuthenticator(testSigningKey).VerifyJWT(), handler.HandleCreateUser)

	return router
}

const validUserBody = `{"username":"newhire","password":"Secret123","full_name":"New Hire","position":"SHIPPING"}`

func TestHandleCreateUser_Created(t *testing.T) {
	svc := &stubUserService{created: domain.User{ID: 42, Username: "newhire", Position: "SHIPPING", Status: "ACTIVE"}}
	router := newUserRouter(svc)

	resp := doRequest(router, http.MethodPost, "/api/v1/users", bearerToken(t, "IT"), validUserBody)

	require.Equal(t, http.StatusCreated, resp.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "newhire", svc.got.Username)

	var body domain.User
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, uint(42), body.ID)
	assert.Equal(t, "ACTIVE", body.Status)
}

func TestHandleCreateUser_NonITForbidden(t *testing.T) {
	for _, position := range []string{"RECEIVING", "SHIPPING", "MANAGEMENT"} {
		t.Run(position, func(t *testing.T) {
			router := newUserRouter(&stubUserService{})

			resp := doRequest(router, http.MethodPost, "/api/v1/users", bearerToken(t, position), validUserBody)

			assert.Equal(t, http.StatusForbidden, resp.Code)
			assert.Equal(t, "INSUFFICIENT_PERMISSIONS", errorCodeOf(t, resp))
		})
	}
}

func TestHandleCreateUser_WeakPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1"},
		{"no uppercase", "secret123"},
		{"no lowercase", "SECRET123"},
		{"no digit", "SecretPass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newUserRouter(&stubUserService{})
			body := `{"username":"newhire","password":"` + tt.password + `","position":"SHIPPING"}`

			resp := doRequest(router, http.MethodPost, "/api/v1/users", bearerToken(t, "IT"), body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "INVALID_REQUEST", errorCodeOf(t, resp))
		})
	}
}

func TestHandleCreateUser_BadPosition(t *testing.T) {
	router := newUserRouter(&stubUserService{})
	body := `{"username":"newhire","password":"Secret123","position":"JANITOR"}`

	resp := doRequest(router, http.MethodPost, "/api/v1/users", bearerToken(t, "IT"), body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleCreateUser_DuplicateUsername(t *testing.T) {
	router := newUserRouter(&stubUserService{createErr: service.ErrUsernameExists})

	resp := doRequest(router, http.MethodPost, "/api/v1/users", bearerToken(t, "IT"), validUserBody)

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "ALREADY_EXISTS", errorCodeOf(t, resp))
}
