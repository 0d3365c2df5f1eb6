package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hskpro/warehouse-api/internal/config"
	"github.com/hskpro/warehouse-api/internal/domain"
	"github.com/hskpro/warehouse-api/internal/pkg/jwthelper"
	"github.com/hskpro/warehouse-api/internal/service"
)

type stubAuthService struct {
	user     domain.User
	loginErr error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (domain.User, error) {
	return s.user, s.loginErr
}

func newAuthRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(&config.APIConfig{JWTSigningKey: testSigningKey}, svc)
	router := gin.New()
	router.POST("/api/v1/auth/login", handler.HandleLogin)

	return router
}

func TestHandleLogin_Success(t *testing.T) {
	svc := &stubAuthService{user: domain.User{
		ID:       7,
		Username: "scanner1",
		Position: "RECEIVING",
		Status:   "ACTIVE",
	}}
	router := newAuthRouter(svc)

	resp := doRequest(router, http.MethodPost, "/api/v1/auth/login", "", `{"username":"scanner1","password":"Secret123"}`)

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "scanner1", body.User.Username)

	claims, err := jwthelper.ParseToken([]byte(testSigningKey), body.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "RECEIVING", claims.Position)
}

func TestHandleLogin_WrongCredentials(t *testing.T) {
	tests := []struct {
		name     string
		loginErr error
	}{
		{"unknown user", service.ErrUserNotFound},
		{"wrong password", service.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(&stubAuthService{loginErr: tt.loginErr})

			resp := doRequest(router, http.MethodPost, "/api/v1/auth/login", "", `{"username":"scanner1","password":"Secret123"}`)

			assert.Equal(t, http.StatusUnauthorized, resp.Code)
			assert.Equal(t, "INVALID_CREDENTIALS", errorCodeOf(t, resp))
		})
	}
}

func TestHandleLogin_ValidationFailure(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	resp := doRequest(router, http.MethodPost, "/api/v1/auth/login", "", `{"username":"ab","password":"short"}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCodeOf(t, resp))
}
