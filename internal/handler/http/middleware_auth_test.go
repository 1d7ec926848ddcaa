package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matu-sky/qrcode1/internal/service"
	"github.com/matu-sky/qrcode1/internal/utils"
	"github.com/matu-sky/qrcode1/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuthMiddleware(t *testing.T, auth service.AuthService, header string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	h := newTestHandler(t, auth, nil)

	var capturedReq *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr, capturedReq
}

func TestAuth_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "good-token", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}

	rr, capturedReq := executeAuthMiddleware(t, auth, "Bearer good-token")

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, capturedReq)

	userID, ok := utils.GetUserIDFromContext(capturedReq.Context())
	require.True(t, ok, "user ID must be stored in the request context")
	assert.Equal(t, int64(42), userID)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"scheme only", "Bearer"},
		{"empty token", "Bearer "},
		{"invalid token", "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				},
			}

			rr, capturedReq := executeAuthMiddleware(t, auth, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Nil(t, capturedReq, "next handler must not run")
		})
	}
}
