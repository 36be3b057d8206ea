package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/handlers/mocks"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_IssueToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIAuthResolver(ctrl)
		h := NewAuthHandler(resolver)

		r := gin.New()
		r.POST("/v1/auth/token", h.IssueToken)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIAuthResolver(ctrl)
		h := NewAuthHandler(resolver)

		r := gin.New()
		r.POST("/v1/auth/token", h.IssueToken)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewBufferString(`{"key":"ak-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIAuthResolver(ctrl)
		h := NewAuthHandler(resolver)

		r := gin.New()
		r.POST("/v1/auth/token", h.IssueToken)

		resolver.EXPECT().IssueAccessToken(gomock.Any(), "ak-1", "wrong").Return("", time.Time{}, usecase.ErrInvalidCredential)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewBufferString(`{"key":"ak-1","secret":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("trims key before exchange", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIAuthResolver(ctrl)
		h := NewAuthHandler(resolver)

		r := gin.New()
		r.POST("/v1/auth/token", h.IssueToken)

		expiresAt := time.Now().UTC().Add(time.Hour)
		resolver.EXPECT().IssueAccessToken(gomock.Any(), "ak-1", "s3cret").Return("jwt-token", expiresAt, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewBufferString(`{"key":"  ak-1  ","secret":"s3cret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		resolver := mocks.NewMockIAuthResolver(ctrl)
		h := NewAuthHandler(resolver)

		r := gin.New()
		r.POST("/v1/auth/token", h.IssueToken)

		expiresAt := time.Now().UTC().Add(time.Hour)
		resolver.EXPECT().IssueAccessToken(gomock.Any(), "ak-1", "s3cret").Return("jwt-token", expiresAt, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewBufferString(`{"key":"ak-1","secret":"s3cret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["access_token"] != "jwt-token" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["token_type"] != "Bearer" {
			t.Fatalf("expected Bearer token type, got %v", body["token_type"])
		}
	})
}

func TestMapAuthHandlerError(t *testing.T) {
	if got := mapAuthHandlerError(usecase.ErrTokenExpired); got.HTTPStatus != http.StatusUnauthorized || got.Code != "TOKEN_EXPIRED" {
		t.Fatalf("expected 401 TOKEN_EXPIRED, got %d %s", got.HTTPStatus, got.Code)
	}
	if got := mapAuthHandlerError(usecase.ErrInvalidCredential); got.HTTPStatus != http.StatusUnauthorized || got.Code != "INVALID_CREDENTIALS" {
		t.Fatalf("expected 401 INVALID_CREDENTIALS, got %d %s", got.HTTPStatus, got.Code)
	}
	if got := mapAuthHandlerError(usecase.ErrUnauthorized); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapAuthHandlerError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
