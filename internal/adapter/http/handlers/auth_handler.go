package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/dto/request"
	response "github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/dto/response"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase"
	"github.com/rafaeldl/praticOSopen-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTokenPayload = pkg.NewDomainErrorSimple("INVALID_TOKEN_INPUT", "Invalid token payload", http.StatusBadRequest)

// AuthHandler exposes the API key + secret exchange that mints short-lived
// bearer tokens.

type AuthHandler struct {
	resolver usecase.IAuthResolver
}

func NewAuthHandler(resolver usecase.IAuthResolver) *AuthHandler {
	return &AuthHandler{resolver: resolver}
}

// IssueToken handles POST /auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var payload request.TokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTokenPayload.HTTPStatus, errInvalidTokenPayload.ToHTTPError())
		return
	}

	token, expiresAt, err := h.resolver.IssueAccessToken(c.Request.Context(), payload.ResolveKey(), payload.Secret)
	if err != nil {
		log.Printf("[auth][handler] token exchange failed key=%s err=%v", payload.ResolveKey(), err)
		appErr := mapAuthHandlerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

func mapAuthHandlerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTokenExpired):
		return pkg.NewDomainErrorSimple("TOKEN_EXPIRED", "Credential expired", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCredential), errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
