package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase"
	"github.com/rafaeldl/praticOSopen-sub000/pkg"

	"github.com/gin-gonic/gin"
)

const authContextKey = "authContext"

// Staff resolves any of the staff credential channels (api-key pair, bearer,
// bot link) and stores the AuthContext for the handler chain. The three
// resolver sentinels stay distinct in the logs but all answer 401.
func Staff(resolver usecase.IAuthResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		creds := usecase.Credentials{
			APIKey:    strings.TrimSpace(c.GetHeader("X-Api-Key")),
			APISecret: c.GetHeader("X-Api-Secret"),
			Bearer:    bearerFrom(c.GetHeader("Authorization")),
			BotPhone:  strings.TrimSpace(c.GetHeader("X-Bot-Phone")),
		}

		ac, err := resolver.Resolve(c.Request.Context(), creds)
		if err != nil {
			appErr := mapAuthError(err)
			log.Printf("[auth][middleware] rejected path=%s code=%s err=%v", c.FullPath(), appErr.Code, err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(authContextKey, ac)
		c.Next()
	}
}

// RequireCapability gates a route on one staff capability. It must run after
// Staff.
func RequireCapability(cap entities.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac, ok := AuthFromContext(c)
		if !ok || !ac.Principal.HasCapability(cap) {
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Missing permission", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func AuthFromContext(c *gin.Context) (entities.AuthContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return entities.AuthContext{}, false
	}
	ac, ok := v.(entities.AuthContext)
	return ac, ok
}

func bearerFrom(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrTokenExpired):
		return pkg.NewDomainErrorSimple("TOKEN_EXPIRED", "Credential expired", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCredential),
		errors.Is(err, usecase.ErrShareTokenNotFound),
		errors.Is(err, usecase.ErrShareTokenExpired):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
