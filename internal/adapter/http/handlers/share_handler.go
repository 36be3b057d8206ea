package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/dto/request"
	response "github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/dto/response"
	"github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/middleware"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"
	"github.com/rafaeldl/praticOSopen-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSharePayload = pkg.NewDomainErrorSimple("INVALID_SHARE_INPUT", "Invalid share payload", http.StatusBadRequest)

// ShareHandler handles the staff side of magic links: issuing, listing and
// revoking tokens against an order.

type ShareHandler struct {
	usecase usecase.IShareTokenUseCase
	clock   interfaces.Clock
}

func NewShareHandler(uc usecase.IShareTokenUseCase, clock interfaces.Clock) *ShareHandler {
	return &ShareHandler{usecase: uc, clock: clock}
}

// CreateShare handles POST /orders/:number/share. The body is optional;
// an absent or empty one issues the default grant with the default TTL.
func (h *ShareHandler) CreateShare(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var payload request.ShareRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidSharePayload.HTTPStatus, errInvalidSharePayload.ToHTTPError())
			return
		}
	}

	t, err := h.usecase.Generate(c.Request.Context(), ac.Principal.TenantID, number,
		payload.ToPermissions(), payload.ExpiresInDays, ac.Principal.ActorID())
	if err != nil {
		log.Printf("[share][handler] create failed tenant=%s number=%d err=%v", ac.Principal.TenantID, number, err)
		appErr := mapShareError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromShareToken(t, publicOrderURL(t.Token)))
}

// ListShares handles GET /orders/:number/share and returns only the tokens
// that are still live.
func (h *ShareHandler) ListShares(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	tokens, err := h.usecase.ListForOrder(c.Request.Context(), ac.Principal.TenantID, number)
	if err != nil {
		appErr := mapShareError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	now := h.clock.Now()
	out := make([]response.ShareTokenResponse, 0, len(tokens))
	for _, t := range tokens {
		if t.Expired(now) {
			continue
		}
		out = append(out, response.FromShareToken(t, publicOrderURL(t.Token)))
	}
	c.JSON(http.StatusOK, out)
}

// RevokeShare handles DELETE /orders/:number/share/:token.
func (h *ShareHandler) RevokeShare(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Revoke(c.Request.Context(), ac.Principal.TenantID, number, c.Param("token")); err != nil {
		appErr := mapShareError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusOK)
}

// publicOrderURL builds the customer-facing link when a base URL is
// configured; the token alone is still usable without one.
func publicOrderURL(token string) string {
	base := strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/")
	if base == "" {
		return ""
	}
	return base + "/v1/public/orders/" + token
}

func mapShareError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID), errors.Is(err, usecase.ErrInvalidOrderNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderWithoutCustomer):
		return pkg.NewDomainErrorSimple("ORDER_WITHOUT_CUSTOMER", "Order has no customer to share with", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrShareTokenNotFound):
		return pkg.NewDomainErrorSimple("SHARE_TOKEN_NOT_FOUND", "Share token not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
