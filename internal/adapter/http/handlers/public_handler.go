package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	request "github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/dto/request"
	response "github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/dto/response"
	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase"
	"github.com/rafaeldl/praticOSopen-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPublicPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PublicHandler serves the unauthenticated magic-link surface. Every route
// takes the opaque token from the path; everything it returns runs through
// the redaction contract.

type PublicHandler struct {
	shares   usecase.IShareTokenUseCase
	orders   usecase.IOrderUseCase
	comments usecase.ICommentUseCase
	payments usecase.IPaymentUseCase
}

func NewPublicHandler(shares usecase.IShareTokenUseCase, orders usecase.IOrderUseCase, comments usecase.ICommentUseCase, payments usecase.IPaymentUseCase) *PublicHandler {
	return &PublicHandler{shares: shares, orders: orders, comments: comments, payments: payments}
}

// GetOrder handles GET /public/orders/:token.
func (h *PublicHandler) GetOrder(c *gin.Context) {
	token := c.Param("token")

	t, err := h.shares.Validate(c.Request.Context(), token)
	if err != nil {
		appErr := mapPublicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !t.HasPermission(entities.SharePermissionView) {
		appErr := mapPublicError(usecase.ErrSharePermissionDenied)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.shares.RecordView(c.Request.Context(), t.Token)

	o, err := h.orders.GetByID(c.Request.Context(), t.TenantID, t.OrderID)
	if err != nil {
		appErr := mapPublicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	comments, err := h.comments.List(c.Request.Context(), t.TenantID, o.ID, false)
	if err != nil {
		appErr := mapPublicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPublicOrder(o, t, comments))
}

// Approve handles POST /public/orders/:token/approve.
func (h *PublicHandler) Approve(c *gin.Context) {
	order, _, err := h.shares.Approve(c.Request.Context(), c.Param("token"))
	if err != nil {
		log.Printf("[public][handler] approve failed err=%v", err)
		appErr := mapPublicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PublicStatusResponse{NewStatus: string(order.Status)})
}

// Reject handles POST /public/orders/:token/reject. The reason is optional.
func (h *PublicHandler) Reject(c *gin.Context) {
	var payload request.RejectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPublicPayload.HTTPStatus, errInvalidPublicPayload.ToHTTPError())
			return
		}
	}

	order, _, err := h.shares.Reject(c.Request.Context(), c.Param("token"), payload.Reason)
	if err != nil {
		log.Printf("[public][handler] reject failed err=%v", err)
		appErr := mapPublicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PublicStatusResponse{NewStatus: string(order.Status)})
}

// AddComment handles POST /public/orders/:token/comments.
func (h *PublicHandler) AddComment(c *gin.Context) {
	var payload request.CommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPublicPayload.HTTPStatus, errInvalidPublicPayload.ToHTTPError())
		return
	}

	comment, err := h.shares.Comment(c.Request.Context(), c.Param("token"), payload.Text)
	if err != nil {
		appErr := mapPublicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromComment(comment))
}

// Rate handles POST /public/orders/:token/rating.
func (h *PublicHandler) Rate(c *gin.Context) {
	var payload request.RatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPublicPayload.HTTPStatus, errInvalidPublicPayload.ToHTTPError())
		return
	}

	t, err := h.shares.Validate(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapPublicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	o, err := h.orders.Rate(c.Request.Context(), t.TenantID, t.OrderID, payload.Score, payload.Comment)
	if err != nil {
		appErr := mapPublicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.RatingResponse{
		Score:     o.Rating.Score,
		Comment:   o.Rating.Comment,
		CreatedAt: o.Rating.CreatedAt,
	})
}

// Pay handles POST /public/orders/:token/payments: charges the order's
// remaining balance through the payment gateway.
func (h *PublicHandler) Pay(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPublicPayload.HTTPStatus, errInvalidPublicPayload.ToHTTPError())
		return
	}
	payload := json.RawMessage(strings.TrimSpace(string(raw)))

	order, tx, err := h.payments.PayByShareToken(c.Request.Context(), c.Param("token"), payload)
	if err != nil {
		log.Printf("[public][handler] payment failed err=%v", err)
		appErr := mapPublicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPublicPayment(order, tx))
}

// mapPublicError collapses unknown and expired tokens into one external
// shape: a magic-link holder learns only that the link no longer works.
func mapPublicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrShareTokenNotFound), errors.Is(err, usecase.ErrShareTokenExpired):
		return pkg.NewDomainErrorSimple("INVALID_SHARE_TOKEN", "Invalid or expired link", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSharePermissionDenied):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Missing permission", http.StatusForbidden)
	case errors.Is(err, usecase.ErrShareTokenSettled):
		return pkg.NewDomainErrorSimple("ALREADY_SETTLED", "Quote already approved or rejected", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotQuote):
		return pkg.NewDomainErrorSimple("ORDER_NOT_QUOTE", "Order is no longer a quote", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyComment),
		errors.Is(err, usecase.ErrCommentTooLong),
		errors.Is(err, usecase.ErrInvalidRatingScore),
		errors.Is(err, usecase.ErrRatingCommentTooLong),
		errors.Is(err, usecase.ErrInvalidPaymentPayload),
		errors.Is(err, usecase.ErrNothingToPay):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotDone):
		return pkg.NewDomainErrorSimple("ORDER_NOT_DONE", "Order is not done yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyRated):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_RATED", "Order already rated", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved at the payment provider", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
