package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/dto/request"
	response "github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/dto/response"
	"github.com/rafaeldl/praticOSopen-sub000/internal/adapter/http/middleware"
	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase"
	"github.com/rafaeldl/praticOSopen-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidOrderNumber  = pkg.NewDomainErrorSimple("INVALID_ORDER_NUMBER", "Invalid order number", http.StatusBadRequest)
)

// OrderHandler handles the staff-facing order lifecycle and ledger routes.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder handles POST /orders. Orders are always born as quotes.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o := payload.ToEntity()
	o.TenantID = ac.Principal.TenantID
	o.CreatedBy = ac.Principal.ActorID()

	created, err := h.usecase.Create(c.Request.Context(), o)
	if err != nil {
		log.Printf("[order][handler] create failed tenant=%s err=%v", o.TenantID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(created))
}

// GetOrder handles GET /orders/:number.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	o, err := h.usecase.GetByNumber(c.Request.Context(), ac.Principal.TenantID, number)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateStatus handles PATCH /orders/:number/status. A rejected transition
// answers 400 with the allowed set in the error details.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	previous, updated, err := h.usecase.UpdateStatus(c.Request.Context(), ac.Principal.TenantID, number,
		entities.OrderStatus(payload.Status), ac.Principal.ActorID())
	if err != nil {
		var transitionErr *usecase.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			appErr := pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(gin.H{
				"from":    transitionErr.From,
				"to":      transitionErr.To,
				"allowed": transitionErr.Allowed,
			}))
			return
		}
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatusChangeResponse{
		PreviousStatus: string(previous),
		NewStatus:      string(updated.Status),
		Order:          response.FromOrder(updated),
	})
}

// AddLineItem handles POST /orders/:number/items.
func (h *OrderHandler) AddLineItem(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var payload request.AddLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AddLineItem(c.Request.Context(), ac.Principal.TenantID, number,
		entities.LineItemKind(payload.Kind), payload.ToEntity())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

// RemoveLineItem handles DELETE /orders/:number/items/:kind/:index.
func (h *OrderHandler) RemoveLineItem(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.RemoveLineItem(c.Request.Context(), ac.Principal.TenantID, number,
		entities.LineItemKind(c.Param("kind")), index)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateCustomer handles PATCH /orders/:number/customer. The snapshot is
// replaced wholesale.
func (h *OrderHandler) UpdateCustomer(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.UpdateCustomer(c.Request.Context(), ac.Principal.TenantID, number, payload.ToSnapshot())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateDevice handles PATCH /orders/:number/device.
func (h *OrderHandler) UpdateDevice(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var payload request.DeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.UpdateDevice(c.Request.Context(), ac.Principal.TenantID, number, payload.ToSnapshot())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(o))
}

// AddTransaction handles POST /orders/:number/transactions.
func (h *OrderHandler) AddTransaction(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o, tx, err := h.usecase.AddTransaction(c.Request.Context(), ac.Principal.TenantID, number,
		payload.Amount, entities.TransactionType(payload.Type), payload.Description, ac.Principal.ActorID())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLedgerAppend(o, tx))
}

// ListTransactions handles GET /orders/:number/transactions.
func (h *OrderHandler) ListTransactions(c *gin.Context) {
	ac, _ := middleware.AuthFromContext(c)
	number, ok := orderNumberParam(c)
	if !ok {
		return
	}

	txs, err := h.usecase.ListTransactions(c.Request.Context(), ac.Principal.TenantID, number)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

func orderNumberParam(c *gin.Context) (int64, bool) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		c.JSON(errInvalidOrderNumber.HTTPStatus, errInvalidOrderNumber.ToHTTPError())
		return 0, false
	}
	return number, true
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidStatusValue),
		errors.Is(err, usecase.ErrInvalidLineItem),
		errors.Is(err, usecase.ErrInvalidLineItemKind),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidTransactionType),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidDevice),
		errors.Is(err, usecase.ErrInvalidRatingScore),
		errors.Is(err, usecase.ErrRatingCommentTooLong):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLineItemOutOfRange):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotDone):
		return pkg.NewDomainErrorSimple("ORDER_NOT_DONE", "Order is not done yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyRated):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_RATED", "Order already rated", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
