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
	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type publicDeps struct {
	shares   *mocks.MockIShareTokenUseCase
	orders   *mocks.MockIOrderUseCase
	comments *mocks.MockICommentUseCase
	payments *mocks.MockIPaymentUseCase
}

func newPublicHandler(t *testing.T) (*PublicHandler, publicDeps, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	deps := publicDeps{
		shares:   mocks.NewMockIShareTokenUseCase(ctrl),
		orders:   mocks.NewMockIOrderUseCase(ctrl),
		comments: mocks.NewMockICommentUseCase(ctrl),
		payments: mocks.NewMockIPaymentUseCase(ctrl),
	}
	return NewPublicHandler(deps.shares, deps.orders, deps.comments, deps.payments), deps, ctrl
}

func liveToken(perms ...entities.SharePermission) entities.ShareToken {
	if len(perms) == 0 {
		perms = entities.DefaultSharePermissions()
	}
	return entities.ShareToken{
		Token:       "tok-1",
		OrderID:     "o-1",
		TenantID:    "tn-1",
		Customer:    &entities.CustomerSnapshot{ID: "c-1", Name: "Rafael Duarte Lima", Phone: "+5548988264694"},
		Company:     &entities.CompanySnapshot{ID: "tn-1", Name: "Oficina do Rafael", Phone: "+5548999990000"},
		Permissions: perms,
		ExpiresAt:   time.Now().UTC().Add(24 * time.Hour),
	}
}

func TestPublicHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expired token answers generic 401", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/public/orders/:token", h.GetOrder)

		deps.shares.EXPECT().Validate(gomock.Any(), "tok-1").Return(entities.ShareToken{}, usecase.ErrShareTokenExpired)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/orders/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_SHARE_TOKEN" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("missing view permission", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/public/orders/:token", h.GetOrder)

		deps.shares.EXPECT().Validate(gomock.Any(), "tok-1").Return(liveToken(entities.SharePermissionApprove), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/orders/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success names the company unmasked", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/public/orders/:token", h.GetOrder)

		deps.shares.EXPECT().Validate(gomock.Any(), "tok-1").Return(liveToken(), nil)
		deps.shares.EXPECT().RecordView(gomock.Any(), "tok-1")
		deps.orders.EXPECT().GetByID(gomock.Any(), "tn-1", "o-1").Return(entities.Order{
			ID: "o-1", TenantID: "tn-1", Number: 12, Status: entities.OrderStatusQuote,
		}, nil)
		deps.comments.EXPECT().List(gomock.Any(), "tn-1", "o-1", false).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/orders/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		company, _ := body["company"].(map[string]any)
		if company["name"] != "Oficina do Rafael" {
			t.Fatalf("expected company block, got %s", w.Body.String())
		}
		if company["phone"] != "+5548999990000" {
			t.Fatalf("company contact must not be masked, got %v", company["phone"])
		}
	})

	t.Run("success masks customer and records view", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.GET("/v1/public/orders/:token", h.GetOrder)

		token := liveToken()
		deps.shares.EXPECT().Validate(gomock.Any(), "tok-1").Return(token, nil)
		deps.shares.EXPECT().RecordView(gomock.Any(), "tok-1")
		deps.orders.EXPECT().GetByID(gomock.Any(), "tn-1", "o-1").Return(entities.Order{
			ID:       "o-1",
			TenantID: "tn-1",
			Number:   12,
			Status:   entities.OrderStatusQuote,
			Customer: &entities.CustomerSnapshot{ID: "c-1", Name: "Rafael Duarte Lima", Phone: "+5548988264694"},
			Services: []entities.LineItem{{Name: "Repair", Value: 350}},
			Total:    350,
		}, nil)
		deps.comments.EXPECT().List(gomock.Any(), "tn-1", "o-1", false).Return([]entities.Comment{
			{ID: "cm-1", Text: "Aguardando peça", AuthorType: entities.CommentAuthorStaff, Source: entities.CommentSourceInternal},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/public/orders/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		customer, _ := body["customer"].(map[string]any)
		if customer["name"] != "Rafael L****" {
			t.Fatalf("expected masked name, got %v", customer["name"])
		}
		if customer["phone"] != "(48) *****-4694" {
			t.Fatalf("expected masked phone, got %v", customer["phone"])
		}
	})
}

func TestPublicHandler_ApproveReject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve already settled", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/approve", h.Approve)

		deps.shares.EXPECT().Approve(gomock.Any(), "tok-1").
			Return(entities.Order{}, entities.ShareToken{}, usecase.ErrShareTokenSettled)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve success returns only new status", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/approve", h.Approve)

		deps.shares.EXPECT().Approve(gomock.Any(), "tok-1").
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusApproved}, liveToken(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["new_status"] != "approved" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if _, leaked := body["customer"]; leaked {
			t.Fatalf("approve response must not carry order data: %s", w.Body.String())
		}
	})

	t.Run("reject with reason", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/reject", h.Reject)

		deps.shares.EXPECT().Reject(gomock.Any(), "tok-1", "too expensive").
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCanceled}, liveToken(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/reject", bytes.NewBufferString(`{"reason":"too expensive"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["new_status"] != "canceled" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("reject without body", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/reject", h.Reject)

		deps.shares.EXPECT().Reject(gomock.Any(), "tok-1", "").
			Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCanceled}, liveToken(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/reject", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPublicHandler_AddComment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing text", func(t *testing.T) {
		h, _, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/comments", h.AddComment)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/comments", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/comments", h.AddComment)

		deps.shares.EXPECT().Comment(gomock.Any(), "tok-1", "Pode aprovar").Return(entities.Comment{
			ID:         "cm-1",
			OrderID:    "o-1",
			Text:       "Pode aprovar",
			AuthorType: entities.CommentAuthorCustomer,
			Source:     entities.CommentSourceMagicLink,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/comments", bytes.NewBufferString(`{"text":"Pode aprovar"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["author_type"] != "customer" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPublicHandler_Rate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("order not done", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/rating", h.Rate)

		deps.shares.EXPECT().Validate(gomock.Any(), "tok-1").Return(liveToken(), nil)
		deps.orders.EXPECT().Rate(gomock.Any(), "tn-1", "o-1", 5, "").Return(entities.Order{}, usecase.ErrOrderNotDone)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/rating", bytes.NewBufferString(`{"score":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/rating", h.Rate)

		now := time.Now().UTC()
		deps.shares.EXPECT().Validate(gomock.Any(), "tok-1").Return(liveToken(), nil)
		deps.orders.EXPECT().Rate(gomock.Any(), "tn-1", "o-1", 5, "excelente").Return(entities.Order{
			ID:     "o-1",
			Status: entities.OrderStatusDone,
			Rating: &entities.Rating{Score: 5, Comment: "excelente", CreatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/rating", bytes.NewBufferString(`{"score":5,"comment":"excelente"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["score"] != float64(5) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestPublicHandler_Pay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway unauthorized", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/payments", h.Pay)

		deps.payments.EXPECT().PayByShareToken(gomock.Any(), "tok-1", gomock.Any()).
			Return(entities.Order{}, entities.PaymentTransaction{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("nothing to pay", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/payments", h.Pay)

		deps.payments.EXPECT().PayByShareToken(gomock.Any(), "tok-1", gomock.Any()).
			Return(entities.Order{}, entities.PaymentTransaction{}, usecase.ErrNothingToPay)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, deps, ctrl := newPublicHandler(t)
		defer ctrl.Finish()

		r := gin.New()
		r.POST("/v1/public/orders/:token/payments", h.Pay)

		deps.payments.EXPECT().PayByShareToken(gomock.Any(), "tok-1", gomock.Any()).
			Return(
				entities.Order{ID: "o-1", Total: 350, PaidAmount: 350},
				entities.PaymentTransaction{ID: "tx-1", OrderID: "o-1", Amount: 260, Type: entities.TransactionTypePayment},
				nil,
			)

		req := httptest.NewRequest(http.MethodPost, "/v1/public/orders/tok-1/payments", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["remaining_balance"] != float64(0) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapPublicError(t *testing.T) {
	if got := mapPublicError(usecase.ErrShareTokenNotFound); got.HTTPStatus != http.StatusUnauthorized || got.Code != "INVALID_SHARE_TOKEN" {
		t.Fatalf("expected 401 INVALID_SHARE_TOKEN")
	}
	if got := mapPublicError(usecase.ErrShareTokenExpired); got.Code != "INVALID_SHARE_TOKEN" {
		t.Fatalf("expired must collapse into the same code")
	}
	if got := mapPublicError(usecase.ErrSharePermissionDenied); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapPublicError(usecase.ErrShareTokenSettled); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPublicError(usecase.ErrOrderNotQuote); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPublicError(usecase.ErrPaymentGatewayCustomerNotFound); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPublicError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
