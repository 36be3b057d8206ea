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

// staffRouter wires a router that behaves as if the Staff middleware already
// resolved an owner principal for tenant tn-1.
func staffRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("authContext", entities.AuthContext{Principal: entities.Principal{
			Kind:         entities.CredentialAPIKey,
			TenantID:     "tn-1",
			UserID:       "u-1",
			Role:         entities.RoleOwner,
			Capabilities: entities.AllCapabilities(),
		}})
	})
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.POST("/v1/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"services":[{"name":"Repair","value":100}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success stamps tenant and actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.POST("/v1/orders", h.CreateOrder)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, o entities.Order) (entities.Order, error) {
				if o.TenantID != "tn-1" {
					t.Fatalf("expected tenant tn-1, got %s", o.TenantID)
				}
				if o.CreatedBy != "u-1" {
					t.Fatalf("expected createdBy u-1, got %s", o.CreatedBy)
				}
				o.ID = "o-1"
				o.Number = 12
				o.Status = entities.OrderStatusQuote
				o.Total = 100
				return o, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"customer":{"name":"Rafael Duarte Lima"},"services":[{"name":"Repair","value":100}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["number"] != float64(12) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.GET("/v1/orders/:number", h.GetOrder)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.GET("/v1/orders/:number", h.GetOrder)

		uc.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(99)).Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.GET("/v1/orders/:number", h.GetOrder)

		uc.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(12)).Return(entities.Order{
			ID: "o-1", TenantID: "tn-1", Number: 12, Status: entities.OrderStatusQuote, Total: 350, PaidAmount: 90,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/12", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["remaining_balance"] != float64(260) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid transition carries allowed set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.PATCH("/v1/orders/:number/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "tn-1", int64(12), entities.OrderStatusDone, "u-1").
			Return(entities.OrderStatus(""), entities.Order{}, &usecase.InvalidTransitionError{
				From:    entities.OrderStatusQuote,
				To:      entities.OrderStatusDone,
				Allowed: []entities.OrderStatus{entities.OrderStatusApproved, entities.OrderStatusCanceled},
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/12/status", bytes.NewBufferString(`{"status":"done"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		details, _ := body["details"].(map[string]any)
		if details["from"] != "quote" || details["to"] != "done" {
			t.Fatalf("unexpected details: %s", w.Body.String())
		}
	})

	t.Run("success reports previous status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.PATCH("/v1/orders/:number/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "tn-1", int64(12), entities.OrderStatusApproved, "u-1").
			Return(entities.OrderStatusQuote, entities.Order{ID: "o-1", Number: 12, Status: entities.OrderStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/12/status", bytes.NewBufferString(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["previous_status"] != "quote" || body["new_status"] != "approved" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrderHandler_LineItems(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.POST("/v1/orders/:number/items", h.AddLineItem)

		uc.EXPECT().AddLineItem(gomock.Any(), "tn-1", int64(12), entities.LineItemKindProduct,
			entities.LineItem{Name: "Screen", Value: 200, Quantity: 2}).
			Return(entities.Order{ID: "o-1", Number: 12, Total: 400}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/12/items", bytes.NewBufferString(`{"kind":"product","name":"Screen","value":200,"quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.DELETE("/v1/orders/:number/items/:kind/:index", h.RemoveLineItem)

		uc.EXPECT().RemoveLineItem(gomock.Any(), "tn-1", int64(12), entities.LineItemKindService, 5).
			Return(entities.Order{}, usecase.ErrLineItemOutOfRange)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/12/items/service/5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("remove invalid index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.DELETE("/v1/orders/:number/items/:kind/:index", h.RemoveLineItem)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/12/items/service/x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Snapshots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("update customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.PATCH("/v1/orders/:number/customer", h.UpdateCustomer)

		snapshot := entities.CustomerSnapshot{ID: "c-2", Name: "Maria Silva", Phone: "+5548999887766"}
		uc.EXPECT().UpdateCustomer(gomock.Any(), "tn-1", int64(12), snapshot).
			Return(entities.Order{ID: "o-1", Number: 12, Customer: &snapshot}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/12/customer", bytes.NewBufferString(`{"id":"c-2","name":"Maria Silva","phone":"+5548999887766"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update customer missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.PATCH("/v1/orders/:number/customer", h.UpdateCustomer)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/12/customer", bytes.NewBufferString(`{"phone":"+5548999887766"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update device", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.PATCH("/v1/orders/:number/device", h.UpdateDevice)

		snapshot := entities.DeviceSnapshot{Brand: "Apple", Model: "iPhone 13", SerialNumber: "F2LLD0AXQ1GC"}
		uc.EXPECT().UpdateDevice(gomock.Any(), "tn-1", int64(12), snapshot).
			Return(entities.Order{ID: "o-1", Number: 12, Device: &snapshot}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/12/device", bytes.NewBufferString(`{"brand":"Apple","model":"iPhone 13","serial_number":"F2LLD0AXQ1GC"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_Transactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.POST("/v1/orders/:number/transactions", h.AddTransaction)

		now := time.Now().UTC()
		uc.EXPECT().AddTransaction(gomock.Any(), "tn-1", int64(12), 90.0, entities.TransactionTypePayment, "sinal", "u-1").
			Return(
				entities.Order{ID: "o-1", Number: 12, Total: 350, PaidAmount: 90},
				entities.PaymentTransaction{ID: "tx-1", OrderID: "o-1", Amount: 90, Type: entities.TransactionTypePayment, Description: "sinal", CreatedAt: now},
				nil,
			)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/12/transactions", bytes.NewBufferString(`{"amount":90,"type":"payment","description":"sinal"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		tx, _ := body["transaction"].(map[string]any)
		if tx["id"] != "tx-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := staffRouter()
		r.GET("/v1/orders/:number/transactions", h.ListTransactions)

		uc.EXPECT().ListTransactions(gomock.Any(), "tn-1", int64(12)).
			Return([]entities.PaymentTransaction{{ID: "tx-1", Amount: 90}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/12/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	if got := mapOrderError(usecase.ErrInvalidAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrLineItemOutOfRange); got.HTTPStatus != http.StatusNotFound || got.Code != "LINE_ITEM_NOT_FOUND" {
		t.Fatalf("expected 404 LINE_ITEM_NOT_FOUND")
	}
	if got := mapOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrderError(usecase.ErrOrderNotDone); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapOrderError(usecase.ErrOrderAlreadyRated); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
