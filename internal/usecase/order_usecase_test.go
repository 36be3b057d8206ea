package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	mock_interfaces "github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newOrderUseCase(t *testing.T) (*OrderUseCase, *mock_interfaces.MockIOrderRepository, *mock_interfaces.MockICommentRepository, *recordingDispatcher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	comments := mock_interfaces.NewMockICommentRepository(ctrl)
	dispatcher := &recordingDispatcher{}
	uc := NewOrderUseCase(repo, comments, dispatcher, stubClock{now: testNow}, &stubIDs{})
	return uc, repo, comments, dispatcher
}

func TestOrderUseCase_Create(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc, _, _, _ := newOrderUseCase(t)
		_, err := uc.Create(context.Background(), entities.Order{TenantID: "   "})
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("success allocates number and recomputes total", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)

		repo.EXPECT().NextNumber(gomock.Any(), "tn-1").Return(int64(1), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.Number != 1 || o.Status != entities.OrderStatusQuote {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Total != 350 {
					t.Fatalf("expected total 350, got %v", o.Total)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.Order{
			TenantID: "tn-1",
			Customer: &entities.CustomerSnapshot{ID: "c-1", Name: "Rafael Duarte Lima"},
			Services: []entities.LineItem{{Name: "screen swap", Value: 250}, {Name: "diagnostics", Value: 100}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Number != 1 {
			t.Fatalf("expected number 1, got %d", created.Number)
		}
	})

	t.Run("counter error propagates", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		repo.EXPECT().NextNumber(gomock.Any(), "tn-1").Return(int64(0), errors.New("db"))
		_, err := uc.Create(context.Background(), entities.Order{TenantID: "tn-1"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	base := entities.Order{ID: "o-1", TenantID: "tn-1", Number: 7, Status: entities.OrderStatusQuote}

	t.Run("invalid status value", func(t *testing.T) {
		uc, _, _, _ := newOrderUseCase(t)
		_, _, err := uc.UpdateStatus(context.Background(), "tn-1", 7, "shipped", "u-1")
		if !errors.Is(err, ErrInvalidStatusValue) {
			t.Fatalf("expected ErrInvalidStatusValue, got %v", err)
		}
	})

	t.Run("invalid transition reports allowed set", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		o := base
		o.Status = entities.OrderStatusApproved
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(7)).Return(o, nil)

		_, _, err := uc.UpdateStatus(context.Background(), "tn-1", 7, entities.OrderStatusQuote, "u-1")
		var ite *InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		want := []entities.OrderStatus{entities.OrderStatusProgress, entities.OrderStatusDone, entities.OrderStatusCanceled}
		if len(ite.Allowed) != len(want) {
			t.Fatalf("expected allowed %v, got %v", want, ite.Allowed)
		}
		for i := range want {
			if ite.Allowed[i] != want[i] {
				t.Fatalf("expected allowed %v, got %v", want, ite.Allowed)
			}
		}
	})

	t.Run("terminal state reports empty allowed set", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		o := base
		o.Status = entities.OrderStatusDone
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(7)).Return(o, nil)

		_, _, err := uc.UpdateStatus(context.Background(), "tn-1", 7, entities.OrderStatusApproved, "u-1")
		var ite *InvalidTransitionError
		if !errors.As(err, &ite) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
		if len(ite.Allowed) != 0 {
			t.Fatalf("expected empty allowed set, got %v", ite.Allowed)
		}
	})

	t.Run("success appends audit and notifies", func(t *testing.T) {
		uc, repo, comments, dispatcher := newOrderUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(7)).Return(base, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Status != entities.OrderStatusApproved {
					t.Fatalf("expected approved, got %s", o.Status)
				}
				return o, nil
			},
		)
		comments.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.Comment{})).DoAndReturn(
			func(_ context.Context, c entities.Comment) (entities.Comment, error) {
				if !c.IsInternal || c.Source != entities.CommentSourceInternal {
					t.Fatalf("audit entry must be internal: %+v", c)
				}
				return c, nil
			},
		)

		prev, updated, err := uc.UpdateStatus(context.Background(), "tn-1", 7, entities.OrderStatusApproved, "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prev != entities.OrderStatusQuote || updated.Status != entities.OrderStatusApproved {
			t.Fatalf("unexpected statuses: prev=%s new=%s", prev, updated.Status)
		}
		if len(dispatcher.events) != 1 || dispatcher.events[0] != entities.EventOrderStatusChanged {
			t.Fatalf("expected status-changed event, got %v", dispatcher.events)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(7)).Return(entities.Order{}, nil)
		_, _, err := uc.UpdateStatus(context.Background(), "tn-1", 7, entities.OrderStatusApproved, "u-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_LineItems(t *testing.T) {
	base := entities.Order{
		ID: "o-1", TenantID: "tn-1", Number: 3, Status: entities.OrderStatusQuote,
		Services: []entities.LineItem{{ID: "li-1", Name: "solder", Value: 80}},
	}
	base.RecomputeTotal()

	t.Run("invalid kind", func(t *testing.T) {
		uc, _, _, _ := newOrderUseCase(t)
		_, err := uc.AddLineItem(context.Background(), "tn-1", 3, "bundle", entities.LineItem{Name: "x", Value: 1})
		if !errors.Is(err, ErrInvalidLineItemKind) {
			t.Fatalf("expected ErrInvalidLineItemKind, got %v", err)
		}
	})

	t.Run("invalid item", func(t *testing.T) {
		uc, _, _, _ := newOrderUseCase(t)
		_, err := uc.AddLineItem(context.Background(), "tn-1", 3, entities.LineItemKindService, entities.LineItem{Name: "  "})
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("add product recomputes total", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(3)).Return(base, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if len(o.Products) != 1 || o.Products[0].Quantity != 2 {
					t.Fatalf("unexpected products: %+v", o.Products)
				}
				if o.Total != 160 {
					t.Fatalf("expected total 160, got %v", o.Total)
				}
				return o, nil
			},
		)

		_, err := uc.AddLineItem(context.Background(), "tn-1", 3, entities.LineItemKindProduct,
			entities.LineItem{Name: "flex cable", Value: 40, Quantity: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("remove out of range", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(3)).Return(base, nil)
		_, err := uc.RemoveLineItem(context.Background(), "tn-1", 3, entities.LineItemKindService, 5)
		if !errors.Is(err, ErrLineItemOutOfRange) {
			t.Fatalf("expected ErrLineItemOutOfRange, got %v", err)
		}
	})

	t.Run("remove recomputes total", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(3)).Return(base, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if len(o.Services) != 0 || o.Total != 0 {
					t.Fatalf("unexpected order after removal: %+v", o)
				}
				return o, nil
			},
		)
		if _, err := uc.RemoveLineItem(context.Background(), "tn-1", 3, entities.LineItemKindService, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_AddTransaction(t *testing.T) {
	base := entities.Order{
		ID: "o-1", TenantID: "tn-1", Number: 1, Status: entities.OrderStatusApproved,
		Services: []entities.LineItem{{Name: "repair", Value: 350}},
	}
	base.RecomputeTotal()

	t.Run("invalid amount", func(t *testing.T) {
		uc, _, _, _ := newOrderUseCase(t)
		_, _, err := uc.AddTransaction(context.Background(), "tn-1", 1, 0, entities.TransactionTypePayment, "", "u-1")
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc, _, _, _ := newOrderUseCase(t)
		_, _, err := uc.AddTransaction(context.Background(), "tn-1", 1, 10, "refund", "", "u-1")
		if !errors.Is(err, ErrInvalidTransactionType) {
			t.Fatalf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("payment updates paid amount and remaining balance", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(1)).Return(base, nil)
		repo.EXPECT().AppendTransaction(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentTransaction{})).DoAndReturn(
			func(_ context.Context, tx entities.PaymentTransaction) (entities.PaymentTransaction, error) {
				if tx.OrderID != "o-1" || tx.Amount != 90 || tx.Type != entities.TransactionTypePayment {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				return tx, nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		updated, tx, err := uc.AddTransaction(context.Background(), "tn-1", 1, 90, entities.TransactionTypePayment, "first installment", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PaidAmount != 90 {
			t.Fatalf("expected paid 90, got %v", updated.PaidAmount)
		}
		if updated.RemainingBalance() != 260 {
			t.Fatalf("expected remaining 260, got %v", updated.RemainingBalance())
		}
		if tx.ID == "" {
			t.Fatalf("expected generated transaction id")
		}
	})

	t.Run("discount lowers total", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(1)).Return(base, nil)
		repo.EXPECT().AppendTransaction(gomock.Any(), gomock.Any()).Return(entities.PaymentTransaction{}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		updated, _, err := uc.AddTransaction(context.Background(), "tn-1", 1, 50, entities.TransactionTypeDiscount, "loyalty", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Discount != 50 || updated.Total != 300 {
			t.Fatalf("expected discount 50 / total 300, got %v / %v", updated.Discount, updated.Total)
		}
	})

	t.Run("overpayment surfaces negative balance", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		paid := base
		paid.PaidAmount = 300
		repo.EXPECT().GetByNumber(gomock.Any(), "tn-1", int64(1)).Return(paid, nil)
		repo.EXPECT().AppendTransaction(gomock.Any(), gomock.Any()).Return(entities.PaymentTransaction{}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		updated, _, err := uc.AddTransaction(context.Background(), "tn-1", 1, 100, entities.TransactionTypePayment, "", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.RemainingBalance() != -50 {
			t.Fatalf("expected remaining -50, got %v", updated.RemainingBalance())
		}
	})
}

func TestOrderUseCase_Rate(t *testing.T) {
	done := entities.Order{ID: "o-1", TenantID: "tn-1", Number: 2, Status: entities.OrderStatusDone}

	t.Run("invalid score", func(t *testing.T) {
		uc, _, _, _ := newOrderUseCase(t)
		for _, score := range []int{0, 6, -1} {
			if _, err := uc.Rate(context.Background(), "tn-1", "o-1", score, ""); !errors.Is(err, ErrInvalidRatingScore) {
				t.Fatalf("score %d: expected ErrInvalidRatingScore, got %v", score, err)
			}
		}
	})

	t.Run("order not done", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		o := done
		o.Status = entities.OrderStatusProgress
		repo.EXPECT().GetByID(gomock.Any(), "tn-1", "o-1").Return(o, nil)
		if _, err := uc.Rate(context.Background(), "tn-1", "o-1", 5, ""); !errors.Is(err, ErrOrderNotDone) {
			t.Fatalf("expected ErrOrderNotDone, got %v", err)
		}
	})

	t.Run("already rated", func(t *testing.T) {
		uc, repo, _, _ := newOrderUseCase(t)
		o := done
		o.Rating = &entities.Rating{Score: 4}
		repo.EXPECT().GetByID(gomock.Any(), "tn-1", "o-1").Return(o, nil)
		if _, err := uc.Rate(context.Background(), "tn-1", "o-1", 5, ""); !errors.Is(err, ErrOrderAlreadyRated) {
			t.Fatalf("expected ErrOrderAlreadyRated, got %v", err)
		}
	})

	t.Run("success notifies", func(t *testing.T) {
		uc, repo, _, dispatcher := newOrderUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "tn-1", "o-1").Return(done, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Rating == nil || o.Rating.Score != 5 {
					t.Fatalf("expected rating set: %+v", o.Rating)
				}
				return o, nil
			},
		)

		if _, err := uc.Rate(context.Background(), "tn-1", "o-1", 5, "great service"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dispatcher.events) != 1 || dispatcher.events[0] != entities.EventOrderRated {
			t.Fatalf("expected rated event, got %v", dispatcher.events)
		}
	})
}
