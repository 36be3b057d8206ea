package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
	mock_interfaces "github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newDispatcher(t *testing.T) (*NotificationDispatcher, *mock_interfaces.MockIAuthRepository, *mock_interfaces.MockINotificationSink) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	auth := mock_interfaces.NewMockIAuthRepository(ctrl)
	sink := mock_interfaces.NewMockINotificationSink(ctrl)
	return NewNotificationDispatcher(auth, sink), auth, sink
}

func notifiableOrder() entities.Order {
	return entities.Order{ID: "o-1", TenantID: "tn-1", Number: 12, AssignedTo: "u-tech", CreatedBy: "u-attendant"}
}

func tenantMembers() []entities.User {
	return []entities.User{
		{ID: "u-owner", TenantID: "tn-1", Role: entities.RoleOwner, PushToken: "ExponentPushToken[owner]"},
		{ID: "u-tech", TenantID: "tn-1", Role: entities.RoleTechnician, PushToken: "ExponentPushToken[tech]"},
		{ID: "u-attendant", TenantID: "tn-1", Role: entities.RoleConsultant, PushToken: "ExponentPushToken[attendant]"},
		{ID: "u-other-tech", TenantID: "tn-1", Role: entities.RoleTechnician, PushToken: "ExponentPushToken[other]"},
		{ID: "u-no-device", TenantID: "tn-1", Role: entities.RoleAdmin},
	}
}

func TestNotificationDispatcher_Dispatch(t *testing.T) {
	t.Run("targets involved users and notifying roles", func(t *testing.T) {
		d, auth, sink := newDispatcher(t)
		auth.EXPECT().ListUsers(gomock.Any(), "tn-1").Return(tenantMembers(), nil)
		sink.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg entities.PushMessage) error {
				// Owner (notifying role), assignee, creator. The uninvolved
				// technician stays out; the admin has no push token.
				want := map[string]bool{
					"ExponentPushToken[owner]":     true,
					"ExponentPushToken[tech]":      true,
					"ExponentPushToken[attendant]": true,
				}
				if len(msg.To) != len(want) {
					t.Fatalf("unexpected recipients: %v", msg.To)
				}
				for _, to := range msg.To {
					if !want[to] {
						t.Fatalf("unexpected recipient %q", to)
					}
				}
				if msg.Title != "Order #12" {
					t.Fatalf("unexpected title %q", msg.Title)
				}
				return nil
			},
		)

		if err := d.dispatch(context.Background(), entities.EventOrderApproved, notifiableOrder(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no reachable recipients is not an error", func(t *testing.T) {
		d, auth, _ := newDispatcher(t)
		auth.EXPECT().ListUsers(gomock.Any(), "tn-1").Return(
			[]entities.User{{ID: "u-no-device", Role: entities.RoleOwner}}, nil)

		// Sink must not be called.
		if err := d.dispatch(context.Background(), entities.EventOrderApproved, notifiableOrder(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("member listing failure propagates", func(t *testing.T) {
		d, auth, _ := newDispatcher(t)
		auth.EXPECT().ListUsers(gomock.Any(), "tn-1").Return(nil, errors.New("dynamodb scan failed"))

		if err := d.dispatch(context.Background(), entities.EventOrderApproved, notifiableOrder(), nil); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("sink failure propagates", func(t *testing.T) {
		d, auth, sink := newDispatcher(t)
		auth.EXPECT().ListUsers(gomock.Any(), "tn-1").Return(tenantMembers(), nil)
		sink.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("expo 5xx"))

		if err := d.dispatch(context.Background(), entities.EventOrderPaid, notifiableOrder(), nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBuildPushMessage(t *testing.T) {
	order := notifiableOrder()

	cases := []struct {
		name     string
		event    entities.NotificationEvent
		extra    map[string]string
		wantBody string
	}{
		{"approved", entities.EventOrderApproved, nil, "The customer approved the quote."},
		{"rejected with reason", entities.EventOrderRejected, map[string]string{"reason": "too expensive"}, "The customer rejected the quote: too expensive"},
		{"rejected without reason", entities.EventOrderRejected, nil, "The customer rejected the quote."},
		{"status change", entities.EventOrderStatusChanged, map[string]string{"new_status": "progress"}, "Status changed to progress."},
		{"rated", entities.EventOrderRated, map[string]string{"score": "5"}, "The customer rated the service 5/5."},
		{"paid", entities.EventOrderPaid, map[string]string{"amount": "260.00"}, "Payment of 260.00 received."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := buildPushMessage(tc.event, order, tc.extra)
			if msg.Body != tc.wantBody {
				t.Fatalf("body %q, want %q", msg.Body, tc.wantBody)
			}
			if msg.Data["event"] != string(tc.event) || msg.Data["order_id"] != "o-1" {
				t.Fatalf("unexpected data payload: %v", msg.Data)
			}
		})
	}

	t.Run("long comment is excerpted", func(t *testing.T) {
		text := strings.Repeat("a", 200)
		msg := buildPushMessage(entities.EventOrderCommented, order, map[string]string{"text": text})
		if !strings.HasSuffix(msg.Body, "...") {
			t.Fatalf("expected truncated body, got %q", msg.Body)
		}
		if len([]rune(msg.Body)) > len("New comment: ")+123 {
			t.Fatalf("body too long: %d runes", len([]rune(msg.Body)))
		}
	})
}
