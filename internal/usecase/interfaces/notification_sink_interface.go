package interfaces

import (
	"context"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

// INotificationSink abstracts the outbound push provider (e.g. Expo).
//
// The dispatcher treats it as a best-effort sink: errors are logged by the
// caller and never roll back the mutation that produced the event.

type INotificationSink interface {
	Send(ctx context.Context, msg entities.PushMessage) error
}
