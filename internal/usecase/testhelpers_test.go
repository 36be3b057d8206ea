package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

// stubClock pins the authoritative time so expiry checks are deterministic.
type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

// stubIDs hands out predictable ids/tokens.
type stubIDs struct{ n int }

func (g *stubIDs) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func (g *stubIDs) NewToken() string {
	g.n++
	return fmt.Sprintf("token-%d", g.n)
}

// recordingDispatcher captures events synchronously; the real dispatcher is
// fire-and-forget and is tested on its own.
type recordingDispatcher struct {
	events []entities.NotificationEvent
	extras []map[string]string
}

func (d *recordingDispatcher) Notify(_ context.Context, event entities.NotificationEvent, _ entities.Order, extra map[string]string) {
	d.events = append(d.events, event)
	d.extras = append(d.extras, extra)
}

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
