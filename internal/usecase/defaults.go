package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/rafaeldl/praticOSopen-sub000/internal/usecase/interfaces"
)

// SystemClock is the production Clock: UTC wall time.
type SystemClock struct{}

var _ interfaces.Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UUIDGenerator is the production IDGenerator. Entity ids are UUIDs; magic
// link tokens get 32 bytes of crypto/rand material so they stay unguessable.
type UUIDGenerator struct{}

var _ interfaces.IDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

func (UUIDGenerator) NewToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// UUID pair rather than panic in a request path.
		return uuid.NewString() + uuid.NewString()
	}
	return hex.EncodeToString(b)
}
