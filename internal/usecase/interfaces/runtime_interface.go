package interfaces

import "time"

// Clock supplies the single authoritative current time used for expiry
// checks. Injected so tests can pin it.

type Clock interface {
	Now() time.Time
}

// IDGenerator supplies opaque unique identifiers. NewToken must return
// unguessable material suitable for magic links; NewID is for entity ids.

type IDGenerator interface {
	NewID() string
	NewToken() string
}
