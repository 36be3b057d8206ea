package entities

// CredentialKind names the four supported credential channels. Downstream
// code must never branch on the channel, only on capabilities; the kind is
// kept for audit and logging.

type CredentialKind string

const (
	CredentialAPIKey     CredentialKind = "apiKey"
	CredentialBearer     CredentialKind = "bearer"
	CredentialBotLink    CredentialKind = "botLink"
	CredentialShareToken CredentialKind = "shareToken"
)

// Principal is the resolved actor of one request: who is acting, on behalf of
// which tenant, with which capabilities. Created per request, never persisted.
//
// Share-token principals carry OrderID and SharePermissions and no broader
// tenant capabilities at all.
type Principal struct {
	Kind             CredentialKind    `json:"kind"`
	TenantID         string            `json:"tenant_id"`
	UserID           string            `json:"user_id,omitempty"`
	Role             Role              `json:"role,omitempty"`
	Capabilities     []Capability      `json:"capabilities,omitempty"`
	OrderID          string            `json:"order_id,omitempty"`
	SharePermissions []SharePermission `json:"share_permissions,omitempty"`
}

func (p Principal) HasCapability(c Capability) bool {
	for _, granted := range p.Capabilities {
		if granted == c {
			return true
		}
	}
	return false
}

// ActorID is the identity used for createdBy/audit fields: the user when one
// resolved, otherwise the tenant (API key and bearer channels act as the
// company itself).
func (p Principal) ActorID() string {
	if p.UserID != "" {
		return p.UserID
	}
	return p.TenantID
}

// AuthContext is what the resolver hands to handlers. ShareToken is set only
// for the shareToken channel, so public handlers can reach the token record
// without a second lookup.
type AuthContext struct {
	Principal  Principal
	ShareToken *ShareToken
}
