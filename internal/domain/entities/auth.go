package entities

import "time"

// Tenant is the company operating a workshop: the owner of every order,
// user and credential sharing its id.
//
// Storage model (DynamoDB):
//   - PK: id
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot freezes the tenant's display identity for embedding into records
// that outlive later tenant edits, such as share tokens.
func (t Tenant) Snapshot() *CompanySnapshot {
	if t.ID == "" {
		return nil
	}
	return &CompanySnapshot{ID: t.ID, Name: t.Name, Phone: t.Phone}
}

// CompanySnapshot is the issuing company's identity as the customer should
// see it. Unlike customer data it is never redacted: the magic-link page
// must say who the link came from.
type CompanySnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// APIKey is a long-lived tenant credential presented as a header pair
// (key + secret). Expired keys stay stored but no longer resolve.
//
// Storage model (DynamoDB):
//   - PK: key
type APIKey struct {
	Key       string     `json:"key"`
	Secret    string     `json:"secret"`
	TenantID  string     `json:"tenant_id"`
	Label     string     `json:"label,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (k APIKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && !k.ExpiresAt.After(now)
}

// User is a staff member of a tenant.
//
// Storage model (DynamoDB):
//   - PK: tenant_id, SK: id
type User struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	PushToken string    `json:"push_token,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BotLink maps a chat channel phone number to a tenant user. The linking
// handshake itself belongs to the bot subsystem; the resolver only consumes
// the resulting record.
//
// Storage model (DynamoDB):
//   - PK: phone
type BotLink struct {
	Phone     string    `json:"phone"`
	TenantID  string    `json:"tenant_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
