package entities

import "time"

// SharePermission is the capability vocabulary of a magic link. It is
// deliberately narrower than staff capabilities: a token holder can at most
// view the redacted order, approve/reject the quote, and comment.

type SharePermission string

const (
	SharePermissionView    SharePermission = "view"
	SharePermissionApprove SharePermission = "approve"
	SharePermissionComment SharePermission = "comment"
)

func (p SharePermission) Valid() bool {
	switch p {
	case SharePermissionView, SharePermissionApprove, SharePermissionComment:
		return true
	}
	return false
}

// DefaultSharePermissions is the grant used when the issuer supplies no valid
// permission at all.
func DefaultSharePermissions() []SharePermission {
	return []SharePermission{SharePermissionView, SharePermissionApprove, SharePermissionComment}
}

// ShareToken is an opaque, expiring credential bound to exactly one order.
//
// Storage model (DynamoDB):
//   - PK: token
//   - GSI order-index: order_id + created_at
//
// ApprovedAt and RejectedAt are mutually exclusive and each settable at most
// once; after either is set the bound order has left the quote status.
type ShareToken struct {
	Token           string            `json:"token"`
	OrderID         string            `json:"order_id"`
	TenantID        string            `json:"tenant_id"`
	Customer        *CustomerSnapshot `json:"customer,omitempty"`
	Company         *CompanySnapshot  `json:"company,omitempty"`
	Permissions     []SharePermission `json:"permissions"`
	CreatedBy       string            `json:"created_by"`
	CreatedAt       time.Time         `json:"created_at"`
	ExpiresAt       time.Time         `json:"expires_at"`
	ViewCount       int64             `json:"view_count"`
	LastViewedAt    *time.Time        `json:"last_viewed_at,omitempty"`
	ApprovedAt      *time.Time        `json:"approved_at,omitempty"`
	RejectedAt      *time.Time        `json:"rejected_at,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
}

func (t ShareToken) HasPermission(p SharePermission) bool {
	for _, granted := range t.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}

func (t ShareToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}

// Settled reports whether the token already carries an approval or rejection
// outcome. First write wins; a settled token cannot settle again.
func (t ShareToken) Settled() bool {
	return t.ApprovedAt != nil || t.RejectedAt != nil
}
