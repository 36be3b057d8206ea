package entities

import "time"

// MaxCommentLength bounds comment text in characters, not bytes.
const MaxCommentLength = 2000

type CommentAuthorType string

const (
	CommentAuthorStaff    CommentAuthorType = "staff"
	CommentAuthorCustomer CommentAuthorType = "customer"
)

// CommentSource records which channel produced the entry.

type CommentSource string

const (
	CommentSourceInternal  CommentSource = "internal"
	CommentSourceMagicLink CommentSource = "magicLink"
	CommentSourceBot       CommentSource = "bot"
)

// Comment is one entry on the order's append-only communication trail.
//
// Storage model (DynamoDB):
//   - PK: order_id, SK: created_at#id (ascending by creation time)
//
// Entries are never hard-deleted; Deleted marks a soft delete. IsInternal
// keeps staff-only notes out of the customer-visible feed.
type Comment struct {
	ID         string            `json:"id"`
	OrderID    string            `json:"order_id"`
	TenantID   string            `json:"tenant_id"`
	Text       string            `json:"text"`
	AuthorType CommentAuthorType `json:"author_type"`
	Author     string            `json:"author"`
	Source     CommentSource     `json:"source"`
	IsInternal bool              `json:"is_internal"`
	ShareToken string            `json:"share_token,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	Deleted    bool              `json:"deleted,omitempty"`
}
