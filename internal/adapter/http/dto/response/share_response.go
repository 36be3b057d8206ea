package response

import (
	"time"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

type ShareTokenResponse struct {
	Token           string     `json:"token"`
	URL             string     `json:"url,omitempty"`
	Permissions     []string   `json:"permissions"`
	ExpiresAt       time.Time  `json:"expires_at"`
	ViewCount       int64      `json:"view_count"`
	LastViewedAt    *time.Time `json:"last_viewed_at,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromShareToken(t entities.ShareToken, url string) ShareTokenResponse {
	perms := make([]string, 0, len(t.Permissions))
	for _, p := range t.Permissions {
		perms = append(perms, string(p))
	}
	return ShareTokenResponse{
		Token:           t.Token,
		URL:             url,
		Permissions:     perms,
		ExpiresAt:       t.ExpiresAt,
		ViewCount:       t.ViewCount,
		LastViewedAt:    t.LastViewedAt,
		ApprovedAt:      t.ApprovedAt,
		RejectedAt:      t.RejectedAt,
		RejectionReason: t.RejectionReason,
		CreatedAt:       t.CreatedAt,
	}
}
