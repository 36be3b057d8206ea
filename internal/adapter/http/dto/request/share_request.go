package request

import "github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"

// ShareRequest configures a new magic link. Both fields are optional: an
// empty permission list falls back to the default grant, a non-positive TTL
// falls back to the default expiry.
type ShareRequest struct {
	Permissions   []string `json:"permissions"`
	ExpiresInDays int      `json:"expires_in_days"`
}

func (r ShareRequest) ToPermissions() []entities.SharePermission {
	out := make([]entities.SharePermission, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		out = append(out, entities.SharePermission(p))
	}
	return out
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type RatingRequest struct {
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}
