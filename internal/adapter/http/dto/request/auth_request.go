package request

import "strings"

// TokenRequest is the API key + secret exchange payload for POST /auth/token.
type TokenRequest struct {
	Key    string `json:"key" binding:"required"`
	Secret string `json:"secret" binding:"required"`
}

func (r TokenRequest) ResolveKey() string {
	return strings.TrimSpace(r.Key)
}
