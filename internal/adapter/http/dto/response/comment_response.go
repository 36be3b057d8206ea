package response

import (
	"time"

	"github.com/rafaeldl/praticOSopen-sub000/internal/domain/entities"
)

type CommentResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorType string    `json:"author_type"`
	Author     string    `json:"author,omitempty"`
	Source     string    `json:"source"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromComment(c entities.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorType: string(c.AuthorType),
		Author:     c.Author,
		Source:     string(c.Source),
		IsInternal: c.IsInternal,
		CreatedAt:  c.CreatedAt,
	}
}

func FromComments(comments []entities.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, FromComment(c))
	}
	return out
}
