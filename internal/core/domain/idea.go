package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdeaOrder selects the ordering of an idea listing.
type IdeaOrder string

const (
	OrderRecent IdeaOrder = "recent"
	OrderTop    IdeaOrder = "top"
)

type Idea struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	VoteCount int64     `json:"vote_count"`
}
