package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is identified by its (IdeaID, VoterID) pair; at most one exists per pair.
type Vote struct {
	IdeaID  uuid.UUID `json:"idea_id"`
	VoterID string    `json:"voter_id"`
	CastAt  time.Time `json:"cast_at"`
}

type VoteStatus string

const (
	VoteRecorded  VoteStatus = "recorded"
	VoteDuplicate VoteStatus = "duplicate"
)

// VoteResult reports the outcome of a cast. A duplicate is an expected
// outcome, not an error: no record is created and the count is unchanged.
type VoteResult struct {
	Status    VoteStatus `json:"status"`
	VoteCount int64      `json:"vote_count"`
}
