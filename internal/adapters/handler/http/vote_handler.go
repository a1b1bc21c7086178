package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forkthisidea/ideahub/internal/core/domain"
	"github.com/forkthisidea/ideahub/internal/core/ports"
)

type VoteHandler struct {
	votes ports.VoteService
}

func NewVoteHandler(votes ports.VoteService) *VoteHandler {
	return &VoteHandler{
		votes: votes,
	}
}

type castVoteRequest struct {
	VoterID string `json:"voter_id"`
}

// CastVote responds 201 for a newly recorded vote and 200 for a duplicate:
// voting twice is an expected outcome, not a client error.
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.VoterID == "" {
		http.Error(w, "voter_id is required", http.StatusBadRequest)
		return
	}

	result, err := h.votes.Cast(r.Context(), chi.URLParam(r, "id"), req.VoterID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidIdeaID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrIdeaNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to cast vote", http.StatusInternalServerError)
		return
	}

	status := http.StatusCreated
	if result.Status == domain.VoteDuplicate {
		status = http.StatusOK
	}
	writeJSON(w, status, result)
}
