package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/forkthisidea/ideahub/internal/core/domain"
	"github.com/forkthisidea/ideahub/internal/core/ports"
)

const defaultAPIListLimit = 20

type IdeaHandler struct {
	ideas ports.IdeaService
	stats ports.StatsService
}

func NewIdeaHandler(ideas ports.IdeaService, stats ports.StatsService) *IdeaHandler {
	return &IdeaHandler{
		ideas: ideas,
		stats: stats,
	}
}

type createIdeaRequest struct {
	AuthorID string `json:"author_id"`
	Text     string `json:"text"`
}

func (h *IdeaHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req createIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.AuthorID == "" {
		http.Error(w, "author_id is required", http.StatusBadRequest)
		return
	}

	idea, err := h.ideas.Submit(r.Context(), ports.SubmitIdeaInput{
		AuthorID: req.AuthorID,
		Text:     req.Text,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyIdeaText) || errors.Is(err, domain.ErrIdeaTextTooLong) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to submit idea", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, idea)
}

func (h *IdeaHandler) GetIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := h.ideas.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidIdeaID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrIdeaNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to get idea", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, idea)
}

func (h *IdeaHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	limit := defaultAPIListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	ideas, err := h.ideas.List(r.Context(), ports.ListIdeasInput{
		Order: domain.IdeaOrder(r.URL.Query().Get("order")),
		Limit: limit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrder) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to list ideas", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ideas)
}

func (h *IdeaHandler) CountIdeas(w http.ResponseWriter, r *http.Request) {
	authorID := r.URL.Query().Get("author_id")

	var count int64
	var err error
	if authorID == "" {
		count, err = h.stats.CountIdeas(r.Context())
	} else {
		count, err = h.stats.CountIdeasByAuthor(r.Context(), authorID)
	}
	if err != nil {
		http.Error(w, "failed to count ideas", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
