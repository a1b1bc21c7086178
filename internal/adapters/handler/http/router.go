package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(ideaHandler *IdeaHandler, voteHandler *VoteHandler, commandHandler *CommandHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/ideas", func(r chi.Router) {
			r.Post("/", ideaHandler.CreateIdea)
			r.Get("/", ideaHandler.ListIdeas)
			r.Get("/count", ideaHandler.CountIdeas)
			r.Get("/{id}", ideaHandler.GetIdea)
			r.Post("/{id}/votes", voteHandler.CastVote)
		})
	})

	r.Post("/commands", commandHandler.HandleSlashCommand)

	return r
}
