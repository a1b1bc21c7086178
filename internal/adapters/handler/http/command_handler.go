package http

import (
	"net/http"

	"github.com/forkthisidea/ideahub/internal/adapters/handler/command"
)

// CommandHandler is the messaging-platform webhook. The platform posts the
// slash-command form payload; the reply body is the rendered text the
// platform shows back to the user.
type CommandHandler struct {
	dispatcher *command.Dispatcher
}

func NewCommandHandler(dispatcher *command.Dispatcher) *CommandHandler {
	return &CommandHandler{
		dispatcher: dispatcher,
	}
}

func (h *CommandHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	userID := r.PostFormValue("user_id")
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	reply := h.dispatcher.Dispatch(r.Context(), userID, r.PostFormValue("text"))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(reply))
}
