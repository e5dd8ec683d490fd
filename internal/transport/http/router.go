package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the attendee-facing HTTP surface.
func NewRouter(ws *WSHandler, answers *AnswerHandler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/slideshowfx", func(r chi.Router) {
		r.Get("/ws", ws.ServeWS)
		r.Post("/quiz/{quizID}/answer", answers.HandleAnswer)
	})

	return r
}
