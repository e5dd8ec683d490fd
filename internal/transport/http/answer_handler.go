package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"slideshowfx-live/internal/app"
	"slideshowfx-live/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// sessionCookieName carries the server-issued attendee session id used to
// enforce at-most-one answer per quiz. The original client kept a
// self-asserted "answered" cookie; that stays a UX hint only, the server
// decides.
const sessionCookieName = "sfx-session"

// AnswerHandler serves the synchronous quiz answer endpoint:
// POST /slideshowfx/quiz/{quizID}/answer with a form field "answer" holding
// Base64-encoded JSON {"quizId": n, "answers": [ids...]}.
type AnswerHandler struct {
	engine *app.QuizEngine
}

func NewAnswerHandler(engine *app.QuizEngine) *AnswerHandler {
	return &AnswerHandler{engine: engine}
}

func (h *AnswerHandler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	quizID, err := strconv.ParseInt(chi.URLParam(r, "quizID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	sessionID := h.attendeeSession(w, r)

	encoded := r.FormValue("answer")
	if encoded == "" {
		http.Error(w, "missing answer", http.StatusBadRequest)
		return
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		http.Error(w, "answer is not valid base64", http.StatusBadRequest)
		return
	}
	var submission domain.AnswerSubmission
	if err := json.Unmarshal(raw, &submission); err != nil {
		http.Error(w, "invalid answer payload", http.StatusBadRequest)
		return
	}
	if submission.QuizID != quizID {
		http.Error(w, "quiz id mismatch", http.StatusBadRequest)
		return
	}

	err = h.engine.SubmitAnswer(r.Context(), quizID, sessionID, submission.Answers)
	switch {
	case errors.Is(err, domain.ErrQuizNotRunning):
		http.Error(w, err.Error(), http.StatusNotAcceptable)
	case errors.Is(err, domain.ErrDuplicateAnswer):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrEmptyAnswer):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

// attendeeSession returns the attendee's session id, issuing a cookie on
// first contact.
func (h *AnswerHandler) attendeeSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}
