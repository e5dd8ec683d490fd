package app

import (
	"context"
	"errors"
	"log"

	"slideshowfx-live/internal/domain"
)

// QuizLibrary loads quiz definitions by id (from the presentation content
// in the desktop app, or from the configured backing store in standalone
// deployments).
type QuizLibrary interface {
	GetQuiz(ctx context.Context, quizID int64) (domain.Quiz, error)
}

// Gateway is the narrow façade the presenter UI drives the live session
// through. It adds no invariants of its own; it only names the boundary
// between the desktop shell and the session core.
type Gateway struct {
	chat    *ChatChannel
	engine  *QuizEngine
	library QuizLibrary
}

func NewGateway(chat *ChatChannel, engine *QuizEngine, library QuizLibrary) *Gateway {
	return &Gateway{chat: chat, engine: engine, library: library}
}

// StartQuiz pushes a presenter-defined quiz into the engine.
func (g *Gateway) StartQuiz(ctx context.Context, quiz domain.Quiz) error {
	return g.engine.Start(ctx, quiz)
}

// StartQuizByID loads a quiz from the library and starts it.
func (g *Gateway) StartQuizByID(ctx context.Context, quizID int64) error {
	if g.library == nil {
		return domain.ErrQuizNotFound
	}
	quiz, err := g.library.GetQuiz(ctx, quizID)
	if err != nil {
		return err
	}
	return g.engine.Start(ctx, quiz)
}

// StopQuiz stops the running quiz.
func (g *Gateway) StopQuiz(quizID int64) error {
	return g.engine.Stop(quizID)
}

// MarkChatAnswered flags a chat message as answered. Unknown ids are
// swallowed: the presenter double-clicking a stale entry is expected.
func (g *Gateway) MarkChatAnswered(id string) error {
	_, err := g.chat.MarkAnswered(id)
	if errors.Is(err, domain.ErrMessageNotFound) {
		log.Printf("gateway: mark answered on unknown message %s ignored", id)
		return nil
	}
	return err
}

// QuizResults returns the tally for a quiz id.
func (g *Gateway) QuizResults(quizID int64) (domain.QuizResult, bool) {
	return g.engine.Results(quizID)
}
