package app

import (
	"context"
	"fmt"
	"sync"

	"slideshowfx-live/internal/domain"
	"slideshowfx-live/internal/protocol"
)

// SubmissionStore records which sessions already answered a quiz. Record
// must be first-write-wins: it returns false when the session had already
// answered the quiz.
type SubmissionStore interface {
	Record(ctx context.Context, quizID int64, sessionID string) (bool, error)
	Reset(ctx context.Context, quizID int64) error
}

// ResultListener receives the updated tally after each scored submission and
// when a quiz starts. It is invoked synchronously on the submitting path and
// must be cheap; the presenter UI hops threads on its own side.
type ResultListener func(domain.QuizResult)

// QuizEngine holds the single running-quiz slot. At most one quiz runs at a
// time; starting a quiz while another runs implicitly stops the old one, and
// the replaced quiz gets its own "quiz stopped" broadcast so attendee views
// never strand on a dead quiz.
type QuizEngine struct {
	dispatcher *Dispatcher
	store      SubmissionStore

	mu       sync.Mutex
	current  *domain.Quiz
	results  map[int64]*domain.QuizResult
	onResult ResultListener
}

func NewQuizEngine(dispatcher *Dispatcher, store SubmissionStore) *QuizEngine {
	return &QuizEngine{
		dispatcher: dispatcher,
		store:      store,
		results:    make(map[int64]*domain.QuizResult),
	}
}

// SetResultListener registers the presenter-side tally callback. Call before
// the server starts accepting submissions.
func (e *QuizEngine) SetResultListener(listener ResultListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onResult = listener
}

// Start makes quiz the running quiz and broadcasts it to attendees. The
// submission set for the quiz id is reset; the result tally is kept across
// re-starts of the same id within the live session.
func (e *QuizEngine) Start(ctx context.Context, quiz domain.Quiz) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	// reset before any broadcast: a store failure must leave the running
	// quiz untouched and attendees unaware
	if err := e.store.Reset(ctx, quiz.ID); err != nil {
		return fmt.Errorf("reset submissions for quiz %d: %w", quiz.ID, err)
	}
	if e.current != nil {
		e.dispatcher.Publish(protocol.QuizStopped())
	}

	quizCopy := quiz
	e.current = &quizCopy
	if _, ok := e.results[quiz.ID]; !ok {
		e.results[quiz.ID] = &domain.QuizResult{QuizID: quiz.ID}
	}
	e.dispatcher.Publish(protocol.QuizStarted(quizCopy.View()))
	if e.onResult != nil {
		e.onResult(*e.results[quiz.ID])
	}
	return nil
}

// Stop ends the running quiz when the id matches and broadcasts the stop.
func (e *QuizEngine) Stop(quizID int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil || e.current.ID != quizID {
		return domain.ErrQuizNotRunning
	}
	e.current = nil
	e.dispatcher.Publish(protocol.QuizStopped())
	return nil
}

// Current returns the attendee view of the running quiz, if any.
func (e *QuizEngine) Current() (domain.QuizView, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return domain.QuizView{}, false
	}
	return e.current.View(), true
}

// SubmitAnswer records one session's answer for the running quiz. Results
// stay private to the submitter; nothing is broadcast.
func (e *QuizEngine) SubmitAnswer(ctx context.Context, quizID int64, sessionID string, answers []int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil || e.current.ID != quizID {
		return domain.ErrQuizNotRunning
	}
	if len(answers) == 0 {
		return domain.ErrEmptyAnswer
	}

	first, err := e.store.Record(ctx, quizID, sessionID)
	if err != nil {
		return fmt.Errorf("record submission for quiz %d: %w", quizID, err)
	}
	if !first {
		return domain.ErrDuplicateAnswer
	}

	tally := e.results[quizID]
	if e.current.CheckAnswers(answers) {
		tally.Correct++
	} else {
		tally.Wrong++
	}
	if e.onResult != nil {
		e.onResult(*tally)
	}
	return nil
}

// Results returns the tally for a quiz id, running or not.
func (e *QuizEngine) Results(quizID int64) (domain.QuizResult, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	tally, ok := e.results[quizID]
	if !ok {
		return domain.QuizResult{}, false
	}
	return *tally, true
}
