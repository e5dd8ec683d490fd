package memory

import (
	"context"
	"sync"
)

// SubmissionStore is the in-memory implementation of app.SubmissionStore.
// It tracks, per quiz, the set of session ids that already answered.
type SubmissionStore struct {
	mu          sync.Mutex
	submissions map[int64]map[string]struct{}
}

func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{
		submissions: make(map[int64]map[string]struct{}),
	}
}

// Record marks the session as having answered the quiz. Returns false when
// the session had already answered.
func (s *SubmissionStore) Record(_ context.Context, quizID int64, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.submissions[quizID]
	if !ok {
		set = make(map[string]struct{})
		s.submissions[quizID] = set
	}
	if _, answered := set[sessionID]; answered {
		return false, nil
	}
	set[sessionID] = struct{}{}
	return true, nil
}

// Reset clears the submission set for a quiz, called when the quiz starts.
func (s *SubmissionStore) Reset(_ context.Context, quizID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submissions, quizID)
	return nil
}
