package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"slideshowfx-live/internal/domain"
)

type countingLoader struct {
	QuizLoader
	calls int
}

func (l *countingLoader) LoadQuiz(ctx context.Context, quizID int64) (domain.Quiz, error) {
	l.calls++
	return l.QuizLoader.LoadQuiz(ctx, quizID)
}

func libraryQuiz() domain.Quiz {
	return domain.Quiz{
		ID:       1,
		Question: domain.Question{ID: 1, Text: "What is 2 + 2?"},
		Answers: []domain.Answer{
			{ID: 1, Text: "3", Correct: false},
			{ID: 2, Text: "4", Correct: true},
		},
	}
}

func TestQuizLibraryCachesDefinitions(t *testing.T) {
	loader := &countingLoader{
		QuizLoader: NewStaticQuizLoader(map[int64]domain.Quiz{1: libraryQuiz()}),
	}
	library := NewQuizLibrary(loader, time.Minute)

	if _, err := library.GetQuiz(context.Background(), 1); err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader called once, got %d", loader.calls)
	}

	// second call hits the cache
	if _, err := library.GetQuiz(context.Background(), 1); err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
}

func TestStaticLoaderUnknownQuiz(t *testing.T) {
	library := NewQuizLibrary(NewStaticQuizLoader(nil), time.Minute)
	_, err := library.GetQuiz(context.Background(), 42)
	if !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}
