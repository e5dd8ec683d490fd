package memory

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"slideshowfx-live/internal/domain"
	"golang.org/x/sync/singleflight"
)

// QuizLoader fetches quiz definitions from a backing store.
type QuizLoader interface {
	LoadQuiz(ctx context.Context, quizID int64) (domain.Quiz, error)
}

// QuizLibrary caches quiz definitions with TTL so repeated starts of the
// same quiz don't hit the backing store.
type QuizLibrary struct {
	loader QuizLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[int64]cachedQuiz
}

type cachedQuiz struct {
	quiz      domain.Quiz
	expiresAt time.Time
}

func NewQuizLibrary(loader QuizLoader, ttl time.Duration) *QuizLibrary {
	return &QuizLibrary{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[int64]cachedQuiz),
	}
}

func (l *QuizLibrary) GetQuiz(ctx context.Context, quizID int64) (domain.Quiz, error) {
	now := l.clock()

	l.mu.RLock()
	if entry, ok := l.cache[quizID]; ok && entry.expiresAt.After(now) {
		l.mu.RUnlock()
		return entry.quiz, nil
	}
	l.mu.RUnlock()

	result, err, _ := l.sf.Do(quizKey(quizID), func() (interface{}, error) {
		now := l.clock()
		l.mu.RLock()
		if entry, ok := l.cache[quizID]; ok && entry.expiresAt.After(now) {
			l.mu.RUnlock()
			return entry.quiz, nil
		}
		l.mu.RUnlock()

		quiz, err := l.loader.LoadQuiz(ctx, quizID)
		if err != nil {
			return domain.Quiz{}, err
		}

		l.mu.Lock()
		l.cache[quizID] = cachedQuiz{
			quiz:      quiz,
			expiresAt: now.Add(l.ttlWithJitter()),
		}
		l.mu.Unlock()
		return quiz, nil
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return result.(domain.Quiz), nil
}

// StaticQuizLoader serves quiz definitions from an in-memory map; the
// desktop app seeds it from the presentation content.
type StaticQuizLoader struct {
	quizzes map[int64]domain.Quiz
}

func NewStaticQuizLoader(quizzes map[int64]domain.Quiz) *StaticQuizLoader {
	return &StaticQuizLoader{quizzes: quizzes}
}

func (l *StaticQuizLoader) LoadQuiz(_ context.Context, quizID int64) (domain.Quiz, error) {
	if quiz, ok := l.quizzes[quizID]; ok {
		return quiz, nil
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

func quizKey(quizID int64) string {
	return "quiz-" + strconv.FormatInt(quizID, 10)
}

func (l *QuizLibrary) ttlWithJitter() time.Duration {
	if l.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(l.ttl) / 10
	return l.ttl + time.Duration(l.rnd.Int63n(jitterMax+1))
}
