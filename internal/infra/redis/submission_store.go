package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SubmissionStore keeps the answered-session set for each quiz in Redis.
// SADD gives first-write-wins semantics, so at-most-once per session holds
// even if the presenter application is restarted during a live session.
type SubmissionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSubmissionStore(client *redis.Client, ttl time.Duration) *SubmissionStore {
	return &SubmissionStore{client: client, ttl: ttl}
}

// Record adds the session to the quiz's answered set. Returns false when the
// session was already present.
func (s *SubmissionStore) Record(ctx context.Context, quizID int64, sessionID string) (bool, error) {
	key := s.key(quizID)
	added, err := s.client.SAdd(ctx, key, sessionID).Result()
	if err != nil {
		return false, err
	}
	if s.ttl > 0 {
		// refresh on every write; the set only needs to outlive the quiz window
		_ = s.client.Expire(ctx, key, s.ttl).Err()
	}
	return added == 1, nil
}

// Reset drops the answered set when the quiz starts.
func (s *SubmissionStore) Reset(ctx context.Context, quizID int64) error {
	return s.client.Del(ctx, s.key(quizID)).Err()
}

func (s *SubmissionStore) key(quizID int64) string {
	return "quiz:" + strconv.FormatInt(quizID, 10) + ":submissions"
}
