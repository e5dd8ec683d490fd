package domain

import "errors"

var (
	// ErrEmptyContent is returned when a chat submission carries no text.
	ErrEmptyContent = errors.New("chat message content is empty")
	// ErrMessageNotFound is returned for operations on an unknown chat message id.
	ErrMessageNotFound = errors.New("chat message not found")
	// ErrQuizNotRunning is returned when an operation targets a quiz id that is
	// not the currently running quiz, including when no quiz is running at all.
	ErrQuizNotRunning = errors.New("quiz not running")
	// ErrEmptyAnswer is returned when a submission selects no answers.
	ErrEmptyAnswer = errors.New("no answers selected")
	// ErrDuplicateAnswer is returned when a session already answered the running quiz.
	ErrDuplicateAnswer = errors.New("quiz already answered by this session")
	// ErrQuizNotFound indicates the quiz definition could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
)
