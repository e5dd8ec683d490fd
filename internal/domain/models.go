package domain

// ChatMessageStatus is the lifecycle state of a chat message.
type ChatMessageStatus string

const (
	// StatusNew marks a message that has not been handled by the presenter yet.
	StatusNew ChatMessageStatus = "new"
	// StatusAnswered marks a message the presenter flagged as answered.
	StatusAnswered ChatMessageStatus = "answered"
)

// ChatMessage is a single entry of the live-session chat log. Content holds
// decoded UTF-8 text; Base64 transport encoding happens at the protocol
// boundary only.
type ChatMessage struct {
	ID      string
	Author  string
	Content string
	Status  ChatMessageStatus
}

// Answer is one candidate answer of a quiz.
type Answer struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is the single question of a quiz.
type Question struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Quiz is one question with candidate answers, defined by the presenter.
type Quiz struct {
	ID       int64    `json:"id"`
	Question Question `json:"question"`
	Answers  []Answer `json:"answers"`
}

// CorrectCount returns how many answers are flagged correct. A count above
// one means the quiz is multi-select.
func (q Quiz) CorrectCount() int {
	count := 0
	for _, a := range q.Answers {
		if a.Correct {
			count++
		}
	}
	return count
}

// CheckAnswers reports whether the selection matches exactly the set of
// correct answer IDs: every correct answer selected, nothing extra.
func (q Quiz) CheckAnswers(selected []int64) bool {
	if len(selected) == 0 {
		return false
	}
	chosen := make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		chosen[id] = struct{}{}
	}
	matched := 0
	for _, a := range q.Answers {
		if !a.Correct {
			continue
		}
		if _, ok := chosen[a.ID]; !ok {
			return false
		}
		matched++
	}
	return matched > 0 && matched == len(chosen)
}

// AnswerView is the attendee-facing projection of an Answer, without the
// correctness flag.
type AnswerView struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// QuizView is the attendee-facing projection of a quiz. CorrectAnswers is
// only a rendering hint (radio vs checkbox).
type QuizView struct {
	ID             int64        `json:"id"`
	Question       Question     `json:"question"`
	Answers        []AnswerView `json:"answers"`
	CorrectAnswers int          `json:"correctAnswers"`
}

// View builds the public projection of the quiz.
func (q Quiz) View() QuizView {
	answers := make([]AnswerView, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, AnswerView{ID: a.ID, Text: a.Text})
	}
	return QuizView{
		ID:             q.ID,
		Question:       q.Question,
		Answers:        answers,
		CorrectAnswers: q.CorrectCount(),
	}
}

// AnswerSubmission is one attendee's answer to the running quiz.
type AnswerSubmission struct {
	QuizID  int64   `json:"quizId"`
	Answers []int64 `json:"answers"`
}

// QuizResult tallies correct and wrong submissions for a quiz. Tallies
// survive re-starts of the same quiz id within a live session.
type QuizResult struct {
	QuizID  int64 `json:"quizId"`
	Correct int   `json:"correct"`
	Wrong   int   `json:"wrong"`
}
