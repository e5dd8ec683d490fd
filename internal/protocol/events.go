package protocol

import "slideshowfx-live/internal/domain"

// ChatMessagePayload is the wire form of a chat message. Content is Base64.
type ChatMessagePayload struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

// ChatMessageToPayload encodes a chat message for transport.
func ChatMessageToPayload(m domain.ChatMessage) ChatMessagePayload {
	return ChatMessagePayload{
		ID:      m.ID,
		Author:  m.Author,
		Content: EncodeContent(m.Content),
		Status:  string(m.Status),
	}
}

// ChatMessageAdded is the broadcast frame for a newly accepted message.
func ChatMessageAdded(m domain.ChatMessage) Frame {
	return Frame{Service: ServiceChatMessageAdd, Code: CodeAdded, Content: ChatMessageToPayload(m)}
}

// ChatMessageUpdated is the broadcast frame for a status transition.
func ChatMessageUpdated(m domain.ChatMessage) Frame {
	return Frame{Service: ServiceChatMessageUpdate, Code: CodeOK, Content: ChatMessageToPayload(m)}
}

// ChatHistory is the direct reply carrying the full log in submission order.
func ChatHistory(messages []domain.ChatMessage) Frame {
	payloads := make([]ChatMessagePayload, 0, len(messages))
	for _, m := range messages {
		payloads = append(payloads, ChatMessageToPayload(m))
	}
	return Frame{Service: ServiceChatHistory, Code: CodeOK, Content: payloads}
}

// QuizStarted is the broadcast frame for a started quiz. The view carries no
// per-answer correctness.
func QuizStarted(view domain.QuizView) Frame {
	return Frame{Service: ServiceQuizStart, Code: CodeAdded, Content: view}
}

// QuizStopped is the broadcast frame for a stopped quiz.
func QuizStopped() Frame {
	return Frame{Service: ServiceQuizStop, Code: CodeOK, Content: "The quiz has been stopped"}
}

// CurrentQuiz is the direct reply to a slideshowfx.quiz.current request.
func CurrentQuiz(view domain.QuizView, running bool) Frame {
	if !running {
		return Frame{Service: ServiceQuizCurrent, Code: CodeNoActiveQuiz, Content: "No quiz active"}
	}
	return Frame{Service: ServiceQuizCurrent, Code: CodeOK, Content: view}
}

// Error is a direct reply for a rejected request.
func Error(service string, code int, message string) Frame {
	return Frame{Service: service, Code: code, Content: message}
}
