package app

import (
	"fmt"
	"strings"
	"sync"

	"slideshowfx-live/internal/domain"
	"slideshowfx-live/internal/protocol"
)

// DefaultAuthor is used when an attendee submits without a display name.
const DefaultAuthor = "somebody"

// ChatChannel is the append-only ordered log of the live-session chat.
// All mutations happen under one lock and publish their event before the
// lock is released, so the dispatcher sees events in commit order.
type ChatChannel struct {
	dispatcher *Dispatcher

	mu       sync.Mutex
	messages []domain.ChatMessage
	index    map[string]int
	nextSeq  int64
}

func NewChatChannel(dispatcher *Dispatcher) *ChatChannel {
	return &ChatChannel{
		dispatcher: dispatcher,
		index:      make(map[string]int),
		nextSeq:    1,
	}
}

// Submit appends a new message with status "new" and broadcasts it.
func (c *ChatChannel) Submit(author, content string) (domain.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return domain.ChatMessage{}, domain.ErrEmptyContent
	}
	if strings.TrimSpace(author) == "" {
		author = DefaultAuthor
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	msg := domain.ChatMessage{
		ID:      fmt.Sprintf("msg-%d", c.nextSeq),
		Author:  author,
		Content: content,
		Status:  domain.StatusNew,
	}
	c.nextSeq++
	c.index[msg.ID] = len(c.messages)
	c.messages = append(c.messages, msg)
	c.dispatcher.Publish(protocol.ChatMessageAdded(msg))
	return msg, nil
}

// MarkAnswered transitions a message to "answered" and broadcasts the
// update. Marking an already-answered message succeeds again so duplicate
// presenter clicks stay harmless.
func (c *ChatChannel) MarkAnswered(id string) (domain.ChatMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return domain.ChatMessage{}, domain.ErrMessageNotFound
	}
	c.messages[i].Status = domain.StatusAnswered
	msg := c.messages[i]
	c.dispatcher.Publish(protocol.ChatMessageUpdated(msg))
	return msg, nil
}

// History returns a snapshot of the full log in submission order.
func (c *ChatChannel) History() []domain.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}
