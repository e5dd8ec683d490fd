package http

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	sendBufferSize = 32
	writeTimeout   = 10 * time.Second
)

var (
	errSessionClosed  = errors.New("session closed")
	errSendBufferFull = errors.New("send buffer full")
)

// wsSession wraps one attendee websocket. Outbound frames go through a
// buffered channel drained by a dedicated writer goroutine, so a slow or
// dead client can never stall the broadcast path; when the buffer overflows
// the session is reported as failed and dropped by the registry.
type wsSession struct {
	id   string
	conn *websocket.Conn

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func newWSSession(id string, conn *websocket.Conn) *wsSession {
	return &wsSession{
		id:   id,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (s *wsSession) ID() string { return s.id }

// Send queues a frame for the writer goroutine. It never blocks.
func (s *wsSession) Send(frame []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSessionClosed
	}
	select {
	case s.send <- frame:
		return nil
	default:
		return errSendBufferFull
	}
}

// Close is idempotent and safe to call concurrently with Send.
func (s *wsSession) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.send)
	s.mu.Unlock()
	_ = s.conn.Close()
}

func (s *wsSession) writeLoop() {
	for frame := range s.send {
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			log.Printf("ws write to %s failed: %v", s.id, err)
			_ = s.conn.Close()
			return
		}
	}
}
