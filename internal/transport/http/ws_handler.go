package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"slideshowfx-live/internal/app"
	"slideshowfx-live/internal/domain"
	"slideshowfx-live/internal/protocol"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSHandler owns the attendee websocket endpoint. Each connection is
// registered with the Registry, receives the initial synchronization burst
// (full chat history plus the current quiz) and then serves the envelope
// protocol until it disconnects.
type WSHandler struct {
	registry *Registry
	chat     *app.ChatChannel
	engine   *app.QuizEngine
	upgrader websocket.Upgrader
}

func NewWSHandler(registry *Registry, chat *app.ChatChannel, engine *app.QuizEngine) *WSHandler {
	return &WSHandler{
		registry: registry,
		chat:     chat,
		engine:   engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type chatAddPayload struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// ServeWS upgrades the request and runs the attendee session.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sess := newWSSession(uuid.NewString(), conn)
	go sess.writeLoop()
	h.registry.Register(sess)
	defer h.registry.Unregister(sess.ID())

	// Initial synchronization burst: a fresh attendee converges to the
	// current state before any live event reaches it. The history reply is
	// a full snapshot keyed by message id and must replace the client's
	// local log: a message committed between Register and the snapshot can
	// arrive both as a live add event and inside the snapshot.
	h.reply(sess, protocol.ChatHistory(h.chat.History()))
	view, running := h.engine.Current()
	h.reply(sess, protocol.CurrentQuiz(view, running))

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		req, err := protocol.ParseRequest(raw)
		if err != nil {
			h.reply(sess, protocol.Error("", protocol.CodeBadRequest, "invalid request envelope"))
			continue
		}
		h.dispatch(sess, req)
	}
}

func (h *WSHandler) dispatch(sess *wsSession, req protocol.Request) {
	switch req.Service {
	case protocol.ServiceChatHistory:
		h.reply(sess, protocol.ChatHistory(h.chat.History()))

	case protocol.ServiceQuizCurrent:
		view, running := h.engine.Current()
		h.reply(sess, protocol.CurrentQuiz(view, running))

	case protocol.ServiceChatMessageAdd:
		var payload chatAddPayload
		if err := json.Unmarshal(req.Data, &payload); err != nil {
			h.reply(sess, protocol.Error(req.Service, protocol.CodeBadRequest, "invalid message payload"))
			return
		}
		content, err := protocol.DecodeContent(payload.Content)
		if err != nil {
			h.reply(sess, protocol.Error(req.Service, protocol.CodeBadRequest, "content is not valid base64"))
			return
		}
		if _, err := h.chat.Submit(payload.Author, content); err != nil {
			code := protocol.CodeInternalFailure
			if errors.Is(err, domain.ErrEmptyContent) {
				code = protocol.CodeBadRequest
			}
			h.reply(sess, protocol.Error(req.Service, code, err.Error()))
			return
		}
		// the broadcast reaches the submitter too; no direct reply needed

	default:
		// quiz start/stop are presenter commands and arrive through the
		// Gateway, never from the attendee socket
		h.reply(sess, protocol.Error(req.Service, protocol.CodeBadRequest, "unsupported service"))
	}
}

func (h *WSHandler) reply(sess *wsSession, frame protocol.Frame) {
	raw, err := json.Marshal(frame)
	if err != nil {
		log.Printf("marshal reply for %s: %v", frame.Service, err)
		return
	}
	if err := sess.Send(raw); err != nil {
		log.Printf("reply to %s failed: %v", sess.ID(), err)
	}
}
