package protocol

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Service names understood on the attendee websocket. Clients send an
// envelope {"service": ..., "data": {...}}; the server answers and
// broadcasts frames of the shape {"service": ..., "code": ..., "content": ...}.
const (
	ServiceChatHistory       = "slideshowfx.chat.attendee.history"
	ServiceChatMessageAdd    = "slideshowfx.chat.attendee.message.add"
	ServiceChatMessageUpdate = "slideshowfx.chat.attendee.message.update"
	ServiceQuizCurrent       = "slideshowfx.quiz.current"
	ServiceQuizStart         = "slideshowfx.quiz.start"
	ServiceQuizStop          = "slideshowfx.quiz.stop"
)

// Response codes follow the original HTTP-flavored convention: 200 for a
// plain success, 201 for a creation, 204 when there is nothing to return.
const (
	CodeOK              = 200
	CodeAdded           = 201
	CodeNoActiveQuiz    = 204
	CodeBadRequest      = 400
	CodeNotFound        = 404
	CodeNotAcceptable   = 406
	CodeInternalFailure = 500
)

// Request is the inbound websocket envelope.
type Request struct {
	Service string          `json:"service"`
	Data    json.RawMessage `json:"data"`
}

// ParseRequest decodes and validates an inbound text frame.
func ParseRequest(frame []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(frame, &req); err != nil {
		return Request{}, err
	}
	if req.Service == "" {
		return Request{}, errors.New("missing service in request")
	}
	return req, nil
}

// Frame is the outbound envelope for both direct replies and broadcasts.
type Frame struct {
	Service string `json:"service"`
	Code    int    `json:"code"`
	Content any    `json:"content"`
}

// EncodeContent encodes free text for transport.
func EncodeContent(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeContent decodes Base64 transport text back to UTF-8.
func DecodeContent(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
