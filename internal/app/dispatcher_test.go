package app_test

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"slideshowfx-live/internal/app"
	"slideshowfx-live/internal/protocol"
)

// recordingSink collects broadcast frames in arrival order.
type recordingSink struct {
	mu     sync.Mutex
	frames []protocol.Frame
}

func (s *recordingSink) Broadcast(raw []byte) {
	var frame protocol.Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		panic(fmt.Sprintf("sink received invalid frame: %v", err))
	}
	s.mu.Lock()
	s.frames = append(s.frames, frame)
	s.mu.Unlock()
}

func (s *recordingSink) snapshot() []protocol.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]protocol.Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// waitFrames polls until the sink saw at least n frames.
func waitFrames(t *testing.T, sink *recordingSink, n int) []protocol.Frame {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		frames := sink.snapshot()
		if len(frames) >= n {
			return frames
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d frames, got %d", n, len(sink.snapshot()))
	return nil
}

func TestDispatcherPreservesPublishOrder(t *testing.T) {
	sink := &recordingSink{}
	dispatcher := app.NewDispatcher(sink)

	const total = 200
	for i := 0; i < total; i++ {
		dispatcher.Publish(protocol.Frame{
			Service: "test.order",
			Code:    protocol.CodeOK,
			Content: fmt.Sprintf("event-%d", i),
		})
	}
	dispatcher.Close()

	frames := sink.snapshot()
	if len(frames) != total {
		t.Fatalf("expected %d frames after close, got %d", total, len(frames))
	}
	for i, frame := range frames {
		want := fmt.Sprintf("event-%d", i)
		if frame.Content != want {
			t.Fatalf("frame %d out of order: got %v, want %s", i, frame.Content, want)
		}
	}
}

func TestDispatcherCloseDrainsQueue(t *testing.T) {
	sink := &recordingSink{}
	dispatcher := app.NewDispatcher(sink)

	for i := 0; i < 50; i++ {
		dispatcher.Publish(protocol.Frame{Service: "test.drain", Code: protocol.CodeOK, Content: i})
	}
	dispatcher.Close()

	if got := len(sink.snapshot()); got != 50 {
		t.Fatalf("expected all 50 frames delivered on close, got %d", got)
	}

	// publishing after close is a no-op
	dispatcher.Publish(protocol.Frame{Service: "test.drain", Code: protocol.CodeOK, Content: "late"})
	if got := len(sink.snapshot()); got != 50 {
		t.Fatalf("expected late publish to be discarded, got %d frames", got)
	}
}
