package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"slideshowfx-live/internal/app"
	"slideshowfx-live/internal/domain"
	"slideshowfx-live/internal/infra/memory"
	"slideshowfx-live/internal/protocol"
)

func newGatewayFixture() (*app.Gateway, *recordingSink, *app.Dispatcher) {
	sink := &recordingSink{}
	dispatcher := app.NewDispatcher(sink)
	chat := app.NewChatChannel(dispatcher)
	engine := app.NewQuizEngine(dispatcher, memory.NewSubmissionStore())
	library := memory.NewQuizLibrary(memory.NewStaticQuizLoader(map[int64]domain.Quiz{
		7: pickOneQuiz(),
	}), 5*time.Minute)
	return app.NewGateway(chat, engine, library), sink, dispatcher
}

func TestGatewayStartQuizByID(t *testing.T) {
	gateway, sink, dispatcher := newGatewayFixture()

	if err := gateway.StartQuizByID(context.Background(), 7); err != nil {
		t.Fatalf("start by id failed: %v", err)
	}
	frames := waitFrames(t, sink, 1)
	if frames[0].Service != protocol.ServiceQuizStart {
		t.Fatalf("expected quiz start broadcast, got %s", frames[0].Service)
	}

	if err := gateway.StopQuiz(7); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	dispatcher.Close()
}

func TestGatewayStartUnknownQuiz(t *testing.T) {
	gateway, _, dispatcher := newGatewayFixture()
	defer dispatcher.Close()

	err := gateway.StartQuizByID(context.Background(), 404)
	if !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestGatewayMarkChatAnsweredToleratesUnknownID(t *testing.T) {
	gateway, _, dispatcher := newGatewayFixture()
	defer dispatcher.Close()

	if err := gateway.MarkChatAnswered("msg-99"); err != nil {
		t.Fatalf("unknown id must be a no-op, got %v", err)
	}
}
