package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/dalemusser/devcamper/internal/app/system/events"
	"go.uber.org/zap"
)

type closingPublisher struct {
	events.Nop
	err    error
	closed bool
}

func (p *closingPublisher) Close() error {
	p.closed = true
	return p.err
}

func TestShutdown_ClosesPublisher(t *testing.T) {
	pub := &closingPublisher{}
	if err := Shutdown(context.Background(), nil, AppConfig{}, DBDeps{Events: pub}, zap.NewNop()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if !pub.closed {
		t.Error("publisher not closed")
	}
}

func TestShutdown_ReturnsCloseError(t *testing.T) {
	boom := errors.New("flush failed")
	pub := &closingPublisher{err: boom}

	err := Shutdown(context.Background(), nil, AppConfig{}, DBDeps{Events: pub}, zap.NewNop())
	if !errors.Is(err, boom) {
		t.Errorf("expected close error, got %v", err)
	}
}

func TestShutdown_EmptyDeps(t *testing.T) {
	if err := Shutdown(context.Background(), nil, AppConfig{}, DBDeps{}, zap.NewNop()); err != nil {
		t.Errorf("Shutdown with no backends: %v", err)
	}
}
