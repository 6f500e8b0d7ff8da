package mocks

import (
	"context"
	"daily/infras/otel"
	"sync"
)

// Otel hands out recording scopes and keeps them by span name.
type Otel struct {
	mu     sync.Mutex
	scopes map[string][]*Scope
}

// NewScope implements otel.Otel.
func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.scopes == nil {
		o.scopes = make(map[string][]*Scope)
	}

	o.scopes[spanName] = append(o.scopes[spanName], scope)

	return ctx, scope
}

// Shutdown implements otel.Otel.
func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Scopes returns every scope opened under spanName, oldest first.
func (o *Otel) Scopes(spanName string) []*Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.scopes[spanName]
}

func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Otel {
	return &Otel{}
}
