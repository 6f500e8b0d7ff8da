package mocks

import (
	"daily/infras/otel"
	"daily/shared/result"
)

// Scope discards everything except what tests may want to assert on.
type Scope struct {
	Attributes map[string]any
	Errors     []error
	Results    []result.Result
	Ended      bool
}

func (s *Scope) AddEvent(_ string) {}

func (s *Scope) End() {
	s.Ended = true
}

func (s *Scope) SetAttribute(key string, value any) {
	if s.Attributes == nil {
		s.Attributes = make(map[string]any)
	}

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Scope) SetResult(res result.Result) {
	s.Results = append(s.Results, res)
}

func (s *Scope) TraceError(err error) {
	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func NewScope() otel.Scope {
	return &Scope{}
}
