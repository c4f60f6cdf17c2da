package scheduler

import (
	"sync"

	"github.com/phrazzld/lexi-api/internal/domain"
)

// Session holds the card currently in focus between a successful
// NextWord call and the following SubmitVerdict. It replaces the
// process-global "current word" of earlier designs with an explicit
// object the caller owns and passes into the verdict call.
//
// The design assumes one learner per session. Overlapping requests on
// the same session follow last-writer-wins: the mutex protects the
// pointer swap itself, not the select/verdict sequence.
type Session struct {
	mu      sync.Mutex
	current *domain.Card
}

// NewSession creates an empty review session.
func NewSession() *Session {
	return &Session{}
}

// Set stores the card snapshot selected for review.
func (s *Session) Set(card *domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = card
}

// Current returns the card snapshot in focus, or nil when no selection
// has been made.
func (s *Session) Current() *domain.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Clear drops the card in focus. Called when selection is exhausted.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
