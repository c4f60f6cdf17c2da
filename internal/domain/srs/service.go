package srs

import (
	"errors"
	"time"

	"github.com/phrazzld/lexi-api/internal/domain"
)

// Common errors
var (
	ErrNilCard        = errors.New("card cannot be nil")
	ErrInvalidVerdict = errors.New("invalid review verdict")
)

// Service defines the interface for scheduling algorithm operations.
type Service interface {
	// ApplyVerdict computes the new scheduling state for a card given a
	// learner verdict at the given time. The card itself is not modified.
	ApplyVerdict(
		card *domain.Card,
		verdict domain.ReviewVerdict,
		now time.Time,
	) (*SchedulingUpdate, error)

	// BaseInterval returns the configured base review interval in seconds.
	BaseInterval() int
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// ApplyVerdict implements the Service interface.
func (s *defaultService) ApplyVerdict(
	card *domain.Card,
	verdict domain.ReviewVerdict,
	now time.Time,
) (*SchedulingUpdate, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if !verdict.IsValid() {
		return nil, ErrInvalidVerdict
	}

	return nextState(card, verdict, now, s.params), nil
}

// BaseInterval implements the Service interface.
func (s *defaultService) BaseInterval() int {
	return s.params.BaseIntervalSeconds
}
