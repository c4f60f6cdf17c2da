// Package scheduler implements the core of the vocabulary trainer: card
// selection, presentation formatting, verdict processing, and the
// administrative mutators that bypass verdict processing.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lexi-api/internal/domain"
)

// ReviewMode selects the card-selection strategy for NextWord.
type ReviewMode string

const (
	// ReviewModeOld prefers the most urgently due reviewing card and
	// falls back to a new card.
	ReviewModeOld ReviewMode = "old_mode"

	// ReviewModeNewTodayOnly behaves like ReviewModeOld but restricts
	// due candidates to cards first learned during the current UTC+8
	// calendar day.
	ReviewModeNewTodayOnly ReviewMode = "new_today_only"
)

// IsValid reports whether the mode is one of the recognized review modes.
func (m ReviewMode) IsValid() bool {
	switch m {
	case ReviewModeOld, ReviewModeNewTodayOnly:
		return true
	default:
		return false
	}
}

// WordView is the presentation projection of a card: the card content
// plus the cross-cutting fields the orchestrator injects (recent-word
// hints, today's count, syllables, pending-review count).
type WordView struct {
	ID                       string                   `json:"id"`
	Word                     string                   `json:"word"`
	WordMeaning              string                   `json:"word_meaning,omitempty"`
	Phrase                   string                   `json:"phrase,omitempty"`
	PhraseMeaning            string                   `json:"phrase_meaning,omitempty"`
	LineNumber               int                      `json:"line_number,omitempty"`
	Examples                 []domain.ExampleSentence `json:"examples"`
	Status                   string                   `json:"status"`
	Reviews                  int                      `json:"reviews"`
	WinRate                  float64                  `json:"win_rate"`
	Number                   int                      `json:"number"`
	ConsecutiveRememberCount int                      `json:"consecutive_remember_count"`
	LastFiveWords            []string                 `json:"last_five_words"`
	TodayLearningCount       int                      `json:"today_learning_count"`
	Syllables                *string                  `json:"syllables"`
	FirstLearnDate           *time.Time               `json:"first_learn_date,omitempty"`
	PendingReviewCount       int                      `json:"pending_review_count"`
}

// Stats aggregates per-status card counts plus the pending-review count.
type Stats struct {
	Mastered      int `json:"mastered"`
	Reviewing     int `json:"reviewing"`
	New           int `json:"new"`
	PendingReview int `json:"pending_review"`
}

// Service provides the learner-facing scheduling operations.
type Service interface {
	// NextWord selects the next card for the given mode, stores its
	// snapshot in the session, and returns the formatted presentation
	// view.
	//
	// Returns:
	//   - (nil, ErrInvalidMode): the mode is not a recognized review mode
	//   - (nil, ErrNoCardsRemaining): no due and no new card exists; the
	//     learner is done for now
	//   - (nil, error): any other error, typically from the store
	NextWord(ctx context.Context, mode ReviewMode, session *Session) (*WordView, error)

	// SubmitVerdict processes a learner verdict against the card held by
	// the session: appends a review event, updates the recency tracker
	// with the pre-update snapshot, computes and persists the new
	// scheduling state, and archives the card when it reaches mastery.
	//
	// Returns:
	//   - ErrInvalidVerdict: the verdict is not remember/forget/master
	//   - ErrNoCardInFocus: the session holds no card
	//   - ErrCardMismatch: cardID names a different card than the session
	//   - ErrCardNotFound: the session's card no longer exists in the store
	SubmitVerdict(
		ctx context.Context,
		session *Session,
		cardID uuid.UUID,
		verdict domain.ReviewVerdict,
	) error

	// Stats returns per-status card counts and the pending-review count.
	Stats(ctx context.Context) (*Stats, error)
}

// AdminService provides the administrative mutators. Both operations
// bypass verdict processing entirely: no review event, no recency
// update, no consecutive-count logic.
type AdminService interface {
	// MarkWordMastered bulk-masters every card matching the word text
	// and archives each affected card. Returns the number of cards
	// updated; zero matches is not an error.
	MarkWordMastered(ctx context.Context, word string) (int64, error)

	// MarkCardBad flags a single card as bad, removing it from
	// scheduling permanently. No archive entry is written. Idempotent.
	// Returns ErrCardNotFound if the card does not exist.
	MarkCardBad(ctx context.Context, cardID uuid.UUID) error
}

// Common error types for the scheduler services
var (
	// ErrInvalidMode indicates an unrecognized review mode.
	ErrInvalidMode = errors.New("invalid review mode")

	// ErrInvalidVerdict indicates an unrecognized verdict.
	ErrInvalidVerdict = errors.New("invalid verdict")

	// ErrNoCardInFocus indicates a verdict was submitted while the
	// session holds no selected card.
	ErrNoCardInFocus = errors.New("no card in focus")

	// ErrCardMismatch indicates the submitted card ID does not match the
	// session's card.
	ErrCardMismatch = errors.New("submitted card does not match card in focus")

	// ErrNoCardsRemaining indicates selection found neither a due
	// reviewing card nor a new card.
	ErrNoCardsRemaining = errors.New("no cards remaining")

	// ErrCardNotFound indicates the card does not exist.
	ErrCardNotFound = errors.New("card not found")
)

// ServiceError wraps errors from the scheduler services with additional
// context, so consumers can differentiate failures with errors.As
// instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "next_word")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// newServiceError creates a ServiceError for the given operation.
func newServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
