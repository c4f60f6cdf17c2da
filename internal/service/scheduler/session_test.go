package scheduler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/lexi-api/internal/domain"
)

func TestSessionLifecycle(t *testing.T) {
	session := NewSession()
	assert.Nil(t, session.Current())

	card := &domain.Card{ID: uuid.New(), Word: "hold"}
	session.Set(card)
	assert.Same(t, card, session.Current())

	replacement := &domain.Card{ID: uuid.New(), Word: "swap"}
	session.Set(replacement)
	assert.Same(t, replacement, session.Current())

	session.Clear()
	assert.Nil(t, session.Current())
}
