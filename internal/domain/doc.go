// Package domain contains the core entities of the vocabulary trainer:
// cards with their spaced-repetition scheduling state, append-only review
// events, and mastered-word archive entries. Entities validate their own
// invariants and carry no persistence or transport concerns.
package domain
