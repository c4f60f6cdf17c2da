// Package srs implements the spaced-repetition scheduling algorithm:
// exponential interval growth on remember, reset to the base interval on
// forget, and mastery detection at a consecutive-remember threshold. All
// functions are pure; persistence of the computed updates is the caller's
// concern.
package srs
