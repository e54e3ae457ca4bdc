// Package runid generates identifiers that correlate one demo run's
// transcript with its log records.
package runid

import (
	"github.com/google/uuid"
)

// DefaultFixedToken is returned by a Fixed generator built with an empty token.
const DefaultFixedToken = "test-run-default"

// Generator produces run IDs.
type Generator interface {
	Generate() string
}

// UUIDv7 generates time-sortable UUIDv7 run IDs.
//
// UUIDv7 embeds a timestamp in the most significant bits, so IDs from
// successive runs sort by start time in logs.
type UUIDv7 struct{}

// Generate returns a new hyphenated UUIDv7.
//
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Fixed returns the same run ID every time.
//
// Scenarios use it so the same scenario produces byte-identical transcripts
// for golden comparison.
type Fixed struct {
	token string
}

// NewFixed creates a fixed generator. An empty token falls back to
// DefaultFixedToken.
func NewFixed(token string) Fixed {
	if token == "" {
		token = DefaultFixedToken
	}
	return Fixed{token: token}
}

// Generate returns the fixed token.
func (g Fixed) Generate() string {
	return g.token
}
