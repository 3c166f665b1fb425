package utils

import "github.com/google/uuid"

// RunIDGenerator issues identifiers that tag the log entries of one
// invocation.
type RunIDGenerator struct {
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func (g *RunIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
