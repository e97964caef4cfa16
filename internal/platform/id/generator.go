package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque identifiers such as request ids.
type Generator interface {
	NewID() (string, error)
}

// RandomGenerator returns time-ordered UUIDv7 strings.
type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (RandomGenerator) NewID() (string, error) {
	v, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// MustNewID is NewID for callers that cannot act on an entropy failure.
func MustNewID(g Generator) string {
	v, err := g.NewID()
	if err != nil {
		return "unknown"
	}
	return v
}
