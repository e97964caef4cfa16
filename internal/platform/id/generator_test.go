package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestRandomGenerator_NewID(t *testing.T) {
	g := NewRandomGenerator()
	a, err := g.NewID()
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	b := MustNewID(g)
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("parse id %q: %v", a, err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("expected uuid v7, got v%d", parsed.Version())
	}
}

type failingGenerator struct{}

func (failingGenerator) NewID() (string, error) { return "", errFake }

var errFake = fakeErr("no entropy")

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

func TestMustNewID_Fallback(t *testing.T) {
	if got := MustNewID(failingGenerator{}); got != "unknown" {
		t.Fatalf("expected fallback id, got %q", got)
	}
}
