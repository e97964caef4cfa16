package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
)

func TestResolveMigrationsDir_Override(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolve override: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}

func TestResolveMigrationsDir_Missing(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := resolveMigrationsDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatalf("expected error when no migration dir exists")
	}
}

func TestIgnoreNoChange(t *testing.T) {
	if err := ignoreNoChange(migrate.ErrNoChange); err != nil {
		t.Fatalf("expected ErrNoChange to be ignored, got %v", err)
	}
	boom := errors.New("boom")
	if err := ignoreNoChange(boom); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
