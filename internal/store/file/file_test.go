package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"budget/internal/store"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested")
	s, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := s.Get(ctx, store.EntriesKey); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, store.EntriesKey, []byte(`[{"a":1}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, store.EntriesKey, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := s.Get(ctx, store.EntriesKey)
	if err != nil || string(got) != "[]" {
		t.Fatalf("unexpected get: %q err=%v", got, err)
	}

	if _, err := os.Stat(filepath.Join(dir, "budget-tracker-entries.json")); err != nil {
		t.Fatalf("expected key file on disk: %v", err)
	}
	files, _ := os.ReadDir(dir)
	if len(files) != 1 {
		t.Fatalf("temporary files left behind: %v", files)
	}
}

func TestFileStoreEscapesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := s.Set(ctx, "../escape", []byte("x")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.json")); err == nil {
		t.Fatalf("key escaped the store directory")
	}
	got, err := s.Get(ctx, "../escape")
	if err != nil || string(got) != "x" {
		t.Fatalf("unexpected get: %q err=%v", got, err)
	}
}

func TestFileStoreCancelledContext(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Set(ctx, "k", []byte("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
