package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ayusman/hasta/internal/classify"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("database file should not exist before creating store")
	}

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file should exist after creating store")
	}
}

func TestSettings_DefaultsWhenEmpty(t *testing.T) {
	s := testStore(t)

	settings, err := s.Settings().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := classify.DefaultSettings()
	if settings != want {
		t.Errorf("Load() on empty store = %+v, want defaults %+v", settings, want)
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	s := testStore(t)

	saved := classify.Settings{
		Method:                classify.MethodFrameDiff,
		MotionThreshold:       72,
		LearningMode:          true,
		BackgroundSubtraction: true,
	}

	if err := s.Settings().Save(saved); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := s.Settings().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded != saved {
		t.Errorf("Load() = %+v, want %+v", loaded, saved)
	}
}

func TestSettings_SaveOverwrites(t *testing.T) {
	s := testStore(t)

	first := classify.Settings{Method: classify.MethodObjectTracking, MotionThreshold: 30}
	second := classify.Settings{Method: classify.MethodManual, MotionThreshold: 90}

	if err := s.Settings().Save(first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Settings().Save(second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := s.Settings().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded != second {
		t.Errorf("Load() = %+v, want %+v", loaded, second)
	}
}
