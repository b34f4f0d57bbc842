package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestDocumentStore_LoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewDocumentStore[*mockStoreSpec](path, "db")

	spec, ok, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing file")
	}
	if spec != nil {
		t.Errorf("expected zero value, got %v", spec)
	}
}

func TestDocumentStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewDocumentStore[*mockStoreSpec](path, "db")

	err := store.Save(&mockStoreSpec{Name: "State", Value: 7})
	if err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	spec, ok, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after save")
	}
	testutil.AssertEqual(t, "name", spec.Name, "State")
	testutil.AssertEqual(t, "value", spec.Value, 7)
}

func TestDocumentStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewDocumentStore[*mockStoreSpec](path, "db")

	if err := store.Save(&mockStoreSpec{Name: "First", Value: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(&mockStoreSpec{Name: "Second", Value: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec, _, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "name", spec.Name, "Second")

	// No leftover temp file from the atomic write
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be renamed away")
	}
}

func TestDocumentStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	store := NewDocumentStore[*mockStoreSpec](path, "db")
	_, _, err := store.Load()
	if err == nil {
		t.Error("expected error for corrupt document")
	}
}
