package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/trknhr/creditrisk/internal/store"
)

func TestMetaStore_TouchMetaAndNeedsReload(t *testing.T) {
	db := openTestDB(t)
	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	meta := store.NewMetaStore(db)

	tmpfile := filepath.Join(t.TempDir(), "voting_model.json")
	err := os.WriteFile(tmpfile, []byte(`{"kind":"voting"}`), 0644)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	key := "model"

	if !meta.NeedsReload(key, tmpfile) {
		t.Fatalf("expected reload before first touch")
	}

	err = meta.TouchMeta(key, tmpfile)
	if err != nil {
		t.Fatalf("TouchMeta failed: %v", err)
	}

	if meta.NeedsReload(key, tmpfile) {
		t.Fatalf("expected no reload, but got reload")
	}

	// Same key under a different path must reload.
	other := filepath.Join(t.TempDir(), "other_model.json")
	if err := os.WriteFile(other, []byte(`{}`), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	if !meta.NeedsReload(key, other) {
		t.Fatalf("expected reload for a different path")
	}

	// Simulate file update
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(tmpfile, future, future); err != nil {
		t.Fatalf("failed to bump mtime: %v", err)
	}

	if !meta.NeedsReload(key, tmpfile) {
		t.Fatalf("expected reload, but got no reload")
	}
}

func TestMetaStore_MissingFile(t *testing.T) {
	db := openTestDB(t)
	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	meta := store.NewMetaStore(db)

	missing := filepath.Join(t.TempDir(), "gone.csv")
	if !meta.NeedsReload("dataset", missing) {
		t.Fatalf("missing file should need reload")
	}
	if err := meta.TouchMeta("dataset", missing); err == nil {
		t.Fatalf("expected stat error")
	}
}
