package state

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"secdash/internal/infrastructure/persistence/sqlite/model"
)

func setupStateStore(t *testing.T) *SQLiteStateStore {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "state.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&model.MetaEntry{}); err != nil {
		t.Fatalf("auto migrate meta: %v", err)
	}

	return NewSQLiteStateStore(db)
}

func TestStateStoreSetGetDelete(t *testing.T) {
	store := setupStateStore(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "ingest:last_run_id")
	if err != nil {
		t.Fatalf("Get(missing) error = %v", err)
	}
	if found {
		t.Fatalf("Get(missing) found = true")
	}

	if err := store.Set(ctx, "ingest:last_run_id", "run-1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, found, err := store.Get(ctx, "ingest:last_run_id")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found || value != "run-1" {
		t.Fatalf("Get() = %q, found=%v", value, found)
	}

	if err := store.Set(ctx, "ingest:last_run_id", "run-2"); err != nil {
		t.Fatalf("Set(update) error = %v", err)
	}
	value, found, err = store.Get(ctx, "ingest:last_run_id")
	if err != nil {
		t.Fatalf("Get() after update error = %v", err)
	}
	if !found || value != "run-2" {
		t.Fatalf("Get() after update = %q, found=%v", value, found)
	}

	if err := store.Delete(ctx, "ingest:last_run_id"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	_, found, err = store.Get(ctx, "ingest:last_run_id")
	if err != nil {
		t.Fatalf("Get() after delete error = %v", err)
	}
	if found {
		t.Fatalf("Get() after delete found = true")
	}
}

func TestStateStoreRejectsEmptyKey(t *testing.T) {
	store := setupStateStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "  ", "v"); err == nil {
		t.Fatalf("Set() expected error for empty key")
	}
	if _, _, err := store.Get(ctx, ""); err == nil {
		t.Fatalf("Get() expected error for empty key")
	}
	if err := store.Delete(ctx, ""); err == nil {
		t.Fatalf("Delete() expected error for empty key")
	}
}
