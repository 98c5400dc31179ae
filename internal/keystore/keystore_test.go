package keystore

import (
	"path/filepath"
	"testing"

	"github.com/go-test/deep"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	store, err := Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Open() unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestFindDiscKeyMissReturnsNilNil(t *testing.T) {
	store := openTestStore(t)

	entry, err := store.FindDiscKey("does-not-exist")
	if err != nil {
		t.Fatalf("FindDiscKey() unexpected error: %v", err)
	}
	if entry != nil {
		t.Fatalf("FindDiscKey() = %+v, want nil", entry)
	}
}

func TestSaveThenFindDiscKey(t *testing.T) {
	store := openTestStore(t)
	key := [5]byte{0xde, 0xad, 0xbe, 0xef, 0x01}

	if err := store.SaveDiscKey("disc-1", key, "STAR_WARS_IV"); err != nil {
		t.Fatalf("SaveDiscKey() unexpected error: %v", err)
	}

	entry, err := store.FindDiscKey("disc-1")
	if err != nil {
		t.Fatalf("FindDiscKey() unexpected error: %v", err)
	}
	if entry == nil {
		t.Fatal("FindDiscKey() = nil, want a row")
	}
	if diff := cmp.Diff(key[:], entry.Key); diff != "" {
		t.Errorf("recovered key did not round-trip; diff:\n%s", diff)
	}
	if entry.VolumeLabel != "STAR_WARS_IV" {
		t.Errorf("VolumeLabel = %q, want STAR_WARS_IV", entry.VolumeLabel)
	}
}

func TestSaveDiscKeyIsIdempotent(t *testing.T) {
	store := openTestStore(t)
	key := [5]byte{1, 2, 3, 4, 5}

	if err := store.SaveDiscKey("disc-1", key, "FIRST"); err != nil {
		t.Fatalf("first SaveDiscKey() unexpected error: %v", err)
	}
	updated := [5]byte{9, 8, 7, 6, 5}
	if err := store.SaveDiscKey("disc-1", updated, "SECOND"); err != nil {
		t.Fatalf("second SaveDiscKey() unexpected error: %v", err)
	}

	var all []DiscKeyEntry
	if err := store.db.Find(&all).Error; err != nil {
		t.Fatalf("listing rows: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("found %d rows for disc-1, want 1", len(all))
	}
	if diff := cmp.Diff(updated[:], all[0].Key, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("second save did not overwrite the key; diff:\n%s", diff)
	}
}

func TestSaveThenFindTitleKey(t *testing.T) {
	store := openTestStore(t)
	key := [5]byte{0x11, 0x22, 0x33, 0x44, 0x55}

	if err := store.SaveTitleKey("disc-1", 3, key); err != nil {
		t.Fatalf("SaveTitleKey() unexpected error: %v", err)
	}

	entry, err := store.FindTitleKey("disc-1", 3)
	if err != nil {
		t.Fatalf("FindTitleKey() unexpected error: %v", err)
	}
	if entry == nil {
		t.Fatal("FindTitleKey() = nil, want a row")
	}
	if diffs := deep.Equal(key[:], entry.Key); diffs != nil {
		t.Errorf("recovered title key did not round-trip; diffs: %v", diffs)
	}

	if _, err := store.FindTitleKey("disc-1", 4); err != nil {
		t.Fatalf("FindTitleKey() for a different title index: %v", err)
	}
}
