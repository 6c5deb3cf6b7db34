package store

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "pomotask.db")
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(KeyTasks, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen, should succeed and keep data
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	got, err := s2.Load(KeyTasks)
	if err != nil || string(got) != "[]" {
		t.Fatalf("reopened load = %q, %v", got, err)
	}
}

// ============================================================
// Collections
// ============================================================

func TestLoadMissingKey(t *testing.T) {
	s := newTestStore(t)
	got, err := s.Load("nope")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing key, got %q", got)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	want := []byte(`[{"id":"a"}]`)
	if err := s.Save(KeyTasks, want); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load(KeyTasks)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSaveReplacesWholeValue(t *testing.T) {
	s := newTestStore(t)
	s.Save(KeyFocusLogs, []byte(`[1,2,3]`))
	s.Save(KeyFocusLogs, []byte(`[4]`))

	got, _ := s.Load(KeyFocusLogs)
	if string(got) != "[4]" {
		t.Fatalf("got %q, want [4]", got)
	}

	var n int
	s.db.QueryRow(`SELECT COUNT(*) FROM collections`).Scan(&n)
	if n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}
}

func TestSaveNilStoresEmpty(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(KeyPosts, nil); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load(KeyPosts)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil value, got %#v", got)
	}
}

func TestEmptyValueIsNotAbsent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(KeyPosts, []byte{}); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load(KeyPosts)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("a stored empty value must load as non-nil")
	}
	keys, _ := s.Keys()
	if !reflect.DeepEqual(keys, []string{KeyPosts}) {
		t.Fatalf("keys = %v", keys)
	}

	missing, err := s.Load(KeyTasks)
	if err != nil || missing != nil {
		t.Fatalf("absent key = %#v, %v", missing, err)
	}
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	s.Save(KeySettings, []byte(`{}`))
	if err := s.Remove(KeySettings); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Load(KeySettings)
	if got != nil {
		t.Fatalf("expected nil after remove, got %q", got)
	}

	// Removing a missing key is not an error
	if err := s.Remove(KeySettings); err != nil {
		t.Fatal(err)
	}
}

func TestKeys(t *testing.T) {
	s := newTestStore(t)
	s.Save(KeyTasks, []byte(`[]`))
	s.Save(KeyFocusLogs, []byte(`[]`))
	s.Save(KeySettings, []byte(`{}`))

	keys, err := s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{KeySettings, KeyTasks, KeyFocusLogs}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
}

func TestClosedStoreErrors(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	if _, err := s.Load(KeyTasks); err == nil {
		t.Fatal("expected error loading from closed store")
	}
	if err := s.Save(KeyTasks, []byte(`[]`)); err == nil {
		t.Fatal("expected error saving to closed store")
	}
}
