package tracker

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("missing key: got %v", err)
	}

	if err := s.Set("transactions", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("transactions")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[]` {
		t.Errorf("got %q", got)
	}

	if err := s.Delete("transactions"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("transactions"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("after delete: got %v", err)
	}
	if err := s.Delete("transactions"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestFileStoreLayout(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("goals", []byte(`[{"id":1}]`)); err != nil {
		t.Fatal(err)
	}

	// One key is one plain JSON file, editable by hand.
	data, err := os.ReadFile(filepath.Join(dir, "goals.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[{"id":1}]` {
		t.Errorf("file content: %q", data)
	}
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"", ".", "..", "a/b", `a\b`, "../escape"} {
		if err := s.Set(key, []byte("x")); err == nil {
			t.Errorf("key %q must be rejected", key)
		}
		if _, err := s.Get(key); err == nil {
			t.Errorf("get with key %q must be rejected", key)
		}
	}
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	if _, err := NewFileStore(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}
