package tracker

import (
	"errors"
	"testing"
)

func TestMemStore(t *testing.T) {
	s := NewMemStore()

	if _, err := s.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("missing key: got %v", err)
	}

	if err := s.Set("k", []byte("hello")); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("got %q", got)
	}

	// The store holds its own copy, both on Set and Get.
	got[0] = 'X'
	if again, _ := s.Get("k"); string(again) != "hello" {
		t.Errorf("store aliased its value: %q", again)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("k"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("after delete: got %v", err)
	}
	// Deleting again is fine.
	if err := s.Delete("k"); err != nil {
		t.Errorf("delete absent key: %v", err)
	}
}

func TestMemStoreQuota(t *testing.T) {
	s := NewMemStoreQuota(10)

	if err := s.Set("a", []byte("12345")); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("b", []byte("123456")); !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("over quota: got %v", err)
	}
	// The failed write must not have landed.
	if _, err := s.Get("b"); !errors.Is(err, ErrKeyNotFound) {
		t.Error("rejected value was stored")
	}

	// Overwriting a key counts the new size, not old plus new.
	if err := s.Set("a", []byte("1234567890")); err != nil {
		t.Errorf("overwrite within quota: %v", err)
	}
}
