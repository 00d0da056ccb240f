package memory

import (
	"bytes"
	"context"
	"testing"
)

func TestSetGetDelete(t *testing.T) {
	m := New()
	ctx := context.Background()

	if _, ok, _ := m.Get(ctx, "weights"); ok {
		t.Fatal("expected absent key")
	}

	if err := m.Set(ctx, "weights", []byte("[]")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := m.Get(ctx, "weights")
	if err != nil || !ok || string(v) != "[]" {
		t.Fatalf("Get: %q ok=%v err=%v", v, ok, err)
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 key, got %d", m.Len())
	}

	if err := m.Delete(ctx, "weights"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "weights"); ok {
		t.Error("expected key deleted")
	}

	// deleting again is a no-op
	if err := m.Delete(ctx, "weights"); err != nil {
		t.Errorf("Delete absent: %v", err)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	m := New()
	ctx := context.Background()

	original := []byte("abc")
	if err := m.Set(ctx, "k", original); err != nil {
		t.Fatal(err)
	}
	original[0] = 'x' // caller mutates its slice after Set

	v, _, _ := m.Get(ctx, "k")
	if !bytes.Equal(v, []byte("abc")) {
		t.Errorf("stored value aliased caller slice: %q", v)
	}

	v[0] = 'z' // caller mutates the returned slice
	v2, _, _ := m.Get(ctx, "k")
	if !bytes.Equal(v2, []byte("abc")) {
		t.Errorf("returned value aliased stored slice: %q", v2)
	}
}
