package store

import (
	"context"
	"errors"
	"testing"

	"vishnu-auto/internal/domain"
)

func TestMemoryGetAbsentKey(t *testing.T) {
	st := NewMemory()
	_, err := st.Get(context.Background(), KeyCart)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemorySetGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	if err := st.Set(ctx, KeyProducts, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := st.Get(ctx, KeyProducts)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":1}]` {
		t.Fatalf("unexpected value %s", got)
	}

	if err := st.Delete(ctx, KeyProducts); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Get(ctx, KeyProducts); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestMemoryDeleteAbsentKeyIsNoop(t *testing.T) {
	st := NewMemory()
	if err := st.Delete(context.Background(), KeyBills); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	value := []byte(`{"username":"admin"}`)
	if err := st.Set(ctx, KeySession, value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'x'

	got, err := st.Get(ctx, KeySession)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0] != '{' {
		t.Fatalf("stored value aliased the caller's buffer")
	}
}
