package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key should be absent without error, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "k", `{"a":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := s.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if value != `{"a":1}` {
		t.Fatalf("unexpected value: %q", value)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("key should be gone after delete")
	}
}

func TestRedisStoreRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	s, err := NewRedisStore(srv.Addr(), "")
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key should be absent without error, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("get after set: value=%q ok=%v err=%v", value, ok, err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("key should be gone after delete")
	}
}

func TestRedisStoreRequiresAddr(t *testing.T) {
	if _, err := NewRedisStore("  ", ""); err == nil {
		t.Fatalf("expected constructor error for empty addr")
	}
}

func TestRedisStoreReportsFaults(t *testing.T) {
	srv := miniredis.RunT(t)
	s, err := NewRedisStore(srv.Addr(), "")
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}
	srv.Close()
	if _, _, err := s.Get(context.Background(), "k"); err == nil {
		t.Fatalf("expected error after redis shutdown")
	}
}
