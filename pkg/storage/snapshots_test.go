package storage

import (
	"context"
	"strings"
	"testing"
	"time"
)

type fakeObjectStore struct {
	key  string
	body string
	ct   string
}

func (f *fakeObjectStore) Put(_ context.Context, key string, data []byte, contentType string) error {
	f.key = key
	f.body = string(data)
	f.ct = contentType
	return nil
}

func (f *fakeObjectStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://objects.local/" + key + "?sig=abc", nil
}

func (f *fakeObjectStore) Delete(context.Context, string) error { return nil }

func TestSnapshotSave(t *testing.T) {
	objects := &fakeObjectStore{}
	snapshots := NewSnapshots(objects)
	snapshots.now = func() time.Time { return time.UnixMilli(1700000000000) }

	url, err := snapshots.Save(context.Background(), "u1", map[string]string{"hello": "world"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if objects.key != "exports/u1/1700000000000.json" {
		t.Fatalf("unexpected key %s", objects.key)
	}
	if objects.ct != "application/json" {
		t.Fatalf("unexpected content type %s", objects.ct)
	}
	if !strings.Contains(objects.body, `"hello": "world"`) {
		t.Fatalf("payload not serialized: %s", objects.body)
	}
	if !strings.HasPrefix(url, "https://objects.local/exports/u1/") {
		t.Fatalf("unexpected url %s", url)
	}
}

func TestSnapshotSaveUnserializable(t *testing.T) {
	snapshots := NewSnapshots(&fakeObjectStore{})
	if _, err := snapshots.Save(context.Background(), "u1", make(chan int)); err == nil {
		t.Fatalf("expected marshal error")
	}
}
