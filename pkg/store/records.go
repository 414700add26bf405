package store

import (
	"context"
	"encoding/json"
	"fmt"

	"auracoach/internal/util"
	"auracoach/pkg/kv"
)

// Key namespaces. Users are a single global collection; everything else is
// scoped per user, and schedule/lifestyle additionally per date.
const (
	usersKey        = "aura:users"
	chatsPrefix     = "aura:chats:"
	snippetsPrefix  = "aura:snippets:"
	quotesPrefix    = "aura:quotes:"
	schedulePrefix  = "aura:schedule:"
	lifestylePrefix = "aura:lifestyle:"
)

// Records exposes the domain record stores over a kv.Store. Each collection
// is one JSON array (or object) per key; reads of missing or corrupt blobs
// degrade to empty values so a storage fault never surfaces to the client.
type Records struct {
	kv kv.Store
}

// NewRecords wraps a kv.Store.
func NewRecords(store kv.Store) *Records {
	return &Records{kv: store}
}

func chatsKey(userID string) string        { return chatsPrefix + userID }
func snippetsKey(userID string) string     { return snippetsPrefix + userID }
func quotesKey(userID string) string       { return quotesPrefix + userID }
func scheduleKey(userID, date string) string {
	return schedulePrefix + userID + ":" + date
}
func lifestyleKey(userID, date string) string {
	return lifestylePrefix + userID + ":" + date
}

// readInto decodes the blob at key into out. Missing keys and decode
// failures leave out untouched and return false; decode failures are logged
// since they indicate a corrupt blob worth investigating.
func (r *Records) readInto(ctx context.Context, key string, out any) bool {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil || !ok {
		if err != nil {
			util.LoggerFromContext(ctx).Warn("kv read failed", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		util.LoggerFromContext(ctx).Warn("corrupt blob, returning empty", "key", key, "err", err)
		return false
	}
	return true
}

func (r *Records) write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
