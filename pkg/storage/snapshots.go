package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// SnapshotLinkTTL is how long a presigned export link stays valid.
const SnapshotLinkTTL = 15 * time.Minute

// Snapshots writes per-user JSON export snapshots to object storage and
// hands out short-lived download links.
type Snapshots struct {
	objects ObjectStore
	now     func() time.Time
}

// NewSnapshots builds a snapshot store over an object store.
func NewSnapshots(objects ObjectStore) *Snapshots {
	return &Snapshots{objects: objects, now: time.Now}
}

// Save serializes the payload, uploads it under exports/<userID>/<ts>.json
// and returns a presigned download URL.
func (s *Snapshots) Save(ctx context.Context, userID string, payload any) (string, error) {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	key := fmt.Sprintf("exports/%s/%d.json", userID, s.now().UnixMilli())
	if err := s.objects.Put(ctx, key, body, "application/json"); err != nil {
		return "", fmt.Errorf("store snapshot: %w", err)
	}
	url, err := s.objects.PresignGet(ctx, key, SnapshotLinkTTL)
	if err != nil {
		return "", fmt.Errorf("presign snapshot: %w", err)
	}
	return url, nil
}
