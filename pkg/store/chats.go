package store

import (
	"context"
	"sort"

	"auracoach/pkg/domain"
)

// ListChats returns the user's sessions, newest first.
func (r *Records) ListChats(ctx context.Context, userID string) []domain.ChatSession {
	var chats []domain.ChatSession
	r.readInto(ctx, chatsKey(userID), &chats)
	return chats
}

// SaveChat replaces the session by ID if present, else prepends it, then
// re-sorts the whole collection by lastModified descending. O(n log n) per
// save is fine at per-user scale.
func (r *Records) SaveChat(ctx context.Context, userID string, session domain.ChatSession) error {
	chats := r.ListChats(ctx, userID)
	replaced := false
	for i, existing := range chats {
		if existing.ID == session.ID {
			chats[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		chats = append([]domain.ChatSession{session}, chats...)
	}
	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].LastModified > chats[j].LastModified
	})
	return r.write(ctx, chatsKey(userID), chats)
}

// GetChat returns one session by ID.
func (r *Records) GetChat(ctx context.Context, userID, id string) (domain.ChatSession, bool) {
	for _, session := range r.ListChats(ctx, userID) {
		if session.ID == id {
			return session, true
		}
	}
	return domain.ChatSession{}, false
}

// DeleteChat removes a session by ID.
func (r *Records) DeleteChat(ctx context.Context, userID, id string) error {
	chats := r.ListChats(ctx, userID)
	filtered := chats[:0]
	for _, session := range chats {
		if session.ID != id {
			filtered = append(filtered, session)
		}
	}
	return r.write(ctx, chatsKey(userID), filtered)
}
