package app

import (
	"context"
	"time"

	"auracoach/pkg/domain"
)

type exportPayload struct {
	ExportedAt time.Time            `json:"exportedAt"`
	User       domain.User          `json:"user"`
	Chats      []domain.ChatSession `json:"chats"`
	Quotes     []domain.Quote       `json:"quotes"`
	Snippets   []domain.Snippet     `json:"snippets"`
}

// ExportData snapshots the user's records to object storage and returns a
// short-lived download link.
func (a *App) ExportData(ctx context.Context, user domain.User) (string, error) {
	if a.snapshots == nil {
		return "", ErrExportUnavailable
	}
	payload := exportPayload{
		ExportedAt: time.Now().UTC(),
		User:       user,
		Chats:      a.records.ListChats(ctx, user.ID),
		Quotes:     a.records.ListQuotes(ctx, user.ID),
		Snippets:   a.records.ListSnippets(ctx, user.ID),
	}
	return a.snapshots.Save(ctx, user.ID, payload)
}
