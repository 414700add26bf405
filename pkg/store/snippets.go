package store

import (
	"context"

	"auracoach/pkg/domain"
)

// ListSnippets returns the user's saved snippets, newest first.
func (r *Records) ListSnippets(ctx context.Context, userID string) []domain.Snippet {
	var snippets []domain.Snippet
	r.readInto(ctx, snippetsKey(userID), &snippets)
	return snippets
}

// SaveSnippet prepends a snippet to the collection.
func (r *Records) SaveSnippet(ctx context.Context, userID string, snippet domain.Snippet) error {
	snippets := r.ListSnippets(ctx, userID)
	updated := append([]domain.Snippet{snippet}, snippets...)
	return r.write(ctx, snippetsKey(userID), updated)
}

// DeleteSnippet removes a snippet by ID.
func (r *Records) DeleteSnippet(ctx context.Context, userID, id string) error {
	snippets := r.ListSnippets(ctx, userID)
	filtered := snippets[:0]
	for _, snippet := range snippets {
		if snippet.ID != id {
			filtered = append(filtered, snippet)
		}
	}
	return r.write(ctx, snippetsKey(userID), filtered)
}
