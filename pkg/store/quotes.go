package store

import (
	"context"

	"auracoach/pkg/domain"
)

// SeedQuotes are shown to every user and merged with stored custom quotes
// at read time.
var SeedQuotes = []domain.Quote{
	{ID: "1", Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{ID: "2", Text: "Simplicity is the ultimate sophistication.", Author: "Leonardo da Vinci"},
	{ID: "3", Text: "Focus on being productive instead of busy.", Author: "Tim Ferriss"},
	{ID: "4", Text: "Your time is limited, so don't waste it living someone else's life.", Author: "Steve Jobs"},
	{ID: "5", Text: "The best way to predict the future is to wait for it.", Author: "Alan Kay"},
}

// ListQuotes merges the seed quotes with the user's stored quotes and
// de-duplicates by ID. Order is first occurrence, value is last occurrence,
// so a stored quote sharing a seed ID wins.
func (r *Records) ListQuotes(ctx context.Context, userID string) []domain.Quote {
	var stored []domain.Quote
	r.readInto(ctx, quotesKey(userID), &stored)

	combined := make([]domain.Quote, 0, len(SeedQuotes)+len(stored))
	combined = append(combined, SeedQuotes...)
	combined = append(combined, stored...)

	index := make(map[string]int, len(combined))
	unique := make([]domain.Quote, 0, len(combined))
	for _, quote := range combined {
		if at, seen := index[quote.ID]; seen {
			unique[at] = quote
			continue
		}
		index[quote.ID] = len(unique)
		unique = append(unique, quote)
	}
	return unique
}

func (r *Records) storedQuotes(ctx context.Context, userID string) []domain.Quote {
	var stored []domain.Quote
	r.readInto(ctx, quotesKey(userID), &stored)
	return stored
}

// AddQuote prepends a custom quote to the user's stored collection.
func (r *Records) AddQuote(ctx context.Context, userID string, quote domain.Quote) error {
	stored := r.storedQuotes(ctx, userID)
	updated := append([]domain.Quote{quote}, stored...)
	return r.write(ctx, quotesKey(userID), updated)
}

// UpdateQuoteText edits a quote's text. It works against the merged list and
// persists the whole list, so editing a seed quote stores a user copy that
// shadows the seed from then on.
func (r *Records) UpdateQuoteText(ctx context.Context, userID, id, text string) (domain.Quote, bool, error) {
	merged := r.ListQuotes(ctx, userID)
	for i, quote := range merged {
		if quote.ID == id {
			merged[i].Text = text
			if err := r.write(ctx, quotesKey(userID), merged); err != nil {
				return domain.Quote{}, false, err
			}
			return merged[i], true, nil
		}
	}
	return domain.Quote{}, false, nil
}

// DeleteQuote removes a stored quote by ID. Seed quotes are constants and
// cannot be deleted.
func (r *Records) DeleteQuote(ctx context.Context, userID, id string) error {
	stored := r.storedQuotes(ctx, userID)
	filtered := stored[:0]
	for _, quote := range stored {
		if quote.ID != id {
			filtered = append(filtered, quote)
		}
	}
	return r.write(ctx, quotesKey(userID), filtered)
}
