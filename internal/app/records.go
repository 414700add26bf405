package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"auracoach/internal/util"
	"auracoach/pkg/domain"
	"auracoach/pkg/schedule"
)

// Lifestyle returns the log for one date, or an empty log carrying the date
// when none exists yet.
func (a *App) Lifestyle(ctx context.Context, userID, date string) (domain.LifestyleLog, error) {
	if !schedule.ValidDate(date) {
		return domain.LifestyleLog{}, ErrInvalidDate
	}
	log, ok := a.records.Lifestyle(ctx, userID, date)
	if !ok {
		return domain.LifestyleLog{Date: date}, nil
	}
	return log, nil
}

// SaveLifestyle upserts the log for its date.
func (a *App) SaveLifestyle(ctx context.Context, userID string, log domain.LifestyleLog) error {
	if !schedule.ValidDate(log.Date) {
		return ErrInvalidDate
	}
	return a.records.SaveLifestyle(ctx, userID, log)
}

// ListQuotes returns the merged seed and custom quotes.
func (a *App) ListQuotes(ctx context.Context, userID string) []domain.Quote {
	return a.records.ListQuotes(ctx, userID)
}

// AddQuote stores a custom quote.
func (a *App) AddQuote(ctx context.Context, userID, text, author string) (domain.Quote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Quote{}, fmt.Errorf("quote text required")
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = "Me"
	}
	quote := domain.Quote{
		ID:       util.NewID(),
		Text:     text,
		Author:   author,
		IsCustom: true,
	}
	if err := a.records.AddQuote(ctx, userID, quote); err != nil {
		return domain.Quote{}, fmt.Errorf("save quote: %w", err)
	}
	return quote, nil
}

// UpdateQuote rewrites a quote's text. Editing a seed quote stores a user
// copy that shadows the seed.
func (a *App) UpdateQuote(ctx context.Context, userID, quoteID, text string) (domain.Quote, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Quote{}, fmt.Errorf("quote text required")
	}
	quote, ok, err := a.records.UpdateQuoteText(ctx, userID, quoteID, text)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("update quote: %w", err)
	}
	if !ok {
		return domain.Quote{}, ErrQuoteNotFound
	}
	return quote, nil
}

// DeleteQuote removes a stored quote.
func (a *App) DeleteQuote(ctx context.Context, userID, quoteID string) error {
	return a.records.DeleteQuote(ctx, userID, quoteID)
}

// ListSnippets returns saved snippets, newest first.
func (a *App) ListSnippets(ctx context.Context, userID string) []domain.Snippet {
	return a.records.ListSnippets(ctx, userID)
}

// SaveSnippet stores a fragment of a coach reply.
func (a *App) SaveSnippet(ctx context.Context, userID, content, coachName string, tags []string) (domain.Snippet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Snippet{}, fmt.Errorf("snippet content required")
	}
	snippet := domain.Snippet{
		ID:        util.NewID(),
		Content:   content,
		CoachName: coachName,
		Date:      time.Now().UnixMilli(),
		Tags:      tags,
	}
	if err := a.records.SaveSnippet(ctx, userID, snippet); err != nil {
		return domain.Snippet{}, fmt.Errorf("save snippet: %w", err)
	}
	return snippet, nil
}

// DeleteSnippet removes a snippet.
func (a *App) DeleteSnippet(ctx context.Context, userID, snippetID string) error {
	return a.records.DeleteSnippet(ctx, userID, snippetID)
}
