package store

import (
	"context"

	"auracoach/pkg/domain"
)

// DayBlocks returns the block list for one date. Missing or corrupt days
// are empty, never an error.
func (r *Records) DayBlocks(ctx context.Context, userID, date string) []domain.TimeBlock {
	var blocks []domain.TimeBlock
	r.readInto(ctx, scheduleKey(userID, date), &blocks)
	return blocks
}

// SaveDayBlocks replaces the whole block list for one date.
func (r *Records) SaveDayBlocks(ctx context.Context, userID, date string, blocks []domain.TimeBlock) error {
	if blocks == nil {
		blocks = []domain.TimeBlock{}
	}
	return r.write(ctx, scheduleKey(userID, date), blocks)
}

// ClearDay removes the block list for one date.
func (r *Records) ClearDay(ctx context.Context, userID, date string) error {
	return r.kv.Delete(ctx, scheduleKey(userID, date))
}
