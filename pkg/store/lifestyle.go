package store

import (
	"context"

	"auracoach/pkg/domain"
)

// Lifestyle returns the log for one date.
func (r *Records) Lifestyle(ctx context.Context, userID, date string) (domain.LifestyleLog, bool) {
	var log domain.LifestyleLog
	ok := r.readInto(ctx, lifestyleKey(userID, date), &log)
	return log, ok
}

// SaveLifestyle upserts the single log for its date.
func (r *Records) SaveLifestyle(ctx context.Context, userID string, log domain.LifestyleLog) error {
	return r.write(ctx, lifestyleKey(userID, log.Date), log)
}
