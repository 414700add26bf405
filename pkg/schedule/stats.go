package schedule

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"auracoach/pkg/domain"
)

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// WeeklyStats computes per-day completion percentage and completed study
// hours for the 7 dates ending at today, oldest first. Days with no blocks
// report completion 0. The 7 day reads fan out concurrently.
func (s *Service) WeeklyStats(ctx context.Context, userID string, today time.Time) ([]domain.DayStat, error) {
	stats := make([]domain.DayStat, 7)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		g.Go(func() error {
			blocks := s.records.DayBlocks(gctx, userID, day.Format(DateLayout))
			stats[i] = dayStat(day, blocks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func dayStat(day time.Time, blocks []domain.TimeBlock) domain.DayStat {
	completed := 0
	studyHours := 0
	for _, block := range blocks {
		if block.Status != domain.StatusCompleted {
			continue
		}
		completed++
		if isStudyCategory(block.Category) {
			studyHours += rangeHours(block.Time)
		}
	}
	completion := 0
	if len(blocks) > 0 {
		completion = int(math.Round(float64(completed) / float64(len(blocks)) * 100))
	}
	return domain.DayStat{
		Date:       day.Format(DateLayout),
		DayName:    day.Weekday().String(),
		Completion: completion,
		StudyHours: studyHours,
	}
}

func isStudyCategory(category string) bool {
	category = strings.ToLower(category)
	return strings.Contains(category, "study") || strings.Contains(category, "deep work")
}
