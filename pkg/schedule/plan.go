package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"auracoach/pkg/domain"
)

// GeneratedCategory marks blocks created from an accepted AI plan.
const GeneratedCategory = "AI Plan"

// AcceptDayPlan replaces the entire block list for date with the generated
// blocks. This is a destructive overwrite: no pre-existing block survives.
func (s *Service) AcceptDayPlan(ctx context.Context, userID, date string, plan []domain.GeneratedBlock) ([]domain.TimeBlock, error) {
	if !ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	lock := s.dayLock(userID, date)
	lock.Lock()
	defer lock.Unlock()

	blocks := materialize(plan)
	if err := s.records.SaveDayBlocks(ctx, userID, date, blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// AcceptWeekPlan writes each generated day to baseDate+dayOffset, fully
// replacing that date's list. Days are written independently; a failure
// partway leaves earlier days accepted.
func (s *Service) AcceptWeekPlan(ctx context.Context, userID, baseDate string, days []domain.GeneratedDay) error {
	base, err := parseDate(baseDate)
	if err != nil {
		return err
	}
	for _, day := range days {
		date := base.AddDate(0, 0, day.DayOffset).Format(DateLayout)
		if _, err := s.AcceptDayPlan(ctx, userID, date, day.Blocks); err != nil {
			return fmt.Errorf("accept day offset %d: %w", day.DayOffset, err)
		}
	}
	return nil
}

func materialize(plan []domain.GeneratedBlock) []domain.TimeBlock {
	blocks := make([]domain.TimeBlock, 0, len(plan))
	for _, generated := range plan {
		blocks = append(blocks, domain.TimeBlock{
			ID:            uuid.NewString(),
			Time:          generated.Time,
			Activity:      generated.Activity,
			Description:   generated.Description,
			Category:      GeneratedCategory,
			Status:        domain.StatusPending,
			IsAIGenerated: true,
		})
	}
	sortBlocks(blocks)
	return blocks
}
