package app

import (
	"context"
	"errors"
	"time"

	"auracoach/internal/util"
	"auracoach/pkg/domain"
	"auracoach/pkg/events"
	"auracoach/pkg/schedule"
)

// DaySchedule returns the blocks for one date, sorted by start time.
func (a *App) DaySchedule(ctx context.Context, userID, date string) ([]domain.TimeBlock, error) {
	if !schedule.ValidDate(date) {
		return nil, ErrInvalidDate
	}
	return a.schedule.Day(ctx, userID, date), nil
}

// UpsertBlock creates or replaces a block and returns the updated day.
func (a *App) UpsertBlock(ctx context.Context, userID, date string, block domain.TimeBlock) ([]domain.TimeBlock, error) {
	if block.ID == "" {
		block.ID = util.NewID()
	}
	if block.Status == "" {
		block.Status = domain.StatusPending
	}
	blocks, err := a.schedule.UpsertBlock(ctx, userID, date, block)
	if err != nil {
		return nil, mapScheduleErr(err)
	}
	return blocks, nil
}

// DeleteBlock removes a block from a day.
func (a *App) DeleteBlock(ctx context.Context, userID, date, blockID string) error {
	return mapScheduleErr(a.schedule.DeleteBlock(ctx, userID, date, blockID))
}

// ToggleBlock advances a block through its status cycle.
func (a *App) ToggleBlock(ctx context.Context, userID, date, blockID string) (domain.TimeBlock, error) {
	block, ok, err := a.schedule.ToggleStatus(ctx, userID, date, blockID)
	if err != nil {
		return domain.TimeBlock{}, mapScheduleErr(err)
	}
	if !ok {
		return domain.TimeBlock{}, ErrBlockNotFound
	}
	return block, nil
}

// GenerateDayPlan asks the AI for a day plan. Generation failures degrade to
// an empty plan so the client can fall back to manual planning.
func (a *App) GenerateDayPlan(ctx context.Context, goal, contextDate string) []domain.GeneratedBlock {
	blocks, err := a.bridge.GenerateDayPlan(ctx, goal, contextDate)
	if err != nil {
		util.LoggerFromContext(ctx).Warn("day plan generation failed", "err", err)
		return []domain.GeneratedBlock{}
	}
	return blocks
}

// GenerateWeekPlan asks the AI for a 7-day plan.
func (a *App) GenerateWeekPlan(ctx context.Context, goal, contextDate string) []domain.GeneratedDay {
	days, err := a.bridge.GenerateWeekPlan(ctx, goal, contextDate)
	if err != nil {
		util.LoggerFromContext(ctx).Warn("week plan generation failed", "err", err)
		return []domain.GeneratedDay{}
	}
	return days
}

// AcceptDayPlan replaces the date's blocks with the generated plan.
func (a *App) AcceptDayPlan(ctx context.Context, userID, date string, plan []domain.GeneratedBlock) ([]domain.TimeBlock, error) {
	blocks, err := a.schedule.AcceptDayPlan(ctx, userID, date, plan)
	if err != nil {
		return nil, mapScheduleErr(err)
	}
	a.publish(ctx, events.Event{
		Type:   events.TypePlanAccepted,
		UserID: userID,
		Data:   map[string]any{"mode": "day", "date": date, "blocks": len(blocks)},
	})
	return blocks, nil
}

// AcceptWeekPlan distributes the generated days over the week starting at
// baseDate.
func (a *App) AcceptWeekPlan(ctx context.Context, userID, baseDate string, days []domain.GeneratedDay) error {
	if err := a.schedule.AcceptWeekPlan(ctx, userID, baseDate, days); err != nil {
		return mapScheduleErr(err)
	}
	a.publish(ctx, events.Event{
		Type:   events.TypePlanAccepted,
		UserID: userID,
		Data:   map[string]any{"mode": "week", "baseDate": baseDate, "days": len(days)},
	})
	return nil
}

// WeeklyStats summarizes the last 7 days, oldest first.
func (a *App) WeeklyStats(ctx context.Context, userID string) ([]domain.DayStat, error) {
	return a.schedule.WeeklyStats(ctx, userID, time.Now())
}

func mapScheduleErr(err error) error {
	if err != nil && errors.Is(err, schedule.ErrInvalidDate) {
		return ErrInvalidDate
	}
	return err
}
