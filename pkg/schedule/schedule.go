// Package schedule owns the per-day time-block lists: merge on edit, the
// start-time sort invariant, the status toggle cycle, weekly aggregation,
// and acceptance of AI-generated plans.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"auracoach/pkg/domain"
	"auracoach/pkg/store"
)

// DateLayout is the calendar-date key format.
const DateLayout = "2006-01-02"

// ErrInvalidDate reports a date not in DateLayout form.
var ErrInvalidDate = errors.New("invalid date")

// Service serializes mutations per (user, date) so near-simultaneous edits
// to the same day cannot lose updates. Reads stay lock-free.
type Service struct {
	records *store.Records

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService builds the schedule service over the record stores.
func NewService(records *store.Records) *Service {
	return &Service{
		records: records,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Service) dayLock(userID, date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userID + ":" + date
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD string.
func ValidDate(date string) bool {
	_, err := time.Parse(DateLayout, date)
	return err == nil
}

// Day returns the block list for a date, sorted by start time.
func (s *Service) Day(ctx context.Context, userID, date string) []domain.TimeBlock {
	blocks := s.records.DayBlocks(ctx, userID, date)
	sortBlocks(blocks)
	return blocks
}

// UpsertBlock replaces a block by ID or appends it, then persists the list
// sorted ascending by parsed start time. The list for a date is sorted
// after every mutation.
func (s *Service) UpsertBlock(ctx context.Context, userID, date string, block domain.TimeBlock) ([]domain.TimeBlock, error) {
	if !ValidDate(date) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	lock := s.dayLock(userID, date)
	lock.Lock()
	defer lock.Unlock()

	blocks := s.records.DayBlocks(ctx, userID, date)
	replaced := false
	for i, existing := range blocks {
		if existing.ID == block.ID {
			blocks[i] = block
			replaced = true
			break
		}
	}
	if !replaced {
		blocks = append(blocks, block)
	}
	sortBlocks(blocks)
	if err := s.records.SaveDayBlocks(ctx, userID, date, blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// DeleteBlock removes a block by ID.
func (s *Service) DeleteBlock(ctx context.Context, userID, date, id string) error {
	lock := s.dayLock(userID, date)
	lock.Lock()
	defer lock.Unlock()

	blocks := s.records.DayBlocks(ctx, userID, date)
	filtered := blocks[:0]
	for _, block := range blocks {
		if block.ID != id {
			filtered = append(filtered, block)
		}
	}
	return s.records.SaveDayBlocks(ctx, userID, date, filtered)
}

// ClearDay removes every block for a date.
func (s *Service) ClearDay(ctx context.Context, userID, date string) error {
	lock := s.dayLock(userID, date)
	lock.Lock()
	defer lock.Unlock()
	return s.records.ClearDay(ctx, userID, date)
}

// ToggleStatus advances a block through pending → in-progress → completed →
// pending. Skipped is a valid stored status but is only set via direct
// edit; toggling a skipped block lands on pending.
func (s *Service) ToggleStatus(ctx context.Context, userID, date, id string) (domain.TimeBlock, bool, error) {
	lock := s.dayLock(userID, date)
	lock.Lock()
	defer lock.Unlock()

	blocks := s.records.DayBlocks(ctx, userID, date)
	var toggled domain.TimeBlock
	found := false
	for i, block := range blocks {
		if block.ID != id {
			continue
		}
		blocks[i].Status = nextStatus(block.Status)
		toggled = blocks[i]
		found = true
		break
	}
	if !found {
		return domain.TimeBlock{}, false, nil
	}
	sortBlocks(blocks)
	if err := s.records.SaveDayBlocks(ctx, userID, date, blocks); err != nil {
		return domain.TimeBlock{}, false, err
	}
	return toggled, true, nil
}

func nextStatus(status domain.BlockStatus) domain.BlockStatus {
	switch status {
	case domain.StatusPending:
		return domain.StatusInProgress
	case domain.StatusInProgress:
		return domain.StatusCompleted
	default:
		return domain.StatusPending
	}
}

func sortBlocks(blocks []domain.TimeBlock) {
	sort.SliceStable(blocks, func(i, j int) bool {
		return ParseStartMinutes(blocks[i].Time) < ParseStartMinutes(blocks[j].Time)
	})
}
