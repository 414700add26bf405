package app

import (
	"context"
	"fmt"
	"time"

	"auracoach/pkg/ai"
	"auracoach/pkg/auth"
	"auracoach/pkg/billing"
	"auracoach/pkg/domain"
	"auracoach/pkg/events"
	"auracoach/pkg/kv"
	"auracoach/pkg/schedule"
	"auracoach/pkg/storage"
	"auracoach/pkg/store"
)

// Bridge is the AI surface the app depends on. *ai.Bridge satisfies it;
// tests substitute a fake.
type Bridge interface {
	CoachReply(ctx context.Context, messages []ai.ChatMessage) ai.Reply
	GenerateDayPlan(ctx context.Context, goal, contextDate string) ([]domain.GeneratedBlock, error)
	GenerateWeekPlan(ctx context.Context, goal, contextDate string) ([]domain.GeneratedDay, error)
}

// Config holds runtime configuration for the core application.
type Config struct {
	Store      kv.Store
	JWTSecret  string
	SessionTTL time.Duration
	Revoker    auth.TokenRevoker
	Hasher     auth.Hasher
	Bridge     Bridge
	Billing    billing.Service
	Snapshots  *storage.Snapshots
	Publisher  events.Publisher
}

// App is the core application service wiring storage, auth, billing and the
// AI bridge together.
type App struct {
	records   *store.Records
	schedule  *schedule.Service
	sessions  *auth.JWTSessionStore
	hasher    auth.Hasher
	bridge    Bridge
	billing   billing.Service
	snapshots *storage.Snapshots
	publisher events.Publisher
}

// New constructs the application.
func New(cfg Config) (*App, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("kv store required")
	}
	if cfg.Bridge == nil {
		return nil, fmt.Errorf("ai bridge required")
	}
	revoker := cfg.Revoker
	if revoker == nil {
		revoker = auth.NewMemoryTokenRevoker()
	}
	sessions, err := auth.NewJWTSessionStore(cfg.JWTSecret, cfg.SessionTTL, revoker)
	if err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}
	hasher := cfg.Hasher
	if hasher == nil {
		hasher = auth.NewBcryptHasher(0)
	}
	records := store.NewRecords(cfg.Store)
	billingSvc := cfg.Billing
	if billingSvc == nil {
		billingSvc = billing.NewMockService(records)
	}
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &App{
		records:   records,
		schedule:  schedule.NewService(records),
		sessions:  sessions,
		hasher:    hasher,
		bridge:    cfg.Bridge,
		billing:   billingSvc,
		snapshots: cfg.Snapshots,
		publisher: publisher,
	}, nil
}

// Records exposes the underlying record store, mainly for wiring and tests.
func (a *App) Records() *store.Records {
	return a.records
}
