package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"auracoach/internal/util"
	"auracoach/pkg/auth"
	"auracoach/pkg/domain"
	"auracoach/pkg/events"
	"auracoach/pkg/store"
)

// Register creates an account and issues a session token.
func (a *App) Register(ctx context.Context, email, name, password string) (domain.User, string, error) {
	email = store.NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, "", ErrEmailAndPasswordRequired
	}
	if !strings.Contains(email, "@") {
		return domain.User{}, "", fmt.Errorf("invalid email address")
	}
	if err := auth.ValidatePassword(password); err != nil {
		return domain.User{}, "", err
	}
	if a.records.HasUserEmail(ctx, email) {
		return domain.User{}, "", ErrEmailAlreadyExists
	}
	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user := domain.User{
		ID:           util.NewID(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		Plan:         domain.PlanFree,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Name == "" {
		user.Name = email[:strings.Index(email, "@")]
	}
	if err := a.records.SaveUser(ctx, user); err != nil {
		return domain.User{}, "", fmt.Errorf("save user: %w", err)
	}
	token, err := a.sessions.NewSession(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue session: %w", err)
	}
	a.publish(ctx, events.Event{Type: events.TypeUserRegistered, UserID: user.ID})
	return user, token, nil
}

// Login validates credentials and issues a session token.
func (a *App) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, ok := a.records.GetUserByEmail(ctx, email)
	if !ok {
		return domain.User{}, "", ErrInvalidCredentials
	}
	if !a.hasher.Check(password, user.PasswordHash) {
		return domain.User{}, "", ErrInvalidCredentials
	}
	token, err := a.sessions.NewSession(user.ID)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("issue session: %w", err)
	}
	return user, token, nil
}

// Logout revokes the session token.
func (a *App) Logout(token string) error {
	return a.sessions.DeleteSession(token)
}

// UserFromToken resolves a session token to its user.
func (a *App) UserFromToken(ctx context.Context, token string) (domain.User, error) {
	userID, ok, err := a.sessions.GetUserIDByToken(token)
	if err != nil || !ok {
		return domain.User{}, ErrInvalidToken
	}
	user, ok := a.records.GetUserByID(ctx, userID)
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	return user, nil
}

// UpdateName changes the display name.
func (a *App) UpdateName(ctx context.Context, userID, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, fmt.Errorf("name required")
	}
	user, ok := a.records.GetUserByID(ctx, userID)
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	user.Name = name
	user.UpdatedAt = time.Now().UTC()
	if err := a.records.SaveUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// UpdateEmail changes the account e-mail after a uniqueness check.
func (a *App) UpdateEmail(ctx context.Context, userID, email string) (domain.User, error) {
	email = store.NormalizeEmail(email)
	if !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("invalid email address")
	}
	user, ok := a.records.GetUserByID(ctx, userID)
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	if existing, found := a.records.GetUserByEmail(ctx, email); found && existing.ID != userID {
		return domain.User{}, ErrEmailAlreadyExists
	}
	user.Email = email
	user.UpdatedAt = time.Now().UTC()
	if err := a.records.SaveUser(ctx, user); err != nil {
		return domain.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the current password and sets a new one.
func (a *App) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, ok := a.records.GetUserByID(ctx, userID)
	if !ok {
		return ErrUserNotFound
	}
	if !a.hasher.Check(current, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(next); err != nil {
		return err
	}
	hash, err := a.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := a.records.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

// publish emits an event, logging instead of failing the operation when the
// broker is down.
func (a *App) publish(ctx context.Context, event events.Event) {
	if err := a.publisher.Publish(ctx, event); err != nil {
		util.LoggerFromContext(ctx).Warn("event publish failed", "type", event.Type, "err", err)
	}
}
