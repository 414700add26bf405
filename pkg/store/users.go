package store

import (
	"context"
	"strings"
	"time"

	"auracoach/pkg/domain"
)

// userRecord is the persisted shape of a user. domain.User never serializes
// the password hash, so storage goes through this type instead.
type userRecord struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	Plan         domain.Plan `json:"plan"`
	PasswordHash string      `json:"passwordHash"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func toUserRecord(u domain.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Plan:         u.Plan,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (rec userRecord) user() domain.User {
	return domain.User{
		ID:           rec.ID,
		Email:        rec.Email,
		Name:         rec.Name,
		Plan:         rec.Plan,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

// NormalizeEmail lowercases and trims an e-mail for comparison and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *Records) userRecords(ctx context.Context) []userRecord {
	var records []userRecord
	r.readInto(ctx, usersKey, &records)
	return records
}

// ListUsers returns the whole users collection.
func (r *Records) ListUsers(ctx context.Context) []domain.User {
	records := r.userRecords(ctx)
	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.user())
	}
	return users
}

// SaveUser replaces the user by ID or appends a new record.
func (r *Records) SaveUser(ctx context.Context, user domain.User) error {
	records := r.userRecords(ctx)
	rec := toUserRecord(user)
	replaced := false
	for i, existing := range records {
		if existing.ID == rec.ID {
			records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, rec)
	}
	return r.write(ctx, usersKey, records)
}

// GetUserByEmail looks a user up by normalized e-mail.
func (r *Records) GetUserByEmail(ctx context.Context, email string) (domain.User, bool) {
	email = NormalizeEmail(email)
	for _, user := range r.ListUsers(ctx) {
		if NormalizeEmail(user.Email) == email {
			return user, true
		}
	}
	return domain.User{}, false
}

// HasUserEmail checks whether a normalized e-mail is already registered.
func (r *Records) HasUserEmail(ctx context.Context, email string) bool {
	_, ok := r.GetUserByEmail(ctx, email)
	return ok
}

// GetUserByID returns a user by ID.
func (r *Records) GetUserByID(ctx context.Context, id string) (domain.User, bool) {
	for _, user := range r.ListUsers(ctx) {
		if user.ID == id {
			return user, true
		}
	}
	return domain.User{}, false
}
