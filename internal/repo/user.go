package repo

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/visaflow/backend/internal/domain"
)

// userColumns is the SELECT/RETURNING list shared by every user query.
const userColumns = "id, first_name, nationality, nationality_code, notifications_enabled, onboarding_completed, subscription_status, trial_start, created_at"

// UserRepo defines the persistence operations for UserSettings.
type UserRepo interface {
	// Create inserts a new user record with all column defaults and returns it.
	Create(ctx context.Context) (domain.UserSettings, error)

	// GetByID retrieves a single user by its UUID primary key.
	// Returns domain.ErrNotFound if no user with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.UserSettings, error)

	// UpdatePartial overwrites only the columns set in the patch and returns
	// the merged record. Returns domain.ErrNotFound if the user does not exist.
	// The caller must reject an empty patch before reaching this layer.
	UpdatePartial(ctx context.Context, id uuid.UUID, patch domain.UserSettingsPatch) (domain.UserSettings, error)
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

// Create inserts a row of pure defaults; every column value is DB-generated.
func (r *pgUserRepo) Create(ctx context.Context) (domain.UserSettings, error) {
	q := "INSERT INTO users DEFAULT VALUES RETURNING " + userColumns

	row := r.db.QueryRow(ctx, q)
	result, err := scanUser(row)
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a user by primary key.
func (r *pgUserRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.UserSettings, error) {
	q := "SELECT " + userColumns + " FROM users WHERE id = @id"

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanUser(row)
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

// UpdatePartial builds the SET clause dynamically from the patch, so only
// explicitly-provided fields overwrite stored values. squirrel is used here
// because the column set varies per request — NamedArgs cannot express that.
func (r *pgUserRepo) UpdatePartial(ctx context.Context, id uuid.UUID, patch domain.UserSettingsPatch) (domain.UserSettings, error) {
	if patch.Empty() {
		return domain.UserSettings{}, fmt.Errorf("repo.UserRepo.UpdatePartial: %w: empty patch", domain.ErrInvalidRequest)
	}

	b := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns)

	if patch.FirstName != nil {
		b = b.Set("first_name", *patch.FirstName)
	}
	if patch.Nationality != nil {
		b = b.Set("nationality", *patch.Nationality)
	}
	if patch.NationalityCode != nil {
		b = b.Set("nationality_code", *patch.NationalityCode)
	}
	if patch.NotificationsEnabled != nil {
		b = b.Set("notifications_enabled", *patch.NotificationsEnabled)
	}
	if patch.OnboardingCompleted != nil {
		b = b.Set("onboarding_completed", *patch.OnboardingCompleted)
	}
	if patch.SubscriptionStatus != nil {
		b = b.Set("subscription_status", string(*patch.SubscriptionStatus))
	}

	q, args, err := b.ToSql()
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("repo.UserRepo.UpdatePartial: build: %w", err)
	}

	row := r.db.QueryRow(ctx, q, args...)
	result, err := scanUser(row)
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("repo.UserRepo.UpdatePartial: %w", err)
	}
	return result, nil
}

// scanUser maps a single database row into a domain.UserSettings.
// Nullable text columns scan into *string fields (NULL becomes nil).
func scanUser(s scanner) (domain.UserSettings, error) {
	var (
		u      domain.UserSettings
		id     pgtype.UUID
		status string
	)

	err := s.Scan(&id, &u.FirstName, &u.Nationality, &u.NationalityCode,
		&u.NotificationsEnabled, &u.OnboardingCompleted, &status, &u.TrialStart, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserSettings{}, domain.ErrNotFound
		}
		return domain.UserSettings{}, err
	}

	u.ID = uuid.UUID(id.Bytes)
	u.SubscriptionStatus = domain.SubscriptionStatus(status)

	return u, nil
}
