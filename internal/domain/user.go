package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus is the user's billing-state label.
// No enforcement logic exists beyond storage.
type SubscriptionStatus string

const (
	SubscriptionTrial   SubscriptionStatus = "trial"
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionExpired SubscriptionStatus = "expired"
)

// Valid reports whether s is one of the known subscription labels.
func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionTrial, SubscriptionActive, SubscriptionExpired:
		return true
	}
	return false
}

// UserSettings is one end user's profile and preferences.
// Pointer fields are optional: nil means "not yet provided", nothing more.
type UserSettings struct {
	ID                   uuid.UUID
	FirstName            *string
	Nationality          *string
	NationalityCode      *string
	NotificationsEnabled bool
	OnboardingCompleted  bool
	SubscriptionStatus   SubscriptionStatus
	TrialStart           time.Time
	CreatedAt            time.Time
}

// UserSettingsPatch carries a partial update. Only non-nil fields overwrite
// the stored record; a patch with no fields set is an invalid request.
type UserSettingsPatch struct {
	FirstName            *string
	Nationality          *string
	NationalityCode      *string
	NotificationsEnabled *bool
	OnboardingCompleted  *bool
	SubscriptionStatus   *SubscriptionStatus
}

// Empty reports whether the patch carries no fields at all.
func (p UserSettingsPatch) Empty() bool {
	return p.FirstName == nil &&
		p.Nationality == nil &&
		p.NationalityCode == nil &&
		p.NotificationsEnabled == nil &&
		p.OnboardingCompleted == nil &&
		p.SubscriptionStatus == nil
}
