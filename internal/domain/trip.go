// Package domain contains the core data types for the VisaFlow application.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is a trip lifecycle label.
// "expired" is declared for completeness but no code path sets it.
type TripStatus string

const (
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripExpired   TripStatus = "expired"
)

// Trip is a single stay in a destination country, owned by one user.
// UserID is an opaque weak reference — it is never validated against the
// users table and no cascade exists.
type Trip struct {
	ID          uuid.UUID
	UserID      string
	Country     string
	CountryCode string
	VisaType    string // free-text label supplied by the caller, e.g. "evisa"

	// EntryDate and ExitDate are calendar dates (midnight UTC, no time component).
	EntryDate time.Time
	ExitDate  time.Time

	// TotalDays is exit − entry in whole days, computed once at creation and
	// never recomputed. Exit before entry yields a negative value that is
	// stored as given.
	TotalDays int

	ExtensionsAvailable int
	Status              TripStatus
	CreatedAt           time.Time
}

// TotalDays returns the whole-day difference between two calendar dates.
func TotalDays(entry, exit time.Time) int {
	return int(exit.Sub(entry) / (24 * time.Hour))
}
