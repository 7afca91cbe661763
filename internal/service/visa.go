package service

import (
	"time"

	"github.com/pkordes/visaflow/backend/internal/domain"
)

// missAdvisory is returned when no table entry matches the requested pair.
// It directs the traveller to the authoritative source.
const missAdvisory = "Visa requirements not found in our database. Please check with the embassy."

// Resolver answers visa-requirement lookups against the static table.
// It is pure: no store access, no mutation. The clock is only consulted on
// the miss branch, where the response's last-updated value is the processing
// date rather than a stored one.
type Resolver struct {
	table map[string]domain.VisaRequirement
	now   func() time.Time
}

// NewResolver constructs a Resolver over the loaded requirements table.
// The table must not be mutated after it is handed over.
func NewResolver(table map[string]domain.VisaRequirement) *Resolver {
	return NewResolverWithClock(table, time.Now)
}

// NewResolverWithClock is NewResolver with an injected clock, so tests can
// pin the processing date used on the miss branch.
func NewResolverWithClock(table map[string]domain.VisaRequirement, now func() time.Time) *Resolver {
	return &Resolver{table: table, now: now}
}

// Resolve looks up the verdict for a (nationality, destination) pair.
//
// The key is built by joining the codes with a hyphen, exact case preserved:
// callers supplying lowercase codes miss real entries. travelPurpose is part
// of the request contract but the table carries a single verdict per pair, so
// it never selects among variants — a documented limitation of the data, not
// something to branch on here.
//
// Every pair produces a response. A miss is not an error: it yields
// found=false, verdict "unknown", and an embassy advisory.
func (r *Resolver) Resolve(nationalityCode, destinationCode, travelPurpose string) domain.Resolution {
	_ = travelPurpose

	key := nationalityCode + "-" + destinationCode

	req, ok := r.table[key]
	if !ok {
		return domain.Resolution{
			Found:           false,
			NationalityCode: nationalityCode,
			DestinationCode: destinationCode,
			Verdict:         domain.VerdictUnknown,
			LastUpdated:     r.now().UTC().Format("2006-01-02"),
			Message:         missAdvisory,
		}
	}

	return domain.Resolution{
		Found:           true,
		NationalityCode: nationalityCode,
		DestinationCode: destinationCode,
		Verdict:         req.Verdict,
		PermittedDays:   req.PermittedDays,
		Conditions:      req.Conditions,
		CostUSD:         req.CostUSD,
		ProcessingDays:  req.ProcessingDays,
		LastUpdated:     req.LastUpdated,
		ApplicationLink: req.ApplicationLink,
	}
}
