package domain

// Verdict is the type of entry permission a nationality has for a destination.
type Verdict string

const (
	VerdictVisaFree      Verdict = "visa_free"
	VerdictEVisa         Verdict = "evisa"
	VerdictVisaOnArrival Verdict = "visa_on_arrival"
	VerdictEmbassyVisa   Verdict = "embassy_visa"

	// VerdictUnknown is never stored in the table; it is the resolver's
	// fallback when no entry matches the requested pair.
	VerdictUnknown Verdict = "unknown"
)

// VisaRequirement is one entry of the static requirements table, keyed by
// "NAT-DEST" (uppercase ISO-3166 alpha-2 codes joined by a hyphen).
type VisaRequirement struct {
	Verdict Verdict

	// PermittedDays is nil when no stay limit applies. Zero is meaningful
	// and distinct from nil: it marks same-citizenship-bloc entries with no
	// separate stay allowance beyond residency.
	PermittedDays *int

	// Conditions is free text in display order.
	Conditions []string

	CostUSD         *float64
	ProcessingDays  *string // free-form range text, e.g. "3-5"
	LastUpdated     string  // YYYY-MM-DD
	ApplicationLink *string
}

// Resolution is the answer to a requirements check. On a hit all stored
// fields are echoed verbatim along with the requested codes. On a miss
// Verdict is "unknown", Message carries the embassy advisory, and
// LastUpdated is the processing date rather than a stored one.
type Resolution struct {
	Found           bool
	NationalityCode string
	DestinationCode string
	Verdict         Verdict
	PermittedDays   *int
	Conditions      []string
	CostUSD         *float64
	ProcessingDays  *string
	LastUpdated     string
	ApplicationLink *string
	Message         string
}
