// Package visadata holds the static reference datasets: the visa requirements
// table and the country list. Both are embedded at compile time and parsed
// once at startup; the returned structures are read-only afterwards.
//
// The requirements table is keyed by "NAT-DEST" (uppercase ISO-3166 alpha-2
// codes joined by a hyphen, case-sensitive). The data is hand-maintained;
// there is no freshness pipeline.
package visadata

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/pkordes/visaflow/backend/internal/domain"
)

//go:embed requirements.json countries.json
var files embed.FS

// requirementRecord is the on-disk shape of one requirements entry.
// permitted_days distinguishes absent (null) from zero, so it must stay a pointer.
type requirementRecord struct {
	Verdict         string   `json:"verdict"`
	PermittedDays   *int     `json:"permitted_days"`
	Conditions      []string `json:"conditions"`
	CostUSD         *float64 `json:"cost_usd"`
	ProcessingDays  *string  `json:"processing_days"`
	LastUpdated     string   `json:"last_updated"`
	ApplicationLink *string  `json:"application_link"`
}

// Requirements parses the embedded requirements table into a lookup map.
// An entry with an unrecognised verdict is a data error, not a runtime
// condition, so it fails the load.
func Requirements() (map[string]domain.VisaRequirement, error) {
	raw, err := files.ReadFile("requirements.json")
	if err != nil {
		return nil, fmt.Errorf("visadata.Requirements: read: %w", err)
	}

	var records map[string]requirementRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("visadata.Requirements: parse: %w", err)
	}

	table := make(map[string]domain.VisaRequirement, len(records))
	for key, rec := range records {
		verdict := domain.Verdict(rec.Verdict)
		switch verdict {
		case domain.VerdictVisaFree, domain.VerdictEVisa, domain.VerdictVisaOnArrival, domain.VerdictEmbassyVisa:
		default:
			return nil, fmt.Errorf("visadata.Requirements: entry %q has unknown verdict %q", key, rec.Verdict)
		}
		table[key] = domain.VisaRequirement{
			Verdict:         verdict,
			PermittedDays:   rec.PermittedDays,
			Conditions:      rec.Conditions,
			CostUSD:         rec.CostUSD,
			ProcessingDays:  rec.ProcessingDays,
			LastUpdated:     rec.LastUpdated,
			ApplicationLink: rec.ApplicationLink,
		}
	}
	return table, nil
}

// Countries parses the embedded country list, preserving file order.
func Countries() ([]domain.Country, error) {
	raw, err := files.ReadFile("countries.json")
	if err != nil {
		return nil, fmt.Errorf("visadata.Countries: read: %w", err)
	}

	var countries []domain.Country
	if err := json.Unmarshal(raw, &countries); err != nil {
		return nil, fmt.Errorf("visadata.Countries: parse: %w", err)
	}
	return countries, nil
}
