package launch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Outcome is the landing class of a launch: 1 for success, 0 for failure.
type Outcome int

const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Human-readable outcome labels used by the site pie chart.
const (
	LabelSuccess = "Success"
	LabelFailure = "Epic Fail"
)

// ParseOutcome parses a class cell. Integer and integral float spellings are accepted.
func ParseOutcome(s string) (Outcome, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "1", "1.0":
		return OutcomeSuccess, nil
	case "0", "0.0":
		return OutcomeFailure, nil
	}
	return 0, fmt.Errorf("invalid outcome %q: expected 0 or 1", s)
}

// Label maps the outcome flag to its chart label.
func (o Outcome) Label() string {
	if o == OutcomeSuccess {
		return LabelSuccess
	}
	return LabelFailure
}

// IsSuccess reports whether the launch succeeded.
func (o Outcome) IsSuccess() bool { return o == OutcomeSuccess }

// Record is one row of the launch dataset.
type Record struct {
	FlightNumber           int     `json:"flight_number,omitempty" db:"flight_number"`
	LaunchSite             string  `json:"launch_site" db:"launch_site"`
	PayloadMassKg          float64 `json:"payload_mass_kg" db:"payload_mass_kg"`
	Outcome                Outcome `json:"class" db:"class"`
	BoosterVersion         string  `json:"booster_version,omitempty" db:"booster_version"`
	BoosterVersionCategory string  `json:"booster_version_category" db:"booster_version_category"`
}

// Validate checks the invariants every dataset row must hold.
func (r Record) Validate() error {
	if math.IsNaN(r.PayloadMassKg) || math.IsInf(r.PayloadMassKg, 0) {
		return fmt.Errorf("payload mass must be finite, got %v", r.PayloadMassKg)
	}
	if r.PayloadMassKg < 0 {
		return fmt.Errorf("payload mass must be non-negative, got %v", r.PayloadMassKg)
	}
	if r.Outcome != OutcomeSuccess && r.Outcome != OutcomeFailure {
		return fmt.Errorf("outcome must be 0 or 1, got %d", r.Outcome)
	}
	return nil
}

// AllSites is the dropdown sentinel selecting every launch site.
const AllSites SiteFilter = "ALL"

// SiteFilter is either AllSites or a launch site identifier. It is never
// validated against the dataset: an unknown site simply matches nothing.
type SiteFilter string

// IsAll reports whether the filter is the ALL sentinel.
func (f SiteFilter) IsAll() bool { return f == AllSites }

// Matches reports whether a record at site passes the filter.
func (f SiteFilter) Matches(site string) bool {
	return f.IsAll() || string(f) == site
}

func (f SiteFilter) String() string { return string(f) }

// PayloadRange is an inclusive [Low, High] payload mass window in kg.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// NewPayloadRange builds a range from slider values.
func NewPayloadRange(low, high float64) PayloadRange {
	return PayloadRange{Low: low, High: high}
}

// IsEmpty reports whether no payload can fall in the range.
func (r PayloadRange) IsEmpty() bool {
	return math.IsNaN(r.Low) || math.IsNaN(r.High) || r.Low > r.High
}

// Contains reports whether mass lies within the range, bounds included.
func (r PayloadRange) Contains(mass float64) bool {
	if r.IsEmpty() {
		return false
	}
	return mass >= r.Low && mass <= r.High
}

// FormatRangeValue renders a bound the way the slider labels do.
func FormatRangeValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
