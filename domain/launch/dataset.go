package launch

import (
	"errors"
	"fmt"

	"launchdash/domain/core"

	"github.com/montanaflynn/stats"
)

// ErrEmptyDataset is returned when a dataset would contain no records.
var ErrEmptyDataset = errors.New("launch dataset is empty")

// Dataset is the immutable table of launch records the dashboard reads.
// It is built once at startup and shared read-only by every callback.
type Dataset struct {
	id         core.DatasetID
	source     string
	loadedAt   core.Timestamp
	records    []Record
	sites      []string
	minPayload float64
	maxPayload float64
}

// NewDataset validates records and computes the payload bounds once.
// The slice is copied so later changes by the caller are not observed.
func NewDataset(source string, records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	owned := make([]Record, len(records))
	copy(owned, records)

	payloads := make([]float64, len(owned))
	seen := make(map[string]bool)
	var sites []string
	for i, r := range owned {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		payloads[i] = r.PayloadMassKg
		if !seen[r.LaunchSite] {
			seen[r.LaunchSite] = true
			sites = append(sites, r.LaunchSite)
		}
	}

	minPayload, err := stats.Min(payloads)
	if err != nil {
		return nil, fmt.Errorf("failed to compute minimum payload: %w", err)
	}
	maxPayload, err := stats.Max(payloads)
	if err != nil {
		return nil, fmt.Errorf("failed to compute maximum payload: %w", err)
	}

	return &Dataset{
		id:         core.NewDatasetID(),
		source:     source,
		loadedAt:   core.Now(),
		records:    owned,
		sites:      sites,
		minPayload: minPayload,
		maxPayload: maxPayload,
	}, nil
}

// ID returns the dataset identifier assigned at load time.
func (d *Dataset) ID() core.DatasetID { return d.id }

// Source describes where the records came from (file path, "postgres", "demo").
func (d *Dataset) Source() string { return d.source }

// LoadedAt returns when the dataset was built.
func (d *Dataset) LoadedAt() core.Timestamp { return d.loadedAt }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// At returns the i-th record by value.
func (d *Dataset) At(i int) Record { return d.records[i] }

// Each calls fn for every record in dataset order.
func (d *Dataset) Each(fn func(Record)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Records returns a copy of all records.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Sites returns the distinct launch sites in first-seen order.
func (d *Dataset) Sites() []string {
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}

// MinPayload is the smallest payload mass in the dataset.
func (d *Dataset) MinPayload() float64 { return d.minPayload }

// MaxPayload is the largest payload mass in the dataset.
func (d *Dataset) MaxPayload() float64 { return d.maxPayload }

// PayloadBounds returns the full payload range covered by the dataset.
func (d *Dataset) PayloadBounds() PayloadRange {
	return PayloadRange{Low: d.minPayload, High: d.maxPayload}
}

// Payloads returns every payload mass in dataset order.
func (d *Dataset) Payloads() []float64 {
	out := make([]float64, len(d.records))
	for i, r := range d.records {
		out[i] = r.PayloadMassKg
	}
	return out
}
