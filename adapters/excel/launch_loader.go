package excel

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"launchdash/domain/launch"
	"launchdash/internal/errors"
)

// ColumnMapping names the columns that hold each launch field.
// FlightNumber and BoosterVersion are optional.
type ColumnMapping struct {
	LaunchSite             string
	PayloadMass            string
	Class                  string
	BoosterVersionCategory string
	FlightNumber           string
	BoosterVersion         string
}

// DefaultColumnMapping matches the published spacex_launch_dash.csv header.
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		LaunchSite:             "Launch Site",
		PayloadMass:            "Payload Mass (kg)",
		Class:                  "class",
		BoosterVersionCategory: "Booster Version Category",
		FlightNumber:           "Flight Number",
		BoosterVersion:         "Booster Version",
	}
}

func (m ColumnMapping) required() []string {
	return []string{m.LaunchSite, m.PayloadMass, m.Class, m.BoosterVersionCategory}
}

// LaunchLoader reads launch records from a CSV or XLSX file.
type LaunchLoader struct {
	reader  *DataReader
	mapping ColumnMapping
	path    string
}

// NewLaunchLoader creates a loader for path using mapping.
func NewLaunchLoader(path string, mapping ColumnMapping) *LaunchLoader {
	return &LaunchLoader{reader: NewDataReader(path), mapping: mapping, path: path}
}

// Describe returns the file path.
func (l *LaunchLoader) Describe() string { return l.path }

// Load reads the file and converts every row.
func (l *LaunchLoader) Load(ctx context.Context) ([]launch.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	table, err := l.reader.ReadData()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read launch file %s", l.path)
	}
	return RecordsFromTable(table, l.mapping)
}

// RecordsFromTable converts table rows to launch records. Row numbers in
// errors are source file lines, so the header is row 1.
func RecordsFromTable(table *Table, m ColumnMapping) ([]launch.Record, error) {
	for _, col := range m.required() {
		if !table.HasColumn(col) {
			return nil, errors.DatasetInvalid(fmt.Sprintf("missing required column %q", col))
		}
	}
	hasFlight := m.FlightNumber != "" && table.HasColumn(m.FlightNumber)
	hasBooster := m.BoosterVersion != "" && table.HasColumn(m.BoosterVersion)

	records := make([]launch.Record, 0, len(table.Rows))
	for i, row := range table.Rows {
		rowNum := table.Line(i)

		payload, err := parsePayload(row[m.PayloadMass])
		if err != nil {
			return nil, cellError(rowNum, m.PayloadMass, err)
		}
		outcome, err := launch.ParseOutcome(row[m.Class])
		if err != nil {
			return nil, cellError(rowNum, m.Class, err)
		}
		site := row[m.LaunchSite]
		if site == "" {
			return nil, cellError(rowNum, m.LaunchSite, fmt.Errorf("launch site is empty"))
		}

		rec := launch.Record{
			LaunchSite:             site,
			PayloadMassKg:          payload,
			Outcome:                outcome,
			BoosterVersionCategory: row[m.BoosterVersionCategory],
		}
		if hasFlight && row[m.FlightNumber] != "" {
			n, err := parseFlightNumber(row[m.FlightNumber])
			if err != nil {
				return nil, cellError(rowNum, m.FlightNumber, err)
			}
			rec.FlightNumber = n
		}
		if hasBooster {
			rec.BoosterVersion = row[m.BoosterVersion]
		}
		if err := rec.Validate(); err != nil {
			return nil, cellError(rowNum, m.PayloadMass, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, errors.DatasetInvalid("launch file has no data rows")
	}
	return records, nil
}

func parsePayload(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("payload mass is empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("payload mass %q is not a number", s)
	}
	return v, nil
}

func parseFlightNumber(s string) (int, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v != math.Trunc(v) {
		return 0, fmt.Errorf("flight number %q is not an integer", s)
	}
	return int(v), nil
}

func cellError(row int, column string, err error) error {
	return errors.WithCode(errors.CodeDatasetInvalid, fmt.Errorf("row %d, column %q: %w", row, column, err))
}
