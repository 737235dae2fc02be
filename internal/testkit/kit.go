package testkit

import (
	"context"

	"launchdash/domain/launch"
)

// Launch site identifiers found in the public SpaceX dashboard dataset.
const (
	SiteCCAFSLC40  = "CCAFS LC-40"
	SiteVAFBSLC4E  = "VAFB SLC-4E"
	SiteKSCLC39A   = "KSC LC-39A"
	SiteCCAFSSLC40 = "CCAFS SLC-40"
)

// Sites lists the demo launch sites in dropdown order.
var Sites = []string{SiteCCAFSLC40, SiteVAFBSLC4E, SiteKSCLC39A, SiteCCAFSSLC40}

// ScenarioRecords is the three-launch fixture used across package tests.
func ScenarioRecords() []launch.Record {
	return []launch.Record{
		{FlightNumber: 1, LaunchSite: SiteCCAFSLC40, PayloadMassKg: 500, Outcome: launch.OutcomeSuccess, BoosterVersion: "F9 v1.0 B0003", BoosterVersionCategory: "v1.0"},
		{FlightNumber: 2, LaunchSite: SiteCCAFSLC40, PayloadMassKg: 600, Outcome: launch.OutcomeFailure, BoosterVersion: "F9 v1.0 B0004", BoosterVersionCategory: "v1.0"},
		{FlightNumber: 3, LaunchSite: SiteKSCLC39A, PayloadMassKg: 5000, Outcome: launch.OutcomeSuccess, BoosterVersion: "F9 v1.1 B1011", BoosterVersionCategory: "v1.1"},
	}
}

// DemoRecords is a representative launch history across the four sites,
// used when no data file is configured.
func DemoRecords() []launch.Record {
	rows := []struct {
		site    string
		payload float64
		class   launch.Outcome
		booster string
		cat     string
	}{
		{SiteCCAFSLC40, 0, 0, "F9 v1.0  B0003", "v1.0"},
		{SiteCCAFSLC40, 0, 0, "F9 v1.0  B0004", "v1.0"},
		{SiteCCAFSLC40, 525, 0, "F9 v1.0  B0005", "v1.0"},
		{SiteCCAFSLC40, 500, 0, "F9 v1.0  B0006", "v1.0"},
		{SiteCCAFSLC40, 677, 0, "F9 v1.0  B0007", "v1.0"},
		{SiteVAFBSLC4E, 500, 0, "F9 v1.1  B1003", "v1.1"},
		{SiteCCAFSLC40, 3170, 0, "F9 v1.1", "v1.1"},
		{SiteCCAFSLC40, 3325, 0, "F9 v1.1", "v1.1"},
		{SiteCCAFSLC40, 2296, 1, "F9 v1.1", "v1.1"},
		{SiteCCAFSLC40, 1316, 1, "F9 v1.1", "v1.1"},
		{SiteCCAFSLC40, 4535, 0, "F9 v1.1", "v1.1"},
		{SiteCCAFSLC40, 4428, 0, "F9 v1.1 B1011", "v1.1"},
		{SiteCCAFSLC40, 2216, 0, "F9 v1.1 B1010", "v1.1"},
		{SiteCCAFSLC40, 2395, 0, "F9 v1.1 B1012", "v1.1"},
		{SiteCCAFSLC40, 570, 1, "F9 v1.1 B1013", "v1.1"},
		{SiteCCAFSLC40, 4159, 0, "F9 v1.1 B1014", "v1.1"},
		{SiteCCAFSLC40, 1898, 0, "F9 v1.1 B1015", "v1.1"},
		{SiteCCAFSLC40, 4707, 0, "F9 v1.1 B1016", "v1.1"},
		{SiteCCAFSLC40, 2477, 0, "F9 v1.1 B1018", "v1.1"},
		{SiteCCAFSLC40, 2034, 1, "F9 FT B1019", "FT"},
		{SiteVAFBSLC4E, 553, 0, "F9 v1.1 B1017", "v1.1"},
		{SiteCCAFSLC40, 5271, 0, "F9 FT B1020", "FT"},
		{SiteCCAFSLC40, 3136, 1, "F9 FT B1021.1", "FT"},
		{SiteCCAFSLC40, 4696, 1, "F9 FT B1022", "FT"},
		{SiteCCAFSLC40, 3100, 1, "F9 FT B1023.1", "FT"},
		{SiteCCAFSLC40, 3600, 0, "F9 FT B1024", "FT"},
		{SiteCCAFSLC40, 2257, 1, "F9 FT B1025.1", "FT"},
		{SiteCCAFSLC40, 4600, 1, "F9 FT B1026", "FT"},
		{SiteVAFBSLC4E, 9600, 1, "F9 FT B1029.1", "FT"},
		{SiteKSCLC39A, 2490, 1, "F9 FT B1031.1", "FT"},
		{SiteKSCLC39A, 5600, 0, "F9 FT B1030", "FT"},
		{SiteKSCLC39A, 5300, 1, "F9 FT B1021.2", "FT"},
		{SiteKSCLC39A, 3696.65, 0, "F9 FT B1032.1", "FT"},
		{SiteKSCLC39A, 6070, 1, "F9 FT B1034", "FT"},
		{SiteKSCLC39A, 2708, 1, "F9 FT B1035.1", "FT"},
		{SiteKSCLC39A, 3669, 1, "F9 FT B1029.2", "FT"},
		{SiteVAFBSLC4E, 9600, 1, "F9 FT B1036.1", "FT"},
		{SiteKSCLC39A, 6761, 0, "F9 FT B1037", "FT"},
		{SiteKSCLC39A, 2910, 1, "F9 B4 B1039.1", "B4"},
		{SiteKSCLC39A, 475, 1, "F9 B4 B1040.1", "B4"},
		{SiteVAFBSLC4E, 9600, 1, "F9 B4 B1041.1", "B4"},
		{SiteKSCLC39A, 5200, 1, "F9 FT B1031.2", "FT"},
		{SiteKSCLC39A, 3500, 1, "F9 B4 B1042.1", "B4"},
		{SiteCCAFSSLC40, 2205, 1, "F9 FT B1035.2", "FT"},
		{SiteVAFBSLC4E, 9600, 0, "F9 B4 B1043.1", "B4"},
		{SiteCCAFSSLC40, 4230, 0, "F9 FT B1032.2", "FT"},
		{SiteCCAFSSLC40, 6092, 1, "F9 B4 B1044", "B4"},
		{SiteCCAFSSLC40, 2647, 0, "F9 B4 B1039.2", "B4"},
		{SiteCCAFSSLC40, 362, 1, "F9 B4 B1045.1", "B4"},
		{SiteKSCLC39A, 3600, 1, "F9 B5 B1046.1", "B5"},
		{SiteCCAFSSLC40, 5384, 1, "F9 B4 B1047", "B4"},
		{SiteCCAFSSLC40, 2697, 0, "F9 B4 B1048.1", "B4"},
		{SiteVAFBSLC4E, 9600, 0, "F9 B4 B1049", "B4"},
		{SiteCCAFSSLC40, 5800, 1, "F9 B5 B1046.2", "B5"},
		{SiteCCAFSSLC40, 7060, 0, "F9 B5 B1047.2", "B5"},
		{SiteVAFBSLC4E, 2800, 0, "F9 B5 B1048.2", "B5"},
	}

	records := make([]launch.Record, len(rows))
	for i, row := range rows {
		records[i] = launch.Record{
			FlightNumber:           i + 1,
			LaunchSite:             row.site,
			PayloadMassKg:          row.payload,
			Outcome:                row.class,
			BoosterVersion:         row.booster,
			BoosterVersionCategory: row.cat,
		}
	}
	return records
}

// StaticSource serves a fixed record slice as a LaunchSource.
type StaticSource struct {
	name    string
	records []launch.Record
}

// NewStaticSource wraps records under a display name.
func NewStaticSource(name string, records []launch.Record) *StaticSource {
	return &StaticSource{name: name, records: records}
}

// NewDemoSource serves DemoRecords.
func NewDemoSource() *StaticSource {
	return NewStaticSource("demo", DemoRecords())
}

// Load returns a copy of the records.
func (s *StaticSource) Load(ctx context.Context) ([]launch.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]launch.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Describe returns the source name.
func (s *StaticSource) Describe() string { return s.name }

// MustDataset builds a dataset and panics on failure. For tests only.
func MustDataset(records []launch.Record) *launch.Dataset {
	ds, err := launch.NewDataset("testkit", records)
	if err != nil {
		panic(err)
	}
	return ds
}
