package dashboard

import (
	"testing"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
	"launchdash/internal/testkit"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_Scenario(t *testing.T) {
	ds := testkit.MustDataset(testkit.ScenarioRecords())

	tests := []struct {
		name string
		site launch.SiteFilter
		want chart.Description
	}{
		{
			name: "all sites counts successes per site",
			site: launch.AllSites,
			want: chart.Description{
				Kind:  chart.KindPie,
				Title: "Successful Launches from Each Site",
				Slices: []chart.Slice{
					{Label: "CCAFS LC-40", Value: 1},
					{Label: "KSC LC-39A", Value: 1},
				},
			},
		},
		{
			name: "single site splits by outcome",
			site: "CCAFS LC-40",
			want: chart.Description{
				Kind:  chart.KindPie,
				Title: "Percent Successful Launches from CCAFS LC-40",
				Slices: []chart.Slice{
					{Label: "Success", Value: 1},
					{Label: "Epic Fail", Value: 1},
				},
				ColorMap: map[string]string{"Success": "green", "Epic Fail": "red"},
			},
		},
		{
			name: "site with only successes omits failure slice",
			site: "KSC LC-39A",
			want: chart.Description{
				Kind:     chart.KindPie,
				Title:    "Percent Successful Launches from KSC LC-39A",
				Slices:   []chart.Slice{{Label: "Success", Value: 1}},
				ColorMap: map[string]string{"Success": "green", "Epic Fail": "red"},
			},
		},
		{
			name: "unknown site is empty",
			site: "Boca Chica",
			want: chart.Description{
				Kind:  chart.KindPie,
				Title: "Percent Successful Launches from Boca Chica",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(ds, tt.site)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Aggregate(%q) mismatch (-want +got):\n%s", tt.site, diff)
			}
		})
	}
}

func TestAggregate_AllSitesSumsToSuccessCount(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := testkit.DefaultLaunchConfig()
		cfg.Seed = seed
		ds := testkit.MustDataset(testkit.NewLaunchGenerator(cfg).Generate())

		successes := 0
		ds.Each(func(r launch.Record) {
			if r.Outcome.IsSuccess() {
				successes++
			}
		})

		got := Aggregate(ds, launch.AllSites)
		assert.Equal(t, float64(successes), got.Total(), "seed %d", seed)
		for _, s := range got.Slices {
			assert.Positive(t, s.Value, "seed %d: slice %s", seed, s.Label)
		}
	}
}

func TestAggregate_SiteSumsToSiteCount(t *testing.T) {
	ds := testkit.MustDataset(testkit.NewLaunchGenerator(testkit.DefaultLaunchConfig()).Generate())

	for _, site := range ds.Sites() {
		count := 0
		ds.Each(func(r launch.Record) {
			if r.LaunchSite == site {
				count++
			}
		})

		got := Aggregate(ds, launch.SiteFilter(site))
		assert.Equal(t, float64(count), got.Total(), "site %s", site)
		for label := range got.SliceValues() {
			assert.Contains(t, []string{launch.LabelSuccess, launch.LabelFailure}, label)
		}
	}
}

func TestAggregate_DemoData(t *testing.T) {
	ds := testkit.MustDataset(testkit.DemoRecords())

	all := Aggregate(ds, launch.AllSites).SliceValues()
	assert.Equal(t, map[string]float64{
		testkit.SiteCCAFSLC40:  9,
		testkit.SiteVAFBSLC4E:  3,
		testkit.SiteKSCLC39A:   10,
		testkit.SiteCCAFSSLC40: 5,
	}, all)

	ksc := Aggregate(ds, testkit.SiteKSCLC39A).SliceValues()
	assert.Equal(t, map[string]float64{"Success": 10, "Epic Fail": 3}, ksc)
}

func TestAggregate_DoesNotMutateDataset(t *testing.T) {
	ds := testkit.MustDataset(testkit.ScenarioRecords())
	before := ds.Records()

	_ = Aggregate(ds, launch.AllSites)
	_ = Aggregate(ds, "CCAFS LC-40")

	assert.Equal(t, before, ds.Records())
}

func TestAggregate_ColorMapIsPerCall(t *testing.T) {
	ds := testkit.MustDataset(testkit.ScenarioRecords())

	first := Aggregate(ds, "CCAFS LC-40")
	first.ColorMap["Success"] = "blue"

	second := Aggregate(ds, "CCAFS LC-40")
	assert.Equal(t, "green", second.ColorMap["Success"])
	assert.Equal(t, "green", DefaultOutcomeColors["Success"])
}
