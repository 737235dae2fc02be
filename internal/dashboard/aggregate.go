// Package dashboard turns the launch dataset into chart descriptions and
// wires those transformations to the dashboard controls.
package dashboard

import (
	"fmt"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
)

// Chart titles and captions.
const (
	TitleAllSites        = "Successful Launches from Each Site"
	titleSiteFormat      = "Percent Successful Launches from %s"
	TitlePayloadScatter  = "Successes and Failures vs Payload"
	LabelPayloadAxis     = "Payload Mass (kg)"
	LabelOutcomeAxis     = "class"
	LabelBoosterCategory = "Booster Version Category"
)

// DefaultOutcomeColors colours the per-site pie.
var DefaultOutcomeColors = map[string]string{
	launch.LabelSuccess: "green",
	launch.LabelFailure: "red",
}

// Aggregate builds the success pie chart for a site filter.
//
// For ALL it counts successful launches per site. For a single site it
// counts that site's launches by outcome. A site with no records yields a
// description with no slices.
func Aggregate(ds *launch.Dataset, site launch.SiteFilter) chart.Description {
	if site.IsAll() {
		return successesBySite(ds)
	}
	return outcomesForSite(ds, site)
}

func successesBySite(ds *launch.Dataset) chart.Description {
	desc := chart.NewPie(TitleAllSites)

	counts := make(map[string]int)
	var order []string
	ds.Each(func(r launch.Record) {
		if !r.Outcome.IsSuccess() {
			return
		}
		if _, ok := counts[r.LaunchSite]; !ok {
			order = append(order, r.LaunchSite)
		}
		counts[r.LaunchSite]++
	})

	for _, site := range order {
		desc.AddSlice(site, float64(counts[site]))
	}
	return desc
}

func outcomesForSite(ds *launch.Dataset, site launch.SiteFilter) chart.Description {
	desc := chart.NewPie(fmt.Sprintf(titleSiteFormat, site))

	var successes, failures int
	ds.Each(func(r launch.Record) {
		if r.LaunchSite != string(site) {
			return
		}
		if r.Outcome.IsSuccess() {
			successes++
		} else {
			failures++
		}
	})

	if successes > 0 {
		desc.AddSlice(launch.LabelSuccess, float64(successes))
	}
	if failures > 0 {
		desc.AddSlice(launch.LabelFailure, float64(failures))
	}
	if !desc.IsEmpty() {
		desc.ColorMap = copyColors(DefaultOutcomeColors)
	}
	return desc
}

func copyColors(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
