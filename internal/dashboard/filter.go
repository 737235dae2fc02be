package dashboard

import (
	"launchdash/domain/chart"
	"launchdash/domain/launch"
)

// FilterForScatter selects the launches inside the payload window at the
// chosen site and returns one point per launch, coloured by booster
// category. An inverted window selects nothing.
func FilterForScatter(ds *launch.Dataset, site launch.SiteFilter, payload launch.PayloadRange) chart.Description {
	desc := chart.NewScatter(TitlePayloadScatter)
	desc.XLabel = LabelPayloadAxis
	desc.YLabel = LabelOutcomeAxis
	desc.ColorBy = LabelBoosterCategory

	if payload.IsEmpty() {
		return desc
	}

	ds.Each(func(r launch.Record) {
		if !site.Matches(r.LaunchSite) || !payload.Contains(r.PayloadMassKg) {
			return
		}
		desc.AddPoint(r.PayloadMassKg, float64(r.Outcome), r.BoosterVersionCategory)
	})
	return desc
}
