package dashboard

import (
	"launchdash/domain/chart"
	"launchdash/domain/launch"
)

// RegistryOptions adjusts the stock callbacks.
type RegistryOptions struct {
	// Colors overrides entries of the outcome colour map.
	Colors map[string]string
}

// NewRegistry registers the two dashboard charts against ds.
func NewRegistry(ds *launch.Dataset, opts RegistryOptions) (*Registry, error) {
	reg := NewEmptyRegistry(ds.PayloadBounds())
	site := ComponentRef{ID: SiteDropdownID, Property: "value"}
	payload := ComponentRef{ID: PayloadSliderID, Property: "value"}

	pie := Callback{
		Output: ComponentRef{ID: PieChartID, Property: "figure"},
		Inputs: []ComponentRef{site},
		Handle: func(in Inputs) (chart.Description, error) {
			s, err := in.Site(SiteDropdownID)
			if err != nil {
				return chart.Description{}, err
			}
			desc := Aggregate(ds, s)
			applyColors(&desc, opts.Colors)
			return desc, nil
		},
	}

	scatter := Callback{
		Output: ComponentRef{ID: ScatterChartID, Property: "figure"},
		Inputs: []ComponentRef{site, payload},
		Handle: func(in Inputs) (chart.Description, error) {
			s, err := in.Site(SiteDropdownID)
			if err != nil {
				return chart.Description{}, err
			}
			r, err := in.Range(PayloadSliderID, reg.bounds)
			if err != nil {
				return chart.Description{}, err
			}
			return FilterForScatter(ds, s, r), nil
		},
	}

	for _, cb := range []Callback{pie, scatter} {
		if err := reg.Register(cb); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func applyColors(desc *chart.Description, overrides map[string]string) {
	if desc.ColorMap == nil {
		return
	}
	for label, color := range overrides {
		if _, ok := desc.ColorMap[label]; ok {
			desc.ColorMap[label] = color
		}
	}
}
