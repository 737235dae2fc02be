package dashboard

import (
	"launchdash/domain/launch"
	"launchdash/internal/config"
)

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown describes the site selector.
type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// Mark is a labelled slider tick.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider describes the payload selector.
type RangeSlider struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Min   float64    `json:"min"`
	Max   float64    `json:"max"`
	Step  float64    `json:"step"`
	Marks []Mark     `json:"marks"`
	Value [2]float64 `json:"value"`
}

// Layout is everything the page needs to draw its controls.
type Layout struct {
	Title    string      `json:"title"`
	Dropdown Dropdown    `json:"dropdown"`
	Slider   RangeSlider `json:"slider"`
	Graphs   []string    `json:"graphs"`
}

// BuildLayout derives the control layout from the dataset and page settings.
// Sites listed in cfg take precedence over the sites found in the data.
func BuildLayout(ds *launch.Dataset, cfg config.DashboardConfig) Layout {
	options := []Option{{Label: "All Sites", Value: string(launch.AllSites)}}
	if len(cfg.Sites) > 0 {
		for _, s := range cfg.Sites {
			label := s.Label
			if label == "" {
				label = s.Value
			}
			options = append(options, Option{Label: label, Value: s.Value})
		}
	} else {
		for _, site := range ds.Sites() {
			options = append(options, Option{Label: site, Value: site})
		}
	}

	marks := make([]Mark, 0, len(cfg.SliderMarks))
	for _, v := range cfg.SliderMarks {
		marks = append(marks, Mark{Value: v, Label: launch.FormatRangeValue(v)})
	}

	title := cfg.Title
	if title == "" {
		title = config.DefaultDashboardConfig().Title
	}
	step := cfg.SliderStep
	if step <= 0 {
		step = config.DefaultDashboardConfig().SliderStep
	}

	return Layout{
		Title: title,
		Dropdown: Dropdown{
			ID:          SiteDropdownID,
			Options:     options,
			Value:       string(launch.AllSites),
			Placeholder: "Select Launch Site",
			Searchable:  true,
		},
		Slider: RangeSlider{
			ID:    PayloadSliderID,
			Label: "Payload Mass Range (kg)",
			Min:   ds.MinPayload(),
			Max:   ds.MaxPayload(),
			Step:  step,
			Marks: marks,
			Value: [2]float64{ds.MinPayload(), ds.MaxPayload()},
		},
		Graphs: []string{PieChartID, ScatterChartID},
	}
}
