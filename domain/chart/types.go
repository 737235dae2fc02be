package chart

// Kind identifies how a Description should be drawn.
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Slice is one category of a pie chart.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Point is one marker of a scatter chart.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Category string  `json:"category"`
}

// Description is a renderer-agnostic chart: categories or points plus the
// metadata needed to draw them. It lives for a single render.
type Description struct {
	Kind     Kind              `json:"kind"`
	Title    string            `json:"title"`
	Slices   []Slice           `json:"slices,omitempty"`
	Points   []Point           `json:"points,omitempty"`
	ColorMap map[string]string `json:"color_map,omitempty"`
	XLabel   string            `json:"x_label,omitempty"`
	YLabel   string            `json:"y_label,omitempty"`
	ColorBy  string            `json:"color_by,omitempty"`
}

// NewPie returns an empty pie description with the given title.
func NewPie(title string) Description {
	return Description{Kind: KindPie, Title: title}
}

// NewScatter returns an empty scatter description with the given title.
func NewScatter(title string) Description {
	return Description{Kind: KindScatter, Title: title}
}

// AddSlice appends a pie category.
func (d *Description) AddSlice(label string, value float64) {
	d.Slices = append(d.Slices, Slice{Label: label, Value: value})
}

// AddPoint appends a scatter marker.
func (d *Description) AddPoint(x, y float64, category string) {
	d.Points = append(d.Points, Point{X: x, Y: y, Category: category})
}

// IsEmpty reports whether there is nothing to draw.
func (d Description) IsEmpty() bool {
	return len(d.Slices) == 0 && len(d.Points) == 0
}

// Total sums the slice values.
func (d Description) Total() float64 {
	var total float64
	for _, s := range d.Slices {
		total += s.Value
	}
	return total
}

// SliceValues returns label -> value for the pie categories.
func (d Description) SliceValues() map[string]float64 {
	out := make(map[string]float64, len(d.Slices))
	for _, s := range d.Slices {
		out[s.Label] = s.Value
	}
	return out
}

// Categories returns the distinct point categories in first-seen order.
func (d Description) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range d.Points {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
