package dashboard

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"launchdash/domain/chart"
	"launchdash/domain/launch"
	"launchdash/internal/errors"
)

// Component IDs shared with the page.
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieChartID      = "success-pie-chart"
	ScatterChartID  = "success-payload-scatter-chart"
)

// ComponentRef names one property of one page component.
type ComponentRef struct {
	ID       string `json:"id"`
	Property string `json:"property"`
}

func (c ComponentRef) String() string { return c.ID + "." + c.Property }

// Inputs carries the current value of every input component, keyed by ID.
type Inputs map[string]json.RawMessage

// HandlerFunc computes a chart from the current control values.
type HandlerFunc func(in Inputs) (chart.Description, error)

// Callback binds a chart output to the controls it depends on.
type Callback struct {
	Output ComponentRef
	Inputs []ComponentRef
	Handle HandlerFunc
}

// Registry maps an output component ID to the callback that fills it.
// It is populated before serving and read-only afterwards.
type Registry struct {
	callbacks map[string]Callback
	bounds    launch.PayloadRange
}

// NewEmptyRegistry returns a registry with no callbacks. bounds is used when
// a request omits the slider value.
func NewEmptyRegistry(bounds launch.PayloadRange) *Registry {
	return &Registry{callbacks: make(map[string]Callback), bounds: bounds}
}

// Register adds a callback. Outputs must be unique and every callback needs at least one input.
func (r *Registry) Register(cb Callback) error {
	if cb.Output.ID == "" {
		return errors.InvalidInput("callback output ID is required")
	}
	if len(cb.Inputs) == 0 {
		return errors.InvalidInput(fmt.Sprintf("callback %s has no inputs", cb.Output))
	}
	if cb.Handle == nil {
		return errors.InvalidInput(fmt.Sprintf("callback %s has no handler", cb.Output))
	}
	if _, exists := r.callbacks[cb.Output.ID]; exists {
		return errors.InvalidInput(fmt.Sprintf("callback for %s already registered", cb.Output.ID))
	}
	r.callbacks[cb.Output.ID] = cb
	return nil
}

// Lookup returns the callback for an output component.
func (r *Registry) Lookup(outputID string) (Callback, bool) {
	cb, ok := r.callbacks[outputID]
	return cb, ok
}

// Callbacks returns every registered callback ordered by output ID.
func (r *Registry) Callbacks() []Callback {
	out := make([]Callback, 0, len(r.callbacks))
	for _, cb := range r.callbacks {
		out = append(out, cb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Output.ID < out[j].Output.ID })
	return out
}

// Outputs returns the registered output IDs, sorted.
func (r *Registry) Outputs() []string {
	cbs := r.Callbacks()
	out := make([]string, len(cbs))
	for i, cb := range cbs {
		out[i] = cb.Output.ID
	}
	return out
}

// Dispatch runs the callback registered for outputID.
func (r *Registry) Dispatch(outputID string, in Inputs) (chart.Description, error) {
	cb, ok := r.Lookup(outputID)
	if !ok {
		return chart.Description{}, errors.NotFound("callback " + outputID)
	}
	if in == nil {
		in = Inputs{}
	}
	return cb.Handle(in)
}

// Site decodes a dropdown value. Only an absent value means ALL; a cleared
// dropdown (null or "") selects no site and yields empty charts.
func (in Inputs) Site(id string) (launch.SiteFilter, error) {
	raw, ok := in[id]
	if !ok {
		return launch.AllSites, nil
	}
	if isNull(raw) {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.InvalidInput(fmt.Sprintf("%s must be a string: %v", id, err))
	}
	return launch.SiteFilter(s), nil
}

// Range decodes a [low, high] slider value, falling back to def when absent.
func (in Inputs) Range(id string, def launch.PayloadRange) (launch.PayloadRange, error) {
	raw, ok := in[id]
	if !ok || isNull(raw) {
		return def, nil
	}
	var pair []float64
	if err := json.Unmarshal(raw, &pair); err != nil {
		return launch.PayloadRange{}, errors.InvalidInput(fmt.Sprintf("%s must be [low, high]: %v", id, err))
	}
	if len(pair) != 2 {
		return launch.PayloadRange{}, errors.InvalidInput(fmt.Sprintf("%s must have exactly two values, got %d", id, len(pair)))
	}
	return launch.NewPayloadRange(pair[0], pair[1]), nil
}

// SetSite stores a dropdown value.
func (in Inputs) SetSite(id string, site launch.SiteFilter) Inputs {
	raw, _ := json.Marshal(string(site))
	in[id] = raw
	return in
}

// SetRange stores a slider value.
func (in Inputs) SetRange(id string, r launch.PayloadRange) Inputs {
	raw, _ := json.Marshal([]float64{r.Low, r.High})
	in[id] = raw
	return in
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}
