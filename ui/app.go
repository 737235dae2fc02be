package ui

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"launchdash/domain/chart"
	"launchdash/domain/core"
	"launchdash/domain/launch"
	"launchdash/internal"
	"launchdash/internal/config"
	"launchdash/internal/dashboard"
	"launchdash/internal/errors"
	"launchdash/internal/profiling"
)

const maxCallbackBody = 1 << 20

// App serves the dashboard JSON API: layout, dataset info and callbacks.
type App struct {
	router   *chi.Mux
	dataset  *launch.Dataset
	registry *dashboard.Registry
	layout   dashboard.Layout
	info     DatasetInfo
	log      *internal.Logger
}

// AppConfig holds what the API needs to answer requests
type AppConfig struct {
	Dataset   *launch.Dataset
	Registry  *dashboard.Registry
	Dashboard config.DashboardConfig
	// RequestLogging enables chi's request logger. The gin server has its own.
	RequestLogging bool
}

// DatasetInfo is the payload of GET /api/dataset.
type DatasetInfo struct {
	ID       core.DatasetID            `json:"id"`
	Source   string                    `json:"source"`
	LoadedAt core.Timestamp            `json:"loaded_at"`
	Records  int                       `json:"records"`
	Sites    []profiling.SiteSummary   `json:"sites"`
	Bounds   launch.PayloadRange       `json:"payload_bounds"`
	Payload  *profiling.PayloadSummary `json:"payload_summary,omitempty"`
}

type callbackRequest struct {
	Inputs dashboard.Inputs `json:"inputs"`
}

type callbackInfo struct {
	Output dashboard.ComponentRef   `json:"output"`
	Inputs []dashboard.ComponentRef `json:"inputs"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// NewApp creates the API application
func NewApp(cfg AppConfig) (*App, error) {
	if cfg.Dataset == nil {
		return nil, errors.ConfigInvalid("dataset is required")
	}
	if cfg.Registry == nil {
		return nil, errors.ConfigInvalid("callback registry is required")
	}

	app := &App{
		router:   chi.NewRouter(),
		dataset:  cfg.Dataset,
		registry: cfg.Registry,
		layout:   dashboard.BuildLayout(cfg.Dataset, cfg.Dashboard),
		log:      internal.DefaultLogger.WithComponent("API"),
	}
	app.info = app.buildInfo()

	app.setupMiddleware(cfg.RequestLogging)
	app.setupRoutes()

	return app, nil
}

func (a *App) buildInfo() DatasetInfo {
	info := DatasetInfo{
		ID:       a.dataset.ID(),
		Source:   a.dataset.Source(),
		LoadedAt: a.dataset.LoadedAt(),
		Records:  a.dataset.Len(),
		Sites:    profiling.SummarizeSites(a.dataset),
		Bounds:   a.dataset.PayloadBounds(),
	}
	if summary, err := profiling.SummarizePayloads(a.dataset); err == nil {
		info.Payload = &summary
	} else {
		a.log.Warn("payload summary unavailable: %v", err)
	}
	return info
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware(requestLogging bool) {
	a.router.Use(middleware.RequestID)
	if requestLogging {
		a.router.Use(middleware.Logger)
	}
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the API routes
func (a *App) setupRoutes() {
	a.router.Route("/api", func(r chi.Router) {
		r.Get("/layout", a.handleLayout)
		r.Get("/dataset", a.handleDataset)
		r.Get("/callbacks", a.handleListCallbacks)
		r.Post("/callbacks/{output}", a.handleCallback)
		r.Get("/charts/pie", a.handlePieChart)
		r.Get("/charts/scatter", a.handleScatterChart)
	})
}

// ServeHTTP makes App an http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Layout returns the control layout served at /api/layout.
func (a *App) Layout() dashboard.Layout { return a.layout }

// Info returns the dataset panel served at /api/dataset.
func (a *App) Info() DatasetInfo { return a.info }

func (a *App) handleLayout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.layout)
}

func (a *App) handleDataset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.info)
}

func (a *App) handleListCallbacks(w http.ResponseWriter, r *http.Request) {
	cbs := a.registry.Callbacks()
	out := make([]callbackInfo, len(cbs))
	for i, cb := range cbs {
		out[i] = callbackInfo{Output: cb.Output, Inputs: cb.Inputs}
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *App) handleCallback(w http.ResponseWriter, r *http.Request) {
	output := chi.URLParam(r, "output")

	var req callbackRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCallbackBody))
	if err := dec.Decode(&req); err != nil {
		a.writeError(w, errors.InvalidInput("request body must be {\"inputs\": {...}}: "+err.Error()))
		return
	}

	a.dispatch(w, output, req.Inputs)
}

func (a *App) handlePieChart(w http.ResponseWriter, r *http.Request) {
	in := dashboard.Inputs{}
	if site := r.URL.Query().Get("site"); site != "" {
		in.SetSite(dashboard.SiteDropdownID, launch.SiteFilter(site))
	}
	a.dispatch(w, dashboard.PieChartID, in)
}

func (a *App) handleScatterChart(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := dashboard.Inputs{}
	if site := q.Get("site"); site != "" {
		in.SetSite(dashboard.SiteDropdownID, launch.SiteFilter(site))
	}

	bounds := a.dataset.PayloadBounds()
	low, err := parseBound(q.Get("low"), bounds.Low)
	if err != nil {
		a.writeError(w, errors.InvalidInput("low: "+err.Error()))
		return
	}
	high, err := parseBound(q.Get("high"), bounds.High)
	if err != nil {
		a.writeError(w, errors.InvalidInput("high: "+err.Error()))
		return
	}
	in.SetRange(dashboard.PayloadSliderID, launch.NewPayloadRange(low, high))

	a.dispatch(w, dashboard.ScatterChartID, in)
}

func (a *App) dispatch(w http.ResponseWriter, output string, in dashboard.Inputs) {
	desc, err := a.registry.Dispatch(output, in)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.log.Trace("%s -> %d slices, %d points", output, len(desc.Slices), len(desc.Points))
	writeChart(w, desc)
}

func parseBound(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", raw)
	}
	return v, nil
}

func writeChart(w http.ResponseWriter, desc chart.Description) {
	writeJSON(w, http.StatusOK, desc)
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		a.log.Error("request failed: %v", err)
	} else {
		a.log.Debug("request rejected: %v", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: errors.GetCode(err)})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		internal.DefaultLogger.Error("failed to encode response: %v", err)
	}
}
