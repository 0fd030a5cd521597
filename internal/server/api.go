package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"cookbook/internal/cookbook"
	"cookbook/internal/names"
	"cookbook/internal/telemetry"
)

// App holds the in-memory state for the server.
// This makes it obvious what the handlers depend on.
type App struct {
	Cookbook  *cookbook.MemoryRepo
	Summaries *cookbook.Service
	Telemetry *telemetry.MemoryRepository

	BootNow time.Time
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func (app *App) record(t telemetry.EventType, metadata telemetry.EventMetadata) {
	if app.Telemetry == nil {
		return
	}
	_ = app.Telemetry.RecordEvent(t, metadata)
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	// Normalize a raw entry name
	Handle(mux, rr, "POST /api/names/normalize", "Normalize a raw entry name", `{"input":"-burger-_bun"}`, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Input string `json:"input"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		name, err := names.Normalize(body.Input)
		if err != nil {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		app.record(telemetry.EventNameNormalized, telemetry.EventMetadata{"name": name})
		writeJSON(w, http.StatusOK, map[string]any{"name": name})
	})

	// Add an ingredient or recipe
	Handle(mux, rr, "POST /api/cookbook", "Add an ingredient or recipe", `{"type":"ingredient","name":"Flour","cookTime":2}`, func(w http.ResponseWriter, r *http.Request) {
		var c cookbook.Candidate
		if err := decodeJSON(r, &c); err != nil {
			writeErr(w, http.StatusBadRequest, "bad json")
			return
		}
		e, err := app.Cookbook.Insert(r.Context(), c)
		if err != nil {
			app.record(telemetry.EventInsertRejected, telemetry.EventMetadata{"name": c.Name, "error": err.Error()})
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		app.record(telemetry.EventEntityInserted, telemetry.EventMetadata{"name": e.Name, "kind": string(e.Kind)})
		w.WriteHeader(http.StatusOK)
	})

	// List cookbook entries
	Handle(mux, rr, "GET /api/cookbook", "List cookbook entries in insertion order", "", func(w http.ResponseWriter, r *http.Request) {
		items, err := app.Cookbook.List(r.Context())
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, items)
	})

	// Fetch one entry
	Handle(mux, rr, "GET /api/cookbook/{name}", "Fetch one cookbook entry", "", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		e, ok, err := app.Cookbook.Get(r.Context(), name)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !ok {
			writeErr(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, e)
	})

	// Resolve a recipe summary
	Handle(mux, rr, "GET /api/cookbook/summary/{name}", "Flatten a recipe into cook time and base ingredients", "", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		sum, err := app.Summaries.Summarize(r.Context(), name)
		if err != nil {
			app.record(telemetry.EventSummaryFailed, telemetry.EventMetadata{"name": name, "cause": summaryCause(err)})
			writeErr(w, summaryStatus(err), err.Error())
			return
		}
		app.record(telemetry.EventSummaryComputed, telemetry.EventMetadata{"name": name, "cookTime": sum.CookTime})
		writeJSON(w, http.StatusOK, sum)
	})

	// Telemetry events
	Handle(mux, rr, "GET /api/telemetry/events", "List telemetry events (since=RFC3339, type=a,b)", "", func(w http.ResponseWriter, r *http.Request) {
		var since time.Time
		if raw := r.URL.Query().Get("since"); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				writeErr(w, http.StatusBadRequest, "since must be RFC3339")
				return
			}
			since = t
		}
		var types []telemetry.EventType
		if raw := r.URL.Query().Get("type"); raw != "" {
			for _, t := range strings.Split(raw, ",") {
				types = append(types, telemetry.EventType(t))
			}
		}
		events, err := app.Telemetry.GetEvents(since, types)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, events)
	})

	// Telemetry stats
	Handle(mux, rr, "GET /api/telemetry/stats", "Aggregate usage stats from telemetry events", "", func(w http.ResponseWriter, r *http.Request) {
		events, err := app.Telemetry.GetEvents(time.Time{}, nil)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		stats, err := telemetry.CalculateStats(events, app.BootNow)
		if err != nil {
			writeErr(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})

	// Route docs
	Handle(mux, rr, "GET /api/routes", "List registered API routes", "", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rr.List())
	})
}

// summaryStatus maps resolution failures onto the HTTP binding: unknown or
// non-recipe names are 404, unresolvable graphs are 422, anything else is
// a server fault.
func summaryStatus(err error) int {
	switch {
	case errors.Is(err, cookbook.ErrNotRecipe):
		return http.StatusNotFound
	case errors.Is(err, cookbook.ErrMissingRequirement), errors.Is(err, cookbook.ErrCyclicRequirement):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func summaryCause(err error) string {
	switch {
	case errors.Is(err, cookbook.ErrNotRecipe):
		return "not_recipe"
	case errors.Is(err, cookbook.ErrMissingRequirement):
		return "missing_requirement"
	case errors.Is(err, cookbook.ErrCyclicRequirement):
		return "cycle"
	default:
		return "error"
	}
}
