/*
handlers.go - HTTP API handlers for the paydate engine

PURPOSE:
  Exposes the paydate engine and its holiday calendar via REST API. Handles
  HTTP request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  Paydates:
    GET    /api/paydates               Next paydates for a model and seed
           ?model=BIWEEKLY&seed=2014-05-12[&count=10][&today=...][&annual_salary=...]
    GET    /api/dates/{date}           Holiday/weekend classification
    GET    /api/models                 Supported models

  Holidays:
    GET    /api/holidays               List the calendar
    POST   /api/holidays               Add or rename a holiday
    POST   /api/holidays/defaults      Seed the built-in calendar
    DELETE /api/holidays/{id}          Remove a holiday

REQUEST FLOW:
  Each calculation snapshots the stored calendar into a fresh engine, so a
  holiday edit applies to the next request without a restart.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Invalid model, unparsable date, bad count or salary
  - 404: Unknown holiday
  - 500: Store failures, adjustment limit exceeded

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/warp/paydate-engine/paydate"
	"github.com/warp/paydate-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// HolidayStore is the calendar persistence the handlers need.
type HolidayStore interface {
	SaveHoliday(ctx context.Context, h paydate.Holiday) error
	SeedHolidays(ctx context.Context, holidays []paydate.Holiday) error
	DeleteHoliday(ctx context.Context, id string) error
	ListHolidays(ctx context.Context) ([]paydate.Holiday, error)
	HolidaySet(ctx context.Context) (paydate.HolidaySet, error)
}

// Limits bounds what a single request may ask for.
type Limits struct {
	DefaultCount int
	MaxCount     int
	AdjustLimit  int
}

// DefaultLimits mirrors the configuration defaults.
var DefaultLimits = Limits{DefaultCount: 10, MaxCount: 520, AdjustLimit: paydate.DefaultAdjustLimit}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  HolidayStore
	Limits Limits
	Logger zerolog.Logger

	// Now is the clock used when a request carries no today parameter.
	Now func() time.Time
}

// NewHandler creates a new handler with the given store.
func NewHandler(store HolidayStore, limits Limits, logger zerolog.Logger) *Handler {
	return &Handler{
		Store:  store,
		Limits: limits,
		Logger: logger,
		Now:    time.Now,
	}
}

// engineFor builds an engine over the current stored calendar.
func (h *Handler) engineFor(ctx context.Context, today paydate.Date) (*paydate.Engine, error) {
	holidays, err := h.Store.HolidaySet(ctx)
	if err != nil {
		return nil, err
	}
	return paydate.NewEngine(
		paydate.WithToday(today),
		paydate.WithHolidays(holidays),
		paydate.WithAdjustLimit(h.Limits.AdjustLimit),
		paydate.WithLogger(h.Logger),
	), nil
}

// todayFrom reads the optional today query parameter.
func (h *Handler) todayFrom(r *http.Request) (paydate.Date, error) {
	if s := r.URL.Query().Get("today"); s != "" {
		return paydate.ParseDate(s)
	}
	return paydate.TodayAt(h.Now()), nil
}

// =============================================================================
// PAYDATE HANDLERS
// =============================================================================

// GetPaydates returns the next paydates for a model and seed.
// GET /api/paydates
func (h *Handler) GetPaydates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	model, err := paydate.ParseModel(q.Get("model"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid model (use MONTHLY, BIWEEKLY or WEEKLY)", err)
		return
	}

	seed, err := paydate.ParseDate(q.Get("seed"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid seed format (use YYYY-MM-DD)", err)
		return
	}

	today, err := h.todayFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today format (use YYYY-MM-DD)", err)
		return
	}

	count := h.Limits.DefaultCount
	if s := q.Get("count"); s != "" {
		count, err = strconv.Atoi(s)
		if err != nil || count < 0 || count > h.Limits.MaxCount {
			writeError(w, http.StatusBadRequest, "Invalid count", paydate.ErrInvalidCount)
			return
		}
	}

	var annual *decimal.Decimal
	if s := q.Get("annual_salary"); s != "" {
		v, err := decimal.NewFromString(s)
		if err != nil || v.IsNegative() {
			writeError(w, http.StatusBadRequest, "Invalid annual_salary", err)
			return
		}
		annual = &v
	}

	engine, err := h.engineFor(r.Context(), today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}

	schedule, err := engine.NextSchedule(model, seed, count)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	resp := PaydatesResponse{
		Model:    model.String(),
		Seed:     seed.String(),
		Today:    today.String(),
		Paydates: make([]PaydateDTO, len(schedule)),
	}
	for i, p := range schedule {
		dto := PaydateDTO{
			Date:     p.Date.String(),
			Nominal:  p.Nominal.String(),
			Adjusted: p.Adjusted(),
		}
		if annual != nil {
			dto.Gross = paydate.GrossPerPeriod(*annual, model).StringFixed(2)
		}
		resp.Paydates[i] = dto
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetDate classifies a single date and shows where it would adjust to.
// GET /api/dates/{date}
func (h *Handler) GetDate(w http.ResponseWriter, r *http.Request) {
	date, err := paydate.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	today, err := h.todayFrom(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today format (use YYYY-MM-DD)", err)
		return
	}

	engine, err := h.engineFor(r.Context(), today)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load holidays", err)
		return
	}

	adjusted, err := engine.Adjust(date)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DateDTO{
		Date:     date.String(),
		Holiday:  engine.IsHoliday(date),
		Weekend:  engine.IsWeekend(date),
		Valid:    engine.IsValidPaydate(date),
		Adjusted: adjusted.String(),
	})
}

// ListModels returns the supported paydate models.
// GET /api/models
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	models := paydate.Models()
	dtos := make([]ModelDTO, len(models))
	for i, m := range models {
		dtos[i] = ModelDTO{Model: m.String(), PeriodsPerYear: m.PeriodsPerYear()}
	}
	writeJSON(w, http.StatusOK, map[string]any{"models": dtos})
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns all holidays.
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Store.ListHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get holidays", err)
		return
	}

	dtos := make([]HolidayDTO, 0, len(holidays))
	for _, hol := range holidays {
		dtos = append(dtos, toHolidayDTO(hol))
	}

	writeJSON(w, http.StatusOK, map[string]any{"holidays": dtos})
}

// CreateHoliday adds a holiday, or renames the one already on that date.
// POST /api/holidays
func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Date == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Date and name are required", nil)
		return
	}

	date, err := paydate.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	holiday := paydate.Holiday{ID: date.String(), Date: date, Name: req.Name}
	if err := h.Store.SaveHoliday(r.Context(), holiday); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create holiday", err)
		return
	}

	h.Logger.Info().Stringer("date", date).Str("name", req.Name).Msg("holiday saved")
	writeJSON(w, http.StatusCreated, toHolidayDTO(holiday))
}

// AddDefaultHolidays seeds the built-in calendar.
// POST /api/holidays/defaults
func (h *Handler) AddDefaultHolidays(w http.ResponseWriter, r *http.Request) {
	defaults := paydate.DefaultHolidays()
	if err := h.Store.SeedHolidays(r.Context(), defaults); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to add default holidays", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "seeded",
		"count":  len(defaults),
	})
}

// DeleteHoliday deletes a holiday.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Store.DeleteHoliday(r.Context(), id)
	switch {
	case errors.Is(err, sqlite.ErrHolidayNotFound):
		writeError(w, http.StatusNotFound, "Holiday not found", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}

	h.Logger.Info().Str("id", id).Msg("holiday deleted")
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// HELPERS
// =============================================================================

func toHolidayDTO(h paydate.Holiday) HolidayDTO {
	return HolidayDTO{ID: h.ID, Date: h.Date.String(), Name: h.Name}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeEngineError maps engine errors to a status.
func writeEngineError(w http.ResponseWriter, err error) {
	if paydate.IsClientError(err) {
		writeError(w, http.StatusBadRequest, "Invalid paydate request", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Paydate calculation failed", err)
}
