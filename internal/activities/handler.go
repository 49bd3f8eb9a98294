package activities

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// accepted date formats, in query params and request bodies
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type activityRequest struct {
	Owner       Owner   `json:"user_name"`
	Name        string  `json:"name"`
	KcalPerHour float64 `json:"kcal_per_hour"`
}

type logSessionRequest struct {
	Owner           Owner   `json:"user_name"`
	ActivityName    string  `json:"activity_name"`
	Date            string  `json:"date"`
	DurationMinutes int     `json:"duration_minutes"`
	Notes           *string `json:"notes"`
}

type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type ClearResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

type DeleteResponse struct {
	Message   string `json:"message"`
	DeletedID int    `json:"deleted_id"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/users/{owner}/initialize_activities", h.HandleSeedDefaults).Methods("POST", "OPTIONS").Name("seed-activities")

	router.HandleFunc("/activities", h.HandleListActivities).Methods("GET", "OPTIONS").Name("list-activities")
	router.HandleFunc("/activities", h.HandleCreateActivity).Methods("POST", "OPTIONS").Name("new-activity")
	router.HandleFunc("/activities/{id:[0-9]+}", h.HandleUpdateActivity).Methods("PUT", "OPTIONS").Name("update-activity")
	router.HandleFunc("/activities/{id:[0-9]+}", h.HandleDeleteActivity).Methods("DELETE", "OPTIONS").Name("delete-activity")

	router.HandleFunc("/activity_logs/bulk", h.HandleLogSessions).Methods("POST", "OPTIONS").Name("bulk-log-sessions")
	router.HandleFunc("/activity_logs/bulk_clear", h.HandleClearSessions).Methods("DELETE", "OPTIONS").Name("clear-sessions")
	router.HandleFunc("/activity_logs/stats", h.HandleStats).Methods("GET", "OPTIONS").Name("sessions-stats")
	router.HandleFunc("/activity_logs", h.HandleListSessions).Methods("GET", "OPTIONS").Name("list-sessions")
	router.HandleFunc("/activity_logs", h.HandleLogSession).Methods("POST", "OPTIONS").Name("log-session")
	router.HandleFunc("/activity_logs/{id:[0-9]+}", h.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")
}

func (h *Handler) HandleSeedDefaults(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.seed")
	defer span.End()

	owner := Owner(mux.Vars(r)["owner"])
	count, err := h.service.SeedDefaults(ctx, owner)
	if err != nil {
		writeServiceError(w, "seed default activities", err)
		return
	}

	writeJSON(w, SeedResponse{
		Message: fmt.Sprintf("Initialized %d activities for %s", count, owner),
		Count:   count,
	}, http.StatusOK)
}

func (h *Handler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.list")
	defer span.End()

	owner, ok := ownerFromQuery(w, r)
	if !ok {
		return
	}

	activities, err := h.service.ListActivities(ctx, owner)
	if err != nil {
		writeServiceError(w, "list activities", err)
		return
	}

	writeJSON(w, activities, http.StatusOK)
}

func (h *Handler) HandleCreateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.new")
	defer span.End()

	var req activityRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	activity, err := h.service.CreateActivity(ctx, req.Owner, req.Name, req.KcalPerHour)
	if err != nil {
		writeServiceError(w, "create activity", err)
		return
	}

	log.Debugf("new activity added: %+v", activity)
	writeJSON(w, activity, http.StatusCreated)
}

func (h *Handler) HandleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.update")
	defer span.End()

	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	var req activityRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	owner := Owner(r.URL.Query().Get("user_name"))
	if !owner.Valid() {
		owner = req.Owner
	}

	activity, err := h.service.UpdateActivity(ctx, id, owner, req.Name, req.KcalPerHour)
	if err != nil {
		writeServiceError(w, "update activity", err)
		return
	}

	writeJSON(w, activity, http.StatusOK)
}

func (h *Handler) HandleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.delete")
	defer span.End()

	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	owner, ok := ownerFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteActivity(ctx, id, owner); err != nil {
		writeServiceError(w, "delete activity", err)
		return
	}

	writeJSON(w, DeleteResponse{
		Message:   "Activity deleted",
		DeletedID: id,
	}, http.StatusOK)
}

func (h *Handler) HandleLogSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.logs.new")
	defer span.End()

	var req logSessionRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	input, err := req.toInput(req.Owner)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	activityLog, err := h.service.LogSession(ctx, input)
	if err != nil {
		writeServiceError(w, "log session", err)
		return
	}

	writeJSON(w, activityLog, http.StatusCreated)
}

func (h *Handler) HandleLogSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.logs.bulknew")
	defer span.End()

	owner, ok := ownerFromQuery(w, r)
	if !ok {
		return
	}

	var reqs []logSessionRequest
	if !decodeJSONBody(w, r, &reqs) {
		return
	}
	if len(reqs) > MaxBulkLogs {
		http.Error(w, fmt.Sprintf("at most %d sessions allowed", MaxBulkLogs), http.StatusBadRequest)
		return
	}

	inputs := make([]LogSessionInput, 0, len(reqs))
	for i, req := range reqs {
		input, err := req.toInput(owner)
		if err != nil {
			http.Error(w, fmt.Sprintf("session %d: %s", i, err), http.StatusBadRequest)
			return
		}
		inputs = append(inputs, input)
	}

	stored, err := h.service.LogSessions(ctx, owner, inputs)
	if err != nil {
		writeServiceError(w, "bulk log sessions", err)
		return
	}

	writeJSON(w, stored, http.StatusCreated)
}

func (h *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.logs.list")
	defer span.End()

	owner, ok := ownerFromQuery(w, r)
	if !ok {
		return
	}
	from, to, ok := dateRangeFromQuery(w, r)
	if !ok {
		return
	}

	logs, err := h.service.ListSessions(ctx, LogParams{
		Owner:        owner,
		ActivityName: r.URL.Query().Get("activity_name"),
		From:         from,
		To:           to,
	})
	if err != nil {
		writeServiceError(w, "list sessions", err)
		return
	}

	writeJSON(w, logs, http.StatusOK)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.logs.stats")
	defer span.End()

	owner, ok := ownerFromQuery(w, r)
	if !ok {
		return
	}
	from, to, ok := dateRangeFromQuery(w, r)
	if !ok {
		return
	}

	stats, err := h.service.ComputeStats(ctx, StatsParams{
		Owner: owner,
		From:  from,
		To:    to,
	})
	if err != nil {
		writeServiceError(w, "compute stats", err)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.logs.delete")
	defer span.End()

	id, ok := idFromPath(w, r)
	if !ok {
		return
	}
	owner, ok := ownerFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSession(ctx, id, owner); err != nil {
		writeServiceError(w, "delete session", err)
		return
	}

	writeJSON(w, DeleteResponse{
		Message:   "Activity log deleted",
		DeletedID: id,
	}, http.StatusOK)
}

func (h *Handler) HandleClearSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.logs.clear")
	defer span.End()

	owner, ok := ownerFromQuery(w, r)
	if !ok {
		return
	}

	removed, err := h.service.ClearSessions(ctx, owner)
	if err != nil {
		writeServiceError(w, "clear sessions", err)
		return
	}

	writeJSON(w, ClearResponse{
		Message: fmt.Sprintf("Cleared %d activity logs", removed),
		Count:   removed,
	}, http.StatusOK)
}

func (req logSessionRequest) toInput(owner Owner) (LogSessionInput, error) {
	input := LogSessionInput{
		Owner:           owner,
		ActivityName:    req.ActivityName,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return LogSessionInput{}, err
		}
		input.Date = date
	}
	return input, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %s", value)
}

func dateRangeFromQuery(w http.ResponseWriter, r *http.Request) (from, to *time.Time, ok bool) {
	query := r.URL.Query()
	if s := query.Get("start_date"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			http.Error(w, "error, invalid start_date", http.StatusBadRequest)
			return nil, nil, false
		}
		from = &t
	}
	if s := query.Get("end_date"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			http.Error(w, "error, invalid end_date", http.StatusBadRequest)
			return nil, nil, false
		}
		to = &t
	}
	return from, to, true
}

func ownerFromQuery(w http.ResponseWriter, r *http.Request) (Owner, bool) {
	owner := Owner(r.URL.Query().Get("user_name"))
	if !owner.Valid() {
		http.Error(w, "error, user_name empty", http.StatusBadRequest)
		return "", false
	}
	return owner, true
}

func idFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Tracef("unmarshal json body [%s]: %s", r.URL.Path, err)
		http.Error(w, "error, invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any, statusCode int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}

// writeServiceError maps the error kinds to status codes: not found to 404, conflict and
// invalid input to 400, and everything else to 500.
func writeServiceError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		log.Debugf("%s: %s", action, err)
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidInput):
		log.Debugf("%s: %s", action, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", action, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
