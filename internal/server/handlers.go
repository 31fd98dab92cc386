// Package server exposes the planner's HTTP surface: activity CRUD under
// /api/activities and the published calendar feed under /calendar/feed.ics.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/logging"
	"github.com/alexanderramin/semainier/internal/service"
)

// Handler coordinates HTTP requests with the service layer.
type Handler struct {
	activities service.ActivityService
	feed       feedProvider
}

// feedProvider serves the rendered iCalendar feed. Implemented by Server,
// which keeps a cron-refreshed cache in front of the plan service.
type feedProvider interface {
	Feed(r *http.Request) (string, error)
}

// NewHandler builds a Handler.
func NewHandler(activities service.ActivityService, feed feedProvider) *Handler {
	return &Handler{activities: activities, feed: feed}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/activities", h.activityCollection)
	mux.HandleFunc("/api/activities/", h.activityByID)
	mux.HandleFunc("/calendar/feed.ics", h.calendarFeed)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for supervisor health checks.
func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activityCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listActivities(w, r)
	case http.MethodPost:
		h.createActivity(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "méthode non supportée")
	}
}

func (h *Handler) activityByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/activities/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "activité introuvable")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getActivity(w, r, id)
	case http.MethodPut:
		h.updateActivity(w, r, id)
	case http.MethodDelete:
		h.deleteActivity(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "méthode non supportée")
	}
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.activities.List(r.Context())
	if err != nil {
		logging.Error("listing activities failed", err)
		writeError(w, http.StatusInternalServerError, "erreur interne")
		return
	}

	views := make([]activityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, toActivityView(a))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corps de requête invalide")
		return
	}

	activity := domain.Activity{
		Name:          req.Name,
		WeeklyMinutes: req.WeeklyMinutes,
		Category:      req.Category,
	}
	if err := h.activities.Create(r.Context(), &activity); err != nil {
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logging.Error("creating activity failed", err)
		writeError(w, http.StatusInternalServerError, "erreur interne")
		return
	}

	writeJSON(w, http.StatusCreated, toActivityView(&activity))
}

func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request, id string) {
	activity, err := h.activities.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "activité introuvable")
			return
		}
		logging.Error("fetching activity failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "erreur interne")
		return
	}
	writeJSON(w, http.StatusOK, toActivityView(activity))
}

// updateActivity merges the provided fields onto the stored activity, so a
// client may send only the fields it wants to change.
func (h *Handler) updateActivity(w http.ResponseWriter, r *http.Request, id string) {
	var req activityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corps de requête invalide")
		return
	}

	activity, err := h.activities.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "activité introuvable")
			return
		}
		logging.Error("fetching activity failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "erreur interne")
		return
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.WeeklyMinutes != nil {
		activity.WeeklyMinutes = *req.WeeklyMinutes
	}
	if req.Category != nil {
		activity.Category = *req.Category
	}

	if err := h.activities.Update(r.Context(), activity); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "activité introuvable")
			return
		}
		if isValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logging.Error("updating activity failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "erreur interne")
		return
	}

	writeJSON(w, http.StatusOK, toActivityView(activity))
}

func (h *Handler) deleteActivity(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.activities.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			writeError(w, http.StatusNotFound, "activité introuvable")
			return
		}
		logging.Error("deleting activity failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "erreur interne")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "activité supprimée"})
}

func (h *Handler) calendarFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "méthode non supportée")
		return
	}

	feed, err := h.feed.Feed(r)
	if err != nil {
		logging.Error("rendering calendar feed failed", err)
		writeError(w, http.StatusInternalServerError, "erreur interne")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="semainier.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(feed))
}

// activityRequest is the payload for POST /api/activities.
type activityRequest struct {
	Name          string `json:"name"`
	WeeklyMinutes int    `json:"weekly_minutes"`
	Category      string `json:"category"`
}

// activityUpdateRequest is the payload for PUT /api/activities/{id}.
// Pointer fields distinguish absent from zero-valued.
type activityUpdateRequest struct {
	Name          *string `json:"name"`
	WeeklyMinutes *int    `json:"weekly_minutes"`
	Category      *string `json:"category"`
}

// activityView is the JSON representation served to clients.
type activityView struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WeeklyMinutes int       `json:"weekly_minutes"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toActivityView(a *domain.Activity) activityView {
	return activityView{
		ID:            a.ID,
		Name:          a.Name,
		WeeklyMinutes: a.WeeklyMinutes,
		Category:      a.Category,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func isValidation(err error) bool {
	var verr *domain.ValidationError
	return errors.As(err, &verr)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error("writing JSON response failed", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
