package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/alexanderramin/semainier/internal/service"
	"github.com/alexanderramin/semainier/internal/testutil"
)

type stubPlans struct {
	feed    string
	renders int
	err     error
}

func (s *stubPlans) GeneratePlan(_ context.Context, _ time.Time) (*service.Plan, error) {
	return &service.Plan{}, s.err
}

func (s *stubPlans) RenderFeed(_ context.Context, _ time.Time) (string, error) {
	s.renders++
	return s.feed, s.err
}

func newTestServer(t *testing.T) (*Server, *stubPlans) {
	t.Helper()
	db := testutil.NewTestDB(t)
	activities := service.NewActivityService(repository.NewSQLiteActivityRepo(db))
	plans := &stubPlans{feed: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"}
	return NewServer("127.0.0.1:0", activities, plans, "*/15 * * * *"), plans
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func createActivity(t *testing.T, handler http.Handler, body string) activityView {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/api/activities", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var view activityView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func TestCreateActivity(t *testing.T) {
	srv, _ := newTestServer(t)

	view := createActivity(t, srv.Handler(), `{"name":"Course à pied","weekly_minutes":90,"category":"Sport"}`)

	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "Course à pied", view.Name)
	assert.Equal(t, 90, view.WeeklyMinutes)
	assert.Equal(t, "Sport", view.Category)
	assert.False(t, view.CreatedAt.IsZero())
}

func TestCreateActivityValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/activities", `{"name":"","weekly_minutes":90,"category":"Sport"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "activity name is required", body["message"])
}

func TestCreateActivityBadBody(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPost, "/api/activities", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListActivitiesEmpty(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/activities", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListActivities(t *testing.T) {
	srv, _ := newTestServer(t)
	createActivity(t, srv.Handler(), `{"name":"Lecture","weekly_minutes":120,"category":"Loisir"}`)
	createActivity(t, srv.Handler(), `{"name":"Piano","weekly_minutes":60,"category":"Musique"}`)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/activities", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []activityView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "Lecture", views[0].Name)
	assert.Equal(t, "Piano", views[1].Name)
}

func TestGetActivity(t *testing.T) {
	srv, _ := newTestServer(t)
	created := createActivity(t, srv.Handler(), `{"name":"Lecture","weekly_minutes":120,"category":"Loisir"}`)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/activities/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var view activityView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, created.ID, view.ID)
}

func TestGetActivityNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/api/activities/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateActivityPartial(t *testing.T) {
	srv, _ := newTestServer(t)
	created := createActivity(t, srv.Handler(), `{"name":"Lecture","weekly_minutes":120,"category":"Loisir"}`)

	rec := doJSON(t, srv.Handler(), http.MethodPut, "/api/activities/"+created.ID, `{"weekly_minutes":150}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var view activityView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 150, view.WeeklyMinutes)
	assert.Equal(t, "Lecture", view.Name)
	assert.Equal(t, "Loisir", view.Category)
}

func TestUpdateActivityValidation(t *testing.T) {
	srv, _ := newTestServer(t)
	created := createActivity(t, srv.Handler(), `{"name":"Lecture","weekly_minutes":120,"category":"Loisir"}`)

	rec := doJSON(t, srv.Handler(), http.MethodPut, "/api/activities/"+created.ID, `{"weekly_minutes":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateActivityNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPut, "/api/activities/missing", `{"weekly_minutes":30}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteActivity(t *testing.T) {
	srv, _ := newTestServer(t)
	created := createActivity(t, srv.Handler(), `{"name":"Lecture","weekly_minutes":120,"category":"Loisir"}`)

	rec := doJSON(t, srv.Handler(), http.MethodDelete, "/api/activities/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "activité supprimée", body["message"])

	rec = doJSON(t, srv.Handler(), http.MethodGet, "/api/activities/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteActivityNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodDelete, "/api/activities/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodPatch, "/api/activities", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCalendarFeed(t *testing.T) {
	srv, plans := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/calendar/feed.ics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "semainier.ics")
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")

	// Second request is served from the cache without regenerating.
	rec = doJSON(t, srv.Handler(), http.MethodGet, "/calendar/feed.ics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, plans.renders)
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doJSON(t, srv.Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
