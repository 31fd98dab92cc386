package ics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBusy_CombinesSources(t *testing.T) {
	feedA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(calendar(`
UID:a@test
DTSTART:20260908T090000Z
DTEND:20260908T100000Z
SUMMARY:A
`))
	}))
	defer feedA.Close()

	feedB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(calendar(`
UID:b@test
DTSTART:20260910T140000Z
DTEND:20260910T160000Z
SUMMARY:B
`))
	}))
	defer feedB.Close()

	f := NewFetcher(5 * time.Second)
	busy := f.FetchBusy(context.Background(), []string{feedA.URL, feedB.URL}, testWindow(t))

	require.Len(t, busy, 2)
}

func TestFetchBusy_FailingSourceContributesNothing(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer broken.Close()

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(calendar(`
UID:ok@test
DTSTART:20260909T090000Z
DTEND:20260909T100000Z
SUMMARY:OK
`))
	}))
	defer ok.Close()

	f := NewFetcher(5 * time.Second)
	busy := f.FetchBusy(context.Background(), []string{broken.URL, ok.URL, "http://127.0.0.1:1/nope.ics"}, testWindow(t))

	require.Len(t, busy, 1)
	assert.Equal(t, time.Date(2026, 9, 9, 9, 0, 0, 0, time.UTC), busy[0].Start)
}

func TestFetchBusy_NoSources(t *testing.T) {
	f := NewFetcher(time.Second)
	busy := f.FetchBusy(context.Background(), nil, testWindow(t))
	assert.Empty(t, busy)
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "https://cal.example.org/...(redacted)",
		redactURL("https://cal.example.org/private/abc123/basic.ics?token=secret"))
	assert.Equal(t, "ics://...(redacted)", redactURL("not a url"))
}
