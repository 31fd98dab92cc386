package ics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/logging"
)

// maxFeedBytes bounds how much of a source calendar is read.
const maxFeedBytes = 10 << 20

// Fetcher downloads subscribed ICS sources and extracts their busy intervals.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher whose downloads are bounded by timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchBusy downloads every source URL and returns the union of their busy
// intervals within the window, unmerged. A failing source contributes
// nothing: the planner treats its time as free, matching the original
// behavior of planning against an empty calendar. Errors are logged per
// source and never propagated.
func (f *Fetcher) FetchBusy(ctx context.Context, urls []string, win BusyWindow) []domain.BusyInterval {
	var all []domain.BusyInterval
	for _, url := range urls {
		intervals, err := f.fetchOne(ctx, url, win)
		if err != nil {
			logging.Error("calendar source unavailable", err, "url", redactURL(url))
			continue
		}
		logging.Info("calendar source fetched", "url", redactURL(url), "busy_intervals", len(intervals))
		all = append(all, intervals...)
	}
	return all
}

func (f *Fetcher) fetchOne(ctx context.Context, url string, win BusyWindow) ([]domain.BusyInterval, error) {
	if url == "" {
		return nil, errors.New("source URL is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, err
	}

	return BusyFromICS(body, win)
}

// redactURL hides the path and query of a calendar URL in logs; private
// feed URLs routinely embed access tokens.
func redactURL(u string) string {
	i := -1
	for idx := 0; idx+2 < len(u); idx++ {
		if u[idx:idx+3] == "://" {
			i = idx + 3
			break
		}
	}
	if i == -1 {
		return "ics://...(redacted)"
	}
	j := i
	for j < len(u) && u[j] != '/' {
		j++
	}
	return u[:j] + "/...(redacted)"
}
