package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/alexanderramin/semainier/internal/logging"
	"github.com/alexanderramin/semainier/internal/service"
)

// Server runs the planner HTTP API. It keeps a cron-refreshed cache of the
// rendered calendar feed so subscribing calendar apps never wait on the
// source calendar fetches.
type Server struct {
	listen      string
	plans       service.PlanService
	refreshSpec string
	mux         *http.ServeMux

	mu         sync.RWMutex
	cachedFeed string
	cachedAt   time.Time
}

// NewServer constructs a Server listening on addr. refreshSpec is a cron
// expression controlling how often the cached feed is regenerated.
func NewServer(addr string, activities service.ActivityService, plans service.PlanService, refreshSpec string) *Server {
	s := &Server{
		listen:      addr,
		plans:       plans,
		refreshSpec: refreshSpec,
		mux:         http.NewServeMux(),
	}
	NewHandler(activities, s).RegisterRoutes(s.mux)
	return s
}

// Handler returns the underlying http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Feed returns the rendered iCalendar feed, serving the cache when one
// exists and rendering synchronously on a cold start.
func (s *Server) Feed(r *http.Request) (string, error) {
	s.mu.RLock()
	cached := s.cachedFeed
	s.mu.RUnlock()
	if cached != "" {
		return cached, nil
	}
	return s.refreshFeed(r.Context())
}

// refreshFeed regenerates the feed and stores it in the cache.
func (s *Server) refreshFeed(ctx context.Context) (string, error) {
	feed, err := s.plans.RenderFeed(ctx, time.Now())
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cachedFeed = feed
	s.cachedAt = time.Now()
	s.mu.Unlock()
	return feed, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully. The
// feed cache is warmed once at startup and refreshed on the cron schedule.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.refreshFeed(ctx); err != nil {
		logging.Warn("initial feed render failed", "error", err.Error())
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(s.refreshSpec, func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.refreshFeed(refreshCtx); err != nil {
			logging.Error("scheduled feed refresh failed", err)
		} else {
			logging.Debug("feed cache refreshed")
		}
	}); err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	httpServer := &http.Server{
		Addr:              s.listen,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("HTTP server listening", "addr", "http://"+s.listen)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
