// Package server exposes the calculation engine over HTTP: a JSON API, ICS
// export endpoints, and the cached contact birthday feed.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/wetonku/go-weton/internal/config"
	"github.com/wetonku/go-weton/internal/data"
	"github.com/wetonku/go-weton/internal/engine"
	"github.com/wetonku/go-weton/internal/i18n"
)

// cacheItem stores the rendered contact calendar and its HTTP caching metadata.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// Server routes API requests into the engine and serves the synced contact
// birthday calendar.
type Server struct {
	Addr string

	clock      engine.Clock
	translator *i18n.Translator
	validate   *validator.Validate
	holidays   []data.Holiday
	releases   []data.ProductRelease
	reminder   string

	// cache uses atomic.Pointer for lock-free reads: the calendar feed is
	// read often and replaced only on sync, so this beats an RWMutex on the
	// hot path.
	cache atomic.Pointer[cacheItem]
}

// New wires a Server with its collaborators. The holiday and release tables
// are loaded once by the caller and shared read-only.
func New(addr string, clock engine.Clock, tr *i18n.Translator, holidays []data.Holiday, releases []data.ProductRelease, reminder string) *Server {
	return &Server{
		Addr:       addr,
		clock:      clock,
		translator: tr,
		validate:   validator.New(),
		holidays:   holidays,
		releases:   releases,
		reminder:   reminder,
	}
}

// Router assembles the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get(config.RouteHealth, s.handleHealth)
	r.Get(config.RouteCalendar, s.handleCalendarFeed)
	r.Head(config.RouteCalendar, s.handleCalendarFeed)

	r.Route(config.RouteAPIPrefix, func(api chi.Router) {
		api.Get(config.RouteAge, s.handleAge)
		api.Get(config.RouteWeton, s.handleWeton)
		api.Get(config.RouteZodiac, s.handleZodiac)
		api.Get(config.RouteShio, s.handleShio)
		api.Get(config.RouteHaul, s.handleHaul)
		api.Get(config.RouteHaulICS, s.handleHaulICS)
		api.Get(config.RouteBirthdayICS, s.handleBirthdayICS)
		api.Get(config.RouteSpecialDates, s.handleSpecialDates)
		api.Get(config.RouteMilestones, s.handleMilestones)
		api.Get(config.RouteWorkingDays, s.handleWorkingDays)
		api.Get(config.RouteRetirement, s.handleRetirement)
		api.Get(config.RouteEstimates, s.handleEstimates)
		api.Get(config.RouteFacts, s.handleFacts)
	})

	return r
}

// Start runs the HTTP server and blocks until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if s.Addr == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         s.Addr,
		Handler:      s.Router(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyAddr, s.Addr,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// UpdateCalendar atomically replaces the served contact calendar feed.
func (s *Server) UpdateCalendar(feed []byte) {
	hash := sha256.Sum256(feed)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	item := &cacheItem{
		data:         feed,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}

	// Atomic store: concurrent readers see the old or the new complete item,
	// never a partial state.
	s.cache.Store(item)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(feed),
		config.LogKeyETag, etag,
	)
}

// handleCalendarFeed serves the synced contact calendar with HTTP caching.
func (s *Server) handleCalendarFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.cache.Load()
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
