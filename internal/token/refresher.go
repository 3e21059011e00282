package token

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/setebit/vendasml/internal/store"
)

// Refresher periodically renews tokens that are about to expire so that
// request-time calls rarely pay the refresh round trip. Request-time
// renewal in Manager.ValidToken still covers anything the sweep misses.
type Refresher struct {
	cron    *cron.Cron
	manager *Manager
	store   store.Store
	window  time.Duration
	log     *slog.Logger
}

// NewRefresher creates a Refresher that sweeps the store every interval,
// renewing tokens expiring within the given window.
func NewRefresher(
	m *Manager,
	s store.Store,
	interval time.Duration,
	window time.Duration,
	log *slog.Logger,
) (*Refresher, error) {
	c := cron.New()

	r := &Refresher{
		cron:    c,
		manager: m,
		store:   s,
		window:  window,
		log:     log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), r.runSweep); err != nil {
		return nil, err
	}

	return r, nil
}

// Start begins running scheduled sweeps.
func (r *Refresher) Start() {
	r.log.Info("token refresher started", "window", r.window)
	r.cron.Start()
}

// Stop gracefully stops the refresher, waiting for a running sweep to finish.
func (r *Refresher) Stop() context.Context {
	r.log.Info("token refresher stopping")
	return r.cron.Stop()
}

func (r *Refresher) runSweep() {
	if err := r.Sweep(context.Background()); err != nil {
		r.log.Error("token sweep failed", "error", err)
	}
}

// Sweep renews every token expiring within the window. Individual refresh
// failures are logged and skipped so one broken account does not block
// the rest.
func (r *Refresher) Sweep(ctx context.Context) error {
	now := r.manager.nowFunc()

	records, err := r.store.ListExpiringTokens(ctx, now.Add(r.window))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	r.log.Info("token sweep starting", "expiring", len(records))

	for _, rec := range records {
		if _, err := r.manager.Refresh(ctx, rec.UserID); err != nil {
			// An already-expired token means users are locked out until
			// the next grant succeeds, not just paying a refresh later.
			r.log.Error("scheduled refresh failed",
				"user_id", rec.UserID,
				"expired", rec.IsExpired(now),
				"error", err,
			)
		}
	}

	return nil
}
