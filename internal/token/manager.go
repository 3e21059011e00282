// Package token manages the Mercado Livre OAuth credential lifecycle:
// exchanging authorization codes, refreshing expiring tokens and handing
// out access tokens that are guaranteed usable for at least the
// configured threshold.
package token

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/setebit/vendasml/internal/mercadolivre"
	"github.com/setebit/vendasml/internal/metrics"
	"github.com/setebit/vendasml/internal/store"
	domain "github.com/setebit/vendasml/pkg/types"
)

// DefaultRefreshThreshold is used when no threshold is configured.
const DefaultRefreshThreshold = 5 * time.Minute

// Manager owns token persistence and renewal for all connected accounts.
//
// Concurrent calls for the same user may each trigger a refresh; both
// grants are valid at Mercado Livre and the last upsert wins, so the
// stored record stays consistent. No per-user locking is done here.
type Manager struct {
	store     store.Store
	auth      mercadolivre.AuthClient
	threshold time.Duration
	log       *slog.Logger
	nowFunc   func() time.Time // for testing
}

// ManagerOption configures the Manager.
type ManagerOption func(*Manager)

// WithRefreshThreshold overrides how long before expiry a token is renewed.
func WithRefreshThreshold(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.threshold = d
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowFunc = f
	}
}

// NewManager creates a Manager backed by the given store and OAuth client.
func NewManager(
	s store.Store,
	auth mercadolivre.AuthClient,
	log *slog.Logger,
	opts ...ManagerOption,
) *Manager {
	m := &Manager{
		store:     s,
		auth:      auth,
		threshold: DefaultRefreshThreshold,
		log:       log,
		nowFunc:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ExchangeCode trades an authorization code for a token grant and persists
// the resulting record, keyed by the user ID Mercado Livre reports in the
// grant. A second exchange for the same user overwrites the prior record.
func (m *Manager) ExchangeCode(ctx context.Context, code string) (*domain.TokenRecord, error) {
	grant, err := m.auth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	rec := m.recordFromGrant(strconv.FormatInt(grant.UserID, 10), grant)
	if err := m.store.UpsertToken(ctx, rec); err != nil {
		return nil, fmt.Errorf("storing token for user %s: %w", rec.UserID, err)
	}

	metrics.TokenExchangesTotal.Inc()
	m.log.Info("authorization code exchanged",
		"user_id", rec.UserID,
		"expires_at", rec.ExpiresAt,
	)

	return rec, nil
}

// Refresh renews the stored token for a user via the refresh grant and
// overwrites the record in place. When no record exists the store's
// not-found error is returned without calling Mercado Livre.
func (m *Manager) Refresh(ctx context.Context, userID string) (*domain.TokenRecord, error) {
	rec, err := m.store.GetToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	grant, err := m.auth.RefreshToken(ctx, rec.RefreshToken)
	if err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		return nil, err
	}

	// Mercado Livre rotates the refresh token on every renewal.
	renewed := m.recordFromGrant(userID, grant)
	if err := m.store.UpsertToken(ctx, renewed); err != nil {
		metrics.TokenRefreshFailuresTotal.Inc()
		return nil, fmt.Errorf("storing refreshed token for user %s: %w", userID, err)
	}

	metrics.TokenRefreshesTotal.Inc()
	m.log.Info("token refreshed",
		"user_id", userID,
		"expires_at", renewed.ExpiresAt,
	)

	return renewed, nil
}

// ValidToken returns an access token for the user that will remain usable
// for at least the refresh threshold, renewing it first when needed.
// Records with no known expiry are refreshed unconditionally.
func (m *Manager) ValidToken(ctx context.Context, userID string) (string, error) {
	rec, err := m.store.GetToken(ctx, userID)
	if err != nil {
		return "", err
	}

	if !rec.NeedsRefresh(m.threshold, m.nowFunc()) {
		return rec.AccessToken, nil
	}

	renewed, err := m.Refresh(ctx, userID)
	if err != nil {
		return "", err
	}
	return renewed.AccessToken, nil
}

func (m *Manager) recordFromGrant(userID string, grant *domain.TokenGrant) *domain.TokenRecord {
	return &domain.TokenRecord{
		UserID:       userID,
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		ExpiresIn:    grant.ExpiresIn,
		ExpiresAt:    m.nowFunc().Add(time.Duration(grant.ExpiresIn) * time.Second),
	}
}
