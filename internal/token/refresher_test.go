package token_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/setebit/vendasml/internal/mlerrors"
	"github.com/setebit/vendasml/internal/token"
	domain "github.com/setebit/vendasml/pkg/types"
)

func TestRefresher_Sweep(t *testing.T) {
	t.Parallel()

	m, mockStore, mockAuth := newManager(t)

	r, err := token.NewRefresher(m, mockStore, time.Minute, 300*time.Second, discardLogger())
	require.NoError(t, err)

	expiring := []domain.TokenRecord{
		{UserID: "111", RefreshToken: "TG-111", ExpiresAt: testNow.Add(time.Minute)},
		{UserID: "222", RefreshToken: "TG-222", ExpiresAt: testNow.Add(2 * time.Minute)},
	}
	mockStore.EXPECT().
		ListExpiringTokens(mock.Anything, testNow.Add(300*time.Second)).
		Return(expiring, nil)

	for _, rec := range expiring {
		rec := rec
		mockStore.EXPECT().GetToken(mock.Anything, rec.UserID).Return(&rec, nil)
		mockAuth.EXPECT().RefreshToken(mock.Anything, rec.RefreshToken).
			Return(&domain.TokenGrant{
				AccessToken:  "APP_USR-" + rec.UserID,
				ExpiresIn:    21600,
				RefreshToken: "TG-rotated-" + rec.UserID,
			}, nil)
	}
	mockStore.EXPECT().UpsertToken(mock.Anything, mock.Anything).Return(nil).Times(2)

	require.NoError(t, r.Sweep(context.Background()))
}

func TestRefresher_Sweep_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	m, mockStore, mockAuth := newManager(t)

	r, err := token.NewRefresher(m, mockStore, time.Minute, 300*time.Second, discardLogger())
	require.NoError(t, err)

	expiring := []domain.TokenRecord{
		{UserID: "broken", RefreshToken: "TG-broken", ExpiresAt: testNow.Add(time.Minute)},
		{UserID: "healthy", RefreshToken: "TG-healthy", ExpiresAt: testNow.Add(2 * time.Minute)},
	}
	mockStore.EXPECT().
		ListExpiringTokens(mock.Anything, mock.Anything).
		Return(expiring, nil)

	mockStore.EXPECT().GetToken(mock.Anything, "broken").Return(&expiring[0], nil)
	mockAuth.EXPECT().RefreshToken(mock.Anything, "TG-broken").
		Return(nil, &mlerrors.AuthError{Op: "token refresh", Cause: assert.AnError})

	mockStore.EXPECT().GetToken(mock.Anything, "healthy").Return(&expiring[1], nil)
	mockAuth.EXPECT().RefreshToken(mock.Anything, "TG-healthy").
		Return(&domain.TokenGrant{
			AccessToken:  "APP_USR-healthy",
			ExpiresIn:    21600,
			RefreshToken: "TG-rotated",
		}, nil)
	mockStore.EXPECT().UpsertToken(mock.Anything, mock.Anything).Return(nil).Once()

	// A failed refresh for one account must not abort the sweep.
	require.NoError(t, r.Sweep(context.Background()))
}

func TestRefresher_Sweep_ReportsExpiredAccounts(t *testing.T) {
	t.Parallel()

	m, mockStore, mockAuth := newManager(t)

	var buf bytes.Buffer
	r, err := token.NewRefresher(m, mockStore, time.Minute, 300*time.Second,
		slog.New(slog.NewTextHandler(&buf, nil)))
	require.NoError(t, err)

	// Token expired an hour ago and the refresh grant fails: the account is
	// locked out, and the sweep log must say so.
	dead := domain.TokenRecord{
		UserID:       "dead",
		RefreshToken: "TG-dead",
		ExpiresAt:    testNow.Add(-time.Hour),
	}
	mockStore.EXPECT().ListExpiringTokens(mock.Anything, mock.Anything).
		Return([]domain.TokenRecord{dead}, nil)
	mockStore.EXPECT().GetToken(mock.Anything, "dead").Return(&dead, nil)
	mockAuth.EXPECT().RefreshToken(mock.Anything, "TG-dead").
		Return(nil, &mlerrors.AuthError{Op: "token refresh", Cause: assert.AnError})

	require.NoError(t, r.Sweep(context.Background()))
	assert.Contains(t, buf.String(), "scheduled refresh failed")
	assert.Contains(t, buf.String(), "expired=true")
}

func TestRefresher_Sweep_NothingExpiring(t *testing.T) {
	t.Parallel()

	m, mockStore, _ := newManager(t)

	r, err := token.NewRefresher(m, mockStore, time.Minute, 300*time.Second, discardLogger())
	require.NoError(t, err)

	mockStore.EXPECT().
		ListExpiringTokens(mock.Anything, mock.Anything).
		Return(nil, nil)

	require.NoError(t, r.Sweep(context.Background()))
}
