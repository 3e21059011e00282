// Package store defines the datastore abstraction for vendasml.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/setebit/vendasml/pkg/types"
)

// Store defines all data access operations for vendasml.
type Store interface {
	// Tokens
	//
	// GetToken returns the credential record for a user, or an error
	// wrapping mlerrors.ErrNotFound when none exists.
	GetToken(ctx context.Context, userID string) (*domain.TokenRecord, error)
	// UpsertToken inserts or overwrites the record keyed by user ID in a
	// single atomic statement. CreatedAt is set by the database on first
	// insert and preserved on overwrite; the field is populated on return.
	UpsertToken(ctx context.Context, rec *domain.TokenRecord) error
	// ListExpiringTokens returns all records whose expiry falls at or
	// before the given instant, ordered by expiry.
	ListExpiringTokens(ctx context.Context, before time.Time) ([]domain.TokenRecord, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
