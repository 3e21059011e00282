package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/setebit/vendasml/internal/mlerrors"
	domain "github.com/setebit/vendasml/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Option configures the PostgresStore connection pool.
type Option func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections. Non-positive
// values keep the default.
func WithPoolSize(n int) Option {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n)
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...Option) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertToken inserts or overwrites the credential record for a user.
// The write is a single INSERT ... ON CONFLICT statement so concurrent
// writers never observe a partial record. created_at is kept from the
// original insert; the scanned value is written back to rec.
func (s *PostgresStore) UpsertToken(ctx context.Context, rec *domain.TokenRecord) error {
	args := pgx.NamedArgs{
		"user_id":       rec.UserID,
		"access_token":  rec.AccessToken,
		"refresh_token": rec.RefreshToken,
		"expires_in":    rec.ExpiresIn,
		"expires_at":    rec.ExpiresAt,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertToken, args).Scan(&rec.CreatedAt); err != nil {
		return fmt.Errorf("upserting token for user %s: %w", rec.UserID, err)
	}
	return nil
}

// GetToken retrieves the credential record for a user.
func (s *PostgresStore) GetToken(ctx context.Context, userID string) (*domain.TokenRecord, error) {
	rec := &domain.TokenRecord{}
	err := s.pool.QueryRow(ctx, queryGetToken, userID).Scan(
		&rec.UserID, &rec.AccessToken, &rec.RefreshToken,
		&rec.ExpiresIn, &rec.ExpiresAt, &rec.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("token for user %s: %w", userID, mlerrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("querying token for user %s: %w", userID, err)
	}
	return rec, nil
}

// ListExpiringTokens returns records whose expiry falls at or before the
// given instant, soonest first.
func (s *PostgresStore) ListExpiringTokens(
	ctx context.Context,
	before time.Time,
) ([]domain.TokenRecord, error) {
	rows, err := s.pool.Query(ctx, queryListExpiringTokens, before)
	if err != nil {
		return nil, fmt.Errorf("querying expiring tokens: %w", err)
	}
	defer rows.Close()

	var records []domain.TokenRecord
	for rows.Next() {
		var rec domain.TokenRecord
		if err := rows.Scan(
			&rec.UserID, &rec.AccessToken, &rec.RefreshToken,
			&rec.ExpiresIn, &rec.ExpiresAt, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning token: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
