package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type Config struct {
	URL      string
	MaxConns int32
}

type DB struct {
	Pool *pgxpool.Pool
}

// PoolConfig parses the connection string and applies the pool limits.
func (c Config) PoolConfig() (*pgxpool.Config, error) {
	if c.URL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	poolConfig, err := pgxpool.ParseConfig(c.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	if c.MaxConns > 0 {
		poolConfig.MaxConns = c.MaxConns
	}

	return poolConfig, nil
}

func New(ctx context.Context, config Config) (*DB, error) {
	poolConfig, err := config.PoolConfig()
	if err != nil {
		return nil, err
	}

	pgPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("Failed to connect to database, Error: %w", err)
	}

	return &DB{
		Pool: pgPool,
	}, nil
}

// NewWithBackoff creates the pool and pings it until it answers, waiting
// 1s, 2s, 4s... between attempts. At least one attempt is always made.
func NewWithBackoff(ctx context.Context, config Config, maxRetries int) (*DB, error) {
	maxRetries = max(maxRetries, 1)

	db, err := New(ctx, config)
	if err != nil {
		return nil, err
	}

	for i := range maxRetries {
		if i > 0 {
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			log.Info().Dur("backoff", backoff).Msg("Waiting before database retry")
			select {
			case <-ctx.Done():
				db.Close()
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		log.Info().Int("attempt", i+1).Int("max_retries", maxRetries).Msg("Connecting to database")

		err = db.Ping(ctx)
		if err == nil {
			log.Info().Int("attempts_needed", i+1).Msg("Database connected")
			return db, nil
		}

		log.Warn().Err(err).Int("attempt", i+1).Msg("Database ping failed")
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.Pool.Ping(ctx); err != nil {
		return err
	}

	return nil
}

func (db *DB) Close() {
	db.Pool.Close()
}
