// Package database owns the PostgreSQL connection pool.
//
// The pool is built lazily on first use and memoized for the process
// lifetime. It also wires query tracing into the pgx driver:
//   - optional New Relic instrumentation (nrpgx5)
//   - SQL logging in the "local" environment (pgx tracelog)
//   - slow query warnings in every environment
package database

import (
	"context"
	"sync"
	"time"

	"github.com/deppfellow/acervo-api/internal/config"
	loggerConfig "github.com/deppfellow/acervo-api/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Querier is the subset of the pool API the repositories depend on.
//
// *Database implements it by delegating to the lazily built pool.
// pgxmock's pool implements it too.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Database is the process-scoped connection accessor.
//
// The pool is created on the first call to Pool and reused afterwards.
// A failed build is not remembered, so the next call tries again.
type Database struct {
	cfg           *config.Config
	log           *zerolog.Logger
	loggerService *loggerConfig.LoggerService

	mu   sync.Mutex
	pool *pgxpool.Pool

	// newPool is pgxpool.NewWithConfig outside of tests.
	newPool func(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error)
}

var _ Querier = (*Database)(nil)

// New returns a Database that connects on first use. It never dials.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) *Database {
	return &Database{
		cfg:           cfg,
		log:           logger,
		loggerService: loggerService,
		newPool:       pgxpool.NewWithConfig,
	}
}

// Pool returns the shared pool, building it if needed.
func (db *Database) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.pool != nil {
		return db.pool, nil
	}

	poolConfig, err := db.poolConfig()
	if err != nil {
		return nil, err
	}

	// The pool outlives the request that happens to build it; its MinConns
	// warm-up keeps running on this context after the request is done.
	pool, err := db.newPool(context.WithoutCancel(ctx), poolConfig)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pgx pool")
	}

	db.pool = pool
	db.log.Info().Msg("database connection pool created")

	return pool, nil
}

func (db *Database) poolConfig() (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(db.cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse pgx pool config")
	}

	if db.cfg.Database.MaxConns > 0 {
		poolConfig.MaxConns = db.cfg.Database.MaxConns
	}
	if db.cfg.Database.MinConns > 0 {
		poolConfig.MinConns = db.cfg.Database.MinConns
	}
	if db.cfg.Database.ConnMaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(db.cfg.Database.ConnMaxLifetime) * time.Second
	}
	if db.cfg.Database.ConnMaxIdleTime > 0 {
		poolConfig.MaxConnIdleTime = time.Duration(db.cfg.Database.ConnMaxIdleTime) * time.Second
	}

	if tracer := db.tracer(); tracer != nil {
		poolConfig.ConnConfig.Tracer = tracer
	}

	return poolConfig, nil
}

// tracer assembles every enabled query tracer into one.
func (db *Database) tracer() pgx.QueryTracer {
	var tracers []pgx.QueryTracer

	if db.loggerService.GetApplication() != nil {
		tracers = append(tracers, nrpgx5.NewTracer())
	}

	// Very noisy, so only in local.
	if db.cfg.Primary.Env == "local" {
		globalLevel := db.log.GetLevel()
		tracers = append(tracers, &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		})
	}

	if db.cfg.Observability != nil && db.cfg.Observability.Logging.SlowQueryThreshold > 0 {
		tracers = append(tracers, &slowQueryTracer{
			threshold: db.cfg.Observability.Logging.SlowQueryThreshold,
			log:       db.log,
		})
	}

	switch len(tracers) {
	case 0:
		return nil
	case 1:
		return tracers[0]
	default:
		return &multiTracer{tracers: tracers}
	}
}

// Exec runs a statement on the shared pool.
func (db *Database) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	pool, err := db.Pool(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return pool.Exec(ctx, sql, args...)
}

// Query runs a query on the shared pool.
func (db *Database) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	pool, err := db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	return pool.Query(ctx, sql, args...)
}

// QueryRow runs a single-row query on the shared pool. When the pool cannot
// be built the error surfaces from Scan.
func (db *Database) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	pool, err := db.Pool(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return pool.QueryRow(ctx, sql, args...)
}

// Ping checks that a pooled connection can reach the server.
func (db *Database) Ping(ctx context.Context) error {
	pool, err := db.Pool(ctx)
	if err != nil {
		return err
	}
	return pool.Ping(ctx)
}

// Close releases the pool if one was ever built.
func (db *Database) Close() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.pool == nil {
		return nil
	}

	db.log.Info().Msg("closing database connection pool")
	db.pool.Close()
	db.pool = nil

	return nil
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

// Probe opens a fresh single connection, runs SELECT 1 and closes it.
// It never touches the shared pool.
func Probe(ctx context.Context, url string) error {
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(context.WithoutCancel(ctx))

	var one int
	return conn.QueryRow(ctx, "SELECT 1").Scan(&one)
}
