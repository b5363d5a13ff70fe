package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"

	"github.com/ballparkdata/almanac/internal/config"
	"github.com/ballparkdata/almanac/internal/dataset"
)

// Adapter defines the store operations needed by the importer and the query
// service.
type Adapter interface {
	ListTables() ([]string, error)
	ListColumns(tableName string) ([]ColumnInfo, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	BeginTx(ctx context.Context) (*sql.Tx, error)
	Ping(ctx context.Context) error
	Close() error
	GetConfig() config.DatabaseConfig
	Dialect() DialectHandler
}

var _ Adapter = (*DB)(nil)

// DB holds the database connection pool and dialect handler.
type DB struct {
	Pool    *sql.DB
	Handler DialectHandler
	Config  config.DatabaseConfig
}

// ColumnInfo holds basic information about a database column.
type ColumnInfo struct {
	Name     string
	DataType string
}

// TableHandle references a persisted table and its column schema.
type TableHandle struct {
	Name    string
	Columns []ColumnInfo
}

var (
	dialectHandlers = make(map[string]DialectHandler)
	mu              sync.RWMutex
)

func RegisterDialectHandler(dialect string, handler DialectHandler) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := dialectHandlers[dialect]; exists {
		log.Printf("WARN: Dialect handler for '%s' is being overwritten.", dialect)
	}
	dialectHandlers[dialect] = handler
}

func GetDialectHandler(dialect string) (DialectHandler, error) {
	mu.RLock()
	defer mu.RUnlock()
	handler, ok := dialectHandlers[dialect]
	if !ok {
		return nil, fmt.Errorf("unsupported database dialect: %s", dialect)
	}
	return handler, nil
}

func New(cfg config.DatabaseConfig) (*DB, error) {
	handler, err := GetDialectHandler(cfg.Dialect)
	if err != nil {
		return nil, err
	}

	pool, err := handler.CreatePool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool for dialect %s: %w", cfg.Dialect, err)
	}

	ctx := context.Background()
	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database (ping failed) for dialect %s: %w", cfg.Dialect, err)
	}

	return &DB{
		Pool:    pool,
		Handler: handler,
		Config:  cfg,
	}, nil
}

func (db *DB) GetConfig() config.DatabaseConfig {
	return db.Config
}

func (db *DB) Dialect() DialectHandler {
	return db.Handler
}

func (db *DB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database connection pool is not initialized")
	}
	return db.Pool.PingContext(ctx)
}

func (db *DB) Close() error {
	if db.Pool != nil {
		return db.Pool.Close()
	}
	log.Println("WARN: Attempted to close a nil database connection pool.")
	return nil
}

func (db *DB) Query(query string, args ...any) (*sql.Rows, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database connection pool is not initialized")
	}
	return db.Pool.Query(query, args...)
}

func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database connection pool is not initialized")
	}
	return db.Pool.QueryContext(ctx, query, args...)
}

func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database connection pool is not initialized")
	}
	return db.Pool.ExecContext(ctx, query, args...)
}

func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	if db.Pool == nil {
		return nil, fmt.Errorf("database connection pool is not initialized")
	}
	return db.Pool.BeginTx(ctx, nil)
}

func (db *DB) ListTables() ([]string, error) {
	if db.Handler == nil {
		return nil, fmt.Errorf("dialect handler not initialized")
	}
	return db.Handler.ListTables(db)
}

func (db *DB) ListColumns(tableName string) ([]ColumnInfo, error) {
	if db.Handler == nil {
		return nil, fmt.Errorf("dialect handler not initialized")
	}
	return db.Handler.ListColumns(db, tableName)
}

// DialectHandler abstracts the SQL differences between supported stores.
type DialectHandler interface {
	CreatePool(cfg config.DatabaseConfig) (*sql.DB, error)
	QuoteIdentifier(name string) string
	// Placeholder returns the bind-parameter marker for the given 1-based
	// position ("?" or "$1" depending on dialect).
	Placeholder(position int) string
	// ColumnType maps an inferred dataset type to the dialect's DDL type.
	ColumnType(t dataset.Type) string
	// AutoIncrementPrimaryKey returns the DDL clause for the surrogate row
	// identifier column.
	AutoIncrementPrimaryKey(name string) string
	ListTables(db *DB) ([]string, error)
	ListColumns(db *DB, tableName string) ([]ColumnInfo, error)
	// SetSessionReadOnly makes the given connection reject writes, when the
	// dialect supports it. SetSessionReadWrite undoes it before the
	// connection is returned to the pool.
	SetSessionReadOnly(ctx context.Context, conn *sql.Conn) error
	SetSessionReadWrite(ctx context.Context, conn *sql.Conn) error
}
