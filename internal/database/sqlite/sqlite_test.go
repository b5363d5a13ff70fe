package sqlite

import (
	"context"
	"testing"

	"github.com/ballparkdata/almanac/internal/config"
	"github.com/ballparkdata/almanac/internal/database"
	"github.com/ballparkdata/almanac/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemoryDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(config.DatabaseConfig{Dialect: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHandlerRegistered(t *testing.T) {
	_, err := database.GetDialectHandler("sqlite")
	require.NoError(t, err)
}

func TestQuoteIdentifier(t *testing.T) {
	handler, err := database.GetDialectHandler("sqlite")
	require.NoError(t, err)
	assert.Equal(t, `"team"`, handler.QuoteIdentifier("team"))
	assert.Equal(t, `"a""b"`, handler.QuoteIdentifier(`a"b`))
}

func TestPlaceholder(t *testing.T) {
	handler, err := database.GetDialectHandler("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "?", handler.Placeholder(1))
	assert.Equal(t, "?", handler.Placeholder(5))
}

func TestColumnType(t *testing.T) {
	handler, err := database.GetDialectHandler("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "INTEGER", handler.ColumnType(dataset.TypeInteger))
	assert.Equal(t, "REAL", handler.ColumnType(dataset.TypeReal))
	assert.Equal(t, "TEXT", handler.ColumnType(dataset.TypeText))
}

func TestListTablesAndColumns(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `CREATE TABLE team_standings (id INTEGER PRIMARY KEY AUTOINCREMENT, year INTEGER NOT NULL, team TEXT NOT NULL)`)
	require.NoError(t, err)

	tables, err := db.ListTables()
	require.NoError(t, err)
	assert.Equal(t, []string{"team_standings"}, tables, "internal sqlite tables must be excluded")

	columns, err := db.ListColumns("team_standings")
	require.NoError(t, err)
	want := []database.ColumnInfo{
		{Name: "id", DataType: "INTEGER"},
		{Name: "year", DataType: "INTEGER"},
		{Name: "team", DataType: "TEXT"},
	}
	assert.Equal(t, want, columns)
}

func TestReadOnlySession(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `CREATE TABLE t (a INTEGER)`)
	require.NoError(t, err)

	conn, err := db.Pool.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, db.Handler.SetSessionReadOnly(ctx, conn))
	_, err = conn.ExecContext(ctx, `INSERT INTO t VALUES (1)`)
	assert.Error(t, err, "writes must fail while the session is read-only")

	require.NoError(t, db.Handler.SetSessionReadWrite(ctx, conn))
	_, err = conn.ExecContext(ctx, `INSERT INTO t VALUES (1)`)
	assert.NoError(t, err, "writes must succeed after the session is restored")
}
