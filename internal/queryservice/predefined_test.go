package queryservice

import (
	"testing"

	"github.com/ballparkdata/almanac/internal/database"
	_ "github.com/ballparkdata/almanac/internal/database/postgres"
	_ "github.com/ballparkdata/almanac/internal/database/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLForPlaceholderRewrite(t *testing.T) {
	q, ok := Lookup("champions_by_year_range")
	require.True(t, ok)

	sqliteHandler, err := database.GetDialectHandler("sqlite")
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM world_series_champions WHERE year BETWEEN ? AND ? ORDER BY year",
		q.sqlFor(sqliteHandler))

	pgHandler, err := database.GetDialectHandler("postgres")
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM world_series_champions WHERE year BETWEEN $1 AND $2 ORDER BY year",
		q.sqlFor(pgHandler))
}

func TestBindArgsOrderMatchesMarkers(t *testing.T) {
	q, ok := Lookup("champions_by_year_range")
	require.True(t, ok)

	args, err := q.bindArgs(map[string]string{"end_year": "2000", "start_year": "1990"})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1990), int64(2000)}, args)
}

func TestBindArgsDefault(t *testing.T) {
	q, ok := Lookup("top_pitching_leaders")
	require.True(t, ok)

	args, err := q.bindArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(10)}, args)

	args, err = q.bindArgs(map[string]string{"limit": "25"})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(25)}, args)

	_, err = q.bindArgs(map[string]string{"limit": "0"})
	assert.Error(t, err)
	_, err = q.bindArgs(map[string]string{"limit": "101"})
	assert.Error(t, err)
}
