package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/ballparkdata/almanac/internal/config"
	"github.com/ballparkdata/almanac/internal/database"
	_ "github.com/ballparkdata/almanac/internal/database/sqlite"
	"github.com/ballparkdata/almanac/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(config.DatabaseConfig{Dialect: "sqlite", Path: ":memory:"})
	require.NoError(t, err, "opening in-memory database")
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNormalizeAndLoad(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	ds := dataset.New("World Series!!",
		[]string{"Year", "Winning Team", "Payroll"},
		[][]string{
			{"1994", "No World Series", ""},
			{"1998", "New York Yankees", "63460567"},
		})

	handle, err := NormalizeAndLoad(ctx, db, ds)
	require.NoError(t, err)
	assert.Equal(t, "world_series", handle.Name)

	wantColumns := []database.ColumnInfo{
		{Name: "id", DataType: "INTEGER"},
		{Name: "year", DataType: "INTEGER"},
		{Name: "winning_team", DataType: "TEXT"},
		{Name: "payroll", DataType: "INTEGER"},
	}
	assert.Equal(t, wantColumns, handle.Columns)

	// The declared schema matches what the handle reports.
	stored, err := db.ListColumns("world_series")
	require.NoError(t, err)
	assert.Equal(t, wantColumns, stored)

	rows, err := db.QueryContext(ctx, "SELECT id, year, winning_team, payroll FROM world_series ORDER BY year")
	require.NoError(t, err)
	defer rows.Close()

	type record struct {
		id      int64
		year    int64
		team    string
		payroll *int64
	}
	var got []record
	for rows.Next() {
		var r record
		require.NoError(t, rows.Scan(&r.id, &r.year, &r.team, &r.payroll))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())
	require.Len(t, got, 2)

	assert.Equal(t, int64(1994), got[0].year)
	assert.Equal(t, "No World Series", got[0].team)
	assert.Nil(t, got[0].payroll, "missing payroll should load as NULL")

	assert.Equal(t, int64(1998), got[1].year)
	require.NotNil(t, got[1].payroll)
	assert.Equal(t, int64(63460567), *got[1].payroll)

	assert.NotEqual(t, got[0].id, got[1].id, "surrogate ids must be distinct")
}

func TestNormalizeAndLoadReplacesExistingTable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first := dataset.New("standings", []string{"Year", "Team"}, [][]string{
		{"1975", "Boston Red Sox"},
		{"1975", "Baltimore Orioles"},
		{"1975", "New York Yankees"},
	})
	_, err := NormalizeAndLoad(ctx, db, first)
	require.NoError(t, err)

	second := dataset.New("standings", []string{"Year", "Team"}, [][]string{
		{"2024", "New York Yankees"},
	})
	_, err = NormalizeAndLoad(ctx, db, second)
	require.NoError(t, err)

	var count int
	row := db.Pool.QueryRowContext(ctx, "SELECT COUNT(*) FROM standings")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count, "reload should replace the table contents, not append")
}

func TestNormalizeAndLoadSurrogateCollision(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	ds := dataset.New("players", []string{"ID", "Name"}, [][]string{
		{"42", "Mariano Rivera"},
	})
	handle, err := NormalizeAndLoad(ctx, db, ds)
	require.NoError(t, err)

	names := make([]string, len(handle.Columns))
	for i, col := range handle.Columns {
		names[i] = col.Name
	}
	assert.Equal(t, []string{"id", "id_2", "name"}, names,
		"dataset id column must be renamed away from the surrogate key")
}

func TestNormalizeAndLoadEmptyDataset(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	ds := dataset.New("empty_season", []string{"Year", "Team"}, nil)
	handle, err := NormalizeAndLoad(ctx, db, ds)
	require.NoError(t, err)

	var count int
	row := db.Pool.QueryRowContext(ctx, "SELECT COUNT(*) FROM empty_season")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 0, count)
	assert.Len(t, handle.Columns, 3)
}

func TestNormalizeAndLoadValidation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name string
		ds   dataset.Dataset
	}{
		{"Empty name", dataset.New("", []string{"a"}, nil)},
		{"Whitespace name", dataset.New("   ", []string{"a"}, nil)},
		{"Name with no identifier characters", dataset.New("!!!", []string{"a"}, nil)},
		{"No columns", dataset.Dataset{Name: "ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeAndLoad(ctx, db, tt.ds)
			var verr *ErrValidation
			require.Error(t, err)
			assert.True(t, errors.As(err, &verr), "expected ErrValidation, got %T: %v", err, err)
		})
	}
}

func TestImportDir(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dir := t.TempDir()

	champions := dataset.New("world_series_champions",
		[]string{"Year", "World Series Champion", "League"},
		[][]string{{"1998", "New York Yankees", "AL"}})
	require.NoError(t, dataset.WriteCSVFile(champions, dir+"/world_series_champions.csv"))

	mvps := dataset.New("al_mvp_winners",
		[]string{"Year", "AL MVP Winner", "Team", "Position"},
		[][]string{{"1998", "Juan Gonzalez", "Texas Rangers", "OF"}})
	require.NoError(t, dataset.WriteCSVFile(mvps, dir+"/al_mvp_winners.csv"))

	imported, err := ImportDir(ctx, db, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	tables, err := db.ListTables()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"world_series_champions", "al_mvp_winners"}, tables)
}

func TestImportDirEmpty(t *testing.T) {
	db := newTestDB(t)

	imported, err := ImportDir(context.Background(), db, t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, imported)
}
