package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ballparkdata/almanac/internal/config"
	"github.com/ballparkdata/almanac/internal/database"
	_ "github.com/ballparkdata/almanac/internal/database/sqlite"
	"github.com/ballparkdata/almanac/internal/dataset"
	"github.com/ballparkdata/almanac/internal/importer"
	"github.com/ballparkdata/almanac/internal/queryservice"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := database.New(config.DatabaseConfig{Dialect: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ds := dataset.New("world_series_champions",
		[]string{"Year", "World Series Champion", "League"},
		[][]string{
			{"1996", "New York Yankees", "AL"},
			{"1997", "Florida Marlins", "NL"},
			{"1998", "New York Yankees", "AL"},
		})
	_, err = importer.NormalizeAndLoad(context.Background(), db, ds)
	require.NoError(t, err)

	return NewRouter(queryservice.NewService(db), zap.NewNop())
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListTablesEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w, resp := doRequest(t, router, http.MethodGet, "/api/tables", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var handles []database.TableHandle
	require.NoError(t, json.Unmarshal(data, &handles))
	require.Len(t, handles, 1)
	assert.Equal(t, "world_series_champions", handles[0].Name)
	assert.Len(t, handles[0].Columns, 4)
}

func TestRunQueryEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w, resp := doRequest(t, router, http.MethodPost, "/api/query",
		`{"query": "SELECT year, world_series_champion FROM world_series_champions WHERE league = 'AL' ORDER BY year"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result resultJSON
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, []string{"year", "world_series_champion"}, result.Columns)
	assert.Equal(t, 2, result.RowCount)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "New York Yankees", result.Rows[0][1])
}

func TestRunQueryEndpointErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"Missing query field", `{}`, http.StatusBadRequest},
		{"Not JSON", `SELECT 1`, http.StatusBadRequest},
		{"Mutating statement", `{"query": "DROP TABLE world_series_champions"}`, http.StatusForbidden},
		{"Broken SQL", `{"query": "SELECT FROM WHERE"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doRequest(t, router, http.MethodPost, "/api/query", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "error", resp.Status)
		})
	}
}

func TestListPredefinedEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w, resp := doRequest(t, router, http.MethodGet, "/api/queries", "")

	assert.Equal(t, http.StatusOK, w.Code)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var queries []map[string]any
	require.NoError(t, json.Unmarshal(data, &queries))
	assert.Len(t, queries, len(queryservice.All()))
	for _, q := range queries {
		assert.NotEmpty(t, q["id"])
		assert.NotEmpty(t, q["description"])
	}
}

func TestRunPredefinedEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w, resp := doRequest(t, router, http.MethodGet,
		"/api/queries/champions_by_year_range?start_year=1996&end_year=1997", "")

	assert.Equal(t, http.StatusOK, w.Code)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var result resultJSON
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 2, result.RowCount)
}

func TestRunPredefinedEndpointErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"Unknown query id", "/api/queries/no_such_query", http.StatusNotFound},
		{"Missing parameter", "/api/queries/champions_by_year_range?start_year=1996", http.StatusBadRequest},
		{"Invalid parameter", "/api/queries/champions_by_year_range?start_year=x&end_year=1997", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := doRequest(t, router, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "error", resp.Status)
		})
	}
}
