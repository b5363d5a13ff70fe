package utils

import (
	"strings"
	"testing"

	"github.com/ballparkdata/almanac/internal/database"
	"github.com/ballparkdata/almanac/internal/dataset"
)

func TestRenderResult(t *testing.T) {
	var b strings.Builder
	RenderResult(&b, []string{"year", "team", "gb"}, [][]dataset.Value{
		{dataset.Integer(1998), dataset.Text("New York Yankees"), dataset.Null()},
		{dataset.Integer(1998), dataset.Text("Boston Red Sox"), dataset.Real(22.5)},
	})

	out := b.String()
	for _, want := range []string{"YEAR", "TEAM", "New York Yankees", "22.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTables(t *testing.T) {
	var b strings.Builder
	RenderTables(&b, []database.TableHandle{
		{
			Name: "world_series_champions",
			Columns: []database.ColumnInfo{
				{Name: "id", DataType: "INTEGER"},
				{Name: "year", DataType: "INTEGER"},
			},
		},
	})

	out := b.String()
	for _, want := range []string{"world_series_champions", "id", "INTEGER"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q:\n%s", want, out)
		}
	}
}
