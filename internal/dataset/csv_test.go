package dataset

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "Year,Team,Wins\n1998,New York Yankees,114\n1998,Boston Red Sox,92\n"
	ds, err := ReadCSV("standings", strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}
	if ds.Name != "standings" {
		t.Errorf("Name = %q, want standings", ds.Name)
	}
	if len(ds.Headers) != 3 || ds.Headers[0] != "Year" {
		t.Errorf("Headers = %v", ds.Headers)
	}
	if len(ds.Rows) != 2 || ds.Rows[0][1] != "New York Yankees" {
		t.Errorf("Rows = %v", ds.Rows)
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	input := "a,b,c\n1\n1,2,3,4\n"
	ds, err := ReadCSV("ragged", strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}
	for i, row := range ds.Rows {
		if len(row) != 3 {
			t.Errorf("row %d has width %d, want 3", i, len(row))
		}
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	_, err := ReadCSV("empty", strings.NewReader(""))
	if err == nil {
		t.Fatalf("ReadCSV() on empty input should fail")
	}
}

func TestWriteAndReadCSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "world_series_champions.csv")

	ds := New("world_series_champions",
		[]string{"Year", "World Series Champion", "League"},
		[][]string{
			{"1994", "No World Series", "Strike"},
			{"1998", "New York Yankees", "AL"},
		})
	if err := WriteCSVFile(ds, path); err != nil {
		t.Fatalf("WriteCSVFile() failed: %v", err)
	}

	got, err := ReadCSVFile(path)
	if err != nil {
		t.Fatalf("ReadCSVFile() failed: %v", err)
	}
	if got.Name != "world_series_champions" {
		t.Errorf("Name = %q, want world_series_champions", got.Name)
	}
	if len(got.Rows) != 2 || got.Rows[0][1] != "No World Series" {
		t.Errorf("Rows = %v", got.Rows)
	}
}
