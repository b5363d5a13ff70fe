package dataset

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		ds      Dataset
		want    []Column
		wantErr bool
	}{
		{
			name: "Types inferred per column",
			ds: New("standings", []string{"Year", "Team", "WP"}, [][]string{
				{"1998", "New York Yankees", ".704"},
				{"1998", "Boston Red Sox", ".568"},
			}),
			want: []Column{
				{Name: "year", RawLabel: "Year", Type: TypeInteger},
				{Name: "team", RawLabel: "Team", Type: TypeText},
				{Name: "wp", RawLabel: "WP", Type: TypeReal},
			},
		},
		{
			name: "Missing cells mark column nullable",
			ds: New("payrolls", []string{"Year", "Payroll"}, [][]string{
				{"1975", ""},
				{"1998", "63460567"},
			}),
			want: []Column{
				{Name: "year", RawLabel: "Year", Type: TypeInteger},
				{Name: "payroll", RawLabel: "Payroll", Type: TypeInteger, Nullable: true},
			},
		},
		{
			name: "Single non-numeric value demotes column to text",
			ds: New("champions", []string{"Year", "Games"}, [][]string{
				{"1993", "6"},
				{"1994", "N/A"},
				{"1995", "6"},
			}),
			want: []Column{
				{Name: "year", RawLabel: "Year", Type: TypeInteger},
				{Name: "games", RawLabel: "Games", Type: TypeText},
			},
		},
		{
			name: "Column with no values stays text and nullable",
			ds:   New("empty", []string{"Notes"}, [][]string{{""}, {""}}),
			want: []Column{
				{Name: "notes", RawLabel: "Notes", Type: TypeText, Nullable: true},
			},
		},
		{
			name: "Colliding headers get unique names",
			ds:   New("dupes", []string{"W-L", "W L"}, nil),
			want: []Column{
				{Name: "w_l", RawLabel: "W-L", Type: TypeText, Nullable: false},
				{Name: "w_l_2", RawLabel: "W L", Type: TypeText, Nullable: false},
			},
		},
		{
			name:    "No columns is an error",
			ds:      Dataset{Name: "nothing"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.ds.Normalize()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPadsAndTruncatesRows(t *testing.T) {
	ds := New("ragged", []string{"a", "b", "c"}, [][]string{
		{"1"},
		{"1", "2", "3", "4"},
	})
	if len(ds.Rows[0]) != 3 || ds.Rows[0][1] != "" || ds.Rows[0][2] != "" {
		t.Errorf("short row not padded: %v", ds.Rows[0])
	}
	if len(ds.Rows[1]) != 3 {
		t.Errorf("long row not truncated: %v", ds.Rows[1])
	}
}

func TestTypedRow(t *testing.T) {
	ds := New("standings", []string{"Year", "Team", "WP", "GB"}, [][]string{
		{"1998", "New York Yankees", ".704", ""},
		{"1998", "Boston Red Sox", ".568", "22.0"},
	})
	columns, err := ds.Normalize()
	if err != nil {
		t.Fatalf("Normalize() failed: %v", err)
	}

	got := ds.TypedRow(0, columns)
	want := []Value{Integer(1998), Text("New York Yankees"), Real(0.704), Null()}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TypedRow(0) = %v, want %v", got, want)
	}

	got = ds.TypedRow(1, columns)
	want = []Value{Integer(1998), Text("Boston Red Sox"), Real(0.568), Real(22.0)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TypedRow(1) = %v, want %v", got, want)
	}
}

func TestValueSQL(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want any
	}{
		{"Null maps to nil", Null(), nil},
		{"Text passes through", Text("x"), "x"},
		{"Integer is int64", Integer(7), int64(7)},
		{"Real is float64", Real(0.5), float64(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.SQL(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SQL() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}
