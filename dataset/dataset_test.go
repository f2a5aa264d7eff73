package dataset

import (
	"testing"
	"time"
)

func TestNewNormalizesCells(t *testing.T) {
	ds, err := New(
		[]string{"Name", "Amount", "Created"},
		[]Row{
			{"Name": Text("Alice"), "Amount": Text("100"), "Created": Text("2024-01-15")},
			{"Name": Text("Bob"), "Amount": Text("250.5"), "Created": Text("2024-02-01")},
		},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got, _ := ds.ColumnType("Amount"); got != TypeNumeric {
		t.Errorf("ColumnType(Amount) = %v, want numeric", got)
	}
	if got, _ := ds.ColumnType("Created"); got != TypeDate {
		t.Errorf("ColumnType(Created) = %v, want date", got)
	}

	// Cells of typed columns are converted from text at construction.
	if got := ds.Cell(0, "Amount"); got != Int(100) {
		t.Errorf("Cell(0, Amount) = %+v, want Int(100)", got)
	}
	if got := ds.Cell(1, "Amount"); got != Float(250.5) {
		t.Errorf("Cell(1, Amount) = %+v, want Float(250.5)", got)
	}
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if got, ok := ds.Cell(0, "Created").AsTime(); !ok || !got.Equal(want) {
		t.Errorf("Cell(0, Created) = %v, want %v", got, want)
	}
}

func TestNewWithTypesRejectsDuplicateColumns(t *testing.T) {
	_, err := NewWithTypes([]string{"a", "a"}, map[string]ColumnType{"a": TypeText}, nil)
	if err == nil {
		t.Fatal("NewWithTypes() expected error for duplicate columns")
	}
}

func TestMissingCellsBecomeNull(t *testing.T) {
	ds, err := New([]string{"a", "b"}, []Row{{"a": Text("x")}})
	if err != nil {
		t.Fatal(err)
	}
	if got := ds.Cell(0, "b"); !got.IsNull() {
		t.Errorf("Cell(0, b) = %+v, want null", got)
	}
}

func TestSelect(t *testing.T) {
	ds, err := New([]string{"n"}, []Row{
		{"n": Int(0)}, {"n": Int(1)}, {"n": Int(2)}, {"n": Int(3)},
	})
	if err != nil {
		t.Fatal(err)
	}

	view := ds.Select([]int{1, 3})
	if view.NumRows() != 2 {
		t.Fatalf("Select() rows = %d, want 2", view.NumRows())
	}
	if got := view.Cell(0, "n"); got != Int(1) {
		t.Errorf("view.Cell(0, n) = %+v, want Int(1)", got)
	}
	if got := view.Cell(1, "n"); got != Int(3) {
		t.Errorf("view.Cell(1, n) = %+v, want Int(3)", got)
	}

	// Types and columns carry over.
	if tp, _ := view.ColumnType("n"); tp != TypeNumeric {
		t.Errorf("view.ColumnType(n) = %v, want numeric", tp)
	}
	if view.NumColumns() != ds.NumColumns() {
		t.Errorf("view.NumColumns() = %d, want %d", view.NumColumns(), ds.NumColumns())
	}
}

func TestDedupeColumns(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "no duplicates",
			input: []string{"a", "b", "c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "single duplicate",
			input: []string{"Name", "Age", "Name"},
			want:  []string{"Name", "Age", "Name_1"},
		},
		{
			name:  "triple occurrence",
			input: []string{"x", "x", "x"},
			want:  []string{"x", "x_1", "x_2"},
		},
		{
			name:  "suffix already taken behind",
			input: []string{"A", "A", "A_1"},
			want:  []string{"A", "A_2", "A_1"},
		},
		{
			name:  "suffix already taken ahead",
			input: []string{"A", "A_1", "A"},
			want:  []string{"A", "A_1", "A_2"},
		},
		{
			name:  "empty",
			input: []string{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupeColumns(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("DedupeColumns() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("DedupeColumns() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestFromAny(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   any
		want    Value
		wantErr bool
	}{
		{name: "nil", input: nil, want: Null()},
		{name: "string", input: "x", want: Text("x")},
		{name: "int", input: 42, want: Int(42)},
		{name: "int64", input: int64(42), want: Int(42)},
		{name: "float64", input: 2.5, want: Float(2.5)},
		{name: "bool true", input: true, want: Text("true")},
		{name: "time", input: day, want: Date(day)},
		{name: "passthrough value", input: Int(7), want: Int(7)},
		{name: "huge uint64", input: uint64(1) << 63, wantErr: true},
		{name: "unsupported", input: struct{}{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromAny() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("FromAny() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
