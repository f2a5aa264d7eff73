package filter

import (
	"testing"

	"github.com/hupe1980/tablefilter/dataset"
)

func TestLegal(t *testing.T) {
	tests := []struct {
		name string
		t    dataset.ColumnType
		op   Operator
		want bool
	}{
		{name: "text equals", t: dataset.TypeText, op: OpEquals, want: true},
		{name: "text contains", t: dataset.TypeText, op: OpContains, want: true},
		{name: "text starts_with", t: dataset.TypeText, op: OpStartsWith, want: true},
		{name: "text gt illegal", t: dataset.TypeText, op: OpGreaterThan, want: false},
		{name: "text between illegal", t: dataset.TypeText, op: OpBetween, want: false},
		{name: "numeric gt", t: dataset.TypeNumeric, op: OpGreaterThan, want: true},
		{name: "numeric between", t: dataset.TypeNumeric, op: OpBetween, want: true},
		{name: "numeric contains illegal", t: dataset.TypeNumeric, op: OpContains, want: false},
		{name: "numeric before illegal", t: dataset.TypeNumeric, op: OpBefore, want: false},
		{name: "date before", t: dataset.TypeDate, op: OpBefore, want: true},
		{name: "date between_dates", t: dataset.TypeDate, op: OpBetweenDates, want: true},
		{name: "date gt illegal", t: dataset.TypeDate, op: OpGreaterThan, want: false},
		{name: "date contains illegal", t: dataset.TypeDate, op: OpContains, want: false},
		{name: "in legal everywhere text", t: dataset.TypeText, op: OpIn, want: true},
		{name: "in legal everywhere numeric", t: dataset.TypeNumeric, op: OpIn, want: true},
		{name: "in legal everywhere date", t: dataset.TypeDate, op: OpIn, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Legal(tt.t, tt.op); got != tt.want {
				t.Errorf("Legal(%v, %v) = %v, want %v", tt.t, tt.op, got, tt.want)
			}
		})
	}
}

func TestLegalOperatorsCopy(t *testing.T) {
	ops := LegalOperators(dataset.TypeText)
	if len(ops) == 0 {
		t.Fatal("LegalOperators(text) empty")
	}
	ops[0] = Operator("mutated")
	if LegalOperators(dataset.TypeText)[0] == "mutated" {
		t.Error("LegalOperators() returned shared backing slice")
	}
}
