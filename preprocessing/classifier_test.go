package preprocessing

import (
	"testing"

	"github.com/tabprep/tabprep/frame"
)

func TestClassifyPartitionsByKind(t *testing.T) {
	df := frame.New(
		frame.NumericColumn("age", []float64{1, 2}),
		frame.CategoricalColumn("plan", []string{"a", "b"}, nil),
		frame.NumericColumn("income", []float64{3, 4}),
		frame.CategoricalColumn("region", []string{"x", "y"}, nil),
	)

	numeric, categorical := Classify(df)

	wantNumeric := []string{"age", "income"}
	wantCategorical := []string{"plan", "region"}

	if len(numeric) != len(wantNumeric) {
		t.Fatalf("numeric = %v, want %v", numeric, wantNumeric)
	}
	for i := range wantNumeric {
		if numeric[i] != wantNumeric[i] {
			t.Errorf("numeric[%d] = %q, want %q", i, numeric[i], wantNumeric[i])
		}
	}
	if len(categorical) != len(wantCategorical) {
		t.Fatalf("categorical = %v, want %v", categorical, wantCategorical)
	}
	for i := range wantCategorical {
		if categorical[i] != wantCategorical[i] {
			t.Errorf("categorical[%d] = %q, want %q", i, categorical[i], wantCategorical[i])
		}
	}
}

func TestClassifyZeroColumns(t *testing.T) {
	df, err := frame.NewWithIndex([]int{0, 1})
	if err != nil {
		t.Fatalf("NewWithIndex: %v", err)
	}

	numeric, categorical := Classify(df)
	if len(numeric) != 0 || len(categorical) != 0 {
		t.Errorf("Classify on zero columns = (%v, %v), want both empty", numeric, categorical)
	}
}
