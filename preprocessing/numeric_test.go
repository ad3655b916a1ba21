package preprocessing

import (
	"math"
	"testing"

	"github.com/tabprep/tabprep/frame"
	"github.com/tabprep/tabprep/pkg/errors"
)

const tol = 1e-9

func TestNumericTransformerFitStatistics(t *testing.T) {
	df := frame.New(
		frame.NumericColumn("num", []float64{1, 2, 3, frame.Missing}),
	)

	tr := NewNumericTransformer()
	if err := tr.Fit(df, []string{"num"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	st, ok := tr.ColumnState("num")
	if !ok {
		t.Fatal("no state learned for column num")
	}
	if math.Abs(st.Center-2.0) > tol {
		t.Errorf("Center = %v, want 2.0", st.Center)
	}
	// Population standard deviation of {1, 2, 3}: sqrt(2/3).
	wantScale := math.Sqrt(2.0 / 3.0)
	if math.Abs(st.Scale-wantScale) > tol {
		t.Errorf("Scale = %v, want %v", st.Scale, wantScale)
	}
	if math.Abs(st.Fill-2.0) > tol {
		t.Errorf("Fill = %v, want median 2.0", st.Fill)
	}
}

func TestNumericTransformerMedianEvenCount(t *testing.T) {
	df := frame.New(
		frame.NumericColumn("num", []float64{4, 1, 3, 2}),
	)
	tr := NewNumericTransformer()
	if err := tr.Fit(df, []string{"num"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	st, _ := tr.ColumnState("num")
	if math.Abs(st.Fill-2.5) > tol {
		t.Errorf("Fill = %v, want 2.5 (midpoint of the two central values)", st.Fill)
	}
}

func TestNumericTransformerTransform(t *testing.T) {
	train := frame.New(
		frame.NumericColumn("num", []float64{1, 2, 3, frame.Missing}),
	)
	tr := NewNumericTransformer()
	if err := tr.Fit(train, []string{"num"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	test := frame.New(
		frame.NumericColumn("num", []float64{frame.Missing, 3}),
	)
	out, err := tr.Transform(test)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	col, _ := out.Column("num")
	// Missing entry fills with the median (2.0), which equals the mean, so
	// the standardized value is exactly zero — never NaN.
	if math.IsNaN(col.Float(0)) {
		t.Fatal("missing value transformed to NaN")
	}
	if math.Abs(col.Float(0)) > tol {
		t.Errorf("filled value = %v, want 0", col.Float(0))
	}
	want := (3.0 - 2.0) / math.Sqrt(2.0/3.0)
	if math.Abs(col.Float(1)-want) > tol {
		t.Errorf("standardized value = %v, want %v", col.Float(1), want)
	}
}

func TestNumericTransformerConstantColumnPolicy(t *testing.T) {
	// Constant column: standard deviation is zero, so the scale is forced to
	// 1.0 and transformed values become zero rather than dividing by zero.
	df := frame.New(
		frame.NumericColumn("const", []float64{5, 5, 5}),
	)
	tr := NewNumericTransformer()
	if err := tr.Fit(df, []string{"const"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	st, _ := tr.ColumnState("const")
	if st.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0 for constant column", st.Scale)
	}

	out, err := tr.Transform(df)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	col, _ := out.Column("const")
	for i := 0; i < col.Len(); i++ {
		if col.Float(i) != 0 {
			t.Errorf("transformed constant value[%d] = %v, want 0", i, col.Float(i))
		}
	}
}

func TestNumericTransformerNotFitted(t *testing.T) {
	tr := NewNumericTransformer()
	_, err := tr.Transform(frame.New(frame.NumericColumn("a", []float64{1})))
	if err == nil {
		t.Fatal("expected NotFittedError")
	}
	var notFitted *errors.NotFittedError
	if !errors.As(err, &notFitted) {
		t.Errorf("expected NotFittedError, got %T", err)
	}
}

func TestNumericTransformerSchemaMismatch(t *testing.T) {
	train := frame.New(frame.NumericColumn("a", []float64{1, 2}))
	tr := NewNumericTransformer()
	if err := tr.Fit(train, []string{"a"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	tests := []struct {
		name string
		df   *frame.Frame
	}{
		{
			name: "column absent",
			df:   frame.New(frame.NumericColumn("b", []float64{1})),
		},
		{
			name: "kind changed to categorical",
			df:   frame.New(frame.CategoricalColumn("a", []string{"x"}, nil)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.Transform(tt.df)
			if err == nil {
				t.Fatal("expected SchemaMismatchError")
			}
			var schemaErr *errors.SchemaMismatchError
			if !errors.As(err, &schemaErr) {
				t.Errorf("expected SchemaMismatchError, got %T: %v", err, err)
			}
		})
	}
}

func TestNumericTransformerAllMissingColumn(t *testing.T) {
	df := frame.New(
		frame.NumericColumn("empty", []float64{frame.Missing, frame.Missing}),
	)
	tr := NewNumericTransformer()
	err := tr.Fit(df, []string{"empty"})
	if err == nil {
		t.Fatal("expected EmptyInputError for all-missing column")
	}
	var emptyErr *errors.EmptyInputError
	if !errors.As(err, &emptyErr) {
		t.Errorf("expected EmptyInputError, got %T", err)
	}
}

func TestNumericTransformerPreservesOrderAndIndex(t *testing.T) {
	df, err := frame.NewWithIndex([]int{10, 20, 30},
		frame.NumericColumn("b", []float64{1, 2, 3}),
		frame.NumericColumn("a", []float64{4, 5, 6}),
	)
	if err != nil {
		t.Fatalf("NewWithIndex: %v", err)
	}

	tr := NewNumericTransformer()
	// Fit order b, a must also be the output order.
	if err := tr.Fit(df, []string{"b", "a"}); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	out, err := tr.Transform(df)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}

	names := out.Names()
	if names[0] != "b" || names[1] != "a" {
		t.Errorf("output order = %v, want [b a]", names)
	}
	idx := out.Index()
	want := []int{10, 20, 30}
	for i := range want {
		if idx[i] != want[i] {
			t.Errorf("index[%d] = %d, want %d", i, idx[i], want[i])
		}
	}
}

func TestNumericTransformerEmptyColumnList(t *testing.T) {
	df := frame.New(frame.NumericColumn("a", []float64{1}))
	tr := NewNumericTransformer()
	if err := tr.Fit(df, nil); err != nil {
		t.Fatalf("Fit with no columns should succeed, got %v", err)
	}
	if len(tr.FeatureNames()) != 0 {
		t.Errorf("FeatureNames = %v, want empty", tr.FeatureNames())
	}
}
