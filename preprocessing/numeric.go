package preprocessing

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/tabprep/tabprep/core/model"
	"github.com/tabprep/tabprep/frame"
	"github.com/tabprep/tabprep/pkg/errors"
)

// NumericState holds the parameters learned for one numeric column: the
// centering and scaling statistics and the fallback value substituted for
// missing entries at transform time. It is read-only after fit.
type NumericState struct {
	Center float64
	Scale  float64
	Fill   float64
}

// NumericTransformer is the numeric branch of the feature assembler. Fit
// learns, per column, the mean, the population standard deviation, and the
// median as the missing-value fallback. Transform fills missing entries with
// the fallback and standardizes to (value - center) / scale.
//
// Constant-column policy: a column whose standard deviation is below 1e-8 is
// given scale 1.0, so transforming it yields zeros instead of dividing by
// zero.
type NumericTransformer struct {
	State *model.StateManager

	// Columns is the fitted column order; Transform output follows it.
	Columns []string

	// States maps column name to its learned statistics.
	States map[string]NumericState
}

// NewNumericTransformer creates an unfitted numeric branch.
func NewNumericTransformer() *NumericTransformer {
	return &NumericTransformer{State: model.NewStateManager()}
}

// Kind reports the column kind this branch consumes.
func (t *NumericTransformer) Kind() frame.Kind { return frame.Numeric }

// Fit learns per-column statistics from df for the given columns. Calling
// Fit again fully replaces any previously learned state.
func (t *NumericTransformer) Fit(df *frame.Frame, columns []string) error {
	states := make(map[string]NumericState, len(columns))

	for _, name := range columns {
		col, err := numericColumn(df, name, "NumericTransformer.Fit")
		if err != nil {
			return err
		}

		observed := make([]float64, 0, col.Len())
		for i := 0; i < col.Len(); i++ {
			if !col.IsMissing(i) {
				observed = append(observed, col.Float(i))
			}
		}
		if len(observed) == 0 {
			return errors.NewEmptyInputError("NumericTransformer.Fit",
				"column "+name+" has no observed values; statistics are undefined")
		}

		center := stat.Mean(observed, nil)
		scale := stat.PopStdDev(observed, nil)
		if math.Abs(scale) < 1e-8 {
			scale = 1.0
		}

		states[name] = NumericState{
			Center: center,
			Scale:  scale,
			Fill:   median(observed),
		}
	}

	t.Columns = append([]string(nil), columns...)
	t.States = states
	t.State.SetDimensions(len(columns), df.NumRows())
	t.State.SetFitted()
	return nil
}

// Transform fills missing values with the learned fallback and standardizes
// every fitted column, returning a frame whose row index matches df's and
// whose column order is the fit-time column order. The output never contains
// NaN.
func (t *NumericTransformer) Transform(df *frame.Frame) (*frame.Frame, error) {
	if err := t.State.RequireFitted("NumericTransformer", "Transform"); err != nil {
		return nil, err
	}

	out := make([]*frame.Column, 0, len(t.Columns))
	for _, name := range t.Columns {
		col, err := numericColumn(df, name, "NumericTransformer.Transform")
		if err != nil {
			return nil, err
		}
		st := t.States[name]

		values := make([]float64, col.Len())
		for i := range values {
			v := col.Float(i)
			if col.IsMissing(i) {
				v = st.Fill
			}
			values[i] = (v - st.Center) / st.Scale
		}
		out = append(out, frame.NumericColumn(name, values))
	}

	return frame.NewWithIndex(df.Index(), out...)
}

// FeatureNames returns the output column names in fit order.
func (t *NumericTransformer) FeatureNames() []string {
	return append([]string(nil), t.Columns...)
}

// ColumnState returns the learned state for one column.
func (t *NumericTransformer) ColumnState(name string) (NumericState, bool) {
	st, ok := t.States[name]
	return st, ok
}

// numericColumn resolves a fitted numeric column in df, mapping a missing
// column or a kind change to a SchemaMismatchError.
func numericColumn(df *frame.Frame, name, op string) (*frame.Column, error) {
	col, ok := df.Column(name)
	if !ok {
		return nil, errors.NewSchemaMismatchError(op, name, "column seen at fit time is absent")
	}
	if col.Kind() != frame.Numeric {
		return nil, errors.NewSchemaMismatchError(op, name, "expected numeric column, got "+col.Kind().String())
	}
	return col, nil
}

// median returns the middle value of xs, averaging the two central values for
// even lengths. xs must be non-empty; it is not modified.
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
