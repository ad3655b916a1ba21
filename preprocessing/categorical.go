package preprocessing

import (
	"sort"

	"github.com/tabprep/tabprep/core/model"
	"github.com/tabprep/tabprep/frame"
	"github.com/tabprep/tabprep/pkg/errors"
)

// CategoricalState holds the parameters learned for one categorical column:
// the fallback category substituted for missing entries and the ordered
// vocabulary that fixes the indicator-column layout. It is read-only after
// fit.
type CategoricalState struct {
	Fill       string
	Vocabulary []string
}

// OneHotEncoder is the categorical branch of the feature assembler. Fit
// learns, per column, the most frequent category as the missing-value
// fallback and the lexicographically sorted set of distinct categories as the
// vocabulary. Transform fills missing entries with the fallback and expands
// each column into one indicator column per vocabulary entry, named
// "{column}_{category}".
//
// The vocabulary is frozen at fit time. Unknown-category policy: a
// non-missing value absent from the vocabulary is passed through unmapped and
// produces an all-zero indicator segment; the fallback fills only missing
// entries, never unknown ones.
type OneHotEncoder struct {
	State *model.StateManager

	// Columns is the fitted column order; Transform output follows it.
	Columns []string

	// States maps column name to its learned fallback and vocabulary.
	States map[string]CategoricalState
}

// NewOneHotEncoder creates an unfitted categorical branch.
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{State: model.NewStateManager()}
}

// Kind reports the column kind this branch consumes.
func (e *OneHotEncoder) Kind() frame.Kind { return frame.Categorical }

// Fit learns per-column fallbacks and vocabularies from df for the given
// columns. Calling Fit again fully replaces any previously learned state.
func (e *OneHotEncoder) Fit(df *frame.Frame, columns []string) error {
	states := make(map[string]CategoricalState, len(columns))

	for _, name := range columns {
		col, err := categoricalColumn(df, name, "OneHotEncoder.Fit")
		if err != nil {
			return err
		}

		counts := make(map[string]int)
		for i := 0; i < col.Len(); i++ {
			if !col.IsMissing(i) {
				counts[col.Category(i)]++
			}
		}
		if len(counts) == 0 {
			return errors.NewEmptyInputError("OneHotEncoder.Fit",
				"column "+name+" has no observed values; fallback is undefined")
		}

		vocabulary := make([]string, 0, len(counts))
		for category := range counts {
			vocabulary = append(vocabulary, category)
		}
		sort.Strings(vocabulary)

		// Most frequent category; sorted iteration makes lexicographically
		// smallest win ties, keeping fit deterministic across runs.
		fill := vocabulary[0]
		for _, category := range vocabulary {
			if counts[category] > counts[fill] {
				fill = category
			}
		}

		states[name] = CategoricalState{Fill: fill, Vocabulary: vocabulary}
	}

	e.Columns = append([]string(nil), columns...)
	e.States = states
	e.State.SetDimensions(len(columns), df.NumRows())
	e.State.SetFitted()
	return nil
}

// Transform fills missing values with the learned fallback and one-hot
// encodes every fitted column against its frozen vocabulary. The returned
// frame's row index matches df's; its columns are the indicator columns in
// fit-time vocabulary order.
func (e *OneHotEncoder) Transform(df *frame.Frame) (*frame.Frame, error) {
	if err := e.State.RequireFitted("OneHotEncoder", "Transform"); err != nil {
		return nil, err
	}

	out := make([]*frame.Column, 0, len(e.FeatureNames()))
	for _, name := range e.Columns {
		col, err := categoricalColumn(df, name, "OneHotEncoder.Transform")
		if err != nil {
			return nil, err
		}
		st := e.States[name]

		filled := make([]string, col.Len())
		for i := range filled {
			if col.IsMissing(i) {
				filled[i] = st.Fill
			} else {
				filled[i] = col.Category(i)
			}
		}

		for _, category := range st.Vocabulary {
			indicator := make([]float64, len(filled))
			for i, v := range filled {
				if v == category {
					indicator[i] = 1
				}
			}
			out = append(out, frame.NumericColumn(name+"_"+category, indicator))
		}
	}

	return frame.NewWithIndex(df.Index(), out...)
}

// FeatureNames returns the indicator column names in fit order: for each
// fitted column, one "{column}_{category}" entry per vocabulary value.
func (e *OneHotEncoder) FeatureNames() []string {
	var names []string
	for _, name := range e.Columns {
		for _, category := range e.States[name].Vocabulary {
			names = append(names, name+"_"+category)
		}
	}
	return names
}

// ColumnState returns the learned state for one column.
func (e *OneHotEncoder) ColumnState(name string) (CategoricalState, bool) {
	st, ok := e.States[name]
	return st, ok
}

// categoricalColumn resolves a fitted categorical column in df, mapping a
// missing column or a kind change to a SchemaMismatchError.
func categoricalColumn(df *frame.Frame, name, op string) (*frame.Column, error) {
	col, ok := df.Column(name)
	if !ok {
		return nil, errors.NewSchemaMismatchError(op, name, "column seen at fit time is absent")
	}
	if col.Kind() != frame.Categorical {
		return nil, errors.NewSchemaMismatchError(op, name, "expected categorical column, got "+col.Kind().String())
	}
	return col, nil
}
