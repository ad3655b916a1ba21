// Package preprocessing implements fit/transform feature preparation for
// tabular data: column classification, missing-value imputation, numeric
// standardization, and one-hot encoding with a fit-time-frozen vocabulary,
// composed by a FeatureAssembler into a single transformer.
package preprocessing

import (
	"github.com/tabprep/tabprep/frame"
)

// Classify partitions the frame's columns into numeric and categorical name
// lists by declared column kind, preserving frame column order. It is a pure
// function of the frame's schema and is called once, during fit; the
// resulting partition is frozen for the transformer's lifetime.
//
// A frame with zero columns yields two empty lists and downstream branches
// become no-ops.
func Classify(df *frame.Frame) (numeric, categorical []string) {
	for _, spec := range df.Specs() {
		switch spec.Kind {
		case frame.Numeric:
			numeric = append(numeric, spec.Name)
		case frame.Categorical:
			categorical = append(categorical, spec.Name)
		}
	}
	return numeric, categorical
}
