package preprocessing

import (
	"encoding/gob"
	"time"

	"github.com/tabprep/tabprep/core/model"
	"github.com/tabprep/tabprep/frame"
	"github.com/tabprep/tabprep/pkg/errors"
	"github.com/tabprep/tabprep/pkg/log"
)

func init() {
	// Branches are held behind the ColumnTransformer interface; register the
	// concrete types so a fitted assembler survives gob round-trips.
	gob.Register(&NumericTransformer{})
	gob.Register(&OneHotEncoder{})
}

// ColumnTransformer is the capability contract for one branch of the feature
// assembler. A branch consumes all fit-time columns of one kind, learns
// per-column parameters during Fit, and applies them during Transform.
// The assembler holds an ordered list of branches, so adding a new encoding
// strategy means implementing this interface, not touching the assembler.
type ColumnTransformer interface {
	// Kind reports which column kind the branch consumes.
	Kind() frame.Kind

	// Fit learns per-column parameters from df for the given columns.
	Fit(df *frame.Frame, columns []string) error

	// Transform applies the learned parameters to df. The output frame must
	// preserve df's row index and contain only numeric columns.
	Transform(df *frame.Frame) (*frame.Frame, error)

	// FeatureNames returns the branch's output column names in fit order.
	FeatureNames() []string
}

// FeatureAssembler composes the column branches into one transformer with
// the fit/transform contract. FitTransform classifies the input columns,
// fits every branch on its partition, and returns the combined feature
// frame; Transform repeats only the application half using the frozen state.
//
// The output column order is established at fit time — each branch's output
// in branch order, numeric columns before one-hot indicator columns by
// default — and never varies with the data being transformed.
//
// Concurrent Transform calls against a fitted assembler are safe; a Fit call
// must not run concurrently with any other call on the same instance.
type FeatureAssembler struct {
	State *model.StateManager

	// Branches is the ordered list of column branches.
	Branches []ColumnTransformer

	// Specs is the fit-time column classification, frozen thereafter.
	Specs []frame.ColumnSpec

	logger log.Logger
}

var _ model.FrameTransformer = (*FeatureAssembler)(nil)

// FeatureAssemblerOption configures a FeatureAssembler.
type FeatureAssemblerOption func(*FeatureAssembler)

// WithLogger sets the logger used to report fit and transform operations.
// The default is a no-op logger; the assembler performs no other I/O.
func WithLogger(logger log.Logger) FeatureAssemblerOption {
	return func(a *FeatureAssembler) {
		a.logger = logger
	}
}

// WithBranches replaces the default numeric and categorical branches.
func WithBranches(branches ...ColumnTransformer) FeatureAssemblerOption {
	return func(a *FeatureAssembler) {
		a.Branches = branches
	}
}

// NewFeatureAssembler creates an unfitted assembler with the default
// branches: a NumericTransformer followed by a OneHotEncoder.
func NewFeatureAssembler(opts ...FeatureAssemblerOption) *FeatureAssembler {
	a := &FeatureAssembler{
		State: model.NewStateManager(),
		Branches: []ColumnTransformer{
			NewNumericTransformer(),
			NewOneHotEncoder(),
		},
		logger: log.NopLogger{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FitTransform learns the column partition and every branch's parameters
// from df, then returns the transformed training features. Fitting on zero
// rows is rejected with an EmptyInputError. Calling FitTransform on a fitted
// assembler fully replaces the previous state.
func (a *FeatureAssembler) FitTransform(df *frame.Frame) (*frame.Frame, error) {
	if df.NumRows() == 0 {
		return nil, errors.NewEmptyInputError("FeatureAssembler.Fit", "dataset has zero rows")
	}
	start := time.Now()

	numeric, categorical := Classify(df)
	partitions := map[frame.Kind][]string{
		frame.Numeric:     numeric,
		frame.Categorical: categorical,
	}

	for _, branch := range a.Branches {
		if err := branch.Fit(df, partitions[branch.Kind()]); err != nil {
			return nil, err
		}
	}

	a.Specs = df.Specs()
	a.State.SetDimensions(len(a.FeatureNames()), df.NumRows())
	a.State.SetFitted()

	out, err := a.apply(df)
	if err != nil {
		return nil, err
	}

	// Total indicator columns across the categorical branches, i.e. the sum
	// of the frozen vocabulary sizes.
	vocabSize := 0
	for _, branch := range a.Branches {
		if branch.Kind() == frame.Categorical {
			vocabSize += len(branch.FeatureNames())
		}
	}

	a.log().Info("fit complete",
		log.ModelNameKey, "FeatureAssembler",
		log.OperationKey, "fit_transform",
		log.SamplesKey, df.NumRows(),
		log.NumericColumnsKey, len(numeric),
		log.CategoricalColumnsKey, len(categorical),
		log.VocabularySizeKey, vocabSize,
		log.FeaturesKey, out.NumCols(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return out, nil
}

// Fit learns the transformation parameters from df, discarding the
// transformed training features.
func (a *FeatureAssembler) Fit(df *frame.Frame) error {
	_, err := a.FitTransform(df)
	return err
}

// Transform applies the fit-time parameters to df. It never re-learns state:
// the column partition, statistics, fallbacks, and vocabularies are exactly
// those established by Fit. Returns a NotFittedError before Fit.
func (a *FeatureAssembler) Transform(df *frame.Frame) (*frame.Frame, error) {
	if err := a.State.RequireFitted("FeatureAssembler", "Transform"); err != nil {
		return nil, err
	}
	out, err := a.apply(df)
	if err != nil {
		return nil, err
	}

	a.log().Debug("transform complete",
		log.ModelNameKey, "FeatureAssembler",
		log.OperationKey, "transform",
		log.SamplesKey, df.NumRows(),
		log.FeaturesKey, out.NumCols(),
	)
	return out, nil
}

// apply concatenates the branch outputs column-wise, preserving df's row
// index.
func (a *FeatureAssembler) apply(df *frame.Frame) (*frame.Frame, error) {
	out, err := frame.NewWithIndex(df.Index())
	if err != nil {
		return nil, err
	}

	for _, branch := range a.Branches {
		if len(branch.FeatureNames()) == 0 {
			continue // branch had no columns at fit time
		}
		part, err := branch.Transform(df)
		if err != nil {
			return nil, err
		}
		out, err = out.Concat(part)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FeatureNames returns the output column names in the order established at
// fit time.
func (a *FeatureAssembler) FeatureNames() []string {
	var names []string
	for _, branch := range a.Branches {
		names = append(names, branch.FeatureNames()...)
	}
	return names
}

// ColumnSpecs returns the fit-time column classification.
func (a *FeatureAssembler) ColumnSpecs() []frame.ColumnSpec {
	return append([]frame.ColumnSpec(nil), a.Specs...)
}

// log returns the configured logger. An assembler restored by gob decoding
// has no logger; it falls back to the no-op logger.
func (a *FeatureAssembler) log() log.Logger {
	if a.logger == nil {
		return log.NopLogger{}
	}
	return a.logger
}
