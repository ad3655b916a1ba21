// Package pipeline chains a feature-preparation stage with a final estimator
// behind one fit/predict surface, so callers hand in raw tabular frames and
// get predictions back.
package pipeline

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tabprep/tabprep/core/model"
	"github.com/tabprep/tabprep/frame"
	"github.com/tabprep/tabprep/pkg/errors"
	"github.com/tabprep/tabprep/pkg/log"
)

// Pipeline couples a FrameTransformer (typically a FeatureAssembler) with a
// final estimator. Fit runs fit_transform on the preparation stage and trains
// the estimator on the resulting matrix; the predict methods repeat only the
// transform half, so the preparation stage never re-learns state after fit.
type Pipeline struct {
	state  *model.StateManager
	logger log.Logger

	prep      model.FrameTransformer
	estimator interface{}
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used to report pipeline operations. The default
// is a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New creates a Pipeline from a preparation stage and a final estimator. The
// estimator's capabilities are checked structurally when each method is
// called: Fit requires model.Fitter, Predict requires model.Predictor, and
// so on.
func New(prep model.FrameTransformer, estimator interface{}, opts ...Option) *Pipeline {
	p := &Pipeline{
		state:     model.NewStateManager(),
		logger:    log.NopLogger{},
		prep:      prep,
		estimator: estimator,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fit fits the preparation stage on df, then trains the estimator on the
// transformed features and labels y.
func (p *Pipeline) Fit(df *frame.Frame, y mat.Matrix) error {
	features, err := p.prep.FitTransform(df)
	if err != nil {
		return errors.Wrap(err, "pipeline: failed to fit preparation stage")
	}
	X, err := features.Matrix()
	if err != nil {
		return errors.Wrap(err, "pipeline: preparation output is not numeric")
	}

	fitter, ok := p.estimator.(model.Fitter)
	if !ok {
		return errors.NewValueError("Pipeline.Fit", "final estimator does not implement Fit(X, y)")
	}
	if err := fitter.Fit(X, y); err != nil {
		return errors.Wrap(err, "pipeline: failed to fit final estimator")
	}

	p.state.SetFitted()

	rows, cols := X.Dims()
	p.logger.Info("pipeline fit complete",
		log.ComponentKey, "pipeline",
		log.OperationKey, "fit",
		log.SamplesKey, rows,
		log.FeaturesKey, cols,
	)
	return nil
}

// Transform applies the fitted preparation stage to df.
func (p *Pipeline) Transform(df *frame.Frame) (*frame.Frame, error) {
	if err := p.state.RequireFitted("Pipeline", "Transform"); err != nil {
		return nil, err
	}
	return p.prep.Transform(df)
}

// Predict transforms df and predicts with the final estimator.
func (p *Pipeline) Predict(df *frame.Frame) (mat.Matrix, error) {
	if err := p.state.RequireFitted("Pipeline", "Predict"); err != nil {
		return nil, err
	}
	X, err := p.features(df)
	if err != nil {
		return nil, err
	}
	predictor, ok := p.estimator.(model.Predictor)
	if !ok {
		return nil, errors.NewValueError("Pipeline.Predict", "final estimator does not implement Predict")
	}
	return predictor.Predict(X)
}

// PredictProba transforms df and returns the estimator's class probabilities.
func (p *Pipeline) PredictProba(df *frame.Frame) (mat.Matrix, error) {
	if err := p.state.RequireFitted("Pipeline", "PredictProba"); err != nil {
		return nil, err
	}
	X, err := p.features(df)
	if err != nil {
		return nil, err
	}
	predictor, ok := p.estimator.(model.ProbabilityPredictor)
	if !ok {
		return nil, errors.NewValueError("Pipeline.PredictProba", "final estimator does not implement PredictProba")
	}
	return predictor.PredictProba(X)
}

// Score transforms df and evaluates the estimator against y.
func (p *Pipeline) Score(df *frame.Frame, y mat.Matrix) (float64, error) {
	if err := p.state.RequireFitted("Pipeline", "Score"); err != nil {
		return 0, err
	}
	X, err := p.features(df)
	if err != nil {
		return 0, err
	}
	scorer, ok := p.estimator.(model.Scorer)
	if !ok {
		return 0, errors.NewValueError("Pipeline.Score", "final estimator does not implement Score")
	}
	return scorer.Score(X, y)
}

// FitPredict fits the pipeline and predicts on the training frame.
func (p *Pipeline) FitPredict(df *frame.Frame, y mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(df, y); err != nil {
		return nil, err
	}
	return p.Predict(df)
}

// Estimator returns the final estimator for parameter inspection.
func (p *Pipeline) Estimator() interface{} {
	return p.estimator
}

// features runs the fitted preparation stage and converts to a matrix.
func (p *Pipeline) features(df *frame.Frame) (mat.Matrix, error) {
	features, err := p.prep.Transform(df)
	if err != nil {
		return nil, errors.Wrap(err, "pipeline: failed to transform")
	}
	X, err := features.Matrix()
	if err != nil {
		return nil, errors.Wrap(err, "pipeline: preparation output is not numeric")
	}
	return X, nil
}
