// Package linear provides linear estimators that consume the numeric feature
// matrices produced by the preprocessing package.
package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tabprep/tabprep/core/model"
	"github.com/tabprep/tabprep/core/parallel"
	"github.com/tabprep/tabprep/metrics"
	"github.com/tabprep/tabprep/pkg/errors"
	"github.com/tabprep/tabprep/pkg/log"
)

// LogisticRegression is a binary classifier trained by full-batch gradient
// descent on the logistic loss with optional L2 regularization. Weights are
// zero-initialized, so training is deterministic for identical inputs.
type LogisticRegression struct {
	state  *model.StateManager
	logger log.Logger

	// Hyperparameters
	learningRate float64
	maxIter      int
	tol          float64
	alpha        float64 // L2 penalty strength
	fitIntercept bool

	// Learned parameters
	coef      []float64
	intercept float64
	nFeatures int
	nIter     int
}

// LogisticRegressionOption configures a LogisticRegression.
type LogisticRegressionOption func(*LogisticRegression)

// WithLearningRate sets the gradient-descent step size.
func WithLearningRate(lr float64) LogisticRegressionOption {
	return func(m *LogisticRegression) { m.learningRate = lr }
}

// WithMaxIter sets the iteration budget.
func WithMaxIter(n int) LogisticRegressionOption {
	return func(m *LogisticRegression) { m.maxIter = n }
}

// WithTol sets the loss-improvement threshold below which training stops.
func WithTol(tol float64) LogisticRegressionOption {
	return func(m *LogisticRegression) { m.tol = tol }
}

// WithAlpha sets the L2 regularization strength.
func WithAlpha(alpha float64) LogisticRegressionOption {
	return func(m *LogisticRegression) { m.alpha = alpha }
}

// WithFitIntercept controls whether an intercept term is learned.
func WithFitIntercept(fit bool) LogisticRegressionOption {
	return func(m *LogisticRegression) { m.fitIntercept = fit }
}

// WithLogger sets the logger used to report training progress. The default
// is a no-op logger.
func WithLogger(logger log.Logger) LogisticRegressionOption {
	return func(m *LogisticRegression) { m.logger = logger }
}

// NewLogisticRegression creates a classifier with default hyperparameters.
func NewLogisticRegression(opts ...LogisticRegressionOption) *LogisticRegression {
	m := &LogisticRegression{
		state:        model.NewStateManager(),
		logger:       log.NopLogger{},
		learningRate: 0.1,
		maxIter:      1000,
		tol:          1e-6,
		alpha:        0.0,
		fitIntercept: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fit trains the classifier on features X and binary labels y (an n x 1
// matrix of 0/1 values). Calling Fit again retrains from scratch. If the
// optimizer exhausts its iteration budget before reaching tol, a
// ConvergenceWarning is reported and the fitted state is kept.
func (m *LogisticRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "LogisticRegression.Fit")

	nSamples, nFeatures := X.Dims()
	yRows, yCols := y.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.NewEmptyInputError("LogisticRegression.Fit", "feature matrix has no data")
	}
	if yRows != nSamples {
		return errors.NewDimensionError("LogisticRegression.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewDimensionError("LogisticRegression.Fit", 1, yCols, 1)
	}

	labels := make([]float64, nSamples)
	for i := 0; i < nSamples; i++ {
		v := y.At(i, 0)
		if v != 0 && v != 1 {
			return errors.NewValueError("LogisticRegression.Fit", "labels must be binary (0 or 1)")
		}
		labels[i] = v
	}

	coef := make([]float64, nFeatures)
	intercept := 0.0
	probs := make([]float64, nSamples)
	grad := make([]float64, nFeatures)

	prevLoss := math.Inf(1)
	finalLoss := math.Inf(1)
	converged := false
	iter := 0

	for ; iter < m.maxIter; iter++ {
		// Forward pass; rows are independent, so it parallelizes cleanly.
		parallel.ForWithThreshold(nSamples, 256, func(start, end int) {
			for i := start; i < end; i++ {
				z := intercept
				for j := 0; j < nFeatures; j++ {
					z += coef[j] * X.At(i, j)
				}
				probs[i] = sigmoid(z)
			}
		})

		// Gradient and loss.
		for j := range grad {
			grad[j] = 0
		}
		gradIntercept := 0.0
		loss := 0.0
		for i := 0; i < nSamples; i++ {
			diff := probs[i] - labels[i]
			for j := 0; j < nFeatures; j++ {
				grad[j] += diff * X.At(i, j)
			}
			gradIntercept += diff

			p := math.Min(math.Max(probs[i], 1e-15), 1-1e-15)
			if labels[i] == 1 {
				loss -= math.Log(p)
			} else {
				loss -= math.Log(1 - p)
			}
		}
		loss /= float64(nSamples)

		for j := 0; j < nFeatures; j++ {
			grad[j] = grad[j]/float64(nSamples) + m.alpha*coef[j]
			loss += 0.5 * m.alpha * coef[j] * coef[j]
			coef[j] -= m.learningRate * grad[j]
		}
		if m.fitIntercept {
			intercept -= m.learningRate * gradIntercept / float64(nSamples)
		}

		if err := errors.CheckNumericalStability("LogisticRegression.Fit", coef, iter); err != nil {
			return err
		}

		finalLoss = loss
		if math.Abs(prevLoss-loss) < m.tol {
			converged = true
			iter++
			break
		}
		prevLoss = loss
	}

	if !converged {
		errors.Warn(errors.NewConvergenceWarning("LogisticRegression", m.maxIter,
			"loss improvement did not reach tol"))
	}

	m.coef = coef
	m.intercept = intercept
	m.nFeatures = nFeatures
	m.nIter = iter
	m.state.SetDimensions(nFeatures, nSamples)
	m.state.SetFitted()

	m.logger.Info("fit complete",
		log.ModelNameKey, "LogisticRegression",
		log.OperationKey, "fit",
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.IterationKey, iter,
		log.LossKey, finalLoss,
	)
	return nil
}

// PredictProba returns an (n x 2) matrix of class probabilities: column 0 is
// the negative class, column 1 the positive class.
func (m *LogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if err := m.state.RequireFitted("LogisticRegression", "PredictProba"); err != nil {
		return nil, err
	}
	nSamples, nFeatures := X.Dims()
	if nFeatures != m.nFeatures {
		return nil, errors.NewDimensionError("LogisticRegression.PredictProba", m.nFeatures, nFeatures, 1)
	}

	out := mat.NewDense(nSamples, 2, nil)
	parallel.ForWithThreshold(nSamples, 256, func(start, end int) {
		for i := start; i < end; i++ {
			z := m.intercept
			for j := 0; j < nFeatures; j++ {
				z += m.coef[j] * X.At(i, j)
			}
			p := sigmoid(z)
			out.Set(i, 0, 1-p)
			out.Set(i, 1, p)
		}
	})
	return out, nil
}

// Predict returns an (n x 1) matrix of 0/1 labels using a 0.5 threshold on
// the positive-class probability.
func (m *LogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	proba, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}
	nSamples, _ := proba.Dims()
	out := mat.NewDense(nSamples, 1, nil)
	for i := 0; i < nSamples; i++ {
		if proba.At(i, 1) >= 0.5 {
			out.Set(i, 0, 1)
		}
	}
	return out, nil
}

// Score returns the accuracy of Predict against the true labels.
func (m *LogisticRegression) Score(X, y mat.Matrix) (float64, error) {
	pred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}
	nSamples, _ := pred.Dims()
	yTrue := mat.NewVecDense(nSamples, nil)
	yPred := mat.NewVecDense(nSamples, nil)
	for i := 0; i < nSamples; i++ {
		yTrue.SetVec(i, y.At(i, 0))
		yPred.SetVec(i, pred.At(i, 0))
	}
	acc, err := metrics.Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	m.logger.Debug("score computed",
		log.ModelNameKey, "LogisticRegression",
		log.OperationKey, "score",
		log.SamplesKey, nSamples,
		log.AccuracyKey, acc,
	)
	return acc, nil
}

// Weights returns a copy of the learned coefficients.
func (m *LogisticRegression) Weights() []float64 {
	return append([]float64(nil), m.coef...)
}

// Intercept returns the learned intercept.
func (m *LogisticRegression) Intercept() float64 {
	return m.intercept
}

// NIter returns the number of gradient-descent iterations performed.
func (m *LogisticRegression) NIter() int {
	return m.nIter
}

// IsFitted reports whether the model has been trained.
func (m *LogisticRegression) IsFitted() bool {
	return m.state.IsFitted()
}

// ExportWeights snapshots the learned parameters for inspection or external
// serialization. featureNames may be nil; when given it must match the
// fitted feature count.
func (m *LogisticRegression) ExportWeights(featureNames []string) (*model.ModelWeights, error) {
	if err := m.state.RequireFitted("LogisticRegression", "ExportWeights"); err != nil {
		return nil, err
	}
	if featureNames != nil && len(featureNames) != m.nFeatures {
		return nil, errors.NewDimensionError("LogisticRegression.ExportWeights", m.nFeatures, len(featureNames), 1)
	}
	return &model.ModelWeights{
		ModelType:    "LogisticRegression",
		Coefficients: m.Weights(),
		Intercept:    m.intercept,
		Features:     append([]string(nil), featureNames...),
		Hyperparameters: map[string]interface{}{
			"learning_rate": m.learningRate,
			"max_iter":      m.maxIter,
			"tol":           m.tol,
			"alpha":         m.alpha,
			"fit_intercept": m.fitIntercept,
		},
	}, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
