package model

import "gonum.org/v1/gonum/mat"

// Fitter is the supervised training contract.
type Fitter interface {
	// Fit trains the model on features X and labels y.
	Fit(X, y mat.Matrix) error
}

// Predictor produces point predictions.
type Predictor interface {
	// Predict returns one prediction per row of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// ProbabilityPredictor produces per-class probability estimates.
type ProbabilityPredictor interface {
	// PredictProba returns an (n_samples x n_classes) matrix of probabilities.
	PredictProba(X mat.Matrix) (mat.Matrix, error)
}

// Scorer evaluates a fitted model against labeled data.
type Scorer interface {
	// Score returns the model's default evaluation metric on (X, y).
	Score(X, y mat.Matrix) (float64, error)
}

// LinearModel exposes the learned parameters of a linear estimator for
// inspection.
type LinearModel interface {
	// Weights returns the learned coefficients.
	Weights() []float64
	// Intercept returns the learned intercept.
	Intercept() float64
}
