// Package log defines standard attribute keys for feature-preparation
// operations. Using these keys keeps log output consistent and filterable
// across components.
package log

// Model and operation context.
const (
	// ModelNameKey identifies the component type.
	// Examples: "FeatureAssembler", "OneHotEncoder", "LogisticRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "preprocessing", "pipeline", "linear"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey is the number of rows being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of output feature columns.
	FeaturesKey = "data.features"

	// NumericColumnsKey is the number of columns classified as numeric at fit.
	NumericColumnsKey = "data.numeric_columns"

	// CategoricalColumnsKey is the number of columns classified as categorical at fit.
	CategoricalColumnsKey = "data.categorical_columns"

	// VocabularySizeKey is the total one-hot vocabulary size across columns.
	VocabularySizeKey = "data.vocabulary_size"
)

// Performance and training metrics.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy on evaluation.
	AccuracyKey = "metrics.accuracy"

	// LossKey records a loss value during training or evaluation.
	LossKey = "metrics.loss"

	// IterationKey records the iteration count of an iterative optimizer.
	IterationKey = "training.iteration"
)
