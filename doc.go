// Package tabprep provides fit/transform feature preparation for tabular data,
// turning raw, possibly incomplete, mixed-type tables into numeric matrices
// ready for any downstream statistical model.
//
// The library keeps a strict separation between the fit phase, which learns
// transformation parameters from training data, and the transform phase, which
// applies those frozen parameters to new data. Numeric columns are imputed and
// standardized; categorical columns are imputed and one-hot encoded against a
// vocabulary fixed at fit time, so deployment-time data with unseen categories
// still produces a matrix of the exact same shape.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/tabprep/tabprep/frame"
//	    "github.com/tabprep/tabprep/preprocessing"
//	)
//
//	func main() {
//	    df := frame.New(
//	        frame.NumericColumn("age", []float64{34, 51, frame.Missing, 29}),
//	        frame.CategoricalColumn("plan", []string{"basic", "pro", "pro", ""},
//	            []bool{false, false, false, true}),
//	    )
//
//	    asm := preprocessing.NewFeatureAssembler()
//	    features, err := asm.FitTransform(df)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(asm.FeatureNames()) // [age plan_basic plan_pro]
//	    X, _ := features.Matrix()
//	    _ = X // dense matrix, ready for an estimator
//	}
//
// # Packages
//
//   - frame: the tabular data model (named columns, missing values, row index)
//   - preprocessing: column classification, imputation, scaling, one-hot encoding
//   - pipeline: chains the feature assembler with a final estimator
//   - linear: a logistic-regression estimator with probability outputs
//   - metrics: classification metrics for evaluating fitted pipelines
//   - core/model: estimator interfaces, fitted-state management, persistence
package tabprep
