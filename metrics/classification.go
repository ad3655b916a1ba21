// Package metrics provides evaluation metrics for classifiers trained on
// tabprep feature matrices.
package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/tabprep/tabprep/pkg/errors"
)

// Accuracy returns the fraction of predictions equal to the true labels.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("Accuracy", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// LogLoss returns the negative mean log-likelihood of binary labels under
// predicted positive-class probabilities. Probabilities are clipped to
// [eps, 1-eps] to keep the loss finite.
func LogLoss(yTrue, proba *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("LogLoss", "empty vector")
	}
	if proba.Len() != n {
		return 0, errors.NewDimensionError("LogLoss", n, proba.Len(), 0)
	}

	const eps = 1e-15
	var sum float64
	for i := 0; i < n; i++ {
		y := yTrue.AtVec(i)
		if y != 0 && y != 1 {
			return 0, errors.NewValueError("LogLoss", "labels must be binary (0 or 1)")
		}
		p := math.Min(math.Max(proba.AtVec(i), eps), 1-eps)
		if y == 1 {
			sum -= math.Log(p)
		} else {
			sum -= math.Log(1 - p)
		}
	}
	return sum / float64(n), nil
}

// AUC returns the area under the ROC curve for binary labels and predicted
// scores, computed as the Mann-Whitney statistic with ties counted as half.
// When only one class is present the metric is undefined and 0.5 is returned.
func AUC(yTrue, yScore *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("AUC", "empty vector")
	}
	if yScore.Len() != n {
		return 0, errors.NewDimensionError("AUC", n, yScore.Len(), 0)
	}

	var pos, neg []float64
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 1:
			pos = append(pos, yScore.AtVec(i))
		case 0:
			neg = append(neg, yScore.AtVec(i))
		default:
			return 0, errors.NewValueError("AUC", "labels must be binary (0 or 1)")
		}
	}
	if len(pos) == 0 || len(neg) == 0 {
		return 0.5, nil
	}

	sort.Float64s(neg)
	var wins float64
	for _, p := range pos {
		// Count negatives strictly below p, plus half of the ties.
		below := sort.SearchFloat64s(neg, p)
		above := sort.Search(len(neg), func(i int) bool { return neg[i] > p })
		wins += float64(below) + 0.5*float64(above-below)
	}
	return wins / float64(len(pos)*len(neg)), nil
}
