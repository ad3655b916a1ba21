package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect",
			yTrue: []float64{0, 1, 1, 0},
			yPred: []float64{0, 1, 1, 0},
			want:  1.0,
		},
		{
			name:  "half right",
			yTrue: []float64{0, 1, 1, 0},
			yPred: []float64{0, 0, 1, 1},
			want:  0.5,
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{0, 1},
			yPred:   []float64{0},
			wantErr: true,
		},
		{
			name:    "empty",
			yTrue:   nil,
			yPred:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yTrue := vec(tt.yTrue)
			yPred := vec(tt.yPred)
			got, err := Accuracy(yTrue, yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogLoss(t *testing.T) {
	tests := []struct {
		name      string
		yTrue     []float64
		proba     []float64
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "confident correct predictions",
			yTrue:     []float64{1, 0},
			proba:     []float64{0.9, 0.1},
			want:      -math.Log(0.9), // same loss for both rows
			tolerance: 1e-12,
		},
		{
			name:      "uninformative predictions",
			yTrue:     []float64{1, 0},
			proba:     []float64{0.5, 0.5},
			want:      math.Ln2,
			tolerance: 1e-12,
		},
		{
			name:      "extreme probability is clipped, loss stays finite",
			yTrue:     []float64{1},
			proba:     []float64{0},
			want:      -math.Log(1e-15),
			tolerance: 1e-3,
		},
		{
			name:    "non-binary labels",
			yTrue:   []float64{0.5},
			proba:   []float64{0.5},
			wantErr: true,
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{0, 1},
			proba:   []float64{0.5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LogLoss(vec(tt.yTrue), vec(tt.proba))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LogLoss() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("LogLoss() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAUC(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yScore  []float64
		want    float64
		wantErr bool
	}{
		{
			name:   "perfect classifier",
			yTrue:  []float64{0, 0, 0, 1, 1, 1},
			yScore: []float64{0.1, 0.2, 0.3, 0.7, 0.8, 0.9},
			want:   1.0,
		},
		{
			name:   "worst classifier",
			yTrue:  []float64{0, 0, 0, 1, 1, 1},
			yScore: []float64{0.9, 0.8, 0.7, 0.3, 0.2, 0.1},
			want:   0.0,
		},
		{
			name:   "random classifier",
			yTrue:  []float64{0, 1, 0, 1},
			yScore: []float64{0.5, 0.5, 0.5, 0.5},
			want:   0.5,
		},
		{
			name:   "typical case",
			yTrue:  []float64{0, 0, 1, 1},
			yScore: []float64{0.1, 0.4, 0.35, 0.8},
			want:   0.75,
		},
		{
			name:   "all positive labels",
			yTrue:  []float64{1, 1, 1, 1},
			yScore: []float64{0.1, 0.4, 0.35, 0.8},
			want:   0.5, // undefined case, returns 0.5
		},
		{
			name:   "all negative labels",
			yTrue:  []float64{0, 0, 0, 0},
			yScore: []float64{0.1, 0.4, 0.35, 0.8},
			want:   0.5, // undefined case, returns 0.5
		},
		{
			name:    "non-binary labels",
			yTrue:   []float64{0, 0.5, 1},
			yScore:  []float64{0.1, 0.5, 0.9},
			wantErr: true,
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{0, 1},
			yScore:  []float64{0.5},
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   nil,
			yScore:  nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AUC(vec(tt.yTrue), vec(tt.yScore))
			if (err != nil) != tt.wantErr {
				t.Fatalf("AUC() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AUC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func vec(xs []float64) *mat.VecDense {
	if len(xs) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(xs), xs)
}
