package model

import (
	"encoding/json"
	"fmt"
)

// ModelWeights is a serialization-friendly snapshot of a linear estimator's
// learned parameters, used by the external inspection and deployment
// collaborators.
type ModelWeights struct {
	// ModelType names the estimator that produced the weights.
	ModelType string `json:"model_type"`

	// Coefficients are the learned feature weights.
	Coefficients []float64 `json:"coefficients"`

	// Intercept is the learned bias term.
	Intercept float64 `json:"intercept"`

	// Features optionally names the input feature columns, matching
	// Coefficients by position.
	Features []string `json:"features,omitempty"`

	// Hyperparameters records the settings the estimator was trained with.
	Hyperparameters map[string]interface{} `json:"hyperparameters,omitempty"`
}

// ToJSON serializes the weights.
func (w *ModelWeights) ToJSON() ([]byte, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal weights: %w", err)
	}
	return data, nil
}

// WeightsFromJSON deserializes weights produced by ToJSON.
func WeightsFromJSON(data []byte) (*ModelWeights, error) {
	var w ModelWeights
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weights: %w", err)
	}
	return &w, nil
}
