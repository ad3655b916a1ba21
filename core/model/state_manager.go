// Package model provides the shared estimator contracts for tabprep:
// fit/transform interfaces, fitted-state management, weight export, and gob
// persistence helpers.
package model

import (
	"sync"

	"github.com/tabprep/tabprep/pkg/errors"
)

// StateManager tracks the fitted state of an estimator or transformer. It is
// held by composition rather than embedding so that the owning type controls
// exactly which state methods it exposes.
//
// Reads (IsFitted, RequireFitted) are safe for concurrent use; a mutation
// (SetFitted, Reset) must not run concurrently with any other call on the
// same instance owner — serializing fit against transform is the caller's
// responsibility, matching the fit-then-freeze lifecycle.
type StateManager struct {
	Fitted bool // exported for gob encoding
	mu     sync.RWMutex

	// Dimensions observed at fit time, exported for gob encoding.
	NFeatures int
	NSamples  int
}

// NewStateManager creates an unfitted StateManager.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted reports whether Fit has completed.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Fitted
}

// SetFitted marks the owner as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = true
}

// Reset returns the owner to the unfitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fitted = false
	s.NFeatures = 0
	s.NSamples = 0
}

// SetDimensions records the data shape observed during fit.
func (s *StateManager) SetDimensions(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.NFeatures = nFeatures
	s.NSamples = nSamples
}

// GetDimensions returns the data shape observed during fit.
func (s *StateManager) GetDimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.NFeatures, s.NSamples
}

// RequireFitted returns a NotFittedError naming the model and method when Fit
// has not completed, nil otherwise.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}
