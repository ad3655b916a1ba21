package model

import (
	"github.com/tabprep/tabprep/frame"
)

// FrameTransformer is the transformation contract over tabular frames. The
// feature assembler and its column branches implement it.
type FrameTransformer interface {
	// Fit learns the transformation parameters from df.
	Fit(df *frame.Frame) error

	// Transform applies the learned parameters to df without re-learning.
	Transform(df *frame.Frame) (*frame.Frame, error)

	// FitTransform fits on df and transforms it in one call.
	FitTransform(df *frame.Frame) (*frame.Frame, error)
}
