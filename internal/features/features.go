// Package features defines the fixed numeric feature vector through
// which external evaluation pipelines feed code metrics into the engine.
//
// The consumer contract is one-way: metrics in, a gradient-free rank-1
// tensor out. Each metric is pre-normalized by a fixed divisor so the
// values land in comparable ranges for a small network.
package features

import (
	"github.com/darv-ml/darv/internal/tensor"
)

// FeatureCount is the fixed length of the feature vector.
const FeatureCount = 13

// CodeFeatures holds the raw metrics collected for one build/run of a
// candidate program.
type CodeFeatures struct {
	// Static features
	LinesOfCode          int
	NumFunctions         int
	NumClasses           int
	CyclomaticComplexity int

	// Dynamic features (from execution)
	ExecutionTimeMs float64
	MemoryUsageKB   int
	ExitCode        int

	// Error features
	CompileErrors int
	RuntimeErrors int
	Warnings      int

	// Quality features
	CodeCoverage float64
	TestsPassed  int
	TestsFailed  int
}

// Vector returns the normalized 13-element feature vector in its fixed
// order. The divisors are part of the contract and must not change
// independently of trained models.
func (f *CodeFeatures) Vector() []float64 {
	return []float64{
		float64(f.LinesOfCode) / 1000.0,
		float64(f.NumFunctions) / 100.0,
		float64(f.NumClasses) / 50.0,
		float64(f.CyclomaticComplexity) / 50.0,
		f.ExecutionTimeMs / 1000.0,
		float64(f.MemoryUsageKB) / 10000.0,
		float64(f.ExitCode),
		float64(f.CompileErrors),
		float64(f.RuntimeErrors),
		float64(f.Warnings) / 10.0,
		f.CodeCoverage,
		float64(f.TestsPassed) / 100.0,
		float64(f.TestsFailed) / 10.0,
	}
}

// Tensor wraps the normalized feature vector into a rank-1 tensor with
// gradients disabled, ready for a model's forward pass.
func (f *CodeFeatures) Tensor() *tensor.Tensor {
	t, err := tensor.New(f.Vector(), tensor.Shape{FeatureCount}, false)
	if err != nil {
		// Vector() always produces exactly FeatureCount values.
		panic(err)
	}
	return t
}
