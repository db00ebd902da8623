// Package data implements dataset storage and batch loading for
// training.
package data

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/darv-ml/darv/internal/tensor"
)

// Dataset errors.
var (
	// ErrCountMismatch indicates the sample and label collections have
	// different lengths.
	ErrCountMismatch = errors.New("data and labels must have the same length")

	// ErrOutOfRange indicates an index outside the dataset.
	ErrOutOfRange = errors.New("index out of range")

	// ErrExhausted indicates a batch was requested when none remain.
	ErrExhausted = errors.New("no more batches available")
)

// Dataset holds paired sample and label tensors.
type Dataset struct {
	samples []*tensor.Tensor
	labels  []*tensor.Tensor
}

// NewDataset creates a dataset from paired sample and label slices.
// Returns a wrapped ErrCountMismatch if the lengths differ.
func NewDataset(samples, labels []*tensor.Tensor) (*Dataset, error) {
	if len(samples) != len(labels) {
		return nil, fmt.Errorf("%w: %d samples, %d labels", ErrCountMismatch, len(samples), len(labels))
	}
	return &Dataset{
		samples: samples,
		labels:  labels,
	}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.samples)
}

// At returns the sample/label pair at index i.
// Returns a wrapped ErrOutOfRange for an invalid index.
func (d *Dataset) At(i int) (sample, label *tensor.Tensor, err error) {
	if i < 0 || i >= len(d.samples) {
		return nil, nil, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, len(d.samples))
	}
	return d.samples[i], d.labels[i], nil
}

// Add appends a sample/label pair.
func (d *Dataset) Add(sample, label *tensor.Tensor) {
	d.samples = append(d.samples, sample)
	d.labels = append(d.labels, label)
}

// Shuffle permutes the dataset in place using the given generator.
func (d *Dataset) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.samples), func(i, j int) {
		d.samples[i], d.samples[j] = d.samples[j], d.samples[i]
		d.labels[i], d.labels[j] = d.labels[j], d.labels[i]
	})
}

// Split partitions the dataset into a training and a test set, with the
// first trainRatio fraction of samples going to the training set. The
// ratio is clamped to [0, 1].
//
// Both splits copy their sample and label slices, so growing one split
// with Add can never write into the other split or the parent.
func (d *Dataset) Split(trainRatio float64) (train, test *Dataset) {
	cut := int(float64(len(d.samples)) * trainRatio)
	if cut < 0 {
		cut = 0
	}
	if cut > len(d.samples) {
		cut = len(d.samples)
	}

	train = &Dataset{
		samples: append([]*tensor.Tensor(nil), d.samples[:cut]...),
		labels:  append([]*tensor.Tensor(nil), d.labels[:cut]...),
	}
	test = &Dataset{
		samples: append([]*tensor.Tensor(nil), d.samples[cut:]...),
		labels:  append([]*tensor.Tensor(nil), d.labels[cut:]...),
	}
	return train, test
}
