package data

import (
	"fmt"
	"math/rand"

	"github.com/darv-ml/darv/internal/tensor"
)

// DataLoader iterates a Dataset in batches.
//
// Samples are expected to be rank-1 feature vectors of a uniform length
// and labels single-element tensors. Each batch is assembled into a
// rank-2 feature tensor [batch_size, feature_count] and a rank-1 label
// tensor [batch_size], both with gradients disabled. When shuffling is
// enabled the loader reshuffles its index order on every Reset using its
// own generator.
type DataLoader struct {
	dataset   *Dataset
	batchSize int
	shuffle   bool
	rng       *rand.Rand
	indices   []int
	cursor    int
}

// NewDataLoader creates a loader over the dataset.
//
// The generator may be nil when shuffle is false. Returns an error for a
// non-positive batch size or an empty dataset.
func NewDataLoader(dataset *Dataset, batchSize int, shuffle bool, rng *rand.Rand) (*DataLoader, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	if dataset.Len() == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	l := &DataLoader{
		dataset:   dataset,
		batchSize: batchSize,
		shuffle:   shuffle,
		rng:       rng,
		indices:   make([]int, dataset.Len()),
	}
	for i := range l.indices {
		l.indices[i] = i
	}
	if shuffle {
		l.shuffleIndices()
	}
	return l, nil
}

// shuffleIndices permutes the iteration order.
func (l *DataLoader) shuffleIndices() {
	l.rng.Shuffle(len(l.indices), func(i, j int) {
		l.indices[i], l.indices[j] = l.indices[j], l.indices[i]
	})
}

// HasNext reports whether another batch remains in this pass.
func (l *DataLoader) HasNext() bool {
	return l.cursor < l.dataset.Len()
}

// NextBatch returns the next feature and label batch.
//
// The final batch of a pass may be smaller than the configured batch
// size. Returns a wrapped ErrExhausted when the pass is complete.
func (l *DataLoader) NextBatch() (features, labels *tensor.Tensor, err error) {
	if !l.HasNext() {
		return nil, nil, fmt.Errorf("%w: call Reset to start a new pass", ErrExhausted)
	}

	end := l.cursor + l.batchSize
	if end > l.dataset.Len() {
		end = l.dataset.Len()
	}
	batch := end - l.cursor

	first, _, err := l.dataset.At(l.indices[l.cursor])
	if err != nil {
		return nil, nil, err
	}
	featureCount := first.NumElements()

	featureData := make([]float64, batch*featureCount)
	labelData := make([]float64, batch)
	for i := 0; i < batch; i++ {
		sample, label, err := l.dataset.At(l.indices[l.cursor+i])
		if err != nil {
			return nil, nil, err
		}
		if sample.NumElements() != featureCount {
			return nil, nil, fmt.Errorf("sample %d has %d features, expected %d",
				l.indices[l.cursor+i], sample.NumElements(), featureCount)
		}
		copy(featureData[i*featureCount:(i+1)*featureCount], sample.Data())
		labelData[i] = label.Data()[0]
	}
	l.cursor = end

	features, err = tensor.New(featureData, tensor.Shape{batch, featureCount}, false)
	if err != nil {
		return nil, nil, err
	}
	labels, err = tensor.New(labelData, tensor.Shape{batch}, false)
	if err != nil {
		return nil, nil, err
	}
	return features, labels, nil
}

// Reset rewinds the loader to the start of the dataset, reshuffling the
// iteration order when shuffling is enabled.
func (l *DataLoader) Reset() {
	l.cursor = 0
	if l.shuffle {
		l.shuffleIndices()
	}
}

// NumBatches returns the number of batches per full pass.
func (l *DataLoader) NumBatches() int {
	return (l.dataset.Len() + l.batchSize - 1) / l.batchSize
}
