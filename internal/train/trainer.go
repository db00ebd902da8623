// Package train implements a training loop utility over the data,
// nn and optim packages.
package train

import (
	"fmt"
	"log"

	"github.com/darv-ml/darv/internal/data"
	"github.com/darv-ml/darv/internal/nn"
	"github.com/darv-ml/darv/internal/optim"
	"github.com/darv-ml/darv/internal/tensor"
)

// Config holds training-loop configuration.
type Config struct {
	Epochs     int    // number of full passes over the loader (default: 100)
	Verbose    bool   // log progress lines
	PrintEvery int    // epoch interval for progress lines (default: 10)
	SavePath   string // model file written after training, empty to skip
}

// History records per-epoch losses.
type History struct {
	TrainLosses []float64
	ValLosses   []float64
}

// Train runs the optimization loop: for each epoch it iterates the
// loader, computes MSE loss, backpropagates and steps the optimizer.
// When val is non-nil a validation loss is recorded per epoch. When
// cfg.SavePath is set, the trained model is written there at the end.
func Train(model *nn.Sequential, opt optim.Optimizer, loader *data.DataLoader, val *data.Dataset, cfg Config) (*History, error) {
	if cfg.Epochs == 0 {
		cfg.Epochs = 100
	}
	if cfg.PrintEvery == 0 {
		cfg.PrintEvery = 10
	}

	model.SetTraining(true)
	lossFn := nn.NewMSELoss()
	history := &History{}

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		epochLoss := 0.0
		batches := 0

		loader.Reset()
		for loader.HasNext() {
			features, labels, err := loader.NextBatch()
			if err != nil {
				return history, fmt.Errorf("epoch %d: %w", epoch, err)
			}

			pred := model.Forward(features)
			loss := lossFn.Forward(pred, labels)
			epochLoss += loss.Item()

			opt.ZeroGrad()
			loss.Backward()
			opt.Step()
			batches++
		}

		avgLoss := epochLoss / float64(batches)
		history.TrainLosses = append(history.TrainLosses, avgLoss)

		if val != nil {
			valLoss, err := Evaluate(model, val)
			if err != nil {
				return history, fmt.Errorf("epoch %d validation: %w", epoch, err)
			}
			history.ValLosses = append(history.ValLosses, valLoss)
			if cfg.Verbose && epoch%cfg.PrintEvery == 0 {
				log.Printf("epoch %4d | train loss: %.6f | val loss: %.6f", epoch, avgLoss, valLoss)
			}
		} else if cfg.Verbose && epoch%cfg.PrintEvery == 0 {
			log.Printf("epoch %4d | loss: %.6f", epoch, avgLoss)
		}
	}

	if cfg.SavePath != "" {
		if err := nn.SaveModel(model, cfg.SavePath); err != nil {
			return history, fmt.Errorf("failed to save trained model: %w", err)
		}
	}
	return history, nil
}

// Evaluate computes the mean MSE loss of the model over a dataset, in
// inference mode. The model is returned to training mode afterwards.
func Evaluate(model *nn.Sequential, ds *data.Dataset) (float64, error) {
	model.SetTraining(false)
	defer model.SetTraining(true)

	lossFn := nn.NewMSELoss()
	total := 0.0

	for i := 0; i < ds.Len(); i++ {
		sample, label, err := ds.At(i)
		if err != nil {
			return 0, err
		}

		input := gradFree(sample)
		pred := model.Forward(input)
		total += lossFn.Forward(pred, label).Item()
	}
	return total / float64(ds.Len()), nil
}

// gradFree returns a leaf copy of a tensor with gradients disabled, so
// evaluation does not grow the caller's graph.
func gradFree(t *tensor.Tensor) *tensor.Tensor {
	c, err := tensor.New(t.Data(), t.Shape(), false)
	if err != nil {
		panic(err)
	}
	return c
}
