// Copyright 2025 Darv ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/darv-ml/darv/internal/nn"
	"github.com/darv-ml/darv/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(
//	    model.Parameters(),
//	    optim.AdamConfig{
//	        LR:    0.001,
//	        Beta1: 0.9,
//	        Beta2: 0.999,
//	        Eps:   1e-8,
//	    },
//	)
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}

// RMSprop

// RMSprop represents the RMSprop optimizer.
type RMSprop = optim.RMSprop

// RMSpropConfig contains configuration for the RMSprop optimizer.
type RMSpropConfig = optim.RMSpropConfig

// NewRMSprop creates a new RMSprop optimizer.
func NewRMSprop(params []*nn.Parameter, config RMSpropConfig) *RMSprop {
	return optim.NewRMSprop(params, config)
}

// AdaGrad

// AdaGrad represents the AdaGrad optimizer.
type AdaGrad = optim.AdaGrad

// AdaGradConfig contains configuration for the AdaGrad optimizer.
type AdaGradConfig = optim.AdaGradConfig

// NewAdaGrad creates a new AdaGrad optimizer.
func NewAdaGrad(params []*nn.Parameter, config AdaGradConfig) *AdaGrad {
	return optim.NewAdaGrad(params, config)
}

// Learning rate schedulers

// Scheduler adjusts an optimizer's learning rate across epochs.
type Scheduler = optim.Scheduler

// StepLR decays the learning rate by a factor every fixed number of epochs.
type StepLR = optim.StepLR

// NewStepLR creates a scheduler that multiplies the learning rate by gamma
// every stepSize epochs.
func NewStepLR(opt Optimizer, stepSize int, gamma float64) *StepLR {
	return optim.NewStepLR(opt, stepSize, gamma)
}

// ExponentialLR decays the learning rate exponentially each epoch.
type ExponentialLR = optim.ExponentialLR

// NewExponentialLR creates a scheduler that sets the learning rate to
// initialLR * gamma^epoch.
func NewExponentialLR(opt Optimizer, gamma float64) *ExponentialLR {
	return optim.NewExponentialLR(opt, gamma)
}

// CosineAnnealingLR anneals the learning rate along a cosine curve.
type CosineAnnealingLR = optim.CosineAnnealingLR

// NewCosineAnnealingLR creates a scheduler that anneals the learning rate
// from its initial value down to etaMin over tMax epochs.
func NewCosineAnnealingLR(opt Optimizer, tMax int, etaMin float64) *CosineAnnealingLR {
	return optim.NewCosineAnnealingLR(opt, tMax, etaMin)
}
