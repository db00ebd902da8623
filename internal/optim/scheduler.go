package optim

import (
	"math"
)

// Scheduler adjusts an optimizer's learning rate between epochs.
// Schedulers mutate only the learning-rate hyperparameter; they never
// read or write gradients.
type Scheduler interface {
	// Step updates the optimizer's learning rate for the given epoch.
	Step(epoch int)
}

// StepLR multiplies the learning rate by gamma every stepSize epochs.
type StepLR struct {
	opt      Optimizer
	stepSize int
	gamma    float64
}

// NewStepLR creates a StepLR scheduler.
func NewStepLR(opt Optimizer, stepSize int, gamma float64) *StepLR {
	return &StepLR{
		opt:      opt,
		stepSize: stepSize,
		gamma:    gamma,
	}
}

// Step decays the learning rate on epoch boundaries.
func (s *StepLR) Step(epoch int) {
	if epoch > 0 && epoch%s.stepSize == 0 {
		s.opt.SetLR(s.opt.LR() * s.gamma)
	}
}

// ExponentialLR sets lr = initial_lr * gamma^epoch.
type ExponentialLR struct {
	opt       Optimizer
	initialLR float64
	gamma     float64
}

// NewExponentialLR creates an ExponentialLR scheduler. The initial
// learning rate is captured from the optimizer at construction.
func NewExponentialLR(opt Optimizer, gamma float64) *ExponentialLR {
	return &ExponentialLR{
		opt:       opt,
		initialLR: opt.LR(),
		gamma:     gamma,
	}
}

// Step sets the exponentially decayed learning rate for the epoch.
func (e *ExponentialLR) Step(epoch int) {
	e.opt.SetLR(e.initialLR * math.Pow(e.gamma, float64(epoch)))
}

// CosineAnnealingLR interpolates the learning rate between the initial
// value and etaMin following a cosine curve over tMax epochs.
type CosineAnnealingLR struct {
	opt       Optimizer
	initialLR float64
	tMax      int
	etaMin    float64
}

// NewCosineAnnealingLR creates a CosineAnnealingLR scheduler. The
// initial learning rate is captured from the optimizer at construction.
func NewCosineAnnealingLR(opt Optimizer, tMax int, etaMin float64) *CosineAnnealingLR {
	return &CosineAnnealingLR{
		opt:       opt,
		initialLR: opt.LR(),
		tMax:      tMax,
		etaMin:    etaMin,
	}
}

// Step sets the cosine-annealed learning rate for the epoch.
func (c *CosineAnnealingLR) Step(epoch int) {
	lr := c.etaMin + (c.initialLR-c.etaMin)*(1.0+math.Cos(math.Pi*float64(epoch)/float64(c.tMax)))/2.0
	c.opt.SetLR(lr)
}
