// Package main provides the Darv ML Framework CLI.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/darv-ml/darv/internal/nn"
	"github.com/darv-ml/darv/internal/optim"
	"github.com/darv-ml/darv/internal/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Darv ML Framework %s\n", version)
			return
		case "xor":
			runXORDemo()
			return
		}
	}

	fmt.Println("Darv ML Framework - Reverse-Mode Autodiff for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a small network on the XOR problem")
}

// buildXORModel constructs the 2-16-1 XOR network.
func buildXORModel(rng *rand.Rand) *nn.Sequential {
	return nn.NewSequential(
		nn.NewLinear(2, 16, rng),
		nn.NewTanh(),
		nn.NewLinear(16, 1, rng),
		nn.NewSigmoid(),
	)
}

// runXORDemo trains on XOR, decays the learning rate on a schedule,
// round-trips the trained model through the binary format, and prints
// the restored model's outputs.
func runXORDemo() {
	rng := rand.New(rand.NewSource(42))
	model := buildXORModel(rng)

	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := []float64{0, 1, 1, 0}

	x, err := tensor.New([]float64{0, 0, 0, 1, 1, 0, 1, 1}, tensor.Shape{4, 2}, false)
	if err != nil {
		log.Fatalf("build inputs: %v", err)
	}
	y, err := tensor.New(targets, tensor.Shape{4}, false)
	if err != nil {
		log.Fatalf("build targets: %v", err)
	}

	opt := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.05})
	sched := optim.NewStepLR(opt, 200, 0.5)
	criterion := nn.NewMSELoss()

	for epoch := 1; epoch <= 500; epoch++ {
		sched.Step(epoch)
		opt.ZeroGrad()
		pred := model.Forward(x)
		loss := criterion.Forward(pred, y)
		loss.Backward()
		opt.Step()

		if epoch%100 == 0 {
			fmt.Printf("epoch %4d  lr %.4f  loss %.6f\n", epoch, opt.LR(), loss.Item())
		}
	}

	path := filepath.Join(os.TempDir(), "darv-xor.bin")
	if err := nn.SaveModel(model, path); err != nil {
		log.Fatalf("save model: %v", err)
	}

	restored := buildXORModel(rand.New(rand.NewSource(1)))
	if err := nn.LoadModel(restored, path); err != nil {
		log.Fatalf("load model: %v", err)
	}
	fmt.Printf("model round-tripped through %s\n", path)

	restored.SetTraining(false)
	pred := restored.Forward(x)
	for i, in := range inputs {
		fmt.Printf("xor(%v, %v) = %.4f (want %v)\n", in[0], in[1], pred.Data()[i], targets[i])
	}
}
