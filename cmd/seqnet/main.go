// Package main provides the seqnet CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/seqnet/internal/nn"
	"github.com/born-ml/seqnet/internal/parallel"
	"github.com/born-ml/seqnet/internal/train"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("seqnet %s\n", version)
	case "xor":
		if err := runXOR(os.Args[2:]); err != nil {
			log.Fatalf("xor: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("seqnet - hand-derived backprop for sequential networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train 2 -> 8 -> tanh -> 1 on XOR")
}

func runXOR(args []string) error {
	fs := flag.NewFlagSet("xor", flag.ExitOnError)
	epochs := fs.Int("epochs", 1000, "Number of training epochs")
	lr := fs.Float64("lr", 0.1, "Learning rate for SGD")
	seed := fs.Uint64("seed", 42, "Seed for weight initialization")
	hidden := fs.Int("hidden", 8, "Hidden layer width")
	logEvery := fs.Int("log-every", 100, "Report loss every N epochs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	model, err := nn.MLPConfig{
		InputDim:   2,
		HiddenDims: []int{*hidden},
		OutputDim:  1,
		Activation: nn.ActivationTanh,
	}.Build(nn.NewRNG(*seed))
	if err != nil {
		return err
	}
	log.Printf("model %s, %d parameters", model, model.NumParameters())

	data := train.XOR()
	_, err = train.Fit(model, data, train.Config{
		Epochs:   *epochs,
		LR:       float32(*lr),
		LogEvery: *logEvery,
		OnEpoch: func(epoch int, meanLoss float32) {
			log.Printf("epoch %4d: loss = %.6f", epoch, meanLoss)
		},
	})
	if err != nil {
		return err
	}

	preds, mean, err := train.Evaluate(model, data, nn.NewMSELoss(), parallel.DefaultConfig())
	if err != nil {
		return err
	}

	fmt.Println("\nResults:")
	for i, p := range preds {
		fmt.Printf("  %v -> %.3f (expected %v)\n", data[i].Input, p.Output[0], data[i].Target[0])
	}
	fmt.Printf("mean loss: %.6f\n", mean)
	return nil
}
