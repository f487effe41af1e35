// Package trainer drives a network through repeated training steps without a
// visualization attached: it feeds synthetic samples, logs progress and
// scores the result on held-out samples.
package trainer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/netcircuit/netcircuit/internal/nn"
	"github.com/netcircuit/netcircuit/internal/parallel"
)

// Options captures the knobs required by the training loop.
type Options struct {
	Steps        int
	LearningRate float64
	L1           float64
	LogEvery     int
	Seed         int64
	EvalSamples  int
	Parallel     parallel.Config

	// Logger receives progress lines. Defaults to log.Default().
	Logger *log.Logger
	// OnStep, when set, receives every step's snapshot. It runs on the
	// training goroutine, between steps, so it may read the network safely.
	OnStep func(step int, snap *nn.TrainSnapshot)
}

// Evaluation summarizes a network's performance on a sample set.
type Evaluation struct {
	Samples  int
	MeanLoss float64
	Accuracy float64
}

// Result summarizes a finished or interrupted run.
type Result struct {
	RunID    string
	Steps    int // Steps actually completed
	LastLoss float64
	Eval     Evaluation
	Elapsed  time.Duration
}

// Run executes the training workload.
//
// Cancellation is checked between steps; an interrupted run returns the
// partial Result together with ctx.Err().
func Run(ctx context.Context, net *nn.Network, opts Options) (*Result, error) {
	if !net.Built() {
		return nil, nn.ErrEmptyNetwork
	}
	if opts.Steps <= 0 {
		return nil, errors.New("trainer: steps must be > 0")
	}
	if opts.LearningRate <= 0 {
		return nil, errors.New("trainer: learning rate must be > 0")
	}
	if opts.LogEvery <= 0 {
		opts.LogEvery = 100
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	res := &Result{RunID: uuid.NewString()}
	logger.Printf("run=%s layers=%d inputs=%d outputs=%d steps=%d lr=%g l1=%g",
		res.RunID, len(net.Layers()), net.InputSize(), net.OutputSize(), opts.Steps, opts.LearningRate, opts.L1)
	if !net.OutputDeltaExact() {
		logger.Printf("run=%s warning: ReLU output layer, output delta a-target is an approximation", res.RunID)
	}

	train, err := NewGenerator(net.InputSize(), net.OutputSize(), opts.Seed)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var window Window
	for step := 1; step <= opts.Steps; step++ {
		select {
		case <-ctx.Done():
			res.Elapsed = time.Since(start)
			logger.Printf("run=%s interrupted at step=%d", res.RunID, res.Steps)
			return res, ctx.Err()
		default:
		}

		sample := train.Next()
		startCompute := time.Now()
		snap, err := net.TrainStep(sample.Input, sample.Target, opts.LearningRate, opts.L1)
		if err != nil {
			return res, fmt.Errorf("step %d: %w", step, err)
		}
		window.Record(time.Since(startCompute), snap.Loss)
		res.Steps = step
		res.LastLoss = snap.Loss

		if opts.OnStep != nil {
			opts.OnStep(step, snap)
		}

		if step%opts.LogEvery == 0 {
			m := window.Snapshot()
			logger.Printf("run=%s step=%d steps_per_sec=%.1f compute_ms=%.3f avg_loss=%.4f loss=%.4f",
				res.RunID, step, m.StepsPerSec, m.AvgComputeMS, m.AvgLoss, m.LastLoss)
		}
	}
	res.Elapsed = time.Since(start)

	if opts.EvalSamples > 0 {
		// A separate stream so held-out samples never repeat training ones.
		held, err := NewGenerator(net.InputSize(), net.OutputSize(), opts.Seed^math.MaxInt32)
		if err != nil {
			return res, err
		}
		res.Eval, err = Evaluate(net, held.Take(opts.EvalSamples), opts.Parallel)
		if err != nil {
			return res, err
		}
		logger.Printf("run=%s eval_samples=%d eval_loss=%.4f accuracy=%.3f",
			res.RunID, res.Eval.Samples, res.Eval.MeanLoss, res.Eval.Accuracy)
	}

	logger.Printf("run=%s done steps=%d elapsed=%s", res.RunID, res.Steps, res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// Evaluate scores net on samples using forward passes only. The samples are
// spread over goroutines per cfg; the network must not be trained meanwhile.
func Evaluate(net *nn.Network, samples []Sample, cfg parallel.Config) (Evaluation, error) {
	ev := Evaluation{Samples: len(samples)}
	if len(samples) == 0 {
		return ev, nil
	}

	losses := make([]float64, len(samples))
	correct := make([]bool, len(samples))
	errs := make([]error, len(samples))
	parallel.For(len(samples), func(i int) {
		s := samples[i]
		losses[i], errs[i] = net.Loss(s.Input, s.Target)
		if errs[i] != nil {
			return
		}
		var class int
		class, errs[i] = net.Predict(s.Input)
		correct[i] = class == s.Label
	}, cfg)

	if err := errors.Join(errs...); err != nil {
		return ev, err
	}

	n := float64(len(samples))
	ev.MeanLoss = parallel.Sum(len(losses), func(i int) float64 { return losses[i] }, cfg) / n
	ev.Accuracy = parallel.Sum(len(correct), func(i int) float64 {
		if correct[i] {
			return 1
		}
		return 0
	}, cfg) / n
	return ev, nil
}
