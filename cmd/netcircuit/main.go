// Package main provides the netcircuit CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/netcircuit/netcircuit/internal/config"
	"github.com/netcircuit/netcircuit/internal/matrix"
	"github.com/netcircuit/netcircuit/internal/nn"
	"github.com/netcircuit/netcircuit/internal/parallel"
	"github.com/netcircuit/netcircuit/internal/trainer"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "version":
		fmt.Printf("netcircuit %s\n", version)
	case "summary":
		runSummary(args)
	case "forward":
		runForward(args)
	case "train":
		runTrain(args)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("netcircuit - feed-forward network core")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                         Show version")
	fmt.Println("  summary -net FILE               Print layer shapes")
	fmt.Println("  forward -net FILE -input 1,0.5  Print every column's activations")
	fmt.Println("  train   -config FILE            Train on synthetic samples")
}

func runSummary(args []string) {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	netPath := fs.String("net", "configs/demo.net", "Path to network config")
	_ = fs.Parse(args)

	net, err := nn.LoadFile(*netPath)
	if err != nil {
		log.Fatalf("failed to load network: %v", err)
	}

	fmt.Print(net.String())
	for i, col := range net.Columns() {
		kind := col.Activation.String()
		if col.Input {
			kind = "Input"
		}
		fmt.Printf("column %d: %d neurons (%s)\n", i, col.Neurons, kind)
	}
}

func runForward(args []string) {
	fs := flag.NewFlagSet("forward", flag.ExitOnError)
	netPath := fs.String("net", "configs/demo.net", "Path to network config")
	rawInput := fs.String("input", "", "Comma-separated input values")
	seed := fs.Int64("seed", 1, "Weight initialization seed")
	_ = fs.Parse(args)

	net, err := nn.LoadFile(*netPath, nn.WithSeed(*seed))
	if err != nil {
		log.Fatalf("failed to load network: %v", err)
	}

	input, err := parseColumn(*rawInput)
	if err != nil {
		log.Fatalf("invalid -input: %v", err)
	}

	acts, err := net.ForwardAll(input)
	if err != nil {
		log.Fatalf("forward failed: %v", err)
	}
	for i, a := range acts {
		fmt.Printf("column %d: %v\n", i, a.Data())
	}
}

func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	cfgPath := fs.String("config", "configs/demo.yaml", "Path to YAML run config")
	netPath := fs.String("net", "", "Override network config path")
	steps := fs.Int("steps", 0, "Number of training steps")
	lr := fs.Float64("lr", 0, "Learning rate")
	l1 := fs.Float64("l1", 0, "L1 coefficient")
	seed := fs.Int64("seed", 0, "PRNG seed")
	logEvery := fs.Int("log-every", 0, "Log every N steps")
	_ = fs.Parse(args)

	// Overrides may supply required fields, so validate only after applying them.
	cfg, err := config.Read(*cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	cfg.ApplyOverrides(config.Overrides{
		Network:      *netPath,
		Steps:        *steps,
		LearningRate: *lr,
		L1:           *l1,
		Seed:         *seed,
		LogEvery:     *logEvery,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	net, err := nn.LoadFile(cfg.Network, nn.WithSeed(cfg.Seed))
	if err != nil {
		log.Fatalf("failed to load network: %v", err)
	}
	log.Printf("network=%s seed=%d\n%s", cfg.Network, cfg.Seed, strings.TrimRight(net.String(), "\n"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pcfg := parallel.DefaultConfig()
	if cfg.Workers > 0 {
		pcfg = parallel.Workers(cfg.Workers)
	}

	_, err = trainer.Run(ctx, net, trainer.Options{
		Steps:        cfg.Steps,
		LearningRate: cfg.LearningRate,
		L1:           cfg.L1,
		LogEvery:     cfg.LogEvery,
		Seed:         cfg.Seed,
		EvalSamples:  cfg.EvalSamples,
		Parallel:     pcfg,
	})
	if errors.Is(err, context.Canceled) {
		log.Printf("training interrupted")
		return
	}
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}
}

// parseColumn turns "1,0.5,-2" into a column vector.
func parseColumn(s string) (*matrix.Matrix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("no values")
	}

	parts := strings.Split(s, ",")
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = v
	}
	return matrix.Column(values...), nil
}
