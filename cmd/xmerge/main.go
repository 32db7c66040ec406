// Command xmerge runs the reflection table editing stage over a table held in
// the configured store and saves the edited table back.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lexlapax/xmerge/pkg/config"
	"github.com/lexlapax/xmerge/pkg/experiment"
	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/pipeline"
)

func main() {
	configPath := flag.String("config", "xmerge.yaml", "Path to configuration file (.yaml or .toml)")
	envPath := flag.String("env", ".env", "Path to an optional .env file")
	experimentsPath := flag.String("experiments", "", "Path to the experiment list")
	input := flag.String("input", "integrated", "Name of the stored input table")
	output := flag.String("output", "scaled", "Name under which the edited table is stored")
	partitions := flag.Int("partitions", 0, "Override the number of partitions")
	list := flag.Bool("list", false, "List stored tables and exit")
	flag.Parse()

	// Environment overrides are read during config loading
	if err := godotenv.Load(*envPath); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *envPath, err)
		os.Exit(1)
	}

	cfg, err := config.LoadFromFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log.Setup(cfg.Logging.LogConfig())
	if *partitions > 0 {
		cfg.Pipeline.Partitions = *partitions
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *experimentsPath, *input, *output, *list); err != nil {
		log.Error("xmerge failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, experimentsPath, input, output string, list bool) error {
	p, err := pipeline.NewFromConfig(ctx, cfg)
	if err != nil {
		return err
	}
	defer p.Close()

	if list {
		names, err := p.Store().List(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	if experimentsPath == "" {
		return fmt.Errorf("-experiments is required")
	}
	experiments, err := experiment.LoadFromFile(experimentsPath)
	if err != nil {
		return err
	}
	log.Info("Loaded experiments", "count", len(experiments), "path", experimentsPath)

	result, err := p.RunStored(ctx, experiments, input, output)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d reflections, columns %v\n", output, result.Size(), result.Keys())
	return nil
}
