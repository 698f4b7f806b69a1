package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mvaleed/pidigits/internal/pipeline"
	"github.com/mvaleed/pidigits/internal/render"
	"github.com/mvaleed/pidigits/internal/verify"
)

func main() {
	var (
		digits    int64
		workers   int
		reference string
	)

	cmd := &cobra.Command{
		Use:   "pidigits",
		Short: "Compute digits of pi in parallel and verify them against a reference file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return run(digits, workers, reference, logger)
		},
		SilenceUsage: true,
	}

	cmd.Flags().Int64Var(&digits, "digits", 1000, "number of decimal digits of pi to compute")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "worker pool size")
	cmd.Flags().StringVar(&reference, "reference", "pi_reference.txt", "path to the reference digit file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(digits int64, workers int, reference string, logger *zap.Logger) error {
	// Strict-fail: if the reference cannot be opened, no digits are computed
	// or compared at all.
	checker, err := verify.NewChecker(reference)
	if err != nil {
		return err
	}
	defer checker.Close()

	start := time.Now()

	slots, timings, err := pipeline.Run(pipeline.Config{
		Total:   digits,
		Workers: workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Parallel section over! Time elapsed: %d ms\n", timings.Parallel.Milliseconds())

	sequentialStart := time.Now()

	sink := render.NewSink(os.Stdout)
	renderErr := render.Render(sink, slots, checker, logger)
	if err := sink.Close(); err != nil && renderErr == nil {
		renderErr = err
	}
	if renderErr != nil {
		return renderErr
	}

	fmt.Printf("\nSequential section over! Time elapsed: %d ms\n", time.Since(sequentialStart).Milliseconds())
	fmt.Printf("Total time elapsed: %d ms\n", time.Since(start).Milliseconds())
	return nil
}
