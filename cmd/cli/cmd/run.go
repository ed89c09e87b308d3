package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/conncomp-bench/internal/report"
	"github.com/conncomp-bench/internal/repository"
	"github.com/conncomp-bench/internal/storage"
	"github.com/conncomp-bench/pkg/config"
	"github.com/conncomp-bench/pkg/dispatch"
	apperrors "github.com/conncomp-bench/pkg/errors"
	"github.com/conncomp-bench/pkg/matloader"
	"github.com/conncomp-bench/pkg/memstats"
	"github.com/conncomp-bench/pkg/model"
	"github.com/conncomp-bench/pkg/substrate"
	"github.com/conncomp-bench/pkg/utils"
)

var (
	runThreads     int
	runTrials      int
	runVariant     int
	runParallelism string
	runJSONOut     string
	runStore       bool
	runUpload      bool
	runConfigPath  string
)

var runCmd = &cobra.Command{
	Use:   "run <matrix-file>",
	Short: "Run the connected-components benchmark against a matrix file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBenchmark,
}

func init() {
	runCmd.Flags().IntVarP(&runThreads, "threads", "t", 8, "Number of worker threads")
	runCmd.Flags().IntVarP(&runTrials, "trials", "n", 1, "Number of repeated trials")
	runCmd.Flags().IntVarP(&runVariant, "variant", "v", 0, "Algorithm variant: 0=propagation, 1=union_find")
	runCmd.Flags().StringVar(&runParallelism, "parallelism", "threadpool", "Parallel substrate: sequential, threadpool, workstealing, forkjoin")
	runCmd.Flags().StringVar(&runJSONOut, "json", "", "Write the benchmark report as JSON to this path")
	runCmd.Flags().BoolVar(&runStore, "store", false, "Persist trial results to the configured database")
	runCmd.Flags().BoolVar(&runUpload, "upload", false, "Upload the JSON report to configured object storage")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to a config file")

	rootCmd.AddCommand(runCmd)
}

func parseParallelism(s string) (substrate.Kind, error) {
	switch s {
	case "sequential":
		return substrate.Sequential, nil
	case "threadpool":
		return substrate.ThreadPool, nil
	case "workstealing":
		return substrate.WorkStealing, nil
	case "forkjoin":
		return substrate.ForkJoin, nil
	default:
		return 0, fmt.Errorf("unknown parallelism %q", s)
	}
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	log := GetLogger()
	matrixPath := args[0]

	if runVariant != 0 && runVariant != 1 {
		return apperrors.Wrap(apperrors.CodeInvalidVariant, fmt.Sprintf("invalid variant %d", runVariant), nil)
	}
	parallelism, err := parseParallelism(runParallelism)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidVariant, err.Error(), err)
	}

	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return err
	}

	loader := matloader.NewFileLoader()
	view, err := loader.Load(matrixPath)
	if err != nil {
		return err
	}
	if warnings := loader.Warnings(); warnings != nil {
		log.Warn("matrix load warnings: %v", warnings)
	}

	var repo repository.BenchmarkRunRepository
	if runStore {
		db, err := repository.NewGormDB(&repository.DBConfig{
			Type:     cfg.Database.Type,
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			Database: cfg.Database.Database,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			MaxConns: cfg.Database.MaxConns,
		})
		if err != nil {
			return apperrors.Wrap(apperrors.CodeDatabaseError, "failed to connect to result database", err)
		}
		repos, err := repository.NewRepositories(db, cfg.Database.Type)
		if err != nil {
			return err
		}
		repo = repos.BenchmarkRun
	}

	runID := uuid.New().String()
	builder := report.NewBuilder(runID, matrixPath, view, runTrials, runThreads)

	tracer := otel.Tracer("conncomp-bench")
	variant := dispatch.Variant(runVariant)
	timer := utils.NewTimer("conncomp-bench-run", utils.WithLogger(log))

	var componentCounts []int
	for i := 0; i < runTrials; i++ {
		ctx, span := tracer.Start(context.Background(), "conncomp.trial",
			oteltrace.WithAttributes(
				attribute.String("conncomp.variant", model.Variant(variant).String()),
				attribute.String("conncomp.parallelism", model.Parallelism(parallelism).String()),
				attribute.Int("conncomp.thread_count", runThreads),
				attribute.Int("conncomp.trial_index", i),
			))

		var count int
		phaseName := fmt.Sprintf("trial-%d", i)
		var durationNanos int64
		peakBytes := memstats.Measure(func() {
			durationNanos = timer.TimeFunc(phaseName, func() {
				count = dispatch.Count(ctx, view, runThreads, variant, parallelism)
			}).Nanoseconds()
		})

		span.SetAttributes(
			attribute.Int64("conncomp.duration_nanos", durationNanos),
			attribute.Int("conncomp.component_count", count),
		)
		span.End()

		if count < 0 {
			return apperrors.Wrap(apperrors.CodeInvalidVariant, "engine returned a failure sentinel", nil)
		}

		componentCounts = append(componentCounts, count)

		trial := model.TrialResult{
			RunID:           runID,
			Variant:         model.Variant(variant),
			Parallelism:     model.Parallelism(parallelism),
			ThreadCount:     runThreads,
			TrialIndex:      i,
			ComponentCount:  count,
			DurationNanos:   durationNanos,
			PeakMemoryBytes: peakBytes,
			CreatedAt:       time.Now(),
		}
		builder.Add(trial)

		if repo != nil {
			if err := repo.SaveTrial(context.Background(), &trial); err != nil {
				log.Warn("failed to persist trial result: %v", err)
			}
		}
	}

	for _, c := range componentCounts[1:] {
		if c != componentCounts[0] {
			return apperrors.Wrap(apperrors.CodeTrialMismatch,
				fmt.Sprintf("trials disagreed on component count: %d vs %d", componentCounts[0], c), nil)
		}
	}

	finalReport := builder.Build()
	for _, s := range finalReport.Results {
		log.Info("algorithm=%s parallelism=%s threads=%d components=%d mean_ns=%.0f throughput=%.1f speedup=%.2f efficiency=%.2f",
			s.Algorithm, s.Parallelism, s.ThreadCount, s.ComponentCount, s.MeanNanos, s.Throughput, s.Speedup, s.Efficiency)
	}

	if runJSONOut != "" {
		if err := report.WriteFile(finalReport, runJSONOut); err != nil {
			return apperrors.Wrap(apperrors.CodeLoadError, "failed to write JSON report", err)
		}
		if runUpload {
			store, err := storage.NewStorage(&cfg.Storage)
			if err != nil {
				return err
			}
			if err := store.UploadFile(context.Background(), runID+".json", runJSONOut); err != nil {
				return apperrors.Wrap(apperrors.CodeUploadError, "failed to upload report", err)
			}
		}
	}

	fmt.Fprintf(os.Stdout, "components: %d\n", componentCounts[0])
	return nil
}
