package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	apperrors "github.com/conncomp-bench/pkg/errors"
	"github.com/conncomp-bench/pkg/telemetry"
	"github.com/conncomp-bench/pkg/utils"
)

var (
	// Global flags
	verbose bool
	logger  utils.Logger

	telemetryShutdown telemetry.ShutdownFunc
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "conncomp-bench",
	Short: "Benchmark harness for concurrent connected-components algorithms",
	Long: `conncomp-bench measures wall-clock time and memory to compute the
number of connected components of an undirected graph, across two
algorithm families (iterative label propagation and lock-free
union-find) and four parallel execution substrates (sequential,
thread-pool, work-stealing, fork-join).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logLevel := utils.LevelInfo
		if verbose {
			logLevel = utils.LevelDebug
		}
		logger = utils.NewDefaultLogger(logLevel, os.Stdout)
		utils.SetGlobalLogger(logger)

		shutdown, err := telemetry.Init(context.Background())
		if err != nil {
			logger.Warn("failed to initialize telemetry: %v", err)
		}
		telemetryShutdown = shutdown

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if telemetryShutdown != nil {
			return telemetryShutdown(context.Background())
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. The process exits 0 on success, 2 when repeated trials
// disagreed on the component count, and 1 for every other error.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	if apperrors.IsTrialMismatch(err) {
		os.Exit(2)
	}
	os.Exit(1)
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")

	binName := BinName()
	rootCmd.Example = `  # Run the benchmark against a matrix file with 8 threads, 3 trials
  ` + binName + ` run ./graphs/livejournal.ccbm -t 8 -n 3

  # Run the union-find variant over the work-stealing substrate
  ` + binName + ` run ./graphs/social.ccbm -v 1 --parallelism workstealing

  # Emit a JSON report and store trial rows in the configured database
  ` + binName + ` run ./graphs/social.ccbm --json report.json --store`
}

// GetLogger returns the configured logger.
func GetLogger() utils.Logger {
	if logger == nil {
		return &utils.NullLogger{}
	}
	return logger
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}
