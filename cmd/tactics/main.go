package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// classify flags
	inputPath      string
	outputPath     string
	dictionaryPath string
	printSummary   bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tactics",
	Short: "Classify CSV statements by marketing tactic keywords",
	Long: `tactics classifies the text column of a CSV dataset against dictionaries of
marketing tactic keywords and writes the classified dataset back out as CSV.

The text column is the first header containing "statement" or "text".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// classifyCmd classifies one dataset
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a CSV dataset and write classified_data.csv",
	Long: `Reads a CSV dataset, classifies its text column and writes the dataset with
<tactic>_present, <tactic>_count and <tactic>_matches columns appended.

Example:
  tactics classify --input posts.csv --output classified_data.csv --summary`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

// dictionariesCmd prints the default dictionaries
var dictionariesCmd = &cobra.Command{
	Use:   "dictionaries",
	Short: "Print the default dictionaries as YAML",
	Args:  cobra.NoArgs,
	RunE:  runDictionaries,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	classifyCmd.Flags().StringVarP(&inputPath, "input", "i", "", "CSV dataset to classify (required)")
	classifyCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Where to write the classified CSV (default: stdout)")
	classifyCmd.Flags().StringVarP(&dictionaryPath, "dictionaries", "d", "", "YAML dictionary file (default: built-in dictionaries)")
	classifyCmd.Flags().BoolVar(&printSummary, "summary", false, "Print the classification summary to stderr")
	_ = classifyCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(dictionariesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
