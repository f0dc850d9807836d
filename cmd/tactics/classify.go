package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tactics/internal/classifier"
	"tactics/internal/dataset"
	"tactics/internal/dictionary"
	"tactics/internal/export"
	"tactics/internal/models"
)

// runClassify classifies the input dataset and writes the export.
func runClassify(cmd *cobra.Command, args []string) error {
	dict, err := loadDictionaries(dictionaryPath)
	if err != nil {
		return err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	records, err := dataset.ParseReader(f)
	if err != nil {
		return fmt.Errorf("failed to read dataset: %w", err)
	}

	rows, column := classifier.ClassifyRecords(records, dict)
	summary := classifier.Summarize(rows, dict)
	logger.Debug("classified dataset",
		zap.String("input", inputPath),
		zap.Int("rows", summary.Total),
		zap.String("text_column", column),
		zap.Strings("tactics", dict.Tactics()),
	)
	if column == "" && len(records) > 0 {
		logger.Warn("no statement or text column found", zap.String("input", inputPath))
	}

	if err := writeOutput(cmd, export.ToCSV(rows, dict)); err != nil {
		return err
	}

	if printSummary {
		writeSummary(cmd.ErrOrStderr(), summary)
	}
	return nil
}

// runDictionaries prints the default dictionaries.
func runDictionaries(cmd *cobra.Command, args []string) error {
	return dictionary.Default().WriteYAML(cmd.OutOrStdout())
}

func loadDictionaries(path string) (*dictionary.Store, error) {
	if path == "" {
		return dictionary.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionaries: %w", err)
	}
	defer f.Close()

	dict, err := dictionary.LoadYAML(f)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded dictionaries", zap.String("path", path), zap.Int("tactics", dict.Len()))
	return dict, nil
}

func writeOutput(cmd *cobra.Command, csv string) error {
	if outputPath == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), csv+"\n")
		return err
	}

	if err := os.WriteFile(outputPath, []byte(csv), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote classified dataset", zap.String("output", outputPath))
	return nil
}

func writeSummary(w io.Writer, summary *models.Summary) {
	for _, tactic := range summary.Tactics {
		stat := summary.Stat(tactic)
		fmt.Fprintf(w, "%s: %d/%d (%s%%)\n", tactic, stat.Count, summary.Total, stat.PercentageLabel())
	}
	fmt.Fprintf(w, "any tactic: %d/%d\n", summary.AnyTacticCount, summary.Total)
}
