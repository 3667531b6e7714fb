package main

import (
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/take-home/internal/config"
	"github.com/iwvelando/take-home/internal/estimate"
	"github.com/iwvelando/take-home/pkg/constants"
	"github.com/iwvelando/take-home/pkg/output"
	"github.com/iwvelando/take-home/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagConfig       string
	flagOutputFormat string
	flagOutput       string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate take-home pay for every active profile",
	RunE:  runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&flagConfig, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	estimateCmd.Flags().StringVar(&flagOutputFormat, "output-format", "", "type of output override: pretty, csv, pdf")
	estimateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write output to this file instead of stdout")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, _ []string) error {
	conf, err := config.LoadConfiguration(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", flagConfig, err)
	}

	logger, err := initializeLogger(conf.Logging, flagLogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := resolveOutputFormat(conf.Output.Format, flagOutputFormat)
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if flagOutput != "" {
		file, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", flagOutput, err)
		}
		defer file.Close()
		w = file
	}

	return writeEstimates(logger, conf, outputFormat, w)
}

// resolveOutputFormat picks the CLI override over the configured format and
// falls back to pretty output.
func resolveOutputFormat(configured, override string) string {
	if override != "" {
		return override
	}
	if configured != "" {
		return configured
	}
	return constants.OutputFormatPretty
}

func writeEstimates(logger *zap.Logger, conf *config.Configuration, outputFormat string, w io.Writer) error {
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.writeEstimates"),
		)
	}

	results, err := estimate.GetEstimates(logger, *conf)
	if err != nil {
		return fmt.Errorf("failed to compute estimates: %w", err)
	}

	switch outputFormat {
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, results)
	case constants.OutputFormatPDF:
		return output.PDF(w, results)
	default:
		output.PrettyFormat(w, results)
		return nil
	}
}
