package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/take-home/internal/config"
	"github.com/iwvelando/take-home/pkg/constants"
	"github.com/iwvelando/take-home/pkg/format"
	"github.com/iwvelando/take-home/pkg/paycheck"
	"github.com/iwvelando/take-home/pkg/tradeoff"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tradeoffsCmd = &cobra.Command{
	Use:   "tradeoffs",
	Short: "Show budgeting tradeoff cards for every active profile",
	RunE:  runTradeoffs,
}

func init() {
	tradeoffsCmd.Flags().StringVarP(&flagConfig, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.AddCommand(tradeoffsCmd)
}

func runTradeoffs(cmd *cobra.Command, _ []string) error {
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

	return writeTradeoffs(cmd.Context(), logger, tradeoff.NewStaticGenerator(), conf, cmd.OutOrStdout())
}

func writeTradeoffs(ctx context.Context, logger *zap.Logger, generator tradeoff.Generator, conf *config.Configuration, w io.Writer) error {
	profiles := conf.ActiveProfiles()
	if len(profiles) == 0 {
		return fmt.Errorf("no active profiles in configuration")
	}

	for _, profile := range profiles {
		cards, err := generator.Generate(ctx, tradeoff.Request{
			Name:            profile.Name,
			Salary:          profile.Salary,
			LivingSituation: profile.Expenses.LivingSituation,
			Goals:           profile.Expenses.Goals,
		})
		if err != nil {
			return fmt.Errorf("failed to generate tradeoffs for profile %s: %w", profile.Name, err)
		}
		logger.Debug("generated tradeoff cards",
			zap.String("op", "main.writeTradeoffs"),
			zap.String("profile", profile.Name),
			zap.Int("cards", len(cards)),
		)

		breakdown := paycheck.EstimateTakeHome(profile.Salary)
		monthly := tradeoff.MonthlyTakeHome(breakdown, profile.Salary.PayFrequency)

		fmt.Fprintf(w, "--- Tradeoffs for profile %s (monthly take-home %s) ---\n", profile.Name, format.Currency(monthly))
		for _, card := range cards {
			fit := tradeoff.Assess(card, monthly)
			fmt.Fprintf(w, "\n[%s] %s\n", card.Category, card.Title)
			writeOption(w, "A", card.OptionA, fit.RemainingA)
			writeOption(w, "B", card.OptionB, fit.RemainingB)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func writeOption(w io.Writer, label string, option tradeoff.Option, remaining float64) {
	fmt.Fprintf(w, "  %s) %s: %s/month, leaves %s\n", label, option.Title, format.SignedCurrency(option.MonthlyImpact), format.Currency(remaining))
	if len(option.Pros) > 0 {
		fmt.Fprintf(w, "     pros: %s\n", strings.Join(option.Pros, "; "))
	}
	if len(option.Cons) > 0 {
		fmt.Fprintf(w, "     cons: %s\n", strings.Join(option.Cons, "; "))
	}
}
