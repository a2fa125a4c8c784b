package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smarttask/typeval/internal/config"
	"github.com/smarttask/typeval/internal/dataset"
	"github.com/smarttask/typeval/internal/evaluation"
	"github.com/smarttask/typeval/internal/pkg/logger"
	"github.com/smarttask/typeval/internal/report"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "typeval",
		Short: "typeval - answer-type prediction evaluation",
		Long: `typeval scores answer-type predictions against a gold standard.

Resource-category predictions are scored with hierarchy-aware NDCG and
linear gain decay; literal predictions with exact match.

Run 'typeval evaluate' for the full hierarchy-aware evaluation.
Run 'typeval mrr' for the strict exact-match variant.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("format", "text", "output format (text, json)")

	rootCmd.AddCommand(
		evaluateCmd(),
		mrrCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func evaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <hierarchy.tsv> <gold.json> <system.json>",
		Short: "Score predictions with hierarchy-aware NDCG",
		Long: `Evaluate a system output file against the ground truth:
- category accuracy over all gold questions
- NDCG at each configured cutoff over literal and resource questions

The hierarchy TSV must have a header row and Type, Depth, Parent columns.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}

			h, err := dataset.LoadHierarchy(args[0], log)
			if err != nil {
				return err
			}
			gold, err := dataset.LoadGold(args[1], h, log)
			if err != nil {
				return err
			}
			predictions, err := dataset.LoadPredictions(args[2], log)
			if err != nil {
				return err
			}

			scorer, err := evaluation.NewScorer(h, cfg.Eval.Cutoffs, cfg.Eval.Workers, log)
			if err != nil {
				return err
			}
			summary, err := scorer.Evaluate(cmd.Context(), gold, predictions)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			return report.Render(cmd.OutOrStdout(), summary, format)
		},
	}

	cmd.Flags().IntSlice("cutoffs", nil, "NDCG cutoffs (default from config: 5,10)")
	cmd.Flags().Int("workers", 0, "concurrent question scorers (default from config: 1)")

	return cmd
}

func mrrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mrr <gold.json> <system.json>",
		Short: "Score predictions with strict exact-match MRR",
		Long: `Evaluate a system output file with the strict variant: a predicted
type only counts when it appears verbatim in the gold type list. No type
hierarchy is consulted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup(cmd)
			if err != nil {
				return err
			}

			gold, err := dataset.LoadGoldLoose(args[0], log)
			if err != nil {
				return err
			}
			predictions, err := dataset.LoadPredictions(args[1], log)
			if err != nil {
				return err
			}

			_, summary := evaluation.NewStrictScorer(log).Evaluate(gold, predictions)

			format, _ := cmd.Flags().GetString("format")
			return report.RenderStrict(cmd.OutOrStdout(), summary, format)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("typeval %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
}

func setup(cmd *cobra.Command) (*config.Config, *logger.Logger, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Log.Level = "debug"
	}
	if cutoffs, _ := cmd.Flags().GetIntSlice("cutoffs"); len(cutoffs) > 0 {
		cfg.Eval.Cutoffs = cutoffs
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.Eval.Workers = workers
	}

	return cfg, logger.New(cfg.Log.Level, cfg.Log.Format), nil
}
