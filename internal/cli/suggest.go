package cli

import (
	"context"
	"fmt"
	"strings"

	"resumeforge/internal/common"
	"resumeforge/internal/market"
	"resumeforge/internal/types"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [resume-file]",
	Short: "Suggest resume improvements for a target industry",
	Long: `Suggest improvements for a JSON resume targeting a specific industry.

The suggestions include:
- In-demand skills missing from the resume
- Growing roles worth considering
- Summary improvements, including key terms to incorporate`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if suggestConfig.OutputFormat == "" {
			suggestConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(suggestConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSuggest,
}

var (
	suggestConfig   common.CommandConfig
	suggestIndustry string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	suggestCmd.Flags().StringVar(&suggestConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	suggestCmd.Flags().StringVarP(&suggestIndustry, "industry", "i", "", "Target industry (required)")
	_ = suggestCmd.MarkFlagRequired("industry")

	_ = suggestCmd.RegisterFlagCompletionFunc("industry", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return market.AvailableIndustries(), cobra.ShellCompDirectiveNoFileComp
	})

	_ = suggestCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSuggest(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (*types.Resume, error) {
		if len(contents) != 1 {
			return nil, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return common.ParseResume(contents[0])
	}

	logDetails := func(input *types.Resume, cfg common.CommandConfig) {
		logger.Info("Generating improvement suggestions",
			"name", input.FullName(),
			"industry", suggestIndustry,
			"output_format", cfg.OutputFormat)
	}

	suggestOperation := func(ctx context.Context, input *types.Resume) (types.Improvements, error) {
		return market.SuggestImprovements(input, suggestIndustry)
	}

	err := common.RunResumeCommand(
		cmd.Context(),
		logger,
		suggestConfig,
		args,
		createInput,
		suggestOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to suggest improvements for the %s industry: %w",
			strings.ToLower(suggestIndustry), err)
	}
	logger.Info("Improvement suggestions completed successfully")
	return nil
}
