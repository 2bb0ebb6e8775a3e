package cli

import (
	"fmt"

	"resumeforge/internal/common"
	"resumeforge/internal/market"

	"github.com/spf13/cobra"
)

var industriesCmd = &cobra.Command{
	Use:   "industries [industry]",
	Short: "List known industries or show an industry report",
	Long: `Without arguments, list the industries with job market data.

With an industry name, print a report of its in-demand skills, growing
roles and key terms.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if industriesConfig.OutputFormat == "" {
			industriesConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(industriesConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runIndustries,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return market.AvailableIndustries(), cobra.ShellCompDirectiveNoFileComp
	},
}

var industriesConfig common.CommandConfig

func init() {
	industriesCmd.Flags().StringVarP(&industriesConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	industriesCmd.Flags().StringVar(&industriesConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = industriesCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runIndustries(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	if len(args) == 0 {
		for _, industry := range market.AvailableIndustries() {
			fmt.Println(industry)
		}
		return nil
	}

	report, err := market.GenerateIndustryReport(args[0])
	if err != nil {
		return fmt.Errorf("failed to generate industry report: %w", err)
	}

	logger.Info("Generated industry report", "industry", report.Industry)

	return common.NewOutputHandler(logger).HandleOutput(report, industriesConfig)
}
