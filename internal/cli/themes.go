package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/style"

	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the predefined themes",
	Long: `List the predefined themes that can be applied when rendering a resume,
along with the fonts available for customization.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

var themesJSON bool

func init() {
	themesCmd.Flags().BoolVar(&themesJSON, "json", false, "Print themes as JSON")
}

func runThemes(cmd *cobra.Command, args []string) error {
	themes := style.Themes()

	if themesJSON {
		data, err := json.MarshalIndent(themes, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal themes: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println("Available themes:")
	for _, theme := range themes {
		fmt.Printf("  %-16s %s / %s, %s\n",
			theme.Name, theme.PrimaryColor, theme.SecondaryColor, theme.Font)
	}
	fmt.Printf("\nAvailable fonts: %s\n", strings.Join(style.Fonts(), ", "))
	return nil
}
