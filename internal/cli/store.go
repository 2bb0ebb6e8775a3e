package cli

import (
	"fmt"

	"resumeforge/internal/common"
	"resumeforge/internal/config"
	"resumeforge/internal/errors"
	"resumeforge/internal/storage"
	"resumeforge/internal/utils"

	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage saved resumes",
	Long: `Manage the resume store. Resumes are saved under a name together with
their style customization, and can be listed, loaded, searched,
duplicated, exported and imported.

The store is backed by the file configured under storage.path. Without
a configured path an in-memory store is used, which only makes sense
for the HTTP server.`,
}

var (
	storeTheme      string
	storeLoadConfig common.CommandConfig
	storeExportFile string
)

func init() {
	storeSaveCmd.Flags().StringVar(&storeTheme, "theme", "", "Theme preset to save the resume with")
	storeLoadCmd.Flags().StringVarP(&storeLoadConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	storeLoadCmd.Flags().StringVar(&storeLoadConfig.OutputFormat, "format", "json", "Output format: json only for saved resumes")
	storeExportCmd.Flags().StringVarP(&storeExportFile, "output", "o", "", "Output file path (default: stdout)")

	storeCmd.AddCommand(storeSaveCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeLoadCmd)
	storeCmd.AddCommand(storeDeleteCmd)
	storeCmd.AddCommand(storeSearchCmd)
	storeCmd.AddCommand(storeDuplicateCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeImportCmd)
	storeCmd.AddCommand(storeUsageCmd)
}

// openStore picks the backend the same way the HTTP server does.
func openStore(cfg *config.Config, logger *errors.Logger) (storage.Store, error) {
	if cfg.Storage.Path != "" {
		return storage.NewFileStore(cfg.Storage.Path)
	}
	logger.Warn("No storage path configured, using in-memory store (changes are lost on exit)")
	return storage.NewMemoryStore(), nil
}

var storeSaveCmd = &cobra.Command{
	Use:   "save [name] [resume-file]",
	Short: "Save a resume under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		fileProcessor := common.NewFileProcessor(logger).WithMaxFileSize(cfg.App.MaxFileSize)
		contents, err := fileProcessor.ValidateAndReadFiles(args[1])
		if err != nil {
			return err
		}

		resume, err := common.ParseResume(contents[0])
		if err != nil {
			return err
		}

		customization, err := resolveCustomization(storeTheme)
		if err != nil {
			return err
		}

		saved, err := store.Save(args[0], *resume, customization)
		if err != nil {
			return fmt.Errorf("failed to save resume: %w", err)
		}

		logger.Info("Resume saved", "name", saved.Name, "date", saved.Date)
		fmt.Printf("Saved resume %q\n", saved.Name)
		return nil
	},
}

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved resumes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		saved, err := store.List()
		if err != nil {
			return fmt.Errorf("failed to list resumes: %w", err)
		}

		printSavedResumes(saved)
		return nil
	},
}

var storeLoadCmd = &cobra.Command{
	Use:   "load [name]",
	Short: "Load a saved resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		saved, err := store.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load resume: %w", err)
		}

		// Saved resumes have no dedicated text rendering, so they fall
		// through to the JSON formatter regardless of format.
		return common.NewOutputHandler(logger).HandleOutput(saved, storeLoadConfig)
	},
}

var storeDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a saved resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		deleted, err := store.Delete(args[0])
		if err != nil {
			return fmt.Errorf("failed to delete resume: %w", err)
		}
		if !deleted {
			return fmt.Errorf("no saved resume named %q", args[0])
		}

		logger.Info("Resume deleted", "name", args[0])
		fmt.Printf("Deleted resume %q\n", args[0])
		return nil
	},
}

var storeSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search saved resumes by keyword",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		matches, err := store.Search(args[0])
		if err != nil {
			return fmt.Errorf("failed to search resumes: %w", err)
		}

		printSavedResumes(matches)
		return nil
	},
}

var storeDuplicateCmd = &cobra.Command{
	Use:   "duplicate [name] [new-name]",
	Short: "Duplicate a saved resume under a new name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		copied, err := store.Duplicate(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to duplicate resume: %w", err)
		}

		logger.Info("Resume duplicated", "from", args[0], "to", copied.Name)
		fmt.Printf("Duplicated %q as %q\n", args[0], copied.Name)
		return nil
	},
}

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all saved resumes as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		data, err := store.ExportAll()
		if err != nil {
			return fmt.Errorf("failed to export resumes: %w", err)
		}

		if storeExportFile != "" {
			fileProcessor := common.NewFileProcessor(logger)
			if err := fileProcessor.WriteFileBytes(storeExportFile, data); err != nil {
				return err
			}
			logger.Info("Resumes exported", "file", storeExportFile, "bytes", len(data))
			return nil
		}

		fmt.Println(string(data))
		return nil
	},
}

var storeImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import resumes from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		fileProcessor := common.NewFileProcessor(logger).WithMaxFileSize(cfg.App.MaxFileSize)
		contents, err := fileProcessor.ValidateAndReadFiles(args[0])
		if err != nil {
			return err
		}

		imported, err := store.ImportAll([]byte(contents[0]))
		if err != nil {
			return fmt.Errorf("failed to import resumes: %w", err)
		}

		logger.Info("Resumes imported", "count", len(imported))
		fmt.Printf("Imported %d resume(s)\n", len(imported))
		return nil
	},
}

var storeUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show the storage space used by saved resumes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		logger := getLoggerFromContext(cmd.Context())

		store, err := openStore(cfg, logger)
		if err != nil {
			return err
		}

		usage, err := store.Usage()
		if err != nil {
			return fmt.Errorf("failed to read storage usage: %w", err)
		}

		fmt.Printf("Storage usage: %s\n", utils.FormatFileSize(usage))
		return nil
	},
}

func printSavedResumes(saved []storage.SavedResume) {
	if len(saved) == 0 {
		fmt.Println("No saved resumes")
		return
	}
	for _, s := range saved {
		fmt.Printf("  %-24s %-24s saved %s\n",
			s.Name, s.Data.FullName(), s.Date.Format("2006-01-02 15:04"))
	}
}
