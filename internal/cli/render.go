package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"resumeforge/internal/common"
	"resumeforge/internal/errors"
	"resumeforge/internal/pdf"
	"resumeforge/internal/render"
	"resumeforge/internal/style"
	"resumeforge/internal/types"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [resume-file]",
	Short: "Render a resume through a template",
	Long: `Render a JSON resume file into a structured document using one of the
built-in templates (professional, modern, creative, minimalist).

By default the rendered document is printed in the selected output
format. With --pdf the document is exported through headless Chrome
into a PDF file instead. With --watch the resume file is re-rendered
every time it changes, which is useful while editing.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if renderConfig.OutputFormat == "" {
			renderConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(renderConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRender,
}

var (
	renderConfig   common.CommandConfig
	renderTemplate string
	renderTheme    string
	renderStyle    string
	renderPDF      string
	renderWatch    bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().StringVar(&renderConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Template: professional, modern, creative, or minimalist")
	renderCmd.Flags().StringVar(&renderTheme, "theme", "", "Theme preset to style the document with")
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "JSON file with style customization")
	renderCmd.MarkFlagsMutuallyExclusive("theme", "style")
	renderCmd.Flags().StringVar(&renderPDF, "pdf", "", "Export to the given PDF file instead of printing")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render whenever the resume file changes")

	_ = renderCmd.RegisterFlagCompletionFunc("template", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return render.AvailableTemplates(), cobra.ShellCompDirectiveNoFileComp
	})

	_ = renderCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		themes := style.Themes()
		names := make([]string, 0, len(themes))
		for _, theme := range themes {
			names = append(names, theme.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	customization, err := loadCustomization(logger, renderTheme, renderStyle)
	if err != nil {
		return err
	}

	// The resume record carries its own template choice; only an
	// explicit flag overrides it.
	templateOverride := ""
	if cmd.Flags().Changed("template") {
		templateOverride = renderTemplate
	}

	renderOnce := func(ctx context.Context) error {
		fileProcessor := common.NewFileProcessor(logger).WithMaxFileSize(cfg.App.MaxFileSize)

		contents, err := fileProcessor.ValidateAndReadFiles(args[0])
		if err != nil {
			return err
		}

		resume, err := common.ParseResume(contents[0])
		if err != nil {
			return err
		}
		applyTemplateOverride(resume, templateOverride)

		logger.Info("Rendering resume",
			"name", resume.FullName(),
			"template", resume.Template,
			"theme", renderTheme)

		doc, err := render.Render(resume, customization)
		if err != nil {
			return err
		}

		if renderPDF != "" {
			exporter := pdf.NewExporter(&cfg.Export, logger)
			data, err := exporter.Export(ctx, doc)
			if err != nil {
				return err
			}
			if err := fileProcessor.WriteFileBytes(renderPDF, data); err != nil {
				return err
			}
			logger.Info("PDF written", "file", renderPDF, "bytes", len(data))
			return nil
		}

		return common.NewOutputHandler(logger).HandleOutput(doc, renderConfig)
	}

	if err := renderOnce(cmd.Context()); err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if !renderWatch {
		return nil
	}

	return watchAndRender(cmd.Context(), logger, args[0], renderOnce)
}

// applyTemplateOverride replaces the resume's template selection only
// when an override was actually given, so a record that names its own
// template keeps it.
func applyTemplateOverride(resume *types.Resume, override string) {
	if override != "" {
		resume.Template = override
	}
}

// loadCustomization builds the document style from either a theme
// preset or a customization JSON file. The flags are mutually
// exclusive, so at most one branch applies.
func loadCustomization(logger *errors.Logger, themeName, styleFile string) (style.Customization, error) {
	if styleFile != "" {
		content, err := common.NewFileProcessor(logger).ReadFile(styleFile)
		if err != nil {
			return style.Customization{}, err
		}
		var customization style.Customization
		if err := json.Unmarshal([]byte(content), &customization); err != nil {
			return style.Customization{}, fmt.Errorf("style file is not valid JSON: %w", err)
		}
		customization.Normalize()
		return customization, nil
	}
	return resolveCustomization(themeName)
}

// resolveCustomization builds the document style from a theme preset
// name, or the defaults when no theme is given.
func resolveCustomization(themeName string) (style.Customization, error) {
	if themeName == "" {
		customization := style.Customization{}
		customization.Normalize()
		return customization, nil
	}

	theme, err := style.ThemeByName(themeName)
	if err != nil {
		return style.Customization{}, err
	}
	return theme.Customization, nil
}

// watchAndRender re-renders the resume whenever the file changes.
// Blocks until the context is cancelled.
func watchAndRender(ctx context.Context, logger *errors.Logger, path string, renderOnce func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Warn("Failed to close file watcher", "error", err)
		}
	}()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	logger.Info("Watching for changes", "file", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// Editors often replace the file, which drops the watch.
			// Re-adding is a no-op when the path is still watched.
			_ = watcher.Add(path)
			if err := renderOnce(ctx); err != nil {
				logger.Warn("Re-render failed", "file", path, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("File watcher error", "error", err)
		}
	}
}
