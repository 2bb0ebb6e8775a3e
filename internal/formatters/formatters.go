package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumeforge/internal/render"
	"resumeforge/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "Improvements", &ImprovementsTextFormatter{})
	registry.RegisterFormatter("markdown", "Improvements", &ImprovementsMarkdownFormatter{})
	registry.RegisterFormatter("text", "IndustryReport", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "IndustryReport", &ReportMarkdownFormatter{})
	registry.RegisterFormatter("text", "Document", &DocumentTextFormatter{})
	registry.RegisterFormatter("markdown", "Document", &DocumentMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult:
		return "AnalysisResult"
	case types.Improvements:
		return "Improvements"
	case types.IndustryReport:
		return "IndustryReport"
	case *render.Document:
		return "Document"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Completeness Score: %d/100\n", result.CompletenessScore))
	output.WriteString(fmt.Sprintf("Skills: %d  Experience: %d  Education: %d\n\n",
		result.SkillsCount, result.ExperienceCount, result.EducationCount))

	if len(result.MissingFields) > 0 {
		output.WriteString("Missing Fields:\n")
		for _, field := range result.MissingFields {
			output.WriteString(fmt.Sprintf("- %s\n", field))
		}
		output.WriteString("\n")
	}

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("Recommendations:\n")
		for _, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("- %s\n", recommendation))
		}
		output.WriteString("\n")
	}

	if len(result.MatchedIndustries) > 0 {
		output.WriteString("=== INDUSTRY MATCHES ===\n")
		for i, match := range result.MatchedIndustries {
			output.WriteString(fmt.Sprintf("%d. %s (%d%% match)\n", i+1, match.Industry, match.MatchPercentage))
			if len(match.MatchedSkills) > 0 {
				output.WriteString(fmt.Sprintf("   Matched skills: %s\n", strings.Join(match.MatchedSkills, ", ")))
			}
		}
	} else {
		output.WriteString("No strong industry matches found.\n")
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Completeness Score:** %d/100\n\n", result.CompletenessScore))
	output.WriteString(fmt.Sprintf("**Skills:** %d | **Experience:** %d | **Education:** %d\n\n",
		result.SkillsCount, result.ExperienceCount, result.EducationCount))

	if len(result.MissingFields) > 0 {
		output.WriteString("## Missing Fields\n")
		for _, field := range result.MissingFields {
			output.WriteString(fmt.Sprintf("- %s\n", field))
		}
		output.WriteString("\n")
	}

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n")
		for _, strength := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", strength))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n")
		for _, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("- %s\n", recommendation))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Industry Matches\n\n")
	if len(result.MatchedIndustries) > 0 {
		for i, match := range result.MatchedIndustries {
			output.WriteString(fmt.Sprintf("### %d. %s (%d%%)\n\n", i+1, match.Industry, match.MatchPercentage))
			if len(match.MatchedSkills) > 0 {
				output.WriteString(fmt.Sprintf("**Matched skills:** %s\n\n", strings.Join(match.MatchedSkills, ", ")))
			}
		}
	} else {
		output.WriteString("No strong industry matches found.\n")
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// ImprovementsTextFormatter handles text formatting for improvement suggestions
type ImprovementsTextFormatter struct{}

func (itf *ImprovementsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.Improvements)
	if !ok {
		return "", fmt.Errorf("expected Improvements, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== SUGGESTIONS FOR THE %s INDUSTRY ===\n\n", strings.ToUpper(result.Industry)))

	if len(result.SkillsToAdd) > 0 {
		output.WriteString("Skills to Add:\n")
		for _, skill := range result.SkillsToAdd {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.RolesToConsider) > 0 {
		output.WriteString("Roles to Consider:\n")
		for _, role := range result.RolesToConsider {
			output.WriteString(fmt.Sprintf("- %s\n", role))
		}
		output.WriteString("\n")
	}

	if len(result.SummaryImprovements) > 0 {
		output.WriteString("Summary Improvements:\n")
		for _, improvement := range result.SummaryImprovements {
			output.WriteString(fmt.Sprintf("- %s\n", improvement.Message))
		}
	}

	if len(result.SkillsToAdd) == 0 && len(result.RolesToConsider) == 0 && len(result.SummaryImprovements) == 0 {
		output.WriteString("Nothing to suggest. The resume already covers this industry well.\n")
	}

	return output.String(), nil
}

func (itf *ImprovementsTextFormatter) SupportedType() string {
	return "Improvements"
}

// ImprovementsMarkdownFormatter handles markdown formatting for improvement suggestions
type ImprovementsMarkdownFormatter struct{}

func (imf *ImprovementsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.Improvements)
	if !ok {
		return "", fmt.Errorf("expected Improvements, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# Suggestions for the %s industry\n\n", result.Industry))

	if len(result.SkillsToAdd) > 0 {
		output.WriteString("## Skills to Add\n")
		for _, skill := range result.SkillsToAdd {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.RolesToConsider) > 0 {
		output.WriteString("## Roles to Consider\n")
		for _, role := range result.RolesToConsider {
			output.WriteString(fmt.Sprintf("- %s\n", role))
		}
		output.WriteString("\n")
	}

	if len(result.SummaryImprovements) > 0 {
		output.WriteString("## Summary Improvements\n")
		for _, improvement := range result.SummaryImprovements {
			output.WriteString(fmt.Sprintf("- %s\n", improvement.Message))
		}
		output.WriteString("\n")
	}

	if len(result.SkillsToAdd) == 0 && len(result.RolesToConsider) == 0 && len(result.SummaryImprovements) == 0 {
		output.WriteString("## Nothing to Suggest\n\nThe resume already covers this industry well.\n")
	}

	return output.String(), nil
}

func (imf *ImprovementsMarkdownFormatter) SupportedType() string {
	return "Improvements"
}

// ReportTextFormatter handles text formatting for industry reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.IndustryReport)
	if !ok {
		return "", fmt.Errorf("expected IndustryReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("=== %s INDUSTRY REPORT ===\n\n", strings.ToUpper(result.Industry)))
	output.WriteString(result.Overview)
	output.WriteString("\n\n")

	output.WriteString(fmt.Sprintf("Average Salary: %s\n", result.Salary))
	output.WriteString(fmt.Sprintf("Demand Level: %s\n", result.DemandLevel))
	output.WriteString(fmt.Sprintf("Growth: %s\n\n", result.Growth))

	output.WriteString("Hot Skills:\n")
	for _, skill := range result.HotSkills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}
	output.WriteString("\n")

	output.WriteString("Growing Roles:\n")
	for _, role := range result.GrowingRoles {
		output.WriteString(fmt.Sprintf("- %s\n", role))
	}

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "IndustryReport"
}

// ReportMarkdownFormatter handles markdown formatting for industry reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.IndustryReport)
	if !ok {
		return "", fmt.Errorf("expected IndustryReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# %s Industry Report\n\n", result.Industry))
	output.WriteString(result.Overview)
	output.WriteString("\n\n")

	output.WriteString(fmt.Sprintf("**Average Salary:** %s\n\n", result.Salary))
	output.WriteString(fmt.Sprintf("**Demand Level:** %s\n\n", result.DemandLevel))
	output.WriteString(fmt.Sprintf("**Growth:** %s\n\n", result.Growth))

	output.WriteString("## Hot Skills\n")
	for _, skill := range result.HotSkills {
		output.WriteString(fmt.Sprintf("- %s\n", skill))
	}
	output.WriteString("\n")

	output.WriteString("## Growing Roles\n")
	for _, role := range result.GrowingRoles {
		output.WriteString(fmt.Sprintf("- %s\n", role))
	}

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "IndustryReport"
}

// DocumentTextFormatter flattens a rendered document into plain text
type DocumentTextFormatter struct{}

func (dtf *DocumentTextFormatter) Format(data any) (string, error) {
	doc, ok := data.(*render.Document)
	if !ok {
		return "", fmt.Errorf("expected *render.Document, got %T", data)
	}

	var output strings.Builder

	for _, page := range doc.Pages {
		for _, section := range page.Sections {
			if section.Title != "" {
				output.WriteString(fmt.Sprintf("=== %s ===\n", strings.ToUpper(section.Title)))
			}
			for _, block := range section.Blocks {
				writeBlockText(&output, block)
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func writeBlockText(output *strings.Builder, block render.Block) {
	if block.Title != "" {
		output.WriteString(block.Title)
		output.WriteString("\n")
	}
	if block.Subtitle != "" {
		output.WriteString(block.Subtitle)
		output.WriteString("\n")
	}
	if block.Dates != "" {
		output.WriteString(block.Dates)
		output.WriteString("\n")
	}
	if block.Text != "" {
		output.WriteString(block.Text)
		output.WriteString("\n")
	}
	if block.Link != "" {
		output.WriteString(block.Link)
		output.WriteString("\n")
	}
	if len(block.Tags) > 0 {
		tags := make([]string, 0, len(block.Tags))
		for _, tag := range block.Tags {
			tags = append(tags, tag.Text)
		}
		output.WriteString(strings.Join(tags, ", "))
		output.WriteString("\n")
	}
}

func (dtf *DocumentTextFormatter) SupportedType() string {
	return "Document"
}

// DocumentMarkdownFormatter flattens a rendered document into markdown
type DocumentMarkdownFormatter struct{}

func (dmf *DocumentMarkdownFormatter) Format(data any) (string, error) {
	doc, ok := data.(*render.Document)
	if !ok {
		return "", fmt.Errorf("expected *render.Document, got %T", data)
	}

	var output strings.Builder

	for _, page := range doc.Pages {
		for _, section := range page.Sections {
			if section.Title != "" {
				output.WriteString(fmt.Sprintf("## %s\n\n", section.Title))
			}
			for _, block := range section.Blocks {
				writeBlockMarkdown(&output, block)
			}
		}
	}

	return output.String(), nil
}

func writeBlockMarkdown(output *strings.Builder, block render.Block) {
	switch block.Kind {
	case render.BlockHeading:
		output.WriteString(fmt.Sprintf("# %s\n\n", block.Title))
		if block.Subtitle != "" {
			output.WriteString(block.Subtitle)
			output.WriteString("\n\n")
		}
	case render.BlockEntry:
		if block.Title != "" {
			output.WriteString(fmt.Sprintf("### %s\n\n", block.Title))
		}
		if block.Subtitle != "" {
			output.WriteString(fmt.Sprintf("*%s*\n\n", block.Subtitle))
		}
		if block.Dates != "" {
			output.WriteString(fmt.Sprintf("%s\n\n", block.Dates))
		}
		if block.Link != "" {
			output.WriteString(fmt.Sprintf("<%s>\n\n", block.Link))
		}
		if block.Text != "" {
			output.WriteString(block.Text)
			output.WriteString("\n\n")
		}
	case render.BlockTagList:
		tags := make([]string, 0, len(block.Tags))
		for _, tag := range block.Tags {
			tags = append(tags, tag.Text)
		}
		output.WriteString(strings.Join(tags, ", "))
		output.WriteString("\n\n")
	default:
		if block.Text != "" {
			output.WriteString(block.Text)
			output.WriteString("\n\n")
		}
	}
}

func (dmf *DocumentMarkdownFormatter) SupportedType() string {
	return "Document"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
