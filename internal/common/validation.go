package common

import (
	"encoding/json"
	"fmt"
	"slices"

	"resumeforge/internal/errors"
	"resumeforge/internal/types"
)

// ValidateOutputFormat validates format against configured supported formats
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil // No restrictions configured
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return fmt.Errorf("unsupported output format '%s'. Supported formats: %v",
		format, supportedFormats)
}

// GetSupportedFormats returns the list of supported formats
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}

// ParseResume decodes a JSON resume document and normalizes its slice
// fields so downstream code never sees a nil slice.
func ParseResume(content string) (*types.Resume, error) {
	var resume types.Resume
	if err := json.Unmarshal([]byte(content), &resume); err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidResume,
			"Resume file is not valid JSON", err)
	}

	resume.Normalize()
	return &resume, nil
}
