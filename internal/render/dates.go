package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthYearPattern = regexp.MustCompile(`^\d{1,2}/\d{4}$`)

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Layouts tried for free-form date strings, most specific first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"01/02/2006",
	"January 2, 2006",
	"January 2006",
	"Jan 2, 2006",
	"Jan 2006",
	"2006",
}

// FormatDate renders a date field for display. "Present" passes through
// case-normalized, "MM/YYYY" becomes "MonthName YYYY", other parseable
// dates become "Month YYYY", and anything else is returned verbatim.
// It never fails.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}

	if strings.EqualFold(value, "present") {
		return "Present"
	}

	if monthYearPattern.MatchString(value) {
		parts := strings.SplitN(value, "/", 2)
		month, _ := strconv.Atoi(parts[0])
		if month >= 1 && month <= 12 {
			return fmt.Sprintf("%s %s", monthNames[month-1], parts[1])
		}
		return value
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("January 2006")
		}
	}

	return value
}

// formatDateRange joins start and end dates the way the templates show
// them. A missing end date reads as Present when a start date exists.
func formatDateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return FormatDate(end)
	case end == "":
		return FormatDate(start) + " - Present"
	default:
		return FormatDate(start) + " - " + FormatDate(end)
	}
}
