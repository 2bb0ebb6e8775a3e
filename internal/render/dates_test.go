package render

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"present lowercase", "present", "Present"},
		{"present mixed case", "PrEsEnT", "Present"},
		{"month year", "03/2021", "March 2021"},
		{"single digit month", "1/2020", "January 2020"},
		{"december", "12/1999", "December 1999"},
		{"out of range month passes through", "13/2020", "13/2020"},
		{"iso date", "2021-06-15", "June 2021"},
		{"long form", "January 5, 2022", "January 2022"},
		{"unparseable passes through", "sometime in spring", "sometime in spring"},
		{"garbage passes through", "??", "??"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.input); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{"both", "01/2020", "06/2021", "January 2020 - June 2021"},
		{"open ended", "01/2020", "", "January 2020 - Present"},
		{"explicit present", "01/2020", "Present", "January 2020 - Present"},
		{"end only", "", "06/2021", "June 2021"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDateRange(tt.start, tt.end); got != tt.want {
				t.Errorf("formatDateRange(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
