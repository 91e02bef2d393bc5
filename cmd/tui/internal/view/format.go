package view

import (
	"time"
)

const (
	defaultRequestTimeout = 5 * time.Second
	defaultDateFormat     = "02 Jan 2006"
)

// FormatDate renders t with layout, or a dash for the zero time.
func FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return "-"
	}

	if layout == "" {
		layout = defaultDateFormat
	}

	return t.Format(layout)
}
