package utils

import (
	"fmt"
	"time"
)

// indonesianMonths maps time.Month to the month names used in closing
// results and reports.
var indonesianMonths = map[time.Month]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

// MonthName returns the Indonesian name for a month number (1-12).
func MonthName(month int) string {
	if name, ok := indonesianMonths[time.Month(month)]; ok {
		return name
	}
	return fmt.Sprintf("Bulan-%d", month)
}

// PreviousPeriod returns the year and month of the calendar month
// immediately preceding the given date. A closing performed in March closes
// February.
func PreviousPeriod(date time.Time) (year int, month int) {
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	prev := firstOfMonth.AddDate(0, 0, -1)
	return prev.Year(), int(prev.Month())
}

// PeriodBounds returns the UTC day boundaries of a calendar month:
// [start, end) where end is the first instant of the following month.
func PeriodBounds(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}
