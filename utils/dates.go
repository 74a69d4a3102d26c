// utils/dates.go
package utils

import "time"

// MonthWindow returns the current calendar month as a half-open interval
// [start, end) in t's location.
func MonthWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0)
	return
}
