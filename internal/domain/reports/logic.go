package reports

import (
	"strconv"
	"time"

	"hrcore/internal/domain/employee"
)

func newDate(t time.Time) employee.Date {
	return employee.NewDate(t)
}

// MonthsBetween lists every YYYY-MM key from start through end, inclusive on
// both ends.
func MonthsBetween(start, end time.Time) []string {
	if end.Before(start) {
		return nil
	}
	var months []string
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(last) {
		months = append(months, cursor.Format("2006-01"))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return months
}

// BandLabel buckets a CTC figure into the configured ascending thresholds.
func BandLabel(ctc float64, thresholds []float64) string {
	if len(thresholds) == 0 {
		return "all"
	}
	if ctc < thresholds[0] {
		return "< " + formatAmount(thresholds[0])
	}
	for i := 1; i < len(thresholds); i++ {
		if ctc < thresholds[i] {
			return formatAmount(thresholds[i-1]) + " - " + formatAmount(thresholds[i])
		}
	}
	return ">= " + formatAmount(thresholds[len(thresholds)-1])
}

// BandLabels returns every label in ascending order so reports can emit
// empty bands deterministically.
func BandLabels(thresholds []float64) []string {
	if len(thresholds) == 0 {
		return []string{"all"}
	}
	labels := []string{"< " + formatAmount(thresholds[0])}
	for i := 1; i < len(thresholds); i++ {
		labels = append(labels, formatAmount(thresholds[i-1])+" - "+formatAmount(thresholds[i]))
	}
	return append(labels, ">= "+formatAmount(thresholds[len(thresholds)-1]))
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
