package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsBetween(t *testing.T) {
	start := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{"2024-11", "2024-12", "2025-01", "2025-02"}, MonthsBetween(start, end))
}

func TestMonthsBetweenSingleMonth(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2025-06"}, MonthsBetween(day, day))
}

func TestMonthsBetweenReversedRange(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, MonthsBetween(start, end))
}

func TestBandLabel(t *testing.T) {
	thresholds := []float64{500000, 1000000, 2000000}

	assert.Equal(t, "< 500000", BandLabel(0, thresholds))
	assert.Equal(t, "< 500000", BandLabel(499999.99, thresholds))
	assert.Equal(t, "500000 - 1000000", BandLabel(500000, thresholds))
	assert.Equal(t, "1000000 - 2000000", BandLabel(1500000, thresholds))
	assert.Equal(t, ">= 2000000", BandLabel(2000000, thresholds))
	assert.Equal(t, ">= 2000000", BandLabel(9000000, thresholds))
}

func TestBandLabelNoThresholds(t *testing.T) {
	assert.Equal(t, "all", BandLabel(123456, nil))
}

func TestBandLabelsOrdering(t *testing.T) {
	thresholds := []float64{500000, 1000000}
	assert.Equal(t, []string{"< 500000", "500000 - 1000000", ">= 1000000"}, BandLabels(thresholds))
}

func TestBandLabelsMatchBandLabel(t *testing.T) {
	thresholds := []float64{300000, 800000, 1500000}
	labels := BandLabels(thresholds)

	for _, ctc := range []float64{0, 300000, 799999, 800000, 1499999, 1500000, 5000000} {
		assert.Contains(t, labels, BandLabel(ctc, thresholds))
	}
}
