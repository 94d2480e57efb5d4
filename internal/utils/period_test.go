package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PettaPuang/nozzle.website-sub005/internal/utils"
)

func TestPreviousPeriod(t *testing.T) {
	year, month := utils.PreviousPeriod(time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, 2026, year)
	assert.Equal(t, 2, month)
}

func TestPreviousPeriodAcrossYearBoundary(t *testing.T) {
	year, month := utils.PreviousPeriod(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, year)
	assert.Equal(t, 12, month)
}

func TestPeriodBounds(t *testing.T) {
	start, end := utils.PeriodBounds(2026, 2)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestPeriodBoundsDecember(t *testing.T) {
	start, end := utils.PeriodBounds(2025, 12)
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Januari", utils.MonthName(1))
	assert.Equal(t, "Agustus", utils.MonthName(8))
	assert.Equal(t, "Desember", utils.MonthName(12))
	assert.Equal(t, "Bulan-13", utils.MonthName(13))
}
