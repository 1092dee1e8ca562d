package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// The site ignores dayChanger's first value (the day-of-week) but
// still requires its slot, so the day is preceded by two separators.
// The exact shape must survive any refactor bit for bit.
func TestPageURLPreservesDayChangerQuirk(t *testing.T) {
	f := NewFetcher("https://bookings.lib.uwaterloo.ca/sbs", 30*time.Second, 2)
	date := time.Date(2026, time.September, 3, 0, 0, 0, 0, time.Local)

	url := f.PageURL(date, 8)

	assert.Equal(t, "https://bookings.lib.uwaterloo.ca/sbs/day.php?area=8&dayChanger=+3+9+2026", url)
}

func TestPageURLSingleDigitDayAndMonthUnpadded(t *testing.T) {
	f := NewFetcher("http://example.test", time.Second, 1)
	date := time.Date(2027, time.January, 5, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "http://example.test/day.php?area=2&dayChanger=+5+1+2027", f.PageURL(date, 2))
}
