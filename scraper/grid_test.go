package scraper

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"studyrooms/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testHeader is one room column in a synthetic grid page; capacity is
// the raw span text so malformed pages can be expressed too.
type testHeader struct {
	name     string
	capacity string
}

// pageHTML builds a synthetic day.php grid. Each row is a list of
// booking hrefs; free-slot spanning cells carry no link, matching the
// live site's colspan layout.
func pageHTML(headers []testHeader, rows [][]string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table id="day_main"><thead><tr>`)
	b.WriteString(`<th>Time</th>`)
	for _, h := range headers {
		fmt.Fprintf(&b, `<th><span>%s</span><span>%s</span></th>`, h.name, h.capacity)
	}
	b.WriteString(`<th></th>`)
	b.WriteString(`</tr></thead><tbody>`)
	for _, row := range rows {
		b.WriteString(`<tr><td>9:00</td>`)
		for _, href := range row {
			fmt.Fprintf(&b, `<td><a class="new_booking" href="%s">booked</a></td>`, href)
		}
		b.WriteString(`<td colspan="2">&nbsp;</td></tr>`)
	}
	b.WriteString(`</tbody></table></body></html>`)
	return b.String()
}

func bookingHref(room int, t time.Time) string {
	return fmt.Sprintf("edit_entry.php?room=%d&amp;year=%d&amp;month=%d&amp;day=%d&amp;hour=%d&amp;minute=%d",
		room, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseGridHeaders(t *testing.T) {
	html := pageHTML([]testHeader{
		{name: " DC-3301 ", capacity: "Capacity: 4"},
		{name: "DC-3302", capacity: "Capacity: 12"},
	}, nil)

	grid, err := ParseGrid(docFromHTML(t, html))
	require.NoError(t, err)

	// First (time label) and last (spacer) columns must be dropped.
	require.Len(t, grid.Headers, 2)
	assert.Equal(t, models.RoomHeader{Name: "DC-3301", Capacity: 4}, grid.Headers[0])
	assert.Equal(t, models.RoomHeader{Name: "DC-3302", Capacity: 12}, grid.Headers[1])
}

func TestParseGridRowsDecodeBookingLinks(t *testing.T) {
	slot := time.Date(2026, time.September, 3, 14, 30, 0, 0, time.Local)
	html := pageHTML(
		[]testHeader{{name: "DC-3301", capacity: "Capacity: 4"}, {name: "DC-3302", capacity: "Capacity: 6"}},
		[][]string{
			{bookingHref(101, slot)},
			{bookingHref(101, slot.Add(30 * time.Minute)), bookingHref(102, slot.Add(30 * time.Minute))},
		},
	)

	grid, err := ParseGrid(docFromHTML(t, html))
	require.NoError(t, err)

	require.Len(t, grid.Rows, 2)
	require.Len(t, grid.Rows[0].Links, 1)
	require.Len(t, grid.Rows[1].Links, 2)
	assert.Equal(t, models.BookingLink{Room: 101, Time: slot}, grid.Rows[0].Links[0])
	assert.Equal(t, models.BookingLink{Room: 102, Time: slot.Add(30 * time.Minute)}, grid.Rows[1].Links[1])
}

func TestParseGridMalformedCapacity(t *testing.T) {
	cases := []struct {
		name     string
		capacity string
	}{
		{name: "missing prefix", capacity: "Seats: 4"},
		{name: "not an integer", capacity: "Capacity: lots"},
		{name: "negative", capacity: "Capacity: -2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			html := pageHTML([]testHeader{{name: "DC-3301", capacity: tc.capacity}}, nil)

			_, err := ParseGrid(docFromHTML(t, html))

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Contains(t, parseErr.Field, "capacity")
		})
	}
}

func TestParseGridMissingQueryParameter(t *testing.T) {
	// No minute parameter.
	href := "edit_entry.php?room=101&amp;year=2026&amp;month=9&amp;day=3&amp;hour=14"
	html := pageHTML(
		[]testHeader{{name: "DC-3301", capacity: "Capacity: 4"}},
		[][]string{{href}},
	)

	_, err := ParseGrid(docFromHTML(t, html))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "minute")
}

func TestParseGridTooFewHeaderCells(t *testing.T) {
	html := `<html><body><table id="day_main"><thead><tr><th>Time</th><th></th></tr></thead><tbody></tbody></table></body></html>`

	_, err := ParseGrid(docFromHTML(t, html))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
