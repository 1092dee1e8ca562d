package scraper

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"studyrooms/models"

	"github.com/PuerkitoBio/goquery"
)

const capacityPrefix = "Capacity: "

// ParseGrid parses one day.php page into its header columns and body
// rows. The first and last header cells are the time-label column and
// the trailing spacer, not rooms, and are dropped.
func ParseGrid(doc *goquery.Document) (*models.Grid, error) {
	headers, err := parseHeaders(doc)
	if err != nil {
		return nil, err
	}
	rows, err := parseRows(doc)
	if err != nil {
		return nil, err
	}
	return &models.Grid{Headers: headers, Rows: rows}, nil
}

func parseHeaders(doc *goquery.Document) ([]models.RoomHeader, error) {
	cells := doc.Find("#day_main th")
	if cells.Length() < 3 {
		return nil, &ParseError{Field: "header", Err: fmt.Errorf("expected at least 3 header cells, got %d", cells.Length())}
	}

	var headers []models.RoomHeader
	var parseErr error
	cells.Slice(1, cells.Length()-1).EachWithBreak(func(i int, cell *goquery.Selection) bool {
		spans := cell.Children()
		if spans.Length() < 2 {
			parseErr = &ParseError{
				Field: fmt.Sprintf("header[%d]", i),
				Err:   fmt.Errorf("expected name and capacity spans, got %d children", spans.Length()),
			}
			return false
		}

		name := strings.TrimSpace(spans.Eq(0).Text())

		capText := spans.Eq(1).Text()
		if !strings.HasPrefix(capText, capacityPrefix) {
			parseErr = &ParseError{
				Field: fmt.Sprintf("header[%d].capacity", i),
				Err:   fmt.Errorf("missing %q prefix in %q", capacityPrefix, capText),
			}
			return false
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(capText, capacityPrefix)))
		if err != nil || capacity < 0 {
			parseErr = &ParseError{
				Field: fmt.Sprintf("header[%d].capacity", i),
				Err:   fmt.Errorf("capacity %q is not a non-negative integer", capText),
			}
			return false
		}

		headers = append(headers, models.RoomHeader{Name: name, Capacity: capacity})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return headers, nil
}

func parseRows(doc *goquery.Document) ([]models.GridRow, error) {
	var rows []models.GridRow
	var parseErr error
	doc.Find("#day_main tbody tr").EachWithBreak(func(ri int, tr *goquery.Selection) bool {
		row := models.GridRow{}
		tr.Find(".new_booking").EachWithBreak(func(ci int, cell *goquery.Selection) bool {
			link, err := parseBookingLink(cell)
			if err != nil {
				parseErr = &ParseError{Field: fmt.Sprintf("row[%d].link[%d]", ri, ci), Err: err}
				return false
			}
			row.Links = append(row.Links, link)
			return true
		})
		if parseErr != nil {
			return false
		}
		rows = append(rows, row)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return rows, nil
}

// parseBookingLink decodes one occupied half-hour slot from a booking
// cell's href query parameters. All six parameters are required.
func parseBookingLink(cell *goquery.Selection) (models.BookingLink, error) {
	href, ok := cell.Attr("href")
	if !ok {
		return models.BookingLink{}, fmt.Errorf("booking cell has no href")
	}
	u, err := url.Parse(href)
	if err != nil {
		return models.BookingLink{}, fmt.Errorf("invalid href %q: %w", href, err)
	}
	args := u.Query()

	vals := make(map[string]int, 6)
	for _, key := range []string{"room", "year", "month", "day", "hour", "minute"} {
		raw := args.Get(key)
		if raw == "" {
			return models.BookingLink{}, fmt.Errorf("missing query parameter %q in %q", key, href)
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.BookingLink{}, fmt.Errorf("query parameter %q=%q is not an integer", key, raw)
		}
		vals[key] = n
	}

	return models.BookingLink{
		Room: vals["room"],
		Time: time.Date(vals["year"], time.Month(vals["month"]), vals["day"], vals["hour"], vals["minute"], 0, 0, time.Local),
	}, nil
}
