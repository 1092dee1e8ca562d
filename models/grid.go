package models

import "time"

// RoomHeader is the per-column room metadata parsed from the booking
// grid's header row. Headers carry no room identifier; that has to be
// recovered separately from a fully-booked row.
type RoomHeader struct {
	Name     string
	Capacity int
}

// BookingLink is one occupied half-hour slot, decoded from the query
// parameters of a booking cell's link.
type BookingLink struct {
	Room int
	Time time.Time
}

// GridRow holds the booking links of one body row in document order.
// Spanning placeholder cells carry no link and are not represented.
type GridRow struct {
	Links []BookingLink
}

// Grid is the parse result for one (date, area) page.
type Grid struct {
	Headers []RoomHeader
	Rows    []GridRow
}

// Links returns every booking link on the page in row order.
func (g *Grid) Links() []BookingLink {
	var links []BookingLink
	for _, row := range g.Rows {
		links = append(links, row.Links...)
	}
	return links
}
