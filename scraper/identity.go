package scraper

import "studyrooms/models"

// ResolveIdentities recovers the room ID for each header column.
//
// The grid uses colspan placeholders for free slots, so a header's
// column position only lines up with link cells on rows where every
// room is booked. The first such row (in document order) supplies the
// mapping: its link cells, left to right, carry the IDs for header
// columns 0..n-1. Rows with any other link count are skipped, never
// truncated to fit.
//
// Inherited fragility: if the site ever reorders rows between
// requests, the first qualifying row could attribute IDs to the wrong
// columns. The source behavior has no correction policy and neither
// does this.
func ResolveIdentities(grid *models.Grid) ([]int, error) {
	want := len(grid.Headers)
	for _, row := range grid.Rows {
		if len(row.Links) != want {
			continue
		}
		ids := make([]int, want)
		for i, link := range row.Links {
			ids[i] = link.Room
		}
		return ids, nil
	}
	return nil, &ResolveError{Headers: want}
}
