package scraper

import (
	"sort"
	"time"

	"studyrooms/models"
)

// roomEntry accumulates one room's metadata and raw booked slots
// before condensation.
type roomEntry struct {
	room  models.Room
	times []time.Time
}

// Aggregator owns the per-room state built up across all (date, area)
// pages of one scrape run. It is the single writer of that state; the
// runner feeds it pages in a fixed deterministic order.
type Aggregator struct {
	rooms map[int]*roomEntry
	order []int // first-seen order, for stable output
}

func NewAggregator() *Aggregator {
	return &Aggregator{rooms: make(map[int]*roomEntry)}
}

// AddPage folds one parsed page into the aggregate. Each resolved ID
// creates its Room exactly once; name and capacity are never
// overwritten on later sightings. Every booking link on the page is
// attributed by the room ID embedded in the link itself, so positional
// mapping is only ever used for header metadata.
func (a *Aggregator) AddPage(grid *models.Grid, ids []int) {
	for i, id := range ids {
		if _, ok := a.rooms[id]; ok {
			continue
		}
		a.rooms[id] = &roomEntry{
			room: models.Room{
				ID:       id,
				Name:     grid.Headers[i].Name,
				Capacity: grid.Headers[i].Capacity,
			},
		}
		a.order = append(a.order, id)
	}

	for _, link := range grid.Links() {
		entry, ok := a.rooms[link.Room]
		if !ok {
			// A booking for a room whose identity never resolved on
			// this page; nothing to attach it to.
			continue
		}
		entry.times = append(entry.times, link.Time)
	}
}

// Len reports how many distinct rooms have been seen.
func (a *Aggregator) Len() int {
	return len(a.rooms)
}

// Finalize condenses every room's booked slots into blocks and
// returns the rooms in first-seen order. Each room's slot list is
// sorted explicitly first: blocks computed from an unsorted list are
// meaningless, and the sort must not be left to fetch order alone.
// Rooms with no bookings get an empty (non-nil) block list and never
// reach the condenser.
func (a *Aggregator) Finalize() []models.Room {
	out := make([]models.Room, 0, len(a.order))
	for _, id := range a.order {
		entry := a.rooms[id]
		room := entry.room
		if len(entry.times) == 0 {
			room.Blocks = []models.Block{}
		} else {
			sort.Slice(entry.times, func(i, j int) bool { return entry.times[i].Before(entry.times[j]) })
			room.Blocks = CondenseBlocks(entry.times)
		}
		out = append(out, room)
	}
	return out
}
