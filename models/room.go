package models

import "time"

// Room is the durable unit of scraper output, upserted into the rooms
// collection keyed by ID. IDs come from the booking site's own room
// identifiers, so they are stable across scrape runs.
type Room struct {
	ID       int     `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Capacity int     `bson:"capacity" json:"capacity"`
	Blocks   []Block `bson:"bookings" json:"bookings"`
}

// Block represents a maximal contiguous run of booked half-hour slots.
type Block struct {
	Start    time.Time `bson:"start" json:"start"`
	Duration int       `bson:"duration" json:"duration"` // minutes, multiple of 30
}
