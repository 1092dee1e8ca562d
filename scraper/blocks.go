package scraper

import (
	"time"

	"studyrooms/models"
)

// slotLength is the booking site's fixed slot granularity.
const slotLength = 30 * time.Minute

// CondenseBlocks collapses an ascending list of booked half-hour slot
// start times into maximal contiguous blocks. The input must be
// non-empty and chronologically sorted; callers guard the empty case.
//
// A slot extends the current block iff it starts exactly where the
// block's run would put the next slot. A single slot yields a single
// 30-minute block.
func CondenseBlocks(times []time.Time) []models.Block {
	var blocks []models.Block

	start := times[0]
	run := 1

	for _, t := range times[1:] {
		if t.Equal(start.Add(time.Duration(run) * slotLength)) {
			run++
			continue
		}
		blocks = append(blocks, models.Block{
			Start:    start,
			Duration: run * int(slotLength.Minutes()),
		})
		start = t
		run = 1
	}

	blocks = append(blocks, models.Block{
		Start:    start,
		Duration: run * int(slotLength.Minutes()),
	})
	return blocks
}
