package scraper

import (
	"testing"
	"time"

	"studyrooms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotTime(hour, minute int) time.Time {
	return time.Date(2026, time.September, 1, hour, minute, 0, 0, time.Local)
}

func TestCondenseBlocksMergesConsecutiveSlots(t *testing.T) {
	times := []time.Time{slotTime(10, 0), slotTime(10, 30), slotTime(11, 0), slotTime(12, 0)}

	blocks := CondenseBlocks(times)

	require.Len(t, blocks, 2)
	assert.Equal(t, models.Block{Start: slotTime(10, 0), Duration: 90}, blocks[0])
	assert.Equal(t, models.Block{Start: slotTime(12, 0), Duration: 30}, blocks[1])
}

func TestCondenseBlocksSingleSlot(t *testing.T) {
	blocks := CondenseBlocks([]time.Time{slotTime(9, 0)})

	require.Len(t, blocks, 1)
	assert.Equal(t, models.Block{Start: slotTime(9, 0), Duration: 30}, blocks[0])
}

func TestCondenseBlocksFullyContiguousRun(t *testing.T) {
	const n = 16
	times := make([]time.Time, n)
	for i := range times {
		times[i] = slotTime(8, 0).Add(time.Duration(i) * 30 * time.Minute)
	}

	blocks := CondenseBlocks(times)

	require.Len(t, blocks, 1)
	assert.Equal(t, slotTime(8, 0), blocks[0].Start)
	assert.Equal(t, n*30, blocks[0].Duration)
}

// Blocks must be disjoint, maximal, chronological, and cover exactly
// the input slots.
func TestCondenseBlocksCoverageAndMaximality(t *testing.T) {
	times := []time.Time{
		slotTime(8, 0), slotTime(8, 30),
		slotTime(10, 0),
		slotTime(13, 0), slotTime(13, 30), slotTime(14, 0),
		slotTime(20, 30),
	}

	blocks := CondenseBlocks(times)

	// Expand blocks back into slots and compare against the input.
	var covered []time.Time
	for _, b := range blocks {
		assert.Zero(t, b.Duration%30, "duration must be a multiple of 30")
		for off := 0; off < b.Duration; off += 30 {
			covered = append(covered, b.Start.Add(time.Duration(off)*time.Minute))
		}
	}
	assert.Equal(t, times, covered)

	for i := 1; i < len(blocks); i++ {
		prevEnd := blocks[i-1].Start.Add(time.Duration(blocks[i-1].Duration) * time.Minute)
		assert.True(t, blocks[i].Start.After(prevEnd),
			"adjacent blocks %d and %d could be merged", i-1, i)
	}
}

func TestCondenseBlocksSpansMidnight(t *testing.T) {
	times := []time.Time{
		time.Date(2026, time.September, 1, 23, 30, 0, 0, time.Local),
		time.Date(2026, time.September, 2, 0, 0, 0, 0, time.Local),
	}

	blocks := CondenseBlocks(times)

	require.Len(t, blocks, 1)
	assert.Equal(t, 60, blocks[0].Duration)
}
