package scraper

import (
	"context"
	"fmt"
	"time"

	"studyrooms/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageFetcher retrieves one (date, area) booking grid page.
type PageFetcher interface {
	Fetch(ctx context.Context, date time.Time, area int) (*goquery.Document, error)
}

// RoomSink persists a finished run's room batch.
type RoomSink interface {
	UpsertAll(ctx context.Context, rooms []models.Room) error
}

// Runner drives one scrape run: fetch, parse, resolve, aggregate for
// every (date, area) pair, then condense and persist the batch.
type Runner struct {
	Fetcher PageFetcher
	Sink    RoomSink
	Areas   []int
	Days    int
	Logger  *zap.Logger
}

// Run executes a full scrape. Days are processed farthest-future
// first so the most heavily booked pages come up early, which is what
// makes the fully-booked-row identity heuristic likely to hit; areas
// follow their configured order within each day.
//
// Fetch, parse, and resolution failures are isolated to their (date,
// area) pair: logged and skipped. Sink failures, and cancellation
// before persistence, fail the run; a cancelled run persists nothing.
func (r *Runner) Run(ctx context.Context) error {
	logger := r.Logger.With(zap.String("runId", uuid.NewString()))
	started := time.Now()

	agg := NewAggregator()
	today := time.Now()

	for offset := r.Days - 1; offset >= 0; offset-- {
		date := today.AddDate(0, 0, offset)
		for _, area := range r.Areas {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("scrape run cancelled: %w", err)
			}
			r.scrapePage(ctx, logger, agg, date, area)
		}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("scrape run cancelled: %w", err)
	}

	rooms := agg.Finalize()
	if err := r.Sink.UpsertAll(ctx, rooms); err != nil {
		return fmt.Errorf("failed to persist rooms: %w", err)
	}

	logger.Info("Scrape run complete",
		zap.Int("rooms", len(rooms)),
		zap.Duration("took", time.Since(started)))
	return nil
}

// scrapePage handles one (date, area) pair. Any failure here is
// non-fatal for the run.
func (r *Runner) scrapePage(ctx context.Context, logger *zap.Logger, agg *Aggregator, date time.Time, area int) {
	pairFields := []zap.Field{
		zap.String("date", date.Format("2006-01-02")),
		zap.Int("area", area),
	}

	logger.Debug("Fetching bookings", pairFields...)
	doc, err := r.Fetcher.Fetch(ctx, date, area)
	if err != nil {
		logger.Warn("Skipping pair: fetch failed", append(pairFields, zap.Error(err))...)
		return
	}

	grid, err := ParseGrid(doc)
	if err != nil {
		logger.Warn("Skipping pair: page did not parse", append(pairFields, zap.Error(err))...)
		return
	}

	ids, err := ResolveIdentities(grid)
	if err != nil {
		logger.Warn("Skipping pair: room identities unresolved", append(pairFields, zap.Error(err))...)
		return
	}

	agg.AddPage(grid, ids)
}
