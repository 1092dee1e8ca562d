package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (compatible; studyrooms-scraper/1.0)"

// Fetcher retrieves booking grid pages from the library booking site.
// Requests share a rate limiter so a full run stays polite to the
// target host.
type Fetcher struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewFetcher creates a Fetcher against the given site base URL.
func NewFetcher(baseURL string, timeout time.Duration, reqsPerSecond int) *Fetcher {
	if reqsPerSecond <= 0 {
		reqsPerSecond = 1
	}
	return &Fetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(reqsPerSecond), 1),
	}
}

// PageURL builds the day.php URL for one (date, area) pair. The site
// expects the day-of-week as the first dayChanger value but ignores it,
// so the leading "+" sends an empty value in its place. That quirk is
// load-bearing; do not normalize it away.
func (f *Fetcher) PageURL(date time.Time, area int) string {
	return fmt.Sprintf("%s/day.php?area=%d&dayChanger=+%d+%d+%d",
		f.baseURL, area, date.Day(), int(date.Month()), date.Year())
}

// Fetch gets the booking grid for one (date, area) pair. Transport
// failures and non-2xx responses come back as *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, date time.Time, area int) (*goquery.Document, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{Date: date, Area: area, Err: err}
	}

	url := f.PageURL(date, area)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Date: date, Area: area, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{Date: date, Area: area, Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &FetchError{Date: date, Area: area, Err: fmt.Errorf("bad status: %s", res.Status)}
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, &FetchError{Date: date, Area: area, Err: err}
	}
	return doc, nil
}
