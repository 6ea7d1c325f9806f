// Package scrape fetches a book's title, author and cover image from the
// books.com.tw search page by isbn, driving a headless browser. It is an
// external collaborator: it shares no state with the catalog or history
// stores.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// Result is the scraped metadata for one book.
type Result struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Img    string `json:"img"`
}

const (
	titleSelector  = `h4 a`
	authorSelector = `div p.author a`
	coverSelector  = `img.b-lazy`

	navigationAttempts = 3
	navigationBackoff  = 500 * time.Millisecond
)

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	MaxBrowsers int64
	Headless    bool
}

// Scraper launches one browser per Fetch call, bounded by a weighted
// semaphore so a burst of requests cannot spawn unbounded subprocesses.
type Scraper struct {
	cfg Config
	sem *semaphore.Weighted
	log zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Scraper {
	if cfg.MaxBrowsers <= 0 {
		cfg.MaxBrowsers = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Scraper{
		cfg: cfg,
		sem: semaphore.NewWeighted(cfg.MaxBrowsers),
		log: log.With().Str("component", "scrape").Logger(),
	}
}

// Fetch scrapes the search result page for the given isbn. Failures are
// returned as *Error with the failing stage in Kind.
func (s *Scraper) Fetch(ctx context.Context, isbn string) (Result, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return Result{}, &Error{Kind: KindLaunch, Op: "acquire browser slot", Err: err}
	}
	defer s.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", s.cfg.Headless),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// First Run with no actions starts the browser process, so a launch
	// failure is distinguishable from everything after it.
	if err := chromedp.Run(browserCtx); err != nil {
		return Result{}, &Error{Kind: KindLaunch, Op: "start browser", Err: err}
	}

	target := s.searchURL(isbn)
	if err := s.navigate(browserCtx, target); err != nil {
		return Result{}, err
	}

	res, err := s.extract(browserCtx)
	if err != nil {
		return Result{}, err
	}

	s.log.Debug().Str("isbn", isbn).Str("title", res.Title).Msg("scrape ok")
	return res, nil
}

func (s *Scraper) searchURL(isbn string) string {
	return fmt.Sprintf("%s/search/query/key/%s/cat/all",
		strings.TrimRight(s.cfg.BaseURL, "/"), url.PathEscape(isbn))
}

// navigate retries the page load a few times with backoff; navigation
// timeouts are the one transient failure worth retrying.
func (s *Scraper) navigate(ctx context.Context, target string) error {
	var err error
	for attempt := 1; attempt <= navigationAttempts; attempt++ {
		if err = chromedp.Run(ctx, chromedp.Navigate(target)); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			break
		}
		s.log.Warn().Err(err).Int("attempt", attempt).Str("url", target).Msg("navigation failed, retrying")
		select {
		case <-time.After(navigationBackoff * time.Duration(attempt)):
		case <-ctx.Done():
			return &Error{Kind: KindNavigation, Op: "navigate " + target, Err: ctx.Err()}
		}
	}
	return &Error{Kind: KindNavigation, Op: "navigate " + target, Err: err}
}

func (s *Scraper) extract(ctx context.Context) (Result, error) {
	var (
		res                      Result
		titleOK, authorOK, imgOK bool
	)

	err := chromedp.Run(ctx,
		chromedp.WaitVisible(titleSelector, chromedp.ByQuery),
		chromedp.WaitVisible(authorSelector, chromedp.ByQuery),
		chromedp.WaitVisible(coverSelector, chromedp.ByQuery),
		chromedp.AttributeValue(titleSelector, "title", &res.Title, &titleOK, chromedp.ByQuery),
		chromedp.AttributeValue(authorSelector, "title", &res.Author, &authorOK, chromedp.ByQuery),
		chromedp.AttributeValue(coverSelector, "src", &res.Img, &imgOK, chromedp.ByQuery),
	)
	if err != nil {
		return Result{}, &Error{Kind: KindSelector, Op: "wait for result elements", Err: err}
	}
	if !titleOK || !authorOK || !imgOK {
		return Result{}, &Error{
			Kind: KindSelector,
			Op:   "read result attributes",
			Err:  fmt.Errorf("missing attribute (title=%t author=%t img=%t)", titleOK, authorOK, imgOK),
		}
	}

	res.Title = strings.TrimSpace(res.Title)
	res.Author = strings.TrimSpace(res.Author)
	return res, nil
}
