package news

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"career-navigator/internal/domain/catalog"

	"github.com/gocolly/colly/v2"
)

const (
	defaultSelector     = "article a, h2 a, h3 a"
	defaultPerFeedLimit = 10
	minHeadlineLength   = 12
)

var errNoHeadlines = errors.New("no headlines collected")

type ScraperOptions struct {
	Selector     string
	Workers      int
	PerFeedLimit int
	RateLimit    int
	Logger       *log.Logger
}

// Scraper collects headline links from HTML pages with colly.
type Scraper struct {
	selector     string
	workers      int
	perFeedLimit int
	rateLimit    int
	logger       *log.Logger
}

func NewScraper(opts ScraperOptions) *Scraper {
	s := &Scraper{
		selector:     strings.TrimSpace(opts.Selector),
		workers:      opts.Workers,
		perFeedLimit: opts.PerFeedLimit,
		rateLimit:    opts.RateLimit,
		logger:       opts.Logger,
	}
	if s.selector == "" {
		s.selector = defaultSelector
	}
	if s.workers <= 0 {
		s.workers = 2
	}
	if s.perFeedLimit <= 0 {
		s.perFeedLimit = defaultPerFeedLimit
	}
	return s
}

// Scrape visits every feed concurrently and merges the headlines in feed order,
// dropping duplicate links. It fails only when no feed produced a headline.
func (s *Scraper) Scrape(ctx context.Context, feeds []string) ([]catalog.NewsItem, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}
	if len(feeds) == 0 {
		return nil, nil
	}

	pool := NewWorkerPool(s.workers, len(feeds))
	pool.SetRateLimit(s.rateLimit)
	results := pool.Run(ctx)

	for _, feed := range feeds {
		feed := strings.TrimSpace(feed)
		if feed == "" {
			continue
		}
		pool.Submit(feed, func(ctx context.Context) ([]catalog.NewsItem, error) {
			return s.scrapeFeed(ctx, feed)
		})
	}
	pool.Close()

	byFeed := make(map[string][]catalog.NewsItem, len(feeds))
	var firstErr error
	for res := range results {
		if res.Err != nil {
			if s.logger != nil {
				s.logger.Printf("[News] feed failed url=%s err=%v", res.Source, res.Err)
			}
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		byFeed[res.Source] = res.Items
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]catalog.NewsItem, 0)
	for _, feed := range feeds {
		for _, it := range byFeed[strings.TrimSpace(feed)] {
			if _, ok := seen[it.Link]; ok {
				continue
			}
			seen[it.Link] = struct{}{}
			out = append(out, it)
		}
	}

	if len(out) == 0 {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, errNoHeadlines
	}
	return out, nil
}

func (s *Scraper) scrapeFeed(ctx context.Context, feedURL string) ([]catalog.NewsItem, error) {
	var c *colly.Collector
	if host := hostFromURL(feedURL); host == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(host))
	}
	c.SetRequestTimeout(20 * time.Second)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1})

	items := make([]catalog.NewsItem, 0, s.perFeedLimit)
	dedup := map[string]struct{}{}

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML(s.selector, func(e *colly.HTMLElement) {
		if len(items) >= s.perFeedLimit {
			return
		}
		headline := strings.Join(strings.Fields(e.Text), " ")
		if len(headline) < minHeadlineLength {
			return
		}
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		if _, ok := dedup[abs]; ok {
			return
		}
		dedup[abs] = struct{}{}
		items = append(items, catalog.NewsItem{Headline: headline, Link: abs})
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(feedURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return items, nil
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (compatible; career-navigator/1.0)",
		"Accept":          "text/html,application/xhtml+xml",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func hostFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(u.Host); err == nil {
		return h
	}
	return u.Host
}
