package scraper

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
	htmltext "github.com/custodia-labs/mevzuat-cli/internal/normalisers/html"
)

// Ensure Site implements the interfaces.
var (
	_ driven.RegulationSource = (*Site)(nil)
	_ driven.PageFetcher      = (*Site)(nil)
)

// Default configuration values.
const (
	// UserAgent is sent with every request; both sites reject bare clients.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	DefaultTimeout = 30 * time.Second

	// DefaultRate is the proactive request rate per site (requests per second).
	DefaultRate = 1.0

	contentSelector = ".content"
)

// Config describes one scraped site.
type Config struct {
	// Name identifies the source.
	Name domain.SourceName

	// BaseURL is prefixed to relative result links.
	BaseURL string

	// SearchPath is appended to BaseURL for search requests.
	SearchPath string

	// ResultSelector matches one element per search result.
	ResultSelector string

	// Timeout bounds a single request (default: 30s).
	Timeout time.Duration

	// Rate is the request pacing in requests per second (default: 1).
	// rate.Inf disables pacing.
	Rate rate.Limit
}

// MevzuatConfig returns the configuration for mevzuat.gov.tr.
func MevzuatConfig() Config {
	return Config{
		Name:           domain.SourceMevzuat,
		BaseURL:        "https://www.mevzuat.gov.tr",
		SearchPath:     "/arama.aspx",
		ResultSelector: ".search-result",
	}
}

// ResmiGazeteConfig returns the configuration for resmigazete.gov.tr.
func ResmiGazeteConfig() Config {
	return Config{
		Name:           domain.SourceResmiGazete,
		BaseURL:        "https://www.resmigazete.gov.tr",
		SearchPath:     "/arama",
		ResultSelector: ".gazette-result",
	}
}

// Site scrapes the search listing of a single regulation website.
type Site struct {
	cfg     Config
	client  *resty.Client
	limiter *rate.Limiter
}

// NewSite creates a scraper for the site described by cfg.
func NewSite(cfg Config) *Site {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Rate == 0 {
		cfg.Rate = rate.Limit(DefaultRate)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", UserAgent)

	return &Site{
		cfg:     cfg,
		client:  client,
		limiter: rate.NewLimiter(cfg.Rate, 1),
	}
}

// Name returns the source this site serves.
func (s *Site) Name() domain.SourceName {
	return s.cfg.Name
}

// Search issues one GET with query as the q parameter and parses the listing.
func (s *Site) Search(ctx context.Context, query string) ([]domain.RegulationRecord, error) {
	doc, err := s.get(ctx, s.cfg.BaseURL+s.cfg.SearchPath, query)
	if err != nil {
		return nil, err
	}

	records := make([]domain.RegulationRecord, 0)
	doc.Find(s.cfg.ResultSelector).Each(func(_ int, result *goquery.Selection) {
		// A listing entry needs a title element and an anchor with an href;
		// either may carry empty text.
		title := result.Find(".title").First()
		href, ok := result.Find("a").First().Attr("href")
		if title.Length() == 0 || !ok {
			return
		}

		records = append(records, domain.RegulationRecord{
			Title:   strings.TrimSpace(title.Text()),
			Link:    s.absolute(strings.TrimSpace(href)),
			Content: strings.TrimSpace(result.Find(".content").First().Text()),
			Date:    strings.TrimSpace(result.Find(".date").First().Text()),
			Source:  s.cfg.Name,
		})
	})

	logger.Debug("%s: %d results for %q", s.cfg.Name, len(records), query)
	return records, nil
}

// PageContent fetches a detail page and returns the text of its content
// element, or the text of the whole page when the element is missing.
// Failures are logged and yield "".
func (s *Site) PageContent(ctx context.Context, link string) string {
	doc, err := s.get(ctx, s.absolute(link), "")
	if err != nil {
		logger.Warn("%s: page %s: %v", s.cfg.Name, link, err)
		return ""
	}

	if content := doc.Find(contentSelector).First(); content.Length() > 0 {
		return strings.TrimSpace(content.Text())
	}

	page, err := doc.Html()
	if err != nil {
		logger.Warn("%s: page %s: %v", s.cfg.Name, link, err)
		return ""
	}
	return htmltext.Text(page)
}

// get fetches url, optionally with a q parameter, and parses the body.
func (s *Site) get(ctx context.Context, url, query string) (*goquery.Document, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrNetwork, s.cfg.Name, err)
	}

	req := s.client.R().SetContext(ctx)
	if query != "" {
		req.SetQueryParam("q", query)
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrNetwork, s.cfg.Name, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrNetwork, s.cfg.Name, resp.Status())
	}

	root, err := html.Parse(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrParse, s.cfg.Name, err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// absolute prefixes site-relative links with the base URL.
func (s *Site) absolute(link string) string {
	if strings.HasPrefix(link, "/") {
		return s.cfg.BaseURL + link
	}
	return link
}
