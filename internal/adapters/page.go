package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Page is a parsed snapshot of a judge page at one poll tick.
type Page struct {
	URL string

	doc  *goquery.Document
	text string
}

// NewPage parses an HTML document fetched from the given URL.
func NewPage(rawURL string, r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %v", err)
	}
	return &Page{URL: rawURL, doc: doc}, nil
}

// Find runs a CSS selector against the document.
func (p *Page) Find(selector string) *goquery.Selection {
	return p.doc.Find(selector)
}

// Text returns the visible body text, cached after the first call.
func (p *Page) Text() string {
	if p.text == "" {
		p.text = p.doc.Find("body").Text()
	}
	return p.text
}

// Title returns the document <title> text.
func (p *Page) Title() string {
	return strings.TrimSpace(p.doc.Find("title").First().Text())
}

// maxPageSize caps how much of a judge page the fetcher will read.
const maxPageSize = 4 << 20

// Fetcher retrieves live page snapshots over HTTP for the detector.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: "AlgoRecall/1.0 (+https://github.com/example/algorecall)",
	}
}

// Fetch downloads and parses the page at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	return NewPage(rawURL, io.LimitReader(resp.Body, maxPageSize))
}
