// Package detector watches judge pages for freshly solved problems.
package detector

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/example/algorecall/internal/adapters"
	"github.com/example/algorecall/internal/schedule"
)

// Detection describes a solved problem observed on a watched page.
type Detection struct {
	ID       string
	Title    string
	URL      string
	Platform string
	Tags     []string
}

// Fetcher retrieves a snapshot of the watched page.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*adapters.Page, error)
}

// Tracker answers whether a problem id is already on the schedule.
type Tracker interface {
	IsTracked(id string) (bool, error)
}

// Notifier prompts the user to confirm tracking a detected solve. The
// poller never writes the record itself; the save happens only after an
// explicit confirmation elsewhere.
type Notifier interface {
	PromptTrack(d Detection)
}

// Poller watches one page context and emits at most one solved signal in
// its lifetime. The first positive verdict fires the signal (or suppresses
// it when the problem is already tracked) and stops the ticker for good.
type Poller struct {
	url      string
	adapter  adapters.Adapter
	interval time.Duration
	fetcher  Fetcher
	tracker  Tracker
	notifier Notifier
}

// New creates a poller for one watched URL.
func New(url string, adapter adapters.Adapter, interval time.Duration, fetcher Fetcher, tracker Tracker, notifier Notifier) *Poller {
	return &Poller{
		url:      url,
		adapter:  adapter,
		interval: interval,
		fetcher:  fetcher,
		tracker:  tracker,
		notifier: notifier,
	}
}

// Run polls until a solved state is seen or ctx is cancelled. It returns as
// soon as the one-shot signal has fired so the periodic work never leaks.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if p.check(ctx) {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// check performs one poll tick. It returns true once the poller has emitted
// or suppressed its signal and should stop.
func (p *Poller) check(ctx context.Context) bool {
	page, err := p.fetcher.Fetch(ctx, p.url)
	if err != nil {
		log.Printf("Error fetching %s: %v", p.url, err)
		return false
	}

	if !p.adapter.IsSolved(page) {
		return false
	}

	id := schedule.CanonicalID(p.url)
	tracked, err := p.tracker.IsTracked(id)
	if err != nil {
		log.Printf("Error checking tracked state for %s: %v", id, err)
		return false
	}
	if tracked {
		// Already on the schedule: stay quiet, but stop polling.
		return true
	}

	title := strings.TrimSpace(p.adapter.ExtractTitle(page))
	if title == "" {
		title = "Problem"
	}

	p.notifier.PromptTrack(Detection{
		ID:       id,
		Title:    title,
		URL:      p.url,
		Platform: p.adapter.Name(),
		Tags:     p.adapter.ExtractTags(page),
	})
	return true
}
