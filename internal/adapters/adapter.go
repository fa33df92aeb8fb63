// Package adapters integrates the judge sites the tracker can detect
// solved problems on. Each site exposes "solved" through different page
// signals, so every site gets its own adapter behind one shared contract.
package adapters

// Adapter is the capability set a judge site integration must provide.
// Implementations scrape a fetched page snapshot and must stay side-effect
// free: IsSolved runs on every poll tick, so it has to be idempotent and has
// to exclude intermediate judge states (queue labels, sample-case passes)
// rather than merely match a success label.
type Adapter interface {
	// Name is the stable short platform identifier.
	Name() string

	// Matches reports whether this adapter handles the given problem URL.
	Matches(rawURL string) bool

	// ExtractTitle returns the problem title, or "" when it cannot be
	// determined. Callers supply their own fallback label.
	ExtractTitle(p *Page) string

	// ExtractTags returns best-effort topic tags. An empty result means the
	// page exposes no tags, which is normal, not an error.
	ExtractTags(p *Page) []string

	// IsSolved reports whether the page currently shows a confirmed, final,
	// successful submission verdict.
	IsSolved(p *Page) bool
}
