package adapters

// Registry holds the known adapters in registration order. At most one
// adapter should claim any realistic URL; if several do, the first
// registered wins.
type Registry struct {
	adapters []Adapter
}

// NewRegistry creates a registry with the given adapters.
func NewRegistry(adapters ...Adapter) *Registry {
	return &Registry{adapters: adapters}
}

// Default returns a registry with all supported judge platforms.
func Default() *Registry {
	return NewRegistry(
		Codeforces{},
		CodeChef{},
		AtCoder{},
		LeetCode{},
	)
}

// Match returns the first adapter claiming the URL, or nil when no
// platform handles it.
func (r *Registry) Match(rawURL string) Adapter {
	for _, a := range r.adapters {
		if a.Matches(rawURL) {
			return a
		}
	}
	return nil
}
