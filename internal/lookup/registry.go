package lookup

// Registry dispatches lookups to the strategy claiming a (media type,
// identifier kind) pair. Strategies are scanned in registration order and
// the first claimant wins; a pair no strategy claims is a configuration
// error, not a miss.
type Registry struct {
	strategies []Strategy
}

// NewRegistry creates a registry over the given strategies.
func NewRegistry(strategies ...Strategy) *Registry {
	return &Registry{strategies: strategies}
}

// Get returns the strategy for the pair, or an UnsupportedError when no
// registered strategy claims it.
func (r *Registry) Get(media MediaType, kind IdentifierKind) (Strategy, error) {
	for _, s := range r.strategies {
		if s.CanHandle(media, kind) {
			return s, nil
		}
	}
	return nil, &UnsupportedError{Media: media, Kind: kind}
}
