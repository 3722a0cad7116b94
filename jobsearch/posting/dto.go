package posting

// SearchQuery describes one upstream search.
type SearchQuery struct {
	JobTitle    string `json:"job_title" validate:"required"`
	Location    string `json:"location" validate:"required"`
	RadiusMiles int    `json:"radius_miles"`
	MaxResults  int    `json:"max_results"`
}

const (
	DefaultRadiusMiles = 20
	DefaultMaxResults  = 50
)

// Normalize fills in the defaults for out-of-range values.
func (q SearchQuery) Normalize() SearchQuery {
	if q.RadiusMiles <= 0 {
		q.RadiusMiles = DefaultRadiusMiles
	}
	if q.MaxResults <= 0 {
		q.MaxResults = DefaultMaxResults
	}
	return q
}
