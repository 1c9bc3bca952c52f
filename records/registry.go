package records

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/Priyanshu23/containers/treemap"
)

// Registry indexes countries by code.
type Registry struct {
	countries *treemap.Map[string, *Country]
	logger    hclog.Logger
}

func NewRegistry(logger hclog.Logger) *Registry {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Registry{
		countries: treemap.New[string, *Country](),
		logger:    logger.Named("registry"),
	}
}

// Add registers c under its code. It returns false if the code is taken.
func (r *Registry) Add(c *Country) bool {
	if !r.countries.Add(c.Code, c) {
		r.logger.Debug("country already registered", "code", c.Code)
		return false
	}

	return true
}

func (r *Registry) Lookup(code string) (*Country, bool) {
	return r.countries.Get(code)
}

func (r *Registry) Remove(code string) bool {
	return r.countries.Remove(code)
}

func (r *Registry) Len() int {
	return r.countries.Len()
}

// Countries returns the registered countries ordered by code.
func (r *Registry) Countries() []*Country {
	return r.countries.Values()
}

// ExtremeEmission returns the country with the highest (or lowest) emissions
// reported for year. Ties go to the smallest code.
func (r *Registry) ExtremeEmission(year int, highest bool) (*Country, error) {
	var (
		best     *Country
		bestTons float64
	)

	for _, c := range r.countries.All() {
		tons, ok := c.Emission(year)
		if !ok {
			continue
		}

		if best == nil || (highest && tons > bestTons) || (!highest && tons < bestTons) {
			best, bestTons = c, tons
		}
	}

	if best == nil {
		return nil, errors.Wrapf(ErrNoEmissionData, "year %d", year)
	}

	return best, nil
}
