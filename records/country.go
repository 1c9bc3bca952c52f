// Package records holds the domain records stored in the containers: a
// country with its population history and yearly emissions, and a registry
// of countries ordered by code.
package records

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Priyanshu23/containers/hashmap"
	"github.com/Priyanshu23/containers/kv"
	"github.com/Priyanshu23/containers/linkedlist"
)

type Country struct {
	Code string
	Name string
	Area float64

	// (year, count) pairs kept in ascending year order
	population *linkedlist.List[kv.Entry[int, int]]
	// year -> carbon emissions in tons
	emission *hashmap.Map[int, float64]
}

func NewCountry(code, name string, area float64) *Country {
	return &Country{
		Code:       code,
		Name:       name,
		Area:       area,
		population: linkedlist.New[kv.Entry[int, int]](),
		emission:   hashmap.New[int, float64](),
	}
}

// AddPopulation records the population count for year, replacing any count
// already recorded for it.
func (c *Country) AddPopulation(year, count int) error {
	i := 0
	for e := range c.population.All() {
		if e.Key == year {
			break
		}
		if e.Key > year {
			return errors.Wrapf(c.population.Insert(i, kv.Entry[int, int]{Key: year, Value: count}), "population %d", year)
		}
		i++
	}

	if i == c.population.Len() {
		c.population.AddLast(kv.Entry[int, int]{Key: year, Value: count})
		return nil
	}

	_, err := c.population.Set(i, kv.Entry[int, int]{Key: year, Value: count})
	return errors.Wrapf(err, "population %d", year)
}

func (c *Country) Population(year int) (int, bool) {
	for e := range c.population.All() {
		if e.Key == year {
			return e.Value, true
		}
		if e.Key > year {
			break
		}
	}

	return 0, false
}

// PopulationHistory returns the recorded (year, count) pairs oldest first.
func (c *Country) PopulationHistory() []kv.Entry[int, int] {
	return c.population.Values()
}

func (c *Country) AddEmission(year int, tons float64) {
	c.emission.Put(year, tons)
}

func (c *Country) Emission(year int) (float64, bool) {
	return c.emission.Get(year)
}

// Compare orders countries by code.
func (c *Country) Compare(other *Country) int {
	return cmp.Compare(c.Code, other.Code)
}

func (c *Country) String() string {
	return fmt.Sprintf("%-10s\t%-32s\t%-10.2f", c.Code, c.Name, c.Area)
}
