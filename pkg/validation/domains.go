package validation

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Domain is a closed set of accepted string values.
type Domain struct {
	Name   string
	Values []string
}

func (d Domain) Contains(value string) bool {
	return slices.Contains(d.Values, value)
}

func (d Domain) String() string {
	return strings.Join(d.Values, ", ")
}

// Range is a numeric interval, inclusive unless ExclusiveMin is set.
// Integral ranges reject fractions.
type Range struct {
	Name         string
	Min, Max     float64
	Integral     bool
	ExclusiveMin bool
}

func (r Range) Contains(value float64) bool {
	if r.Integral && value != math.Trunc(value) {
		return false
	}

	if r.ExclusiveMin && value <= r.Min {
		return false
	}

	return value >= r.Min && value <= r.Max
}

func (r Range) String() string {
	if math.IsInf(r.Max, 1) {
		if r.ExclusiveMin {
			return fmt.Sprintf("%g より大きい値", r.Min)
		}

		return fmt.Sprintf("%g 以上", r.Min)
	}

	return fmt.Sprintf("%g から %g", r.Min, r.Max)
}

var (
	RoastLevels = Domain{
		Name:   "roastLevel",
		Values: []string{"LIGHT", "CINNAMON", "MEDIUM", "HIGH", "CITY", "FULL_CITY", "FRENCH", "ITALIAN"},
	}
	Processes = Domain{
		Name:   "process",
		Values: []string{"WASHED", "NATURAL", "HONEY", "SEMI_WASHED", "ANAEROBIC", "OTHER"},
	}
	BeanTypes       = Domain{Name: "beanType", Values: []string{"SINGLE_ORIGIN", "BLEND"}}
	FilterTypes     = Domain{Name: "filterType", Values: []string{"PAPER", "METAL", "CLOTH"}}
	EquipmentSizes  = Domain{Name: "equipmentSize", Values: []string{"SIZE_01", "SIZE_02", "SIZE_03", "SIZE_04"}}
	Bodies          = Domain{Name: "body", Values: []string{"LIGHT", "MEDIUM", "HEAVY"}}
	Statuses        = Domain{Name: "status", Values: []string{"IN_STOCK", "FINISHED"}}
	ImageCategories = Domain{Name: "uploadCategory", Values: []string{"beans", "drippers", "filters", "tastings", "shops"}}
)

var (
	RatingRange      = Range{Name: "rating", Min: 1, Max: 5, Integral: true}
	ScoreRange       = Range{Name: "score", Min: 0, Max: 5, Integral: true}
	GrindRange       = Range{Name: "grind", Min: 1, Max: 10}
	TemperatureRange = Range{Name: "temperature", Min: 0, Max: 100, Integral: true}
	PositiveRange    = Range{Name: "positive", Min: 0, Max: math.Inf(1)}
	NonZeroRange     = Range{Name: "nonzero", Min: 0, Max: math.Inf(1), ExclusiveMin: true}
)

var domains = index([]Domain{RoastLevels, Processes, BeanTypes, FilterTypes, EquipmentSizes, Bodies, Statuses, ImageCategories},
	func(d Domain) string { return d.Name })

var ranges = index([]Range{RatingRange, ScoreRange, GrindRange, TemperatureRange, PositiveRange, NonZeroRange},
	func(r Range) string { return r.Name })

func index[T any](items []T, key func(T) string) map[string]T {
	byName := make(map[string]T, len(items))

	for _, item := range items {
		byName[key(item)] = item
	}

	return byName
}

func LookupDomain(name string) (Domain, bool) {
	domain, ok := domains[name]

	return domain, ok
}

func LookupRange(name string) (Range, bool) {
	bounds, ok := ranges[name]

	return bounds, ok
}
