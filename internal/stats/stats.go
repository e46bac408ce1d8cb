// Package stats holds the arithmetic behind summary cards. Nothing here is
// cached; every call recomputes from its inputs.
package stats

import "github.com/shopspring/decimal"

// Scope says which array a stat card was computed over.
type Scope string

const (
	ScopeFull     Scope = "full"
	ScopeFiltered Scope = "filtered"
)

func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred == nil || pred(it) {
			n++
		}
	}
	return n
}

func Sum[T any](items []T, value func(T) float64) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(value(it)))
	}
	f, _ := total.Float64()
	return f
}

// Mean returns 0 for an empty slice.
func Mean[T any](items []T, value func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(value(it)))
	}
	f, _ := total.Div(decimal.NewFromInt(int64(len(items)))).Float64()
	return f
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return Round(v, 1)
}

func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Percent returns part/whole*100, or 0 when whole is 0.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	f, _ := decimal.NewFromFloat(part).Div(decimal.NewFromFloat(whole)).Mul(decimal.NewFromInt(100)).Float64()
	return f
}

// OEE is availability × performance × quality / 10000, all in percent.
func OEE(availability, performance, quality float64) float64 {
	f, _ := decimal.NewFromFloat(availability).
		Mul(decimal.NewFromFloat(performance)).
		Mul(decimal.NewFromFloat(quality)).
		Div(decimal.NewFromInt(10000)).
		Float64()
	return f
}

// VariancePercent is (actual-target)/target*100.
func VariancePercent(actual, target float64) float64 {
	return Percent(actual-target, target)
}

// BreachMinutes is how far actual overshot target; 0 when within target.
func BreachMinutes(targetMinutes, actualMinutes int) int {
	if actualMinutes <= targetMinutes {
		return 0
	}
	return actualMinutes - targetMinutes
}

// UtilizationRate is used/entitled as a percentage.
func UtilizationRate(used, entitled float64) float64 {
	return Percent(used, entitled)
}

// Card is one summary tile on a page.
type Card struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Scope Scope   `json:"scope"`
}
