package translator

import (
	"strings"

	"github.com/fleetlens/fleetlens/engine"
)

// ============================================================================
// TRANSLATOR — Free-text question → engine.Intent
// ============================================================================
// The question is an opaque keyword bag: lowercased, trimmed, matched by
// case-insensitive substring containment — no tokenization. Rules run
// first-match-wins in a fixed priority order, so more specific predicates
// sit above general ones that share vocabulary ("highest rating" above the
// bare "rating" family, "average ... city" above "age", which would
// otherwise fire inside the word "average").
//
// The order is data: tests pin it, and changing it changes routing.
// ============================================================================

// Rule routes a question to an intent. Terms is a conjunction of
// OR-groups: the rule matches when every group has at least one substring
// present in the question.
type Rule struct {
	Intent engine.Intent
	Terms  [][]string
}

// Rules is the ordered priority list. First match wins; an intent may
// appear more than once when it has alternative phrasings.
var Rules = []Rule{
	{engine.IntentHighestRating, [][]string{{"highest"}, {"rating"}}},
	{engine.IntentFastestAvg, [][]string{{"fastest"}}},
	{engine.IntentAvgTimePerCity, [][]string{{"average"}, {"city"}}},
	{engine.IntentMultipleDeliveries, [][]string{{"multiple"}, {"deliver"}}},
	{engine.IntentVehicleEfficiency, [][]string{{"vehicle"}, {"efficient", "efficiency"}}},
	{engine.IntentOrderTypeDuration, [][]string{{"order type", "types of orders"}}},
	{engine.IntentOrderTypeDuration, [][]string{{"longest"}, {"order"}}},
	{engine.IntentFestivalEffect, [][]string{{"festival"}}},
	{engine.IntentTrafficImpact, [][]string{{"traffic"}}},
	{engine.IntentWeatherImpact, [][]string{{"weather"}}},
	{engine.IntentAgeCorrelation, [][]string{{"age"}}},
	{engine.IntentVehicleCondition, [][]string{{"vehicle condition", "vehicle_condition"}}},
	{engine.IntentDistanceTimeCorrelation, [][]string{{"distance"}, {"time", "correlation"}}},
	{engine.IntentHighestDelayAreas, [][]string{{"areas"}, {"delay"}}},
	{engine.IntentHighestDelayAreas, [][]string{{"highest delays"}}},
}

// Translate routes a free-text question to exactly one intent.
// Questions matching no rule route to IntentUnrecognized.
func Translate(question string) engine.Intent {
	q := Normalize(question)
	if q == "" {
		return engine.IntentUnrecognized
	}
	for _, rule := range Rules {
		if rule.Matches(q) {
			return rule.Intent
		}
	}
	return engine.IntentUnrecognized
}

// Matches reports whether an already-normalized question satisfies every
// OR-group of the rule.
func (r Rule) Matches(q string) bool {
	for _, group := range r.Terms {
		if !containsAny(q, group) {
			return false
		}
	}
	return len(r.Terms) > 0
}

// Normalize lowercases and trims a question for matching.
func Normalize(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}

func containsAny(q string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(q, s) {
			return true
		}
	}
	return false
}
