package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/fleetlens/fleetlens/schema"
	"github.com/fleetlens/fleetlens/table"
)

// ============================================================================
// EXECUTOR — Intent dispatch
// ============================================================================
// Entry point: Execute(intent, table, bindings, opts...)
//
// Three operation shapes:
//   1. Extremum lookup     — highest rating → single row as text
//   2. Grouped mean        — one dimension vs mean delivery time → table
//   3. Pairwise correlation — age/time, distance/time → scalar as text
//
// Every degraded path (missing column, no numeric data, undefined
// statistic, unmatched question) is a normal Result, never an error.
// ============================================================================

// groupedSpec declares how a grouped-mean intent runs: which role to group
// by, how to sort the groups, and an optional row cap.
type groupedSpec struct {
	role  schema.Role
	title string
	sort  string
	limit bool // cap rows at the configured topAreas
}

// groupedSpecs is the decision table for every grouped-mean intent.
// Performance-style intents sort ascending (best first); delay-style
// intents sort descending (worst first).
var groupedSpecs = map[Intent]groupedSpec{
	IntentAvgTimePerCity:     {role: schema.RoleCity, title: "Average delivery time per city", sort: SortAsc},
	IntentMultipleDeliveries: {role: schema.RoleMultipleDelivery, title: "Delivery time by number of deliveries", sort: SortNone},
	IntentVehicleEfficiency:  {role: schema.RoleVehicleType, title: "Average delivery time by vehicle type", sort: SortAsc},
	IntentOrderTypeDuration:  {role: schema.RoleOrderType, title: "Average delivery time by order type", sort: SortDesc},
	IntentFestivalEffect:     {role: schema.RoleFestival, title: "Delivery time during festivals", sort: SortNone},
	IntentTrafficImpact:      {role: schema.RoleTraffic, title: "Delivery time by traffic density", sort: SortAsc},
	IntentWeatherImpact:      {role: schema.RoleWeather, title: "Delivery time by weather conditions", sort: SortAsc},
	IntentVehicleCondition:   {role: schema.RoleVehicleCondition, title: "Delivery time by vehicle condition", sort: SortAsc},
	IntentHighestDelayAreas:  {role: schema.RoleCity, title: "Areas with the highest delays", sort: SortDesc, limit: true},
}

// Execute answers one routed question against a resolved table.
// It never fails: every error kind is reported inside the Result.
func Execute(intent Intent, t *table.Table, binds schema.Bindings, opts ...Option) *Result {
	cfg := applyOptions(opts)

	cfg.logger.Debug("executing intent",
		zap.String("intent", string(intent)),
		zap.Int("rows", t.Len()),
	)

	if spec, ok := groupedSpecs[intent]; ok {
		return executeGrouped(spec, t, binds, cfg)
	}

	switch intent {
	case IntentHighestRating:
		return executeHighestRating(t, binds)
	case IntentFastestAvg:
		return executeFastestAvg(t, binds)
	case IntentAgeCorrelation:
		return executeAgeCorrelation(t, binds)
	case IntentDistanceTimeCorrelation:
		return executeDistanceCorrelation(t, binds)
	default:
		return TextResult(UnrecognizedMessage())
	}
}

// ============================================================================
// EXTREMUM — Highest rating
// ============================================================================

func executeHighestRating(t *table.Table, binds schema.Bindings) *Result {
	ratingCol, hasRating := binds.Column(schema.RoleRating)
	if !hasRating {
		return TextResult(MissingColumnMessage(schema.RoleRating))
	}
	idCol, hasID := binds.Column(schema.RoleCourierID)
	if !hasID {
		return TextResult(MissingColumnMessage(schema.RoleCourierID))
	}

	ratings := t.Numeric(ratingCol)
	idx, ok := ArgMax(ratings)
	if !ok {
		return TextResult(NoNumericDataMessage(schema.RoleRating))
	}

	// Display the raw cell, not the parsed float, so "4.80" stays "4.80".
	return TextResult(fmt.Sprintf("Highest rating: %s (%s)",
		t.Value(idx, idCol), t.Value(idx, ratingCol)))
}

// ============================================================================
// GROUPED MIN — Fastest courier on average
// ============================================================================

func executeFastestAvg(t *table.Table, binds schema.Bindings) *Result {
	idCol, hasID := binds.Column(schema.RoleCourierID)
	if !hasID {
		return TextResult(MissingColumnMessage(schema.RoleCourierID))
	}

	groups := GroupedMean(t, idCol, timeColumn(t, binds))
	fastest, ok := MinGroup(groups)
	if !ok {
		return TextResult("No valid numeric time data to compute averages.")
	}
	return TextResult(fmt.Sprintf("Fastest on average: %s (%.2f min)", fastest.Key, fastest.Value))
}

// ============================================================================
// GROUPED MEAN — Dimension vs average delivery time
// ============================================================================

func executeGrouped(spec groupedSpec, t *table.Table, binds schema.Bindings, cfg *config) *Result {
	groupCol, ok := binds.Column(spec.role)
	if !ok {
		return TextResult(MissingColumnMessage(spec.role))
	}
	if !binds.Has(schema.RoleTime) {
		return TextResult(MissingColumnMessage(schema.RoleTime))
	}

	target := timeColumn(t, binds)
	if table.AllNaN(target) {
		return TextResult(NoNumericDataMessage(schema.RoleTime))
	}

	groups := GroupedMean(t, groupCol, target)
	SortGroups(groups, spec.sort)
	if spec.limit && len(groups) > cfg.topAreas {
		groups = groups[:cfg.topAreas]
	}

	data := buildGroupTable(spec.title, spec.role.DisplayName(), groups)

	// Delay-style intents get a headline naming the worst group alongside
	// the table.
	if spec.limit && len(groups) > 0 && !math.IsNaN(groups[0].Value) {
		reply := fmt.Sprintf("Highest delays: %s (%.2f min avg)", groups[0].Key, groups[0].Value)
		return CompositeResult(reply, data)
	}
	return TableResult(data)
}

// ============================================================================
// CORRELATIONS — Age vs time, distance vs time
// ============================================================================

func executeAgeCorrelation(t *table.Table, binds schema.Bindings) *Result {
	ageCol, ok := binds.Column(schema.RoleAge)
	if !ok {
		return TextResult(MissingColumnMessage(schema.RoleAge))
	}
	if !binds.Has(schema.RoleTime) {
		return TextResult(MissingColumnMessage(schema.RoleTime))
	}

	ages := t.Numeric(ageCol)
	if table.AllNaN(ages) {
		return TextResult(NoNumericDataMessage(schema.RoleAge))
	}
	target := timeColumn(t, binds)
	if table.AllNaN(target) {
		return TextResult(NoNumericDataMessage(schema.RoleTime))
	}

	corr := Pearson(ages, target)
	return TextResult(fmt.Sprintf("Correlation (age vs delivery time): %s", formatCorr(corr)))
}

func executeDistanceCorrelation(t *table.Table, binds schema.Bindings) *Result {
	dist, ok := t.Derived(DerivedDistanceKm)
	if !ok {
		// Table was never annotated; derive on the spot.
		AnnotateTable(t, binds)
		dist, _ = t.Derived(DerivedDistanceKm)
	}
	target := timeColumn(t, binds)

	if table.AllNaN(dist) || table.AllNaN(target) {
		return TextResult(missingDistanceInputs)
	}

	corr := Pearson(dist, target)
	return TextResult(fmt.Sprintf("Correlation (distance km vs time min): %s", formatCorr(corr)))
}

// ============================================================================
// HELPERS
// ============================================================================

// timeColumn returns the NaN-coerced elapsed-time column, preferring the
// session's derived column over recomputing from the binding.
func timeColumn(t *table.Table, binds schema.Bindings) []float64 {
	if vals, ok := t.Derived(DerivedTimeMin); ok {
		return vals
	}
	if col, ok := binds.Column(schema.RoleTime); ok {
		return t.Numeric(col)
	}
	return allNaN(t.Len())
}

func buildGroupTable(title, groupLabel string, groups []Group) *TableData {
	columns := []Column{
		{Key: "group", Label: groupLabel, Type: "text", Align: "left"},
		{Key: "avg_time_min", Label: "Avg time (min)", Type: "number", Align: "right"},
		{Key: "count", Label: "Count", Type: "number", Align: "center"},
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			g.Key,
			formatCell(g.Value),
			fmt.Sprintf("%d", g.Count),
		})
	}

	return &TableData{Title: title, Columns: columns, Rows: rows}
}
