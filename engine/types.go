package engine

// ============================================================================
// ENGINE TYPES — Intents and render-ready results
// ============================================================================
// An Intent names one of the fixed analytical questions the engine can
// answer. The translator produces it; the engine consumes it.
//
// Result is a tagged union: text, table, or both. The presentation layer
// switches on Kind instead of sniffing value types at runtime.
// ============================================================================

// Intent is one of the recognized analytical questions.
type Intent string

const (
	IntentHighestRating           Intent = "highest_rating"
	IntentFastestAvg              Intent = "fastest_avg"
	IntentAvgTimePerCity          Intent = "avg_time_per_city"
	IntentMultipleDeliveries      Intent = "multiple_deliveries_effect"
	IntentVehicleEfficiency       Intent = "vehicle_efficiency"
	IntentOrderTypeDuration       Intent = "order_type_duration"
	IntentFestivalEffect          Intent = "festival_effect"
	IntentTrafficImpact           Intent = "traffic_impact"
	IntentWeatherImpact           Intent = "weather_impact"
	IntentAgeCorrelation          Intent = "age_correlation"
	IntentVehicleCondition        Intent = "vehicle_condition_impact"
	IntentDistanceTimeCorrelation Intent = "distance_time_correlation"
	IntentHighestDelayAreas       Intent = "highest_delay_areas"
	IntentUnrecognized            Intent = "unrecognized"
)

// Result kinds.
const (
	KindText      = "text"
	KindTable     = "table"
	KindComposite = "composite"
)

// Result is the engine's render-ready output for one question.
// Exactly one shape applies per Kind:
//
//	KindText      — Reply only
//	KindTable     — Table only
//	KindComposite — Reply and Table
type Result struct {
	Kind  string     `json:"kind"`
	Reply string     `json:"reply,omitempty"`
	Table *TableData `json:"table,omitempty"`
}

// TextResult builds a text-only Result.
func TextResult(reply string) *Result {
	return &Result{Kind: KindText, Reply: reply}
}

// TableResult builds a table-only Result.
func TableResult(table *TableData) *Result {
	return &Result{Kind: KindTable, Table: table}
}

// CompositeResult builds a text + table Result.
func CompositeResult(reply string, table *TableData) *Result {
	return &Result{Kind: KindComposite, Reply: reply, Table: table}
}

// TableData defines how to render a tabular answer.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right", "center"
}

// Group is one grouped/aggregated row: a raw grouping value, the mean of
// the target over its rows, and how many rows fed it. Value is NaN when no
// row in the group had a parseable target.
type Group struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}
