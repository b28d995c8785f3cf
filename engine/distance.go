package engine

import (
	"math"

	"github.com/fleetlens/fleetlens/schema"
	"github.com/fleetlens/fleetlens/table"
)

// ============================================================================
// DISTANCE — Great-circle pickup → drop-off distance, derived per row
// ============================================================================
// Schema-derived, not query-derived: a session annotates the table once
// and every distance query reads the cached column.
// ============================================================================

// Derived column names attached to a table by AnnotateTable.
const (
	DerivedDistanceKm = "distance_km"
	DerivedTimeMin    = "time_min"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)
	a := sinSq(dlat/2) + math.Cos(radians(lat1))*math.Cos(radians(lat2))*sinSq(dlon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func sinSq(x float64) float64 {
	s := math.Sin(x)
	return s * s
}

// AnnotateTable attaches the derived columns the executor reads:
//
//	time_min     — the bound elapsed-time column, NaN-coerced
//	distance_km  — per-row haversine distance, NaN where any of the four
//	               coordinate cells does not parse
//
// When a required role is unbound the derived column is all NaN.
// Idempotent: recomputing with the same inputs yields the same values.
func AnnotateTable(t *table.Table, binds schema.Bindings) {
	n := t.Len()

	timeVals := allNaN(n)
	if col, ok := binds.Column(schema.RoleTime); ok {
		timeVals = t.Numeric(col)
	}
	t.SetDerived(DerivedTimeMin, timeVals)

	dist := allNaN(n)
	if binds.Has(schema.RolePickupLat, schema.RolePickupLon, schema.RoleDropLat, schema.RoleDropLon) {
		lat1 := t.Numeric(binds[schema.RolePickupLat])
		lon1 := t.Numeric(binds[schema.RolePickupLon])
		lat2 := t.Numeric(binds[schema.RoleDropLat])
		lon2 := t.Numeric(binds[schema.RoleDropLon])
		for i := 0; i < n; i++ {
			if math.IsNaN(lat1[i]) || math.IsNaN(lon1[i]) || math.IsNaN(lat2[i]) || math.IsNaN(lon2[i]) {
				continue // stays NaN
			}
			dist[i] = HaversineKm(lat1[i], lon1[i], lat2[i], lon2[i])
		}
	}
	t.SetDerived(DerivedDistanceKm, dist)
}

func allNaN(n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = math.NaN()
	}
	return vals
}
