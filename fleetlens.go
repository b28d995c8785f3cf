// Package fleetlens answers plain-English questions about a
// delivery-logistics dataset.
//
// Usage:
//
//	import "github.com/fleetlens/fleetlens/session"
//
//	tbl, err := helpers.ReadCSV(data)
//	sess := session.New(tbl)
//	result := sess.Ask("What is the average delivery time per city?")
//
// A session resolves the table's columns against canonical semantic roles
// once, derives per-row pickup to drop-off distance once, and then routes
// each question through the translator's keyword rules to the engine,
// which computes a grouped mean, an extremum lookup, or a correlation and
// returns render-ready output (text reply, table data, or both).
//
// Question routing is handled by the translator package.
// The engine never calls any external service — all computation is local.
package fleetlens
