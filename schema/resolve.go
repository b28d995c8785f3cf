package schema

import "strings"

// ============================================================================
// RESOLUTION — Candidate spellings → actual table columns
// ============================================================================
// Two passes: exact match first (in candidate order), then case-insensitive
// (in candidate order). Exact always beats case-insensitive, regardless of
// where each candidate sits in the list. Pure function of the column set.
//
// A role with no matching column resolves to absent — a valid state every
// consumer handles with a "column not found" reply, never an error.
// ============================================================================

// Bindings maps resolved roles to actual column names.
// Absent roles are simply missing from the map.
type Bindings map[Role]string

// Column returns the bound column for a role, if any.
func (b Bindings) Column(role Role) (string, bool) {
	col, ok := b[role]
	return col, ok
}

// Has reports whether every given role resolved to a column.
func (b Bindings) Has(roles ...Role) bool {
	for _, r := range roles {
		if _, ok := b[r]; !ok {
			return false
		}
	}
	return true
}

// Resolve returns the first candidate that names a table column:
// exact matches first, then case-insensitive matches, each pass in
// candidate order. Returns false when nothing matches.
func Resolve(columns []string, candidates []string) (string, bool) {
	exact := make(map[string]bool, len(columns))
	lower := make(map[string]string, len(columns))
	for _, col := range columns {
		exact[col] = true
		low := strings.ToLower(col)
		if _, seen := lower[low]; !seen {
			lower[low] = col // first positional match wins
		}
	}

	for _, c := range candidates {
		if exact[c] {
			return c, true
		}
	}
	for _, c := range candidates {
		if col, ok := lower[strings.ToLower(c)]; ok {
			return col, true
		}
	}
	return "", false
}

// ResolveAll binds every canonical role against a column set.
// Options can prepend per-dataset alias spellings (see aliases.go).
func ResolveAll(columns []string, opts ...ResolveOption) Bindings {
	cfg := resolveConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	binds := make(Bindings)
	for _, role := range AllRoles {
		candidates := role.Candidates()
		if extra := cfg.aliases[role]; len(extra) > 0 {
			merged := make([]string, 0, len(extra)+len(candidates))
			merged = append(merged, extra...)
			merged = append(merged, candidates...)
			candidates = merged
		}
		if col, ok := Resolve(columns, candidates); ok {
			binds[role] = col
		}
	}
	return binds
}

// ResolveOption configures ResolveAll.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	aliases map[Role][]string
}

// WithAliases prepends per-dataset candidate spellings. Alias spellings
// take priority over the defaults within each matching pass.
func WithAliases(aliases map[Role][]string) ResolveOption {
	return func(c *resolveConfig) {
		c.aliases = aliases
	}
}
