package session

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fleetlens/fleetlens/engine"
	"github.com/fleetlens/fleetlens/schema"
	"github.com/fleetlens/fleetlens/table"
	"github.com/fleetlens/fleetlens/translator"
)

// ============================================================================
// SESSION — One dataset, many questions
// ============================================================================
// A session owns one table for its lifetime. Column resolution and derived
// columns (normalized time, distance) are computed once at construction —
// they depend on the schema, not the question — so Ask() is a pure
// request/response cycle with no hidden state between calls.
//
// Sessions share nothing: concurrent sessions over different tables need
// no synchronization. A single session is not safe for concurrent Ask()
// calls by design (single-user, synchronous request/response).
// ============================================================================

// Session answers questions about one loaded dataset.
type Session struct {
	id     uuid.UUID
	tbl    *table.Table
	binds  schema.Bindings
	logger *zap.Logger
	opts   []engine.Option
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a structured logger, also passed to the engine.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAliases adds per-dataset column alias spellings (see schema.ParseAliases).
func WithAliases(aliases map[schema.Role][]string) Option {
	return func(s *Session) {
		s.binds = schema.ResolveAll(s.tbl.Columns(), schema.WithAliases(aliases))
	}
}

// WithEngineOptions forwards extra options to every engine.Execute call.
func WithEngineOptions(opts ...engine.Option) Option {
	return func(s *Session) {
		s.opts = append(s.opts, opts...)
	}
}

// New creates a session over a loaded table, resolving roles and
// annotating derived columns once.
func New(tbl *table.Table, opts ...Option) *Session {
	s := &Session{
		id:     uuid.New(),
		tbl:    tbl,
		binds:  schema.ResolveAll(tbl.Columns()),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	engine.AnnotateTable(s.tbl, s.binds)

	s.logger.Info("session opened",
		zap.String("session_id", s.id.String()),
		zap.Int("rows", tbl.Len()),
		zap.Int("columns", len(tbl.Columns())),
		zap.Int("resolved_roles", len(s.binds)),
	)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Bindings returns the role → column bindings resolved at construction.
func (s *Session) Bindings() schema.Bindings { return s.binds }

// Ask answers one free-text question. All failure modes (unmatched
// question, missing column, no numeric data, undefined statistic) come
// back as normal results.
func (s *Session) Ask(question string) *engine.Result {
	intent := translator.Translate(question)

	s.logger.Debug("question routed",
		zap.String("session_id", s.id.String()),
		zap.String("intent", string(intent)),
	)

	opts := append([]engine.Option{engine.WithLogger(s.logger)}, s.opts...)
	result := engine.Execute(intent, s.tbl, s.binds, opts...)

	s.logger.Info("question answered",
		zap.String("session_id", s.id.String()),
		zap.String("intent", string(intent)),
		zap.String("kind", result.Kind),
	)
	return result
}
