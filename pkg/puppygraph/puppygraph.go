package puppygraph

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/puppygraph/puppygraph-go/pkg/graphstore"
)

// Supported query languages.
const (
	QueryLanguageGremlin = "gremlin"
	QueryLanguageCypher  = "cypher"
)

// Store exposes a PuppyGraph server through the graphstore.GraphStore
// interface. PuppyGraph queries existing relational data stores as a unified
// graph model with zero ETL, so the store is query-only: writes must go to
// the backing relational database directly.
//
// The store holds no locks. Callers that refresh the schema while querying
// from other goroutines coordinate on their side.
type Store struct {
	queryLanguage string
	client        Client
	schemaJSON    string
	logger        *zap.Logger
}

var _ graphstore.GraphStore = (*Store)(nil)

// NewStore creates a store speaking the given query language ("gremlin" or
// "cypher") over the supplied client. It fetches and caches the schema before
// returning; connection or auth failures from the client surface unchanged.
func NewStore(ctx context.Context, queryLanguage string, client Client, logger *zap.Logger) (*Store, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if queryLanguage != QueryLanguageGremlin && queryLanguage != QueryLanguageCypher {
		return nil, fmt.Errorf("%w, got %q", ErrInvalidQueryLanguage, queryLanguage)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	schemaJSON, err := client.FetchSchema(ctx)
	if err != nil {
		return nil, err
	}

	return &Store{
		queryLanguage: queryLanguage,
		client:        client,
		schemaJSON:    schemaJSON,
		logger:        logger,
	}, nil
}

// Query executes the query in the configured language and returns the rows
// produced by the server unmodified. Params apply only to Cypher; the Gremlin
// path ignores them. A nil params is treated as empty. Failures from the
// underlying client propagate unchanged, with no retries.
func (s *Store) Query(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	if params == nil {
		params = map[string]any{}
	}

	switch s.queryLanguage {
	case QueryLanguageGremlin:
		return s.client.GremlinQuery(ctx, query)
	case QueryLanguageCypher:
		return s.client.CypherQuery(ctx, query, params)
	default:
		return nil, fmt.Errorf("%w, got %q", ErrInvalidQueryLanguage, s.queryLanguage)
	}
}

// GetSchema returns the cached schema JSON string exactly as last fetched.
// It never re-fetches; use RefreshSchema for that.
func (s *Store) GetSchema() string {
	return s.schemaJSON
}

// GetStructuredSchema normalizes the cached schema string and returns the
// result. The structured form is recomputed on every call and never cached;
// the raw string is the single source of truth.
func (s *Store) GetStructuredSchema() (*graphstore.StructuredSchema, error) {
	return toStructuredSchema(s.schemaJSON)
}

// RefreshSchema re-fetches the schema from the server and replaces the
// cached string. On error the previous schema stays in place.
func (s *Store) RefreshSchema(ctx context.Context) error {
	schemaJSON, err := s.client.FetchSchema(ctx)
	if err != nil {
		return err
	}
	s.schemaJSON = schemaJSON
	s.logger.Debug("Refreshed graph schema", zap.Int("schema_bytes", len(schemaJSON)))
	return nil
}

// AddGraphDocuments always returns ErrAddDocumentsUnsupported. The graph
// view is read-only; mutate the backing relational store instead.
func (s *Store) AddGraphDocuments(ctx context.Context, docs []graphstore.GraphDocument, options ...graphstore.Option) error {
	return ErrAddDocumentsUnsupported
}

// QueryLanguage reports which language the store was configured with.
func (s *Store) QueryLanguage() string {
	return s.queryLanguage
}
