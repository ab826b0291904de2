package graphstore

import "context"

// GraphStore defines the interface for graph database operations.
type GraphStore interface {
	// Query executes a query against the graph store and returns the result rows.
	Query(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)

	// RefreshSchema re-fetches the schema information from the graph database.
	RefreshSchema(ctx context.Context) error

	// GetSchema returns the current schema as a string representation.
	GetSchema() string

	// GetStructuredSchema returns the structured schema information.
	GetStructuredSchema() (*StructuredSchema, error)

	// AddGraphDocuments adds graph documents to the store.
	AddGraphDocuments(ctx context.Context, docs []GraphDocument, options ...Option) error
}

// StructuredSchema is the normalized view of a graph schema.
type StructuredSchema struct {
	// NodeProps maps each vertex label to its properties. A label with no
	// declared attributes is still present, with an empty slice.
	NodeProps map[string][]Property `json:"node_props"`

	// RelProps maps edge labels to their properties. Edges without
	// attributes are absent from this map.
	RelProps map[string][]Property `json:"rel_props"`

	// Relationships lists every edge definition, attributed or not, in
	// schema order.
	Relationships []RelationshipPattern `json:"relationships"`
}

// Property describes a single named, typed property of a vertex or edge.
type Property struct {
	Property string `json:"property"`
	Type     string `json:"type"`
}

// RelationshipPattern describes the endpoints and type of an edge definition.
type RelationshipPattern struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Type  string `json:"type"`
}

// Option defines functional options for graph store operations.
type Option func(*Options)

// Options contains configuration options for graph store operations.
type Options struct {
	// IncludeSource indicates whether to include source document information
	IncludeSource bool
}

// NewOptions creates a new Options instance with default values.
func NewOptions() *Options {
	return &Options{
		IncludeSource: false,
	}
}

// WithIncludeSource sets whether to include source document information.
func WithIncludeSource(include bool) Option {
	return func(opts *Options) {
		opts.IncludeSource = include
	}
}
