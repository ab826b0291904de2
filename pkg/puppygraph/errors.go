package puppygraph

import "errors"

var (
	// ErrInvalidQueryLanguage is returned when the configured query language
	// is neither "gremlin" nor "cypher".
	ErrInvalidQueryLanguage = errors.New("query language must be either gremlin or cypher")

	// ErrNilClient is returned when the store is constructed without a
	// client. Construct one with NewBoltClient (or supply your own Client
	// implementation) before creating the store.
	ErrNilClient = errors.New("puppygraph client is required: create one with puppygraph.NewBoltClient")

	// ErrAddDocumentsUnsupported is returned by AddGraphDocuments. The graph
	// view is derived from relational data with zero ETL and cannot be
	// written through this interface.
	ErrAddDocumentsUnsupported = errors.New("adding graph documents is not supported: add the nodes or relationships directly in the corresponding relational database")

	// ErrSchemaParse is returned when the schema JSON fetched from the
	// server cannot be normalized.
	ErrSchemaParse = errors.New("malformed puppygraph schema")
)
