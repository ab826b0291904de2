// Package puppygraph provides a graph store backed by a PuppyGraph server.
//
// PuppyGraph queries existing relational data stores as a unified graph
// model with zero ETL, and supports both the Gremlin and Cypher query
// languages. This package implements the graphstore.GraphStore interface on
// top of it: queries and schema introspection pass through to the server,
// and writes are rejected because the graph view is derived from relational
// data that must be mutated at its source.
//
// Example usage:
//
//	client, err := puppygraph.NewBoltClient(puppygraph.HostConfig{
//		IP:       "127.0.0.1",
//		Username: "puppygraph",
//		Password: "puppygraph123",
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close(ctx)
//
//	store, err := puppygraph.NewStore(ctx, puppygraph.QueryLanguageCypher, client, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rows, err := store.Query(ctx, "MATCH (p:Person) RETURN p.name AS name", nil)
//
// Security note: make sure the database connection uses credentials that are
// narrowly scoped to only the necessary permissions. Calling code may attempt
// queries that read sensitive data if such data is reachable with the
// configured credentials.
package puppygraph
