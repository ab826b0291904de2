package puppygraph

import (
	"encoding/json"
	"fmt"

	"github.com/puppygraph/puppygraph-go/pkg/graphstore"
)

// Wire shape of the schema JSON served by PuppyGraph.
type schemaAttribute struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type schemaVertex struct {
	Label      string            `json:"label"`
	Attributes []schemaAttribute `json:"attributes"`
}

type schemaEdge struct {
	Label      string            `json:"label"`
	From       string            `json:"from"`
	To         string            `json:"to"`
	Attributes []schemaAttribute `json:"attributes"`
}

// toStructuredSchema converts the schema JSON string into the normalized
// structured schema. Every vertex label appears in NodeProps, with an empty
// property list when it declares no attributes. Edges without attributes are
// left out of RelProps but still listed in Relationships.
func toStructuredSchema(schemaJSON string) (*graphstore.StructuredSchema, error) {
	var doc struct {
		Vertices *[]schemaVertex `json:"vertices"`
		Edges    *[]schemaEdge   `json:"edges"`
	}
	if err := json.Unmarshal([]byte(schemaJSON), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaParse, err)
	}
	if doc.Vertices == nil {
		return nil, fmt.Errorf("%w: missing \"vertices\"", ErrSchemaParse)
	}
	if doc.Edges == nil {
		return nil, fmt.Errorf("%w: missing \"edges\"", ErrSchemaParse)
	}

	schema := &graphstore.StructuredSchema{
		NodeProps:     make(map[string][]graphstore.Property, len(*doc.Vertices)),
		RelProps:      make(map[string][]graphstore.Property),
		Relationships: make([]graphstore.RelationshipPattern, 0, len(*doc.Edges)),
	}

	for _, vertex := range *doc.Vertices {
		schema.NodeProps[vertex.Label] = toProperties(vertex.Attributes)
	}

	for _, edge := range *doc.Edges {
		// Edges without attributes are omitted from RelProps entirely,
		// unlike vertices. Consumers rely on key absence here.
		if len(edge.Attributes) > 0 {
			schema.RelProps[edge.Label] = toProperties(edge.Attributes)
		}
		schema.Relationships = append(schema.Relationships, graphstore.RelationshipPattern{
			Start: edge.From,
			End:   edge.To,
			Type:  edge.Label,
		})
	}

	return schema, nil
}

// toProperties keeps the source order of the attributes.
func toProperties(attrs []schemaAttribute) []graphstore.Property {
	props := make([]graphstore.Property, 0, len(attrs))
	for _, attr := range attrs {
		props = append(props, graphstore.Property{
			Property: attr.Name,
			Type:     attr.Type,
		})
	}
	return props
}
