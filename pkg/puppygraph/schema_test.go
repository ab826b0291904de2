package puppygraph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/puppygraph/puppygraph-go/pkg/graphstore"
)

func TestToStructuredSchema(t *testing.T) {
	schemaJSON := `{
		"vertices": [
			{"label": "Person", "attributes": [{"name": "age", "type": "int"}]}
		],
		"edges": [
			{"label": "KNOWS", "from": "Person", "to": "Person", "attributes": []}
		]
	}`

	schema, err := toStructuredSchema(schemaJSON)
	if err != nil {
		t.Fatalf("toStructuredSchema() error = %v", err)
	}

	wantNodeProps := map[string][]graphstore.Property{
		"Person": {{Property: "age", Type: "int"}},
	}
	if !reflect.DeepEqual(schema.NodeProps, wantNodeProps) {
		t.Errorf("NodeProps = %v, want %v", schema.NodeProps, wantNodeProps)
	}

	// KNOWS has no attributes, so it must be absent from RelProps.
	if len(schema.RelProps) != 0 {
		t.Errorf("RelProps = %v, want empty", schema.RelProps)
	}

	wantRelationships := []graphstore.RelationshipPattern{
		{Start: "Person", End: "Person", Type: "KNOWS"},
	}
	if !reflect.DeepEqual(schema.Relationships, wantRelationships) {
		t.Errorf("Relationships = %v, want %v", schema.Relationships, wantRelationships)
	}
}

func TestToStructuredSchema_VertexWithoutAttributes(t *testing.T) {
	tests := []struct {
		name       string
		schemaJSON string
	}{
		{"missing attributes key", `{"vertices": [{"label": "City"}], "edges": []}`},
		{"empty attributes", `{"vertices": [{"label": "City", "attributes": []}], "edges": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := toStructuredSchema(tt.schemaJSON)
			if err != nil {
				t.Fatalf("toStructuredSchema() error = %v", err)
			}
			props, ok := schema.NodeProps["City"]
			if !ok {
				t.Fatal("NodeProps is missing the City label")
			}
			if len(props) != 0 {
				t.Errorf("NodeProps[City] = %v, want empty", props)
			}
		})
	}
}

func TestToStructuredSchema_EdgeAttributeAsymmetry(t *testing.T) {
	schemaJSON := `{
		"vertices": [
			{"label": "Person", "attributes": []},
			{"label": "City", "attributes": []}
		],
		"edges": [
			{"label": "LIVES_IN", "from": "Person", "to": "City", "attributes": [{"name": "since", "type": "date"}]},
			{"label": "VISITED", "from": "Person", "to": "City"},
			{"label": "BORN_IN", "from": "Person", "to": "City", "attributes": []}
		]
	}`

	schema, err := toStructuredSchema(schemaJSON)
	if err != nil {
		t.Fatalf("toStructuredSchema() error = %v", err)
	}

	wantRelProps := map[string][]graphstore.Property{
		"LIVES_IN": {{Property: "since", Type: "date"}},
	}
	if !reflect.DeepEqual(schema.RelProps, wantRelProps) {
		t.Errorf("RelProps = %v, want %v", schema.RelProps, wantRelProps)
	}

	// Relationships keeps every edge in source order, attributed or not.
	wantRelationships := []graphstore.RelationshipPattern{
		{Start: "Person", End: "City", Type: "LIVES_IN"},
		{Start: "Person", End: "City", Type: "VISITED"},
		{Start: "Person", End: "City", Type: "BORN_IN"},
	}
	if !reflect.DeepEqual(schema.Relationships, wantRelationships) {
		t.Errorf("Relationships = %v, want %v", schema.Relationships, wantRelationships)
	}
}

func TestToStructuredSchema_PreservesAttributeOrder(t *testing.T) {
	schemaJSON := `{
		"vertices": [
			{"label": "Person", "attributes": [
				{"name": "zeta", "type": "string"},
				{"name": "alpha", "type": "int"},
				{"name": "mid", "type": "double"}
			]}
		],
		"edges": []
	}`

	schema, err := toStructuredSchema(schemaJSON)
	if err != nil {
		t.Fatalf("toStructuredSchema() error = %v", err)
	}

	want := []graphstore.Property{
		{Property: "zeta", Type: "string"},
		{Property: "alpha", Type: "int"},
		{Property: "mid", Type: "double"},
	}
	if !reflect.DeepEqual(schema.NodeProps["Person"], want) {
		t.Errorf("NodeProps[Person] = %v, want %v", schema.NodeProps["Person"], want)
	}
}

func TestToStructuredSchema_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		schemaJSON string
	}{
		{"not json", "not a schema"},
		{"empty object", "{}"},
		{"missing edges", `{"vertices": []}`},
		{"missing vertices", `{"edges": []}`},
		{"null vertices", `{"vertices": null, "edges": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toStructuredSchema(tt.schemaJSON)
			if !errors.Is(err, ErrSchemaParse) {
				t.Errorf("toStructuredSchema() error = %v, want ErrSchemaParse", err)
			}
		})
	}
}
