package graphstore

// Node represents a node extracted from a source document.
type Node struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Relationship represents a directed relationship between two nodes.
type Relationship struct {
	Source     Node           `json:"source"`
	Target     Node           `json:"target"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Document is the source text a graph document was derived from.
type Document struct {
	PageContent string         `json:"page_content"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// GraphDocument bundles nodes and relationships derived from a document.
type GraphDocument struct {
	Nodes         []Node         `json:"nodes"`
	Relationships []Relationship `json:"relationships"`
	Source        Document       `json:"source"`
}

// NewNode creates a node with the given id and type.
func NewNode(id, nodeType string) Node {
	return Node{ID: id, Type: nodeType}
}

// NewRelationship creates a relationship between source and target.
func NewRelationship(source, target Node, relType string) Relationship {
	return Relationship{Source: source, Target: target, Type: relType}
}
