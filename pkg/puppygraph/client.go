package puppygraph

import "context"

// Default connection parameters for a local PuppyGraph server. The server
// ships with these credentials out of the box; production deployments should
// always override them.
const (
	DefaultIP       = "127.0.0.1"
	DefaultUsername = "puppygraph"
	DefaultPassword = "puppygraph123"

	DefaultHTTPPort    = 8081
	DefaultBoltPort    = 7687
	DefaultGremlinPort = 8182
)

// HostConfig identifies a PuppyGraph server and the credentials used to
// authenticate against it. Zero fields are filled in from the defaults above.
type HostConfig struct {
	IP       string
	Username string
	Password string

	// Ports for the schema HTTP endpoint, the Bolt (Cypher) endpoint and
	// the Gremlin Server websocket endpoint.
	HTTPPort    int
	BoltPort    int
	GremlinPort int
}

func (c HostConfig) withDefaults() HostConfig {
	if c.IP == "" {
		c.IP = DefaultIP
	}
	if c.Username == "" {
		c.Username = DefaultUsername
	}
	if c.Password == "" {
		c.Password = DefaultPassword
	}
	if c.HTTPPort == 0 {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.BoltPort == 0 {
		c.BoltPort = DefaultBoltPort
	}
	if c.GremlinPort == 0 {
		c.GremlinPort = DefaultGremlinPort
	}
	return c
}

// Client is the capability the store needs from a PuppyGraph connection:
// schema introspection plus query execution in both supported languages.
// BoltClient is the production implementation; tests substitute their own.
type Client interface {
	// FetchSchema returns the graph schema as the server's JSON string.
	FetchSchema(ctx context.Context) (string, error)

	// GremlinQuery executes a Gremlin traversal and returns the result rows.
	GremlinQuery(ctx context.Context, query string) ([]map[string]any, error)

	// CypherQuery executes a Cypher query with the given parameters and
	// returns the result rows.
	CypherQuery(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}
