package puppygraph

import (
	"context"
	"fmt"
	"io"
	"net/http"

	gremlingo "github.com/apache/tinkerpop/gremlin-go/v3/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// HTTPDoer is the minimal HTTP capability used for schema fetches, satisfied
// by *http.Client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// BoltClient is the production Client. PuppyGraph serves Cypher over the Bolt
// protocol, Gremlin over a Gremlin Server websocket endpoint, and the schema
// over a plain HTTP endpoint; this client speaks all three.
type BoltClient struct {
	cfg     HostConfig
	driver  neo4j.DriverWithContext
	gremlin *gremlingo.Client
	http    HTTPDoer
	logger  *zap.Logger
}

var _ Client = (*BoltClient)(nil)

// NewBoltClient connects to the PuppyGraph server described by cfg. Zero
// fields of cfg fall back to the package defaults.
func NewBoltClient(cfg HostConfig, logger *zap.Logger) (*BoltClient, error) {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	boltURI := fmt.Sprintf("bolt://%s:%d", cfg.IP, cfg.BoltPort)
	driver, err := neo4j.NewDriverWithContext(boltURI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create Bolt driver for %s: %w", boltURI, err)
	}

	gremlinURL := fmt.Sprintf("ws://%s:%d/gremlin", cfg.IP, cfg.GremlinPort)
	gremlin, err := gremlingo.NewClient(gremlinURL, func(settings *gremlingo.ClientSettings) {
		settings.AuthInfo = gremlingo.BasicAuthInfo(cfg.Username, cfg.Password)
	})
	if err != nil {
		driver.Close(context.Background())
		return nil, fmt.Errorf("failed to create Gremlin client for %s: %w", gremlinURL, err)
	}

	return &BoltClient{
		cfg:     cfg,
		driver:  driver,
		gremlin: gremlin,
		http:    &http.Client{},
		logger:  logger,
	}, nil
}

// FetchSchema retrieves the graph schema JSON from the server's HTTP
// endpoint using basic auth.
func (c *BoltClient) FetchSchema(ctx context.Context) (string, error) {
	url := fmt.Sprintf("http://%s:%d/schemajson", c.cfg.IP, c.cfg.HTTPPort)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("schema fetch failed with status %d: %s", resp.StatusCode, body)
	}
	return string(body), nil
}

// CypherQuery executes a Cypher query over Bolt and flattens the records
// into row maps. Nodes are replaced by their property maps.
func (c *BoltClient) CypherQuery(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}

		var records []map[string]any
		for result.Next(ctx) {
			record := result.Record()
			row := make(map[string]any, len(record.Keys))
			for _, key := range record.Keys {
				value, _ := record.Get(key)
				if node, ok := value.(neo4j.Node); ok {
					row[key] = node.GetProperties()
				} else {
					row[key] = value
				}
			}
			records = append(records, row)
		}

		if err = result.Err(); err != nil {
			return nil, err
		}
		return records, nil
	})

	if err != nil {
		c.logger.Error("Failed to execute Cypher query", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	return result.([]map[string]any), nil
}

// GremlinQuery submits a raw Gremlin traversal and flattens the results into
// row maps. Map-valued results become rows directly; scalar results end up
// under a "result" key.
func (c *BoltClient) GremlinQuery(ctx context.Context, query string) ([]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resultSet, err := c.gremlin.Submit(query)
	if err != nil {
		c.logger.Error("Failed to submit Gremlin query", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	results, err := resultSet.All()
	if err != nil {
		c.logger.Error("Failed to read Gremlin results", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	rows := make([]map[string]any, 0, len(results))
	for _, result := range results {
		rows = append(rows, toRow(result.GetInterface()))
	}
	return rows, nil
}

// Close releases the Bolt driver and the Gremlin connection.
func (c *BoltClient) Close(ctx context.Context) error {
	c.gremlin.Close()
	return c.driver.Close(ctx)
}

// toRow normalizes a single Gremlin result value into a row map. The Gremlin
// driver decodes maps with interface{} keys, so those are stringified.
func toRow(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case map[any]any:
		row := make(map[string]any, len(v))
		for key, val := range v {
			row[fmt.Sprint(key)] = val
		}
		return row
	default:
		return map[string]any{"result": value}
	}
}
