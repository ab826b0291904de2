package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/puppygraph/puppygraph-go/pkg/graphstore"
	"github.com/puppygraph/puppygraph-go/pkg/puppygraph"
)

// GraphController exposes the graph store over HTTP.
type GraphController struct {
	store  graphstore.GraphStore
	logger *zap.Logger
}

func NewGraphController(store graphstore.GraphStore, logger *zap.Logger) *GraphController {
	return &GraphController{
		store:  store,
		logger: logger,
	}
}

type QueryRequest struct {
	Query  string         `json:"query" binding:"required"`
	Params map[string]any `json:"params"`
}

type QueryResponse struct {
	Rows []map[string]any `json:"rows"`
}

func (gc *GraphController) Query(c *gin.Context) {
	var request QueryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		gc.logger.Error("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	rows, err := gc.store.Query(c.Request.Context(), request.Query, request.Params)
	if err != nil {
		gc.logger.Error("Graph query failed", zap.String("query", request.Query), zap.Error(err))
		c.JSON(statusForError(err), gin.H{
			"error":   "Graph query failed",
			"details": err.Error(),
		})
		return
	}

	if rows == nil {
		rows = []map[string]any{}
	}
	c.JSON(http.StatusOK, QueryResponse{Rows: rows})
}

func (gc *GraphController) GetSchema(c *gin.Context) {
	// Raw schema string, exactly as last fetched
	c.Data(http.StatusOK, "application/json", []byte(gc.store.GetSchema()))
}

func (gc *GraphController) GetStructuredSchema(c *gin.Context) {
	schema, err := gc.store.GetStructuredSchema()
	if err != nil {
		gc.logger.Error("Failed to normalize schema", zap.Error(err))
		c.JSON(statusForError(err), gin.H{
			"error":   "Failed to normalize schema",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, schema)
}

func (gc *GraphController) RefreshSchema(c *gin.Context) {
	if err := gc.store.RefreshSchema(c.Request.Context()); err != nil {
		gc.logger.Error("Failed to refresh schema", zap.Error(err))
		c.JSON(statusForError(err), gin.H{
			"error":   "Failed to refresh schema",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

type AddDocumentsRequest struct {
	Documents     []graphstore.GraphDocument `json:"documents"`
	IncludeSource bool                       `json:"include_source"`
}

// AddDocuments always reports the store's read-only design; the route exists
// so callers get a clear answer instead of a 404.
func (gc *GraphController) AddDocuments(c *gin.Context) {
	var request AddDocumentsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	err := gc.store.AddGraphDocuments(c.Request.Context(), request.Documents,
		graphstore.WithIncludeSource(request.IncludeSource))
	if err != nil {
		c.JSON(statusForError(err), gin.H{
			"error":   "Writes are not supported",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForError maps the store's error taxonomy onto HTTP statuses. Client
// and connection failures come back as bad-gateway since this service is only
// a proxy in front of the graph server.
func statusForError(err error) int {
	switch {
	case errors.Is(err, puppygraph.ErrInvalidQueryLanguage):
		return http.StatusBadRequest
	case errors.Is(err, puppygraph.ErrAddDocumentsUnsupported):
		return http.StatusNotImplemented
	case errors.Is(err, puppygraph.ErrSchemaParse):
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
