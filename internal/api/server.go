// Package api exposes the screening engine over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pediasafe-screening-server/internal/domain"
	"github.com/pediasafe-screening-server/internal/history"
	"github.com/pediasafe-screening-server/internal/knowledge"
	"github.com/pediasafe-screening-server/internal/service"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// LabelSource answers drug-label interaction text lookups for the reference
// endpoint.
type LabelSource interface {
	LabelInteractions(ctx context.Context, drug string) ([]string, error)
}

// Server is the HTTP server wrapping the screening engine, the knowledge
// base reference lists and the optional screening history store.
type Server struct {
	config *domain.Config
	engine *service.ScreeningEngine
	base   *knowledge.Base
	store  history.Store
	labels LabelSource
	logger *logrus.Logger
	router *gin.Engine
	server *http.Server
}

// NewServer creates the HTTP server. The history store may be nil, in which
// case the retrieval endpoints answer 503 and screenings are not persisted.
// The label source may also be nil, disabling the label reference endpoint.
func NewServer(config *domain.Config, engine *service.ScreeningEngine, base *knowledge.Base, store history.Store, labels LabelSource, logger *logrus.Logger) *Server {
	if config.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())

	s := &Server{
		config: config,
		engine: engine,
		base:   base,
		store:  store,
		labels: labels,
		logger: logger,
		router: router,
	}

	s.setupRoutes()
	return s
}

// Start runs the server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.config.Server
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/screenings", s.handleScreen)
		v1.GET("/screenings", s.handleListScreenings)
		v1.GET("/screenings/:id", s.handleGetScreening)
		v1.GET("/reference/medications", s.handleReferenceMedications)
		v1.GET("/reference/conditions", s.handleReferenceConditions)
		v1.GET("/reference/labels/:drug", s.handleReferenceLabel)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"version":   "1.0.0",
	})
}

// screeningRequestBody is the POST /screenings payload.
type screeningRequestBody struct {
	AgeValue    *float64 `json:"age_value" binding:"required"`
	AgeUnit     string   `json:"age_unit" binding:"required"`
	Indication  string   `json:"indication"`
	Medications []string `json:"medications"`
}

// screeningResponse wraps a screening result with its assigned ID.
type screeningResponse struct {
	ID        string                 `json:"id"`
	Result    domain.ScreeningResult `json:"result"`
	CreatedAt time.Time              `json:"created_at"`
}

func (s *Server) handleScreen(c *gin.Context) {
	var body screeningRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		s.respondError(c, http.StatusBadRequest, domain.ErrInvalidInput, "invalid request body: "+err.Error())
		return
	}

	if *body.AgeValue < 0 {
		s.respondValidationError(c, domain.NewValidationError("age_value", "must be non-negative", *body.AgeValue))
		return
	}
	unit := domain.AgeUnit(body.AgeUnit)
	if !unit.Valid() {
		s.respondValidationError(c, domain.NewValidationError("age_unit", "must be \"years\" or \"months\"", body.AgeUnit))
		return
	}
	if len(body.Medications) == 0 {
		s.respondValidationError(c, domain.NewValidationError("medications", "at least one medication is required", body.Medications))
		return
	}
	if strings.TrimSpace(body.Indication) == "" {
		s.respondValidationError(c, domain.NewValidationError("indication", "a medical condition is required", body.Indication))
		return
	}

	req := domain.ScreeningRequest{
		AgeValue:    *body.AgeValue,
		AgeUnit:     unit,
		Indication:  body.Indication,
		Medications: body.Medications,
	}

	result := s.engine.Screen(c.Request.Context(), req)
	record := history.NewRecord(uuid.New().String(), req, result)

	// Persistence is best effort; a storage failure never fails the
	// screening response.
	if s.store != nil {
		if err := s.store.Save(c.Request.Context(), record); err != nil {
			s.logger.WithError(err).Warn("Failed to persist screening record")
		}
	}

	c.JSON(http.StatusOK, screeningResponse{
		ID:        record.ID,
		Result:    result,
		CreatedAt: record.CreatedAt,
	})
}

func (s *Server) handleGetScreening(c *gin.Context) {
	if s.store == nil {
		s.respondError(c, http.StatusServiceUnavailable, domain.ErrDatabaseError, "screening history is disabled")
		return
	}

	id := c.Param("id")
	record, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrDatabaseError, "failed to load screening")
		return
	}
	if record == nil {
		s.respondError(c, http.StatusNotFound, domain.ErrNotFound, "screening not found: "+id)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) handleListScreenings(c *gin.Context) {
	if s.store == nil {
		s.respondError(c, http.StatusServiceUnavailable, domain.ErrDatabaseError, "screening history is disabled")
		return
	}

	limit := queryInt(c, "limit", defaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, err := s.store.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrDatabaseError, "failed to list screenings")
		return
	}
	total, err := s.store.Count(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, domain.ErrDatabaseError, "failed to count screenings")
		return
	}

	if records == nil {
		records = make([]*history.Record, 0)
	}
	c.JSON(http.StatusOK, gin.H{
		"screenings": records,
		"total":      total,
		"limit":      limit,
		"offset":     offset,
	})
}

func (s *Server) handleReferenceMedications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"medications": s.base.CommonMedications()})
}

func (s *Server) handleReferenceConditions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"conditions": s.base.CommonConditions()})
}

// handleReferenceLabel returns the interaction-related label sections for a
// drug name, normalized the same way interaction lookups are.
func (s *Server) handleReferenceLabel(c *gin.Context) {
	if s.labels == nil {
		s.respondError(c, http.StatusServiceUnavailable, domain.ErrExternalAPI, "label lookups are disabled")
		return
	}

	drug := service.NormalizeDrugName(c.Param("drug"))
	if drug == "" {
		s.respondError(c, http.StatusBadRequest, domain.ErrValidation, "drug name is required")
		return
	}

	sections, err := s.labels.LabelInteractions(c.Request.Context(), drug)
	if err != nil {
		s.respondError(c, http.StatusBadGateway, domain.ErrExternalAPI, "label lookup failed")
		return
	}
	if sections == nil {
		sections = make([]string, 0)
	}

	c.JSON(http.StatusOK, gin.H{"drug": drug, "sections": sections})
}

func (s *Server) respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, domain.NewAPIError(code, message, "", c.GetString("request_id")))
}

// respondValidationError answers 400 with the offending field carried in the
// error details.
func (s *Server) respondValidationError(c *gin.Context, verr *domain.ValidationError) {
	c.JSON(http.StatusBadRequest, domain.NewAPIError(domain.ErrValidation, verr.Error(), verr.Field, c.GetString("request_id")))
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware adds a unique request ID to each request
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}
