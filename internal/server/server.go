// Package server is the HTTP gateway: an authenticated PUT endpoint
// per content category that feeds the ingestion pipeline.
package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"newswire_listener/internal/category"
	"newswire_listener/internal/config"
	"newswire_listener/internal/domain"
	"newswire_listener/internal/payload"
	"newswire_listener/internal/service"
	"newswire_listener/internal/storage/postgres"
)

// Ingestor runs one raw push body through the pipeline.
type Ingestor interface {
	Ingest(ctx context.Context, raw []byte, cat category.Context) (*domain.IngestResult, error)
}

type Server struct {
	ingestor Ingestor
	creds    []config.Credential
	logger   *slog.Logger
}

func New(ingestor Ingestor, creds []config.Credential, logger *slog.Logger) *Server {
	return &Server{
		ingestor: ingestor,
		creds:    creds,
		logger:   logger,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/newswire/v1", s.basicAuth)
	for _, name := range category.All() {
		cat, _ := category.ByName(name)
		v1.PUT("/"+string(name), s.ingestHandler(cat))
	}

	return r
}

// basicAuth validates the Authorization header against the configured
// application credentials.
func (s *Server) basicAuth(c *gin.Context) {
	username, password, ok := c.Request.BasicAuth()
	if !ok || !s.validCredential(username, password) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "unauthorized request",
		})
		return
	}
	c.Next()
}

func (s *Server) validCredential(username, password string) bool {
	for _, cred := range s.creds {
		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cred.Username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cred.Password)) == 1
		if userOK && passOK {
			return true
		}
	}
	return false
}

func (s *Server) ingestHandler(cat category.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}
		if len(raw) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no body"})
			return
		}

		result, err := s.ingestor.Ingest(c.Request.Context(), raw, cat)
		if err != nil {
			s.renderError(c, cat, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"recordId": result.RecordID,
			"status":   string(result.Action),
		})
	}
}

func (s *Server) renderError(c *gin.Context, cat category.Context, err error) {
	var persistErr *postgres.PersistError

	switch {
	case errors.Is(err, payload.ErrEmpty),
		errors.Is(err, payload.ErrMalformed),
		errors.Is(err, service.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &persistErr):
		s.logger.Error("ingest store failure",
			"category", string(cat.Name),
			"code", persistErr.Code,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": persistErr.Message,
			"code":  persistErr.Code,
		})
	default:
		s.logger.Error("ingest failed", "category", string(cat.Name), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
