package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/transparencia-ai/veritas/pkg/apperr"
	"github.com/transparencia-ai/veritas/pkg/events"
	"github.com/transparencia-ai/veritas/pkg/logging"
	"github.com/transparencia-ai/veritas/pkg/models"
)

type createInvestigationBody struct {
	QueryText   string         `json:"query_text" binding:"required"`
	SessionID   string         `json:"session_id"`
	DataSource  string         `json:"data_source"`
	Filters     map[string]any `json:"filters"`
	WorkerKinds []string       `json:"worker_kinds"`
	Metadata    map[string]any `json:"metadata"`
}

func (s *Server) handleCreateInvestigation(c *gin.Context) {
	var body createInvestigationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	principal := principalFrom(c)

	inv, err := s.deps.Investigations.Create(ctx, &models.CreateInvestigationRequest{
		InvestigationID:      "inv_" + uuid.NewString(),
		UserID:               principal.UserID,
		SessionID:            body.SessionID,
		QueryText:            body.QueryText,
		DataSource:           body.DataSource,
		Filters:              body.Filters,
		RequestedWorkerKinds: body.WorkerKinds,
		CorrelationID:        logging.CorrelationID(ctx),
		Metadata:             body.Metadata,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	if _, err := s.deps.Publisher.Publish(ctx, inv.ID, events.TypeInvestigationCreated, map[string]any{
		"user_id":    inv.UserID,
		"query_text": inv.QueryText,
	}); err != nil {
		logging.FromContext(ctx).Warn("Failed to publish created event", "error", err)
	}

	c.JSON(http.StatusAccepted, inv)
}

func (s *Server) handleGetInvestigation(c *gin.Context) {
	inv, err := s.deps.Investigations.Get(c.Request.Context(), principalFrom(c), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (s *Server) handleListInvestigations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, total, err := s.deps.Investigations.List(c.Request.Context(), principalFrom(c), models.InvestigationFilter{
		UserID: c.Query("user_id"),
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"investigations": rows,
		"total":          total,
		"limit":          limit,
		"offset":         offset,
	})
}

func (s *Server) handleInvestigationStats(c *gin.Context) {
	principal := principalFrom(c)
	userID := c.DefaultQuery("user_id", principal.UserID)

	stats, err := s.deps.Investigations.Stats(c.Request.Context(), principal, userID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleCancelInvestigation(c *gin.Context) {
	inv, err := s.deps.Investigations.Cancel(c.Request.Context(), principalFrom(c), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// renderError maps the error taxonomy onto HTTP statuses.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindUnauthorized:
		status = http.StatusUnauthorized
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindRateLimited:
		status = http.StatusTooManyRequests
	case apperr.KindCircuitOpen, apperr.KindUpstream:
		status = http.StatusBadGateway
	case apperr.KindTimeout:
		status = http.StatusGatewayTimeout
	}
	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("Request failed", "error", err)
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
		"kind":  string(apperr.KindOf(err)),
	})
}
