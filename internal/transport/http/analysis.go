package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/analysis"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

type AnalysisHandler struct {
	Service *analysis.Service
}

func NewAnalysisHandler(svc *analysis.Service) *AnalysisHandler {
	return &AnalysisHandler{Service: svc}
}

// MoveRequest is the wire form of analysis.Request.
type MoveRequest struct {
	Board  [][]int `json:"board" binding:"omitempty,max=16"`
	Moves  []int   `json:"moves" binding:"omitempty,dive,min=0"`
	Size   int     `json:"size" binding:"omitempty,min=4,max=16"`
	Color  int     `json:"color" binding:"omitempty,oneof=1 -1"`
	Player string  `json:"player"`
	Depth  int     `json:"depth" binding:"omitempty,min=1"`
}

func (r MoveRequest) toRequest() analysis.Request {
	return analysis.Request{
		Board:  r.Board,
		Moves:  r.Moves,
		Size:   r.Size,
		Color:  r.Color,
		Player: r.Player,
		Depth:  r.Depth,
	}
}

func (h *AnalysisHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/healthz", Health)
	r.GET("/api/players", h.Players)
	r.POST("/api/move", h.Move)
	r.GET("/api/analysis", h.ListAnalyses)
	r.GET("/api/analysis/:id", h.GetAnalysis)
}

// Move answers POST /api/move with the chosen column.
func (h *AnalysisHandler) Move(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.Analyze(c.Request.Context(), req.toRequest())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	result, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	list, err := h.Service.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AnalysisHandler) Players(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"players": h.Service.Players()})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	var domainErr domain.Error
	switch {
	case errors.Is(err, analysis.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, analysis.ErrPersistenceDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, bot.ErrNoLegalMove), errors.Is(err, domain.ErrGameFinished):
		return http.StatusUnprocessableEntity
	case errors.As(err, &domainErr),
		errors.Is(err, analysis.ErrInvalidRequest),
		errors.Is(err, bot.ErrUnknownPlayer),
		errors.Is(err, bot.ErrInvalidDepth):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
