package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnpath-backend/internal/http/response"
	"github.com/yungbote/learnpath-backend/internal/platform/ctxutil"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
	"github.com/yungbote/learnpath-backend/internal/services"
)

type PathwayHandler struct {
	log      *logger.Logger
	pathways services.PathwayService
}

func NewPathwayHandler(log *logger.Logger, pathways services.PathwayService) *PathwayHandler {
	return &PathwayHandler{
		log:      log.With("handler", "PathwayHandler"),
		pathways: pathways,
	}
}

// GET /api/recommendations
func (h *PathwayHandler) ListRecommendations(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.LearnerID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		return
	}
	items, err := h.pathways.Recommendations(c.Request.Context(), rd.LearnerID)
	if err != nil {
		respondServiceError(c, h.log, "ListRecommendations", err, "Failed to fetch recommendations")
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}

// GET /api/pathways/:id
func (h *PathwayHandler) GetPathway(c *gin.Context) {
	p, err := h.pathways.Pathway(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, "GetPathway", err, "Failed to fetch pathway details")
		return
	}
	response.RespondOK(c, p)
}

// GET /api/pathways/:id/graph
func (h *PathwayHandler) GetPathwayGraph(c *gin.Context) {
	view, err := h.pathways.PathwayGraph(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, "GetPathwayGraph", err, "Failed to fetch graph data")
		return
	}
	response.RespondOK(c, view)
}

// GET /api/pathways/:id/similar-courses
func (h *PathwayHandler) ListSimilarCourses(c *gin.Context) {
	items, err := h.pathways.SimilarCourses(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, "ListSimilarCourses", err, "Failed to fetch similar courses")
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}
