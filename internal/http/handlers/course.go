package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/yungbote/learnpath-backend/internal/http/response"
	"github.com/yungbote/learnpath-backend/internal/platform/logger"
	"github.com/yungbote/learnpath-backend/internal/services"
)

type CourseHandler struct {
	log      *logger.Logger
	pathways services.PathwayService
}

func NewCourseHandler(log *logger.Logger, pathways services.PathwayService) *CourseHandler {
	return &CourseHandler{
		log:      log.With("handler", "CourseHandler"),
		pathways: pathways,
	}
}

type catalogParams struct {
	Page     *int   `form:"page" binding:"omitempty,min=1"`
	PageSize *int   `form:"pageSize" binding:"omitempty,min=1"`
	Search   string `form:"search" binding:"max=200"`
}

// GET /api/modules/:id
// GET /api/courses/:id
func (h *CourseHandler) GetModule(c *gin.Context) {
	d, err := h.pathways.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, h.log, "GetModule", err, "Failed to fetch module details")
		return
	}
	response.RespondOK(c, d)
}

// GET /api/courses?page=&pageSize=&search=
func (h *CourseHandler) ListCourses(c *gin.Context) {
	var p catalogParams
	if err := c.ShouldBindQuery(&p); err != nil {
		h.log.Warn("invalid catalog query", "error", err, "query", c.Request.URL.RawQuery)
		response.RespondError(c, http.StatusBadRequest, "invalid_paging", bindingMessage(err))
		return
	}
	req := services.CatalogRequest{Search: p.Search}
	if p.Page != nil {
		req.Page = *p.Page
	}
	if p.PageSize != nil {
		req.PageSize = *p.PageSize
	}
	page, err := h.pathways.Catalog(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, "ListCourses", err, "Failed to fetch courses")
		return
	}
	response.RespondOK(c, page)
}

var queryNames = map[string]string{"Page": "page", "PageSize": "pageSize", "Search": "search"}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "page and pageSize must be integers"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := queryNames[fe.Field()]
		if name == "" {
			name = fe.Field()
		}
		switch fe.Tag() {
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", name, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s characters", name, fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", name))
		}
	}
	return strings.Join(parts, "; ")
}
