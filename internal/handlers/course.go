package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/services"
)

type CourseHandler struct {
	log        *logger.Logger
	catalogSvc services.CatalogService
}

func NewCourseHandler(log *logger.Logger, catalogSvc services.CatalogService) *CourseHandler {
	return &CourseHandler{
		log:        log.With("handler", "CourseHandler"),
		catalogSvc: catalogSvc,
	}
}

// GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.catalogSvc.GetAll(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("list courses failed", "error", err)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, courses)
}

// GET /api/professors
func (h *CourseHandler) ListProfessors(c *gin.Context) {
	professors, err := h.catalogSvc.GetProfessors(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("list professors failed", "error", err)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"professors": professors, "count": len(professors)})
}
