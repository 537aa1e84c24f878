package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/services"
)

const maxSyllabusUploadBytes = 10 << 20

type SyllabusHandler struct {
	log         *logger.Logger
	syllabusSvc services.SyllabusService
	catalogSvc  services.CatalogService
}

func NewSyllabusHandler(log *logger.Logger, syllabusSvc services.SyllabusService, catalogSvc services.CatalogService) *SyllabusHandler {
	return &SyllabusHandler{
		log:         log.With("handler", "SyllabusHandler"),
		syllabusSvc: syllabusSvc,
		catalogSvc:  catalogSvc,
	}
}

// POST /api/syllabus/upload
// Multipart form: "file" plus an optional "courseId" hint from faculty.
func (h *SyllabusHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "no_file", fmt.Errorf("no file provided: %w", err))
		return
	}
	if fileHeader.Size > maxSyllabusUploadBytes {
		RespondError(c, http.StatusBadRequest, "file_too_large", fmt.Errorf("file exceeds %d bytes", maxSyllabusUploadBytes))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}

	hint := c.PostForm("courseId")
	result, err := h.syllabusSvc.Upload(c.Request.Context(), nil, fileHeader.Filename, data, hint)
	if err != nil {
		h.log.Warn("syllabus upload failed", "error", err, "filename", fileHeader.Filename)
		RespondAppError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"success":         true,
		"message":         fmt.Sprintf("Syllabus uploaded and matched to %s", result.CourseID),
		"courseId":        result.CourseID,
		"courseTitle":     result.CourseTitle,
		"matchConfidence": result.MatchConfidence,
		"matchReason":     result.MatchReason,
	})
}

// GET /api/syllabus/:courseId
func (h *SyllabusHandler) Get(c *gin.Context) {
	courseID := c.Param("courseId")
	course, err := h.catalogSvc.GetSyllabus(c.Request.Context(), nil, courseID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"courseId":   course.ID,
		"syllabus":   course.Syllabus,
		"uploaded":   course.SyllabusUploaded,
		"uploadDate": course.SyllabusUploadDate,
	})
}
