package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/services"
	"github.com/coursematch/coursematch-backend/internal/types"
)

type ProfileHandler struct {
	log        *logger.Logger
	profileSvc services.ProfileService
}

func NewProfileHandler(log *logger.Logger, profileSvc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		log:        log.With("handler", "ProfileHandler"),
		profileSvc: profileSvc,
	}
}

// GET /api/profile?studentId=<id>
func (h *ProfileHandler) Get(c *gin.Context) {
	studentID := c.Query("studentId")
	profile, err := h.profileSvc.Get(c.Request.Context(), nil, studentID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, profile)
}

// POST /api/profile
// The body is the full profile document; the stored row is replaced
// wholesale and echoed back.
func (h *ProfileHandler) Save(c *gin.Context) {
	var profile types.StudentProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	saved, err := h.profileSvc.Save(c.Request.Context(), nil, &profile)
	if err != nil {
		h.log.Warn("profile save failed", "error", err, "student_id", profile.StudentID)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true, "message": "Profile updated", "profile": saved})
}
