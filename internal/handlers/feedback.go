package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/services"
)

type FeedbackHandler struct {
	log          *logger.Logger
	feedbackSvc  services.FeedbackService
	analyticsSvc services.AnalyticsService
}

func NewFeedbackHandler(log *logger.Logger, feedbackSvc services.FeedbackService, analyticsSvc services.AnalyticsService) *FeedbackHandler {
	return &FeedbackHandler{
		log:          log.With("handler", "FeedbackHandler"),
		feedbackSvc:  feedbackSvc,
		analyticsSvc: analyticsSvc,
	}
}

// POST /api/feedback
func (h *FeedbackHandler) Record(c *gin.Context) {
	var input services.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	event, err := h.feedbackSvc.Record(c.Request.Context(), nil, input)
	if err != nil {
		h.log.Warn("record feedback failed", "error", err, "course_id", input.CourseID)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true, "eventId": event.ID})
}

// GET /api/analytics
func (h *FeedbackHandler) Analytics(c *gin.Context) {
	result, err := h.analyticsSvc.GetAnalytics(c.Request.Context(), nil)
	if err != nil {
		h.log.Error("analytics failed", "error", err)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, result)
}
