package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/services"
)

type ChatHandler struct {
	log     *logger.Logger
	chatSvc services.ChatService
}

func NewChatHandler(log *logger.Logger, chatSvc services.ChatService) *ChatHandler {
	return &ChatHandler{
		log:     log.With("handler", "ChatHandler"),
		chatSvc: chatSvc,
	}
}

type chatRequest struct {
	StudentID string `json:"studentId"`
	Message   string `json:"message"`
}

// POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if strings.TrimSpace(req.StudentID) == "" {
		req.StudentID = "student_demo"
	}

	result, err := h.chatSvc.Recommend(c.Request.Context(), nil, req.StudentID, req.Message)
	if err != nil {
		h.log.Warn("chat turn failed", "error", err, "student_id", req.StudentID)
		RespondAppError(c, err)
		return
	}
	RespondOK(c, result)
}
