// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	conversationRepo "tripwise/database/repository/conversation"
	ai "tripwise/services/intelligence"
	"tripwise/services/planner"
	"tripwise/services/travel"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PlannerHandler exposes the conversation endpoints.
type PlannerHandler struct {
	Svc planner.PlannerService
}

func NewPlannerHandler(svc planner.PlannerService) *PlannerHandler {
	return &PlannerHandler{Svc: svc}
}

type startConversationRequest struct {
	UserID string `json:"userId"`
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// StartConversationHandler creates an empty planning session.
func (h *PlannerHandler) StartConversationHandler(c *gin.Context) {
	var req startConversationRequest
	// Body is optional; an anonymous session is fine.
	_ = c.ShouldBindJSON(&req)

	conv, err := h.Svc.StartConversation(c.Request.Context(), req.UserID)
	if err != nil {
		utils.GetLogger().Error("Failed to create conversation", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create conversation", err.Error())
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// GetConversationHandler returns the stored record and transcript.
func (h *PlannerHandler) GetConversationHandler(c *gin.Context) {
	conv, err := h.Svc.GetConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, conversationRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Conversation not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, conv)
}

// ChatHandler processes one user message through the planner pipeline.
func (h *PlannerHandler) ChatHandler(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	result, err := h.Svc.HandleTurn(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		h.writeTurnError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// writeTurnError maps pipeline failures to distinct statuses: provider
// throttling and billing problems pass through as their own outcomes,
// missing credentials are a configuration fault, everything else is a 500.
func (h *PlannerHandler) writeTurnError(c *gin.Context, err error) {
	logger := utils.GetLogger()
	switch {
	case errors.Is(err, conversationRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Conversation not found", c.Param("id"))
	case errors.Is(err, ai.ErrRateLimited):
		utils.JSONError(c, http.StatusTooManyRequests, "The assistant is rate limited", "Please retry in a moment.")
	case errors.Is(err, ai.ErrQuotaExhausted):
		utils.JSONError(c, http.StatusPaymentRequired, "The assistant quota is exhausted", "Model billing or quota problem.")
	case errors.Is(err, travel.ErrMissingCredentials):
		utils.JSONError(c, http.StatusInternalServerError, "Travel search is not configured", "RAPIDAPI_KEY is missing.")
	default:
		logger.Error("Chat turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
	}
}
