package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"study-service/internal/models"
	"study-service/internal/service"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

func (h *ProgressHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.GetStats(context.Background(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	rows, err := h.Service.GetProgress(context.Background(), userID(c), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProgressHandler) GetResponses(c *gin.Context) {
	filters := models.ResponseFilters{}
	if since := c.Query("since"); since != "" {
		parsed, err := time.Parse(time.RFC3339, since)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be RFC3339"})
			return
		}
		filters.Since = parsed
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filters.Limit = limit
	}
	responses, err := h.Service.GetResponses(context.Background(), userID(c), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

func (h *ProgressHandler) GetDailyGoal(c *gin.Context) {
	goal, err := h.Service.GetDailyGoal(context.Background(), userID(c), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	if goal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No goal recorded for that date"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (h *ProgressHandler) RecordDailyActivity(c *gin.Context) {
	var req struct {
		CompletedQuestions int `json:"completed_questions"`
		CompletedMinutes   int `json:"completed_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.RecordDailyActivity(context.Background(), userID(c), req.CompletedQuestions, req.CompletedMinutes); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal updated"})
}

func (h *ProgressHandler) GetAchievements(c *gin.Context) {
	achievements, err := h.Service.GetAchievements(context.Background(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, achievements)
}
