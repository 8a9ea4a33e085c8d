package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"study-service/internal/models"
	"study-service/internal/provider"
	"study-service/internal/service"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

func userID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

// respondError maps service failures onto status codes, keeping the
// "backend not wired up" case loud and distinct.
func respondError(c *gin.Context, err error) {
	switch {
	case provider.IsNotConfigured(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error(), "code": "PROVIDER_NOT_CONFIGURED"})
	case errors.Is(err, service.ErrNoActiveQuiz):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "NO_ACTIVE_QUIZ"})
	case errors.Is(err, service.ErrNoQuestionsAvailable):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "NO_QUESTIONS"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *QuizHandler) StartQuiz(c *gin.Context) {
	var settings models.QuizSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	state, err := h.Service.StartQuiz(context.Background(), userID(c), settings)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (h *QuizHandler) Answer(c *gin.Context) {
	var req struct {
		QuestionID       string `json:"question_id" binding:"required"`
		Option           string `json:"option" binding:"required"`
		TimeSpentSeconds int    `json:"time_spent_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	feedback, err := h.Service.Answer(context.Background(), userID(c), req.QuestionID, req.Option, req.TimeSpentSeconds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *QuizHandler) Next(c *gin.Context) {
	state, err := h.Service.Next()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *QuizHandler) Previous(c *gin.Context) {
	state, err := h.Service.Previous()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *QuizHandler) Status(c *gin.Context) {
	state := h.Service.Current()
	if state == nil {
		c.JSON(http.StatusOK, gin.H{"active": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": true, "state": state})
}

func (h *QuizHandler) Complete(c *gin.Context) {
	summary, err := h.Service.Complete(context.Background())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *QuizHandler) Reset(c *gin.Context) {
	h.Service.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "quiz reset"})
}

func (h *QuizHandler) SaveAndExit(c *gin.Context) {
	if err := h.Service.SaveAndExit(context.Background(), userID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "quiz saved"})
}

func (h *QuizHandler) Resume(c *gin.Context) {
	state, resumed, err := h.Service.Resume(context.Background(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if !resumed {
		c.JSON(http.StatusOK, gin.H{"resumed": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resumed": true, "state": state})
}

func (h *QuizHandler) HasSaved(c *gin.Context) {
	has, err := h.Service.HasSavedQuiz(context.Background(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": has})
}
