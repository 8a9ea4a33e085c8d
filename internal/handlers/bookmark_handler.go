package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"study-service/internal/service"
)

type BookmarkHandler struct {
	Service *service.BookmarkService
}

func NewBookmarkHandler(s *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{Service: s}
}

func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	bookmarks, err := h.Service.ListBookmarks(context.Background(), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookmarks)
}

func (h *BookmarkHandler) CheckBookmark(c *gin.Context) {
	bookmarked, err := h.Service.IsBookmarked(context.Background(), userID(c), c.Param("questionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (h *BookmarkHandler) ToggleBookmark(c *gin.Context) {
	var req struct {
		QuestionID string `json:"question_id" binding:"required"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bookmarked, err := h.Service.Toggle(context.Background(), userID(c), req.QuestionID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}
