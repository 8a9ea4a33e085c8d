package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"study-service/internal/service"
)

type DirectoryHandler struct {
	Service *service.DirectoryService
}

func NewDirectoryHandler(s *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: s}
}

func (h *DirectoryHandler) GetCurrentUser(c *gin.Context) {
	user, err := h.Service.GetCurrentUser(context.Background())
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No user found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *DirectoryHandler) GetUsers(c *gin.Context) {
	users, err := h.Service.GetUsers(context.Background(), c.Query("campus_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *DirectoryHandler) GetCampuses(c *gin.Context) {
	campuses, err := h.Service.GetCampuses(context.Background())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, campuses)
}

func (h *DirectoryHandler) GetClasses(c *gin.Context) {
	classes, err := h.Service.GetClasses(context.Background(), c.Query("campus_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *DirectoryHandler) GetEnrollments(c *gin.Context) {
	enrollments, err := h.Service.GetEnrollments(context.Background(), c.Query("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

func (h *DirectoryHandler) GetBenchmarks(c *gin.Context) {
	benchmarks, err := h.Service.GetBenchmarks(context.Background(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, benchmarks)
}
