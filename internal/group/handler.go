package group

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
	"github.com/MrSunstrike/Social-network-Yatube/internal/logs"
)

// ListGroups GET /groups
func ListGroups(c *gin.Context) {
	var groups []Group
	if err := database.DB.Order("title").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// CreateGroup POST /admin/groups
func CreateGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var input struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if input.Title == "" || len(input.Title) > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required and must be at most 200 characters"})
		return
	}
	if input.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
		return
	}

	var count int64
	database.DB.Model(&Group{}).Where("slug = ?", input.Slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
		return
	}

	newGroup := Group{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now(),
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if err := database.DB.Create(&newGroup).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create group"})
		logs.LogJSON("ERROR", "Error creating group", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	logs.LogJSON("INFO", "Group created", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"slug":   newGroup.Slug,
	})
	c.JSON(http.StatusCreated, gin.H{"group": newGroup})
}

// UpdateGroup PUT /admin/groups/:slug
// The slug is the group's identity and cannot be changed.
func UpdateGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	slug := c.Param("slug")

	var g Group
	if err := database.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if input.Title == "" || len(input.Title) > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required and must be at most 200 characters"})
		return
	}

	g.Title = input.Title
	g.Description = input.Description
	if err := database.DB.Save(&g).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update group"})
		logs.LogJSON("ERROR", "Error updating group", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"slug":   slug,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": g})
}

// DeleteGroup DELETE /admin/groups/:slug
// Posts survive group deletion; the store nulls their group reference.
func DeleteGroup(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	slug := c.Param("slug")

	var g Group
	if err := database.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}

	if err := database.DB.Delete(&g).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete group"})
		logs.LogJSON("ERROR", "Error deleting group", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"slug":   slug,
		})
		return
	}

	logs.LogJSON("INFO", "Group deleted", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"slug":   slug,
	})
	c.JSON(http.StatusOK, gin.H{"message": "group deleted"})
}
