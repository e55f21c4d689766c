package post

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
	"github.com/MrSunstrike/Social-network-Yatube/internal/logs"
)

// ListComments returns every comment on a post, newest first. The thread
// is unpaginated.
func ListComments(postID string) ([]Comment, error) {
	var comments []Comment
	err := database.DB.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// AddComment POST /posts/:id/comment
func AddComment(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"form":   gin.H{"text": text},
			"errors": gin.H{"text": "comment text must not be empty"},
		})
		return
	}

	comment := Comment{
		ID:        uuid.New().String(),
		PostID:    p.ID,
		AuthorID:  userID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add comment"})
		logs.LogJSON("ERROR", "Error creating comment", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": p.ID,
		})
		return
	}

	logs.LogJSON("INFO", "Comment added", map[string]interface{}{
		"route":     route,
		"userID":    userID,
		"postID":    p.ID,
		"commentID": comment.ID,
	})
	c.Redirect(http.StatusFound, "/posts/"+p.ID)
}

// RemoveComment POST /comments/:id/delete
// Only the author's delete takes effect; anyone else is silently sent back
// to where they came from. That soft handling mirrors the product's edit
// flow and is deliberate.
func RemoveComment(c *gin.Context) {
	route := c.FullPath()
	commentID := c.Param("id")
	userID := c.GetString("user_id")

	var comment Comment
	if err := database.DB.First(&comment, "id = ?", commentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "comment not found"})
		return
	}

	if comment.AuthorID == userID {
		if err := database.DB.Delete(&comment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete comment"})
			logs.LogJSON("ERROR", "Error deleting comment", map[string]interface{}{
				"error":     err.Error(),
				"route":     route,
				"userID":    userID,
				"commentID": comment.ID,
			})
			return
		}
		logs.LogJSON("INFO", "Comment deleted", map[string]interface{}{
			"route":     route,
			"userID":    userID,
			"commentID": comment.ID,
		})
	}

	if referer := c.GetHeader("Referer"); referer != "" {
		c.Redirect(http.StatusFound, referer)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+comment.PostID)
}
