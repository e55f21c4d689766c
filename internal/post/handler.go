package post

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
	"github.com/MrSunstrike/Social-network-Yatube/internal/group"
	"github.com/MrSunstrike/Social-network-Yatube/internal/logs"
	"github.com/MrSunstrike/Social-network-Yatube/internal/storage"
	"github.com/MrSunstrike/Social-network-Yatube/internal/user"
)

// NewPostForm GET /create
func NewPostForm(c *gin.Context) {
	var groups []group.Group
	if err := database.DB.Order("title").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"form":   gin.H{"text": "", "group": ""},
		"groups": groups,
	})
}

// CreatePost POST /create
func CreatePost(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var author user.User
	if err := database.DB.First(&author, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	form := bindPostForm(c)
	file, header, hasImage := imageFromForm(c, form)
	if !form.Valid() {
		if hasImage {
			file.Close()
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"form":   gin.H{"text": form.Text, "group": c.PostForm("group")},
			"errors": form.Errors,
		})
		return
	}

	postID := uuid.New().String()
	imageURL := ""
	if hasImage {
		defer file.Close()
		ext := strings.ToLower(filepath.Ext(header.Filename))
		filename := fmt.Sprintf("post_%s%s", postID, ext)
		url, err := storage.UploadToS3(file, filename, header.Header.Get("Content-Type"), "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
			logs.LogJSON("ERROR", "Image upload failed", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
			})
			return
		}
		imageURL = url
	}

	newPost := Post{
		ID:        postID,
		CreatedAt: time.Now(),
		Text:      form.Text,
		AuthorID:  userID,
		ImageURL:  imageURL,
	}
	if form.Group != nil {
		newPost.GroupID = &form.Group.ID
	}

	if err := database.DB.Create(&newPost).Error; err != nil {
		// Roll the uploaded image back so a failed insert leaves no orphan.
		if imageURL != "" {
			if key := storage.KeyFromURL(imageURL); key != "" {
				_ = storage.DeleteFromS3(key)
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		logs.LogJSON("ERROR", "Error creating post", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	logs.LogJSON("INFO", "Post created", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": newPost.ID,
	})
	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}

// GetPostByID GET /posts/:id
func GetPostByID(c *gin.Context) {
	postID := c.Param("id")

	var p Post
	if err := database.DB.Preload("Author").Preload("Group").First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	comments, err := ListComments(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":      p,
		"comments":  comments,
		"form":      gin.H{"text": ""},
		"is_author": c.GetString("user_id") == p.AuthorID,
	})
}

// EditPostForm GET /posts/:id/edit
func EditPostForm(c *gin.Context) {
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.Preload("Group").First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	// Soft permission: a non-author is sent back to the post, not denied.
	if p.AuthorID != userID {
		c.Redirect(http.StatusFound, "/posts/"+p.ID)
		return
	}

	groupSlug := ""
	if p.Group != nil {
		groupSlug = p.Group.Slug
	}
	var groups []group.Group
	if err := database.DB.Order("title").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"form":    gin.H{"text": p.Text, "group": groupSlug},
		"groups":  groups,
		"is_edit": true,
		"post":    p,
	})
}

// EditPost POST /posts/:id/edit
func EditPost(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	if p.AuthorID != userID {
		c.Redirect(http.StatusFound, "/posts/"+p.ID)
		return
	}

	form := bindPostForm(c)
	file, header, hasImage := imageFromForm(c, form)
	if !form.Valid() {
		if hasImage {
			file.Close()
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"form":    gin.H{"text": form.Text, "group": c.PostForm("group")},
			"errors":  form.Errors,
			"is_edit": true,
			"post":    p,
		})
		return
	}

	oldImageURL := p.ImageURL
	if hasImage {
		defer file.Close()
		ext := strings.ToLower(filepath.Ext(header.Filename))
		filename := fmt.Sprintf("post_%s%s", p.ID, ext)
		url, err := storage.UploadToS3(file, filename, header.Header.Get("Content-Type"), "posts")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
			logs.LogJSON("ERROR", "Image upload failed", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
				"postID": p.ID,
			})
			return
		}
		p.ImageURL = url
	}

	p.Text = form.Text
	if form.Group != nil {
		p.GroupID = &form.Group.ID
	} else {
		p.GroupID = nil
	}

	if err := database.DB.Save(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update post"})
		logs.LogJSON("ERROR", "Error updating post", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": p.ID,
		})
		return
	}

	if hasImage && oldImageURL != "" && oldImageURL != p.ImageURL {
		if key := storage.KeyFromURL(oldImageURL); key != "" {
			_ = storage.DeleteFromS3(key)
		}
	}

	logs.LogJSON("INFO", "Post updated", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": p.ID,
	})
	c.Redirect(http.StatusFound, "/posts/"+p.ID)
}

// DeletePost POST /posts/:id/delete
// Comments cascade at the store. The index cache is intentionally left
// alone: the deleted post may stay on a cached "/" page until expiry.
func DeletePost(c *gin.Context) {
	route := c.FullPath()
	postID := c.Param("id")
	userID := c.GetString("user_id")

	var p Post
	if err := database.DB.First(&p, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	if p.AuthorID != userID {
		c.Redirect(http.StatusFound, "/posts/"+p.ID)
		return
	}

	if p.ImageURL != "" {
		if key := storage.KeyFromURL(p.ImageURL); key != "" {
			if err := storage.DeleteFromS3(key); err != nil {
				logs.LogJSON("WARN", "Could not delete post image", map[string]interface{}{
					"error":  err.Error(),
					"route":  route,
					"postID": p.ID,
				})
			}
		}
	}

	if err := database.DB.Delete(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		logs.LogJSON("ERROR", "Error deleting post", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
			"postID": p.ID,
		})
		return
	}

	logs.LogJSON("INFO", "Post deleted", map[string]interface{}{
		"route":  route,
		"userID": userID,
		"postID": p.ID,
	})

	if referer := c.GetHeader("Referer"); referer != "" {
		c.Redirect(http.StatusFound, referer)
		return
	}
	c.Redirect(http.StatusFound, "/")
}
