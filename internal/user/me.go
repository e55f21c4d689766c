package user

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
	"github.com/MrSunstrike/Social-network-Yatube/internal/logs"
	"github.com/MrSunstrike/Social-network-Yatube/internal/storage"
)

// GetMe GET /me
func GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         u.ID,
			"username":   u.Username,
			"email":      u.Email,
			"bio":        u.Bio,
			"avatar_url": u.AvatarURL,
			"is_admin":   u.IsAdmin,
		},
	})
}

// UpdateMe PUT /me
// Accepts multipart form with optional bio and avatar image.
func UpdateMe(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	var u User
	if err := database.DB.First(&u, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if bio, ok := c.GetPostForm("bio"); ok {
		u.Bio = bio
	}

	if file, header, err := c.Request.FormFile("avatar"); err == nil {
		defer file.Close()
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !storage.IsAllowedImageExt(ext) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"avatar": "unsupported image type"}})
			return
		}
		if !storage.Enabled() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"avatar": "image uploads are not available"}})
			return
		}
		filename := fmt.Sprintf("avatar_%s%s", u.ID, ext)
		url, err := storage.UploadToS3(file, filename, header.Header.Get("Content-Type"), "avatars")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "avatar upload failed"})
			logs.LogJSON("ERROR", "Avatar upload failed", map[string]interface{}{
				"error":  err.Error(),
				"route":  route,
				"userID": userID,
			})
			return
		}
		u.AvatarURL = url
	}

	if err := database.DB.Save(&u).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update profile"})
		logs.LogJSON("ERROR", "Error updating profile", map[string]interface{}{
			"error":  err.Error(),
			"route":  route,
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}
