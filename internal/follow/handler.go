package follow

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MrSunstrike/Social-network-Yatube/internal/logs"
	"github.com/MrSunstrike/Social-network-Yatube/internal/user"
)

// FollowUser GET /profile/:username/follow
func FollowUser(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	username := c.Param("username")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		logs.LogJSON("WARN", "Follow target not found", map[string]interface{}{
			"route":    route,
			"userID":   userID,
			"username": username,
		})
		return
	}

	if err := FollowAuthor(userID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not follow user"})
		logs.LogJSON("ERROR", "Error adding follow", map[string]interface{}{
			"error":    err.Error(),
			"route":    route,
			"userID":   userID,
			"authorID": author.ID,
		})
		return
	}

	logs.LogJSON("INFO", "Followed user", map[string]interface{}{
		"route":    route,
		"userID":   userID,
		"authorID": author.ID,
	})
	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}

// UnfollowUser GET /profile/:username/unfollow
func UnfollowUser(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")
	username := c.Param("username")

	author, err := user.GetByUsername(username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		logs.LogJSON("WARN", "Unfollow target not found", map[string]interface{}{
			"route":    route,
			"userID":   userID,
			"username": username,
		})
		return
	}

	if err := UnfollowAuthor(userID, author.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not unfollow user"})
		logs.LogJSON("ERROR", "Error removing follow", map[string]interface{}{
			"error":    err.Error(),
			"route":    route,
			"userID":   userID,
			"authorID": author.ID,
		})
		return
	}

	logs.LogJSON("INFO", "Unfollowed user", map[string]interface{}{
		"route":    route,
		"userID":   userID,
		"authorID": author.ID,
	})
	c.Redirect(http.StatusFound, "/profile/"+author.Username)
}
