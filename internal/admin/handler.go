package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
	"github.com/MrSunstrike/Social-network-Yatube/internal/feed"
	"github.com/MrSunstrike/Social-network-Yatube/internal/logs"
)

// GetDashboardStats GET /admin/stats
func GetDashboardStats(c *gin.Context) {
	route := c.FullPath()
	userID := c.GetString("user_id")

	startDateStr := c.Query("start_date")
	endDateStr := c.Query("end_date")

	var startDate, endDate time.Time
	var err error

	if startDateStr != "" {
		startDate, err = time.Parse("2006-01-02", startDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date format"})
			return
		}
	} else {
		startDate = time.Now().AddDate(0, 0, -30)
	}

	if endDateStr != "" {
		endDate, err = time.Parse("2006-01-02", endDateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date format"})
			return
		}
	} else {
		endDate = time.Now()
	}

	var totalUsers, totalPosts, totalComments, totalGroups, totalFollows int64
	database.DB.Table("users").Count(&totalUsers)
	database.DB.Table("posts").Count(&totalPosts)
	database.DB.Table("comments").Count(&totalComments)
	database.DB.Table("groups").Count(&totalGroups)
	database.DB.Table("follows").Count(&totalFollows)

	var newUsers, newPosts int64
	database.DB.Table("users").Where("created_at BETWEEN ? AND ?", startDate, endDate).Count(&newUsers)
	database.DB.Table("posts").Where("created_at BETWEEN ? AND ?", startDate, endDate).Count(&newPosts)

	logs.LogJSON("INFO", "Dashboard stats fetched", map[string]interface{}{
		"route":  route,
		"userID": userID,
	})
	c.JSON(http.StatusOK, gin.H{
		"totals": gin.H{
			"users":    totalUsers,
			"posts":    totalPosts,
			"comments": totalComments,
			"groups":   totalGroups,
			"follows":  totalFollows,
		},
		"period": gin.H{
			"start_date": startDate.Format("2006-01-02"),
			"end_date":   endDate.Format("2006-01-02"),
			"new_users":  newUsers,
			"new_posts":  newPosts,
		},
	})
}

// ClearIndexCache POST /admin/cache/clear
// The only way, short of TTL expiry, that stale index pages go away.
func ClearIndexCache(c *gin.Context) {
	feed.Cache.InvalidateAll()
	logs.LogJSON("INFO", "Index cache cleared", map[string]interface{}{
		"route":  c.FullPath(),
		"userID": c.GetString("user_id"),
	})
	c.JSON(http.StatusOK, gin.H{"message": "cache cleared"})
}
