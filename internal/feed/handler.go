package feed

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MrSunstrike/Social-network-Yatube/internal/cache"
	"github.com/MrSunstrike/Social-network-Yatube/internal/follow"
	"github.com/MrSunstrike/Social-network-Yatube/internal/logs"
	"github.com/MrSunstrike/Social-network-Yatube/internal/pagination"
)

// PostsPerPage is the fixed page size for every feed.
const PostsPerPage = 10

// Cache memoizes rendered index pages. Post writes do NOT invalidate it:
// a deleted post may stay on "/" until the entry expires or an admin
// clears the cache. That staleness is a deliberate tradeoff carried over
// from the original product, not a bug. Swapped out in tests and
// reconfigured from main.
var Cache = cache.New(20 * time.Second)

func pageNumber(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Index GET /
func Index(c *gin.Context) {
	page := pageNumber(c)

	payload, err := Cache.GetOrCompute(fmt.Sprintf("index:page:%d", page), func() (interface{}, error) {
		posts, err := GlobalPosts()
		if err != nil {
			return nil, err
		}
		return gin.H{"page_obj": pagination.Paginate(posts, PostsPerPage, page)}, nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		logs.LogJSON("ERROR", "Error loading global feed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// GroupFeed GET /group/:slug
func GroupFeed(c *gin.Context) {
	slug := c.Param("slug")
	page := pageNumber(c)

	g, posts, err := GroupPosts(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		logs.LogJSON("ERROR", "Error loading group feed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
			"slug":  slug,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group":    g,
		"page_obj": pagination.Paginate(posts, PostsPerPage, page),
	})
}

// ProfileFeed GET /profile/:username
func ProfileFeed(c *gin.Context) {
	username := c.Param("username")
	viewerID := c.GetString("user_id")
	page := pageNumber(c)

	author, posts, err := ProfilePosts(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		logs.LogJSON("ERROR", "Error loading profile feed", map[string]interface{}{
			"error":    err.Error(),
			"route":    c.FullPath(),
			"username": username,
		})
		return
	}

	// Anonymous viewers and the author themself see following=false.
	following := false
	if viewerID != "" && viewerID != author.ID {
		following, err = follow.IsFollowing(viewerID, author.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check follow state"})
			logs.LogJSON("ERROR", "Error checking follow state", map[string]interface{}{
				"error":    err.Error(),
				"route":    c.FullPath(),
				"userID":   viewerID,
				"authorID": author.ID,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"author":    author,
		"following": following,
		"page_obj":  pagination.Paginate(posts, PostsPerPage, page),
	})
}

// FollowIndex GET /follow
// Auth-required; the router never routes an anonymous caller here.
func FollowIndex(c *gin.Context) {
	userID := c.GetString("user_id")
	page := pageNumber(c)

	posts, err := FollowingPosts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load feed"})
		logs.LogJSON("ERROR", "Error loading follow feed", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_following": len(posts) > 0,
		"page_obj":     pagination.Paginate(posts, PostsPerPage, page),
	})
}
