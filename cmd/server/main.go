package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/MrSunstrike/Social-network-Yatube/internal/admin"
	"github.com/MrSunstrike/Social-network-Yatube/internal/auth"
	"github.com/MrSunstrike/Social-network-Yatube/internal/cache"
	"github.com/MrSunstrike/Social-network-Yatube/internal/config"
	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
	"github.com/MrSunstrike/Social-network-Yatube/internal/feed"
	"github.com/MrSunstrike/Social-network-Yatube/internal/follow"
	"github.com/MrSunstrike/Social-network-Yatube/internal/group"
	"github.com/MrSunstrike/Social-network-Yatube/internal/logs"
	"github.com/MrSunstrike/Social-network-Yatube/internal/middleware"
	"github.com/MrSunstrike/Social-network-Yatube/internal/post"
	"github.com/MrSunstrike/Social-network-Yatube/internal/storage"
	"github.com/MrSunstrike/Social-network-Yatube/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()
	if cfg.DBUrl == "" {
		log.Fatal("DATABASE_URL missing")
	}

	database.Connect(cfg.DBUrl)
	if err := database.DB.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&post.Comment{},
		&follow.Follow{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := storage.InitS3(); err != nil {
		logs.LogJSON("WARN", "S3 storage unavailable, image uploads disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}

	feed.Cache = cache.New(cfg.IndexCacheTTL)

	r := gin.Default()

	// Public pages. Optional auth so profiles can show follow state.
	r.GET("/", middleware.OptionalAuthMiddleware(), feed.Index)
	r.GET("/group/:slug", feed.GroupFeed)
	r.GET("/groups", group.ListGroups)
	r.GET("/profile/:username", middleware.OptionalAuthMiddleware(), feed.ProfileFeed)
	r.GET("/posts/:id", middleware.OptionalAuthMiddleware(), post.GetPostByID)

	// Identity.
	r.POST("/auth/signup", auth.Signup)
	r.GET("/auth/login", auth.LoginPage)
	r.POST("/auth/login", auth.Login)
	r.POST("/auth/logout", auth.Logout)

	// Authenticated surface. Anonymous callers get a login redirect with
	// the original target in ?next=.
	authed := r.Group("/", middleware.AuthMiddleware())
	authed.GET("/create", post.NewPostForm)
	authed.POST("/create", post.CreatePost)
	authed.GET("/posts/:id/edit", post.EditPostForm)
	authed.POST("/posts/:id/edit", post.EditPost)
	authed.POST("/posts/:id/delete", post.DeletePost)
	authed.POST("/posts/:id/comment", post.AddComment)
	authed.POST("/comments/:id/delete", post.RemoveComment)
	authed.GET("/follow", feed.FollowIndex)
	authed.GET("/profile/:username/follow", follow.FollowUser)
	authed.GET("/profile/:username/unfollow", follow.UnfollowUser)
	authed.GET("/me", user.GetMe)
	authed.PUT("/me", user.UpdateMe)

	adm := r.Group("/admin", middleware.AuthMiddleware(), middleware.AdminOnlyMiddleware())
	adm.GET("/stats", admin.GetDashboardStats)
	adm.POST("/cache/clear", admin.ClearIndexCache)
	adm.POST("/groups", group.CreateGroup)
	adm.PUT("/groups/:slug", group.UpdateGroup)
	adm.DELETE("/groups/:slug", group.DeleteGroup)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	})

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
