package feed

import (
	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
	"github.com/MrSunstrike/Social-network-Yatube/internal/follow"
	"github.com/MrSunstrike/Social-network-Yatube/internal/group"
	"github.com/MrSunstrike/Social-network-Yatube/internal/post"
	"github.com/MrSunstrike/Social-network-Yatube/internal/user"
)

// One typed query per feed. Every query returns a newest-first snapshot;
// pagination always slices the snapshot, never a second query.

// GlobalPosts returns every post.
func GlobalPosts() ([]post.Post, error) {
	var posts []post.Post
	err := database.DB.
		Preload("Author").
		Preload("Group").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// GroupPosts resolves slug and returns the group with its posts.
// Unknown slug yields gorm.ErrRecordNotFound, never an empty feed.
func GroupPosts(slug string) (*group.Group, []post.Post, error) {
	var g group.Group
	if err := database.DB.Where("slug = ?", slug).First(&g).Error; err != nil {
		return nil, nil, err
	}

	var posts []post.Post
	err := database.DB.
		Preload("Author").
		Where("group_id = ?", g.ID).
		Order("created_at DESC").
		Find(&posts).Error
	return &g, posts, err
}

// ProfilePosts resolves username and returns the author with their posts.
// Unknown username yields gorm.ErrRecordNotFound.
func ProfilePosts(username string) (*user.User, []post.Post, error) {
	author, err := user.GetByUsername(username)
	if err != nil {
		return nil, nil, err
	}

	var posts []post.Post
	err = database.DB.
		Preload("Group").
		Where("author_id = ?", author.ID).
		Order("created_at DESC").
		Find(&posts).Error
	return author, posts, err
}

// FollowingPosts returns the posts of every author userID follows.
func FollowingPosts(userID string) ([]post.Post, error) {
	authors := database.DB.
		Model(&follow.Follow{}).
		Select("author_id").
		Where("user_id = ?", userID)

	var posts []post.Post
	err := database.DB.
		Preload("Author").
		Preload("Group").
		Where("author_id IN (?)", authors).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}
