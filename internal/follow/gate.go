package follow

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
)

// IsFollowing reports whether userID follows authorID. An empty userID
// (anonymous viewer) is always false, never an error.
func IsFollowing(userID, authorID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	var edge Follow
	err := database.DB.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FollowAuthor creates the (userID, authorID) edge. Self-follow and an
// already existing edge are no-ops. Losing the insert race to a concurrent
// call surfaces as a duplicate-key error and is also a no-op.
func FollowAuthor(userID, authorID string) error {
	if userID == authorID {
		return nil
	}

	following, err := IsFollowing(userID, authorID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	edge := Follow{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		UserID:    userID,
		AuthorID:  authorID,
	}
	if err := database.DB.Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

// UnfollowAuthor deletes the edge if present; deleting a missing edge is
// not an error.
func UnfollowAuthor(userID, authorID string) error {
	return database.DB.
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}
