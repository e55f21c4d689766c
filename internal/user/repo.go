package user

import (
	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
)

func ExistsByEmail(email string) bool {
	var count int64
	database.DB.Model(&User{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func ExistsByUsername(username string) bool {
	var count int64
	database.DB.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}

// GetByUsername resolves a username to its User. Returns
// gorm.ErrRecordNotFound when the username is unknown.
func GetByUsername(username string) (*User, error) {
	var u User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func IsAdmin(userID string) (bool, error) {
	var isAdmin bool
	err := database.DB.Model(&User{}).
		Select("is_admin").
		Where("id = ?", userID).
		Scan(&isAdmin).Error
	return isAdmin, err
}
