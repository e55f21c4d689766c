package post

import (
	"time"

	"github.com/MrSunstrike/Social-network-Yatube/internal/user"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	PostID    string    `json:"post_id" gorm:"type:uuid;index"`
	Post      Post      `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AuthorID  string    `json:"author_id" gorm:"type:uuid"`
	Author    user.User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
