package post

import (
	"time"

	"github.com/MrSunstrike/Social-network-Yatube/internal/group"
	"github.com/MrSunstrike/Social-network-Yatube/internal/user"
)

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`
	AuthorID  string    `json:"author_id" gorm:"type:uuid;index"`
	Author    user.User `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	// GroupID is optional; deleting the group keeps the post and nulls this.
	GroupID  *string      `json:"group_id" gorm:"type:uuid;index"`
	Group    *group.Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	ImageURL string       `json:"image_url,omitempty"`
}
