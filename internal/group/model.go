package group

import "time"

// Group is an editorially curated collection of posts. The slug is the
// group's public identity and never changes after creation.
type Group struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title" gorm:"size:200"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:200"`
	Description string    `json:"description"`
}
