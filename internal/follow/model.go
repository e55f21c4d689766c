package follow

import (
	"time"
)

// Follow is a directed edge: UserID reads AuthorID. The composite unique
// index is the store-level backstop for the one-edge-per-pair invariant;
// the application check in FollowAuthor closes the common path and the
// index closes the race.
type Follow struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_follows_user_author"`
	AuthorID  string    `json:"author_id" gorm:"type:uuid;uniqueIndex:idx_follows_user_author"`
}
