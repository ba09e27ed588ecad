package model

import (
	"time"

	"github.com/naufalhakm/forum-api/domain"
)

// CommentLike rows are created and destroyed by toggling, never
// updated. The (owner, comment_id) unique index is the authoritative
// guard against double likes.
type CommentLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Owner     int64     `gorm:"column:owner;not null;uniqueIndex:idx_owner_comment"`
	CommentID int64     `gorm:"column:comment_id;not null;uniqueIndex:idx_owner_comment"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func (m *CommentLike) ToDomain() domain.CommentLike {
	return domain.CommentLike{
		CommentID: m.CommentID,
		Owner:     m.Owner,
		CreatedAt: m.CreatedAt,
	}
}
