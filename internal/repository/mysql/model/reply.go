package model

import (
	"time"

	"github.com/naufalhakm/forum-api/domain"
)

type Reply struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	CommentID int64     `gorm:"column:comment_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	Owner     int64     `gorm:"column:owner;not null"`
	CreatedAt time.Time `gorm:"column:date;type:datetime"`
	IsDelete  bool      `gorm:"column:is_delete;default:false"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(r *domain.Reply) *Reply {
	return &Reply{
		ID:        r.ID,
		CommentID: r.CommentID,
		Content:   r.Content,
		Owner:     r.User.ID,
		CreatedAt: r.CreatedAt,
		IsDelete:  r.IsDeleted,
	}
}

func (m *Reply) ToDomain() domain.Reply {
	return domain.Reply{
		ID:        m.ID,
		CommentID: m.CommentID,
		Content:   m.Content,
		User:      domain.User{ID: m.Owner},
		CreatedAt: m.CreatedAt,
		IsDeleted: m.IsDelete,
	}
}
