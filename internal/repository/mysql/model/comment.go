package model

import (
	"time"

	"github.com/naufalhakm/forum-api/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ThreadID  int64     `gorm:"column:thread_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	Owner     int64     `gorm:"column:owner;not null"`
	CreatedAt time.Time `gorm:"column:date;type:datetime"`
	IsDelete  bool      `gorm:"column:is_delete;default:false"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ThreadID:  c.ThreadID,
		Content:   c.Content,
		Owner:     c.User.ID,
		CreatedAt: c.CreatedAt,
		IsDelete:  c.IsDeleted,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		Content:   m.Content,
		User:      domain.User{ID: m.Owner},
		CreatedAt: m.CreatedAt,
		IsDeleted: m.IsDelete,
	}
}
