package model

import (
	"time"

	"github.com/naufalhakm/forum-api/domain"
)

type Thread struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Owner     int64     `gorm:"column:owner;not null"`
	CreatedAt time.Time `gorm:"column:date;type:datetime"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(t *domain.Thread) *Thread {
	return &Thread{
		ID:        t.ID,
		Title:     t.Title,
		Body:      t.Body,
		Owner:     t.User.ID,
		CreatedAt: t.CreatedAt,
	}
}

func (m *Thread) ToDomain() domain.Thread {
	return domain.Thread{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		User:      domain.User{ID: m.Owner},
		CreatedAt: m.CreatedAt,
	}
}
