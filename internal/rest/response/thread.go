package response

import (
	"time"

	"github.com/naufalhakm/forum-api/domain"
)

const DateTimeFormat = time.RFC3339

type AddedThread struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Owner int64  `json:"owner"`
}

// FromDomain: Domain -> Response
func NewAddedThreadFromDomain(t domain.AddedThread) AddedThread {
	return AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.Owner,
	}
}

type ThreadDetail struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     string          `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

func NewThreadDetailFromDomain(t domain.DetailThread) ThreadDetail {
	comments := make([]CommentDetail, len(t.Comments))
	for i := range t.Comments {
		comments[i] = NewCommentDetailFromDomain(t.Comments[i])
	}
	return ThreadDetail{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date.Format(DateTimeFormat),
		Username: t.Username,
		Comments: comments,
	}
}
