package response

import "github.com/naufalhakm/forum-api/domain"

type AddedComment struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Owner   int64  `json:"owner"`
}

func NewAddedCommentFromDomain(c domain.AddedComment) AddedComment {
	return AddedComment{
		ID:      c.ID,
		Content: c.Content,
		Owner:   c.Owner,
	}
}

// CommentDetail carries content already masked by the domain layer;
// deleted comments arrive here as the placeholder text.
type CommentDetail struct {
	ID        int64         `json:"id"`
	Username  string        `json:"username"`
	Date      string        `json:"date"`
	Content   string        `json:"content"`
	LikeCount int64         `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

func NewCommentDetailFromDomain(c domain.DetailComment) CommentDetail {
	replies := make([]ReplyDetail, len(c.Replies))
	for i := range c.Replies {
		replies[i] = NewReplyDetailFromDomain(c.Replies[i])
	}
	return CommentDetail{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date.Format(DateTimeFormat),
		Content:   c.Content,
		LikeCount: c.LikeCount,
		Replies:   replies,
	}
}
