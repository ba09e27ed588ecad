package response

import "github.com/naufalhakm/forum-api/domain"

type AddedReply struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Owner   int64  `json:"owner"`
}

func NewAddedReplyFromDomain(r domain.AddedReply) AddedReply {
	return AddedReply{
		ID:      r.ID,
		Content: r.Content,
		Owner:   r.Owner,
	}
}

type ReplyDetail struct {
	ID       int64  `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

func NewReplyDetailFromDomain(r domain.DetailReply) ReplyDetail {
	return ReplyDetail{
		ID:       r.ID,
		Content:  r.Content,
		Date:     r.Date.Format(DateTimeFormat),
		Username: r.Username,
	}
}
