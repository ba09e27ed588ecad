package domain

import (
	"context"
	"time"
)

const entityNewReply = "NEW_REPLY"

// DeletedReplyPlaceholder replaces the content of a soft-deleted reply
// in read models.
const DeletedReplyPlaceholder = "**balasan telah dihapus**"

// Reply is a second-level response attached to a comment. Nesting
// stops here: replies cannot have replies.
type Reply struct {
	ID        int64
	CommentID int64
	Content   string
	User      User
	CreatedAt time.Time
	IsDeleted bool
}

// NewReply validates a decoded JSON payload into a storable reply.
func NewReply(payload map[string]any, commentID, owner int64) (Reply, error) {
	if owner == 0 {
		return Reply{}, ValidationError{Entity: entityNewReply, Kind: KindMissingProperty}
	}
	content, err := requireString(payload, entityNewReply, "content")
	if err != nil {
		return Reply{}, err
	}
	return Reply{
		CommentID: commentID,
		Content:   content,
		User:      User{ID: owner},
	}, nil
}

// AddedReply is the creation acknowledgement returned to the caller.
type AddedReply struct {
	ID      int64
	Content string
	Owner   int64
}

// DetailReply is the read model of one reply. It is a distinct type
// from Reply, so a reply can only be projected once and the mask can
// never be applied twice.
type DetailReply struct {
	ID       int64
	Username string
	Date     time.Time
	Content  string
}

// NewDetailReply projects a stored reply into its read model, applying
// the soft-delete mask.
func NewDetailReply(r Reply) DetailReply {
	content := r.Content
	if r.IsDeleted {
		content = DeletedReplyPlaceholder
	}
	return DetailReply{
		ID:       r.ID,
		Username: r.User.Username,
		Date:     r.CreatedAt,
		Content:  content,
	}
}

// ReplyRepository defines the contract for reply persistence.
type ReplyRepository interface {
	// Store creates a new reply and backfills ID and CreatedAt.
	Store(ctx context.Context, r *Reply) error

	// SoftDelete flips is_delete without touching the content.
	SoftDelete(ctx context.Context, id int64) error

	// VerifyOwner returns ErrNotFound if the reply doesn't exist and
	// ErrForbidden if it is owned by someone else.
	VerifyOwner(ctx context.Context, id, owner int64) error

	// FetchByThread returns every reply under the thread in a single
	// pass, usernames resolved, ordered by creation date ascending.
	// Each reply carries its owning comment id for grouping.
	FetchByThread(ctx context.Context, threadID int64) ([]Reply, error)
}

// ReplyUsecase defines the business logic contract for replies.
type ReplyUsecase interface {
	Add(ctx context.Context, payload map[string]any, threadID, commentID, owner int64) (AddedReply, error)
	Delete(ctx context.Context, threadID, commentID, replyID, owner int64) error
}
