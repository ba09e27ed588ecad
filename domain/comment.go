package domain

import (
	"context"
	"time"
)

const entityNewComment = "NEW_COMMENT"

// DeletedCommentPlaceholder replaces the content of a soft-deleted
// comment in read models. Substitution happens exactly once, at
// DetailComment construction.
const DeletedCommentPlaceholder = "**komentar telah dihapus**"

// Comment is a reply attached directly to a thread. Soft delete flips
// IsDeleted; the stored content is kept untouched and only masked at
// read time.
type Comment struct {
	ID        int64
	ThreadID  int64
	Content   string
	User      User
	CreatedAt time.Time
	IsDeleted bool
}

// NewComment validates a decoded JSON payload into a storable comment.
func NewComment(payload map[string]any, threadID, owner int64) (Comment, error) {
	if owner == 0 {
		return Comment{}, ValidationError{Entity: entityNewComment, Kind: KindMissingProperty}
	}
	content, err := requireString(payload, entityNewComment, "content")
	if err != nil {
		return Comment{}, err
	}
	return Comment{
		ThreadID: threadID,
		Content:  content,
		User:     User{ID: owner},
	}, nil
}

// AddedComment is the creation acknowledgement returned to the caller.
type AddedComment struct {
	ID      int64
	Content string
	Owner   int64
}

// DetailComment is the read model of one comment inside a thread
// detail. Content is already masked when IsDeleted was set; downstream
// layers never reinterpret the flag.
type DetailComment struct {
	ID        int64
	Username  string
	Date      time.Time
	Content   string
	LikeCount int64
	Replies   []DetailReply
}

// NewDetailComment projects a stored comment into its read model,
// applying the soft-delete mask. A nil reply group becomes an empty
// slice so the rendered JSON always carries an array.
func NewDetailComment(c Comment, likeCount int64, replies []DetailReply) DetailComment {
	content := c.Content
	if c.IsDeleted {
		content = DeletedCommentPlaceholder
	}
	if replies == nil {
		replies = []DetailReply{}
	}
	return DetailComment{
		ID:        c.ID,
		Username:  c.User.Username,
		Date:      c.CreatedAt,
		Content:   content,
		LikeCount: likeCount,
		Replies:   replies,
	}
}

// CommentRepository defines the contract for comment persistence.
type CommentRepository interface {
	// Store creates a new comment and backfills ID and CreatedAt.
	Store(ctx context.Context, c *Comment) error

	// SoftDelete flips is_delete without touching the content.
	SoftDelete(ctx context.Context, id int64) error

	// VerifyOwner returns ErrNotFound if the comment doesn't exist and
	// ErrForbidden if it is owned by someone else.
	VerifyOwner(ctx context.Context, id, owner int64) error

	// VerifyExists returns ErrNotFound unless the comment exists and
	// belongs to the given thread.
	VerifyExists(ctx context.Context, id, threadID int64) error

	// FetchByThread returns the thread's comments with usernames
	// resolved, ordered by creation date ascending. The order is
	// load-bearing: callers must not re-sort.
	FetchByThread(ctx context.Context, threadID int64) ([]Comment, error)
}

// CommentUsecase defines the business logic contract for comments.
type CommentUsecase interface {
	Add(ctx context.Context, payload map[string]any, threadID, owner int64) (AddedComment, error)

	// Delete soft-deletes an owned comment. The delete is not
	// reversible through any exposed operation.
	Delete(ctx context.Context, threadID, commentID, owner int64) error

	// ToggleLike flips the caller's like state on a comment. Repeated
	// calls alternate between liked and not liked.
	ToggleLike(ctx context.Context, threadID, commentID, owner int64) error
}
