package domain

import (
	"context"
	"time"
)

const entityNewThread = "NEW_THREAD"

// Thread is a top-level discussion post. Threads are created once and
// never edited or deleted through the API.
type Thread struct {
	ID        int64
	Title     string
	Body      string
	User      User // Author information
	CreatedAt time.Time
}

// NewThread validates a decoded JSON payload plus the authenticated
// owner into a storable thread.
func NewThread(payload map[string]any, owner int64) (Thread, error) {
	if owner == 0 {
		return Thread{}, ValidationError{Entity: entityNewThread, Kind: KindMissingProperty}
	}
	title, err := requireString(payload, entityNewThread, "title")
	if err != nil {
		return Thread{}, err
	}
	body, err := requireString(payload, entityNewThread, "body")
	if err != nil {
		return Thread{}, err
	}
	return Thread{
		Title: title,
		Body:  body,
		User:  User{ID: owner},
	}, nil
}

// AddedThread is the creation acknowledgement returned to the caller.
type AddedThread struct {
	ID    int64
	Title string
	Owner int64
}

// DetailThread is the aggregate read model of one thread: header plus
// its comments (each carrying replies and like count) in creation
// order. It is assembled per request and never persisted.
type DetailThread struct {
	ID       int64
	Title    string
	Body     string
	Date     time.Time
	Username string
	Comments []DetailComment
}

// ThreadRepository defines the contract for thread persistence.
type ThreadRepository interface {
	// Store creates a new thread and backfills ID and CreatedAt.
	Store(ctx context.Context, t *Thread) error

	// GetByID retrieves the thread header with the author's username
	// resolved. Returns ErrNotFound if the thread doesn't exist.
	GetByID(ctx context.Context, id int64) (Thread, error)

	// VerifyExists returns ErrNotFound if the thread doesn't exist.
	VerifyExists(ctx context.Context, id int64) error

	// FetchIDs pages over thread ids, used to warm the bloom filter.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// ThreadUsecase defines the business logic contract for threads.
type ThreadUsecase interface {
	// Add validates the payload and stores a new thread.
	Add(ctx context.Context, payload map[string]any, owner int64) (AddedThread, error)

	// GetDetail assembles the full thread read model. Returns
	// ErrNotFound if the thread is absent; a missing thread is
	// terminal, there is no partial response.
	GetDetail(ctx context.Context, threadID int64) (DetailThread, error)
}
