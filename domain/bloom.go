package domain

import "context"

// BloomRepository tracks which thread ids exist, with false positives
// but no false negatives.
type BloomRepository interface {
	// Add puts an id into the filter.
	Add(ctx context.Context, id int64) error

	// Exists checks whether an id may exist.
	// true: possibly exists, check storage.
	// false: definitely absent, safe to 404 immediately.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd loads many ids at once, used on startup.
	BulkAdd(ctx context.Context, ids []int64) error
}
