package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReply(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		r, err := NewReply(map[string]any{"content": "sebuah balasan"}, 7, 42)

		require.NoError(t, err)
		assert.Equal(t, "sebuah balasan", r.Content)
		assert.Equal(t, int64(7), r.CommentID)
		assert.Equal(t, int64(42), r.User.ID)
	})

	t.Run("missing content", func(t *testing.T) {
		_, err := NewReply(map[string]any{}, 7, 42)
		assert.Equal(t, ValidationError{Entity: "NEW_REPLY", Kind: KindMissingProperty}, err)
	})

	t.Run("wrong content type", func(t *testing.T) {
		_, err := NewReply(map[string]any{"content": 1.0}, 7, 42)
		assert.Equal(t, ValidationError{Entity: "NEW_REPLY", Kind: KindWrongDataType}, err)
	})
}

func TestNewDetailReplyMasking(t *testing.T) {
	now := time.Now()
	r := Reply{
		ID:        3,
		CommentID: 7,
		Content:   "isi balasan",
		User:      User{Username: "johndoe"},
		CreatedAt: now,
	}

	live := NewDetailReply(r)
	assert.Equal(t, "isi balasan", live.Content)
	assert.Equal(t, "johndoe", live.Username)
	assert.Equal(t, now, live.Date)

	r.IsDeleted = true
	masked := NewDetailReply(r)
	assert.Equal(t, DeletedReplyPlaceholder, masked.Content)
}
