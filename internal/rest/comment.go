package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naufalhakm/forum-api/domain"
	"github.com/naufalhakm/forum-api/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) Store(c *gin.Context) {
	threadID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Status: "fail", Message: domain.ErrNotFound.Error()})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Status: "fail", Message: err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Status: "fail", Message: "User not authenticated"})
		return
	}

	added, err := h.Service.Add(c.Request.Context(), payload, threadID, userID.(int64))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedComment": response.NewAddedCommentFromDomain(added)},
	})
}

func (h *commentHandler) Delete(c *gin.Context) {
	threadID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Status: "fail", Message: domain.ErrNotFound.Error()})
		return
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Status: "fail", Message: domain.ErrNotFound.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Status: "fail", Message: "User not authenticated"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), threadID, commentID, userID.(int64)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ToggleLike flips the caller's like state; the same endpoint likes
// and unlikes.
func (h *commentHandler) ToggleLike(c *gin.Context) {
	threadID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Status: "fail", Message: domain.ErrNotFound.Error()})
		return
	}
	commentID, err := paramID(c, "commentId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Status: "fail", Message: domain.ErrNotFound.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Status: "fail", Message: "User not authenticated"})
		return
	}

	if err := h.Service.ToggleLike(c.Request.Context(), threadID, commentID, userID.(int64)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
