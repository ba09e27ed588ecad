package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naufalhakm/forum-api/domain"
	"github.com/naufalhakm/forum-api/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) Store(c *gin.Context) {
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

	added, err := h.Service.Add(c.Request.Context(), payload, threadID, commentID, userID.(int64))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedReply": response.NewAddedReplyFromDomain(added)},
	})
}

func (h *replyHandler) Delete(c *gin.Context) {
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
	replyID, err := paramID(c, "replyId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Status: "fail", Message: domain.ErrNotFound.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Status: "fail", Message: "User not authenticated"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), threadID, commentID, replyID, userID.(int64)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
