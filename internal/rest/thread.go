package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/naufalhakm/forum-api/domain"
	"github.com/naufalhakm/forum-api/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const opaqueServerFault = "terjadi kegagalan pada server kami"

// ThreadHandler represent the httphandler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will store the thread by given request body
func (h *ThreadHandler) Store(c *gin.Context) {
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

	added, err := h.Service.Add(c.Request.Context(), payload, userID.(int64))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   gin.H{"addedThread": response.NewAddedThreadFromDomain(added)},
	})
}

// GetByID will get the thread detail by given id
func (h *ThreadHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Status: "fail", Message: domain.ErrNotFound.Error()})
		return
	}

	detail, err := h.Service.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"thread": response.NewThreadDetailFromDomain(detail)},
	})
}

func paramID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func respondError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		c.JSON(code, ResponseError{Status: "error", Message: opaqueServerFault})
		return
	}
	c.JSON(code, ResponseError{Status: "fail", Message: err.Error()})
}

// getStatusCode maps domain failures to HTTP codes. Anything outside
// the taxonomy is an unexpected server fault: logged here, opaque to
// the client.
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if domain.IsValidation(err) {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}
