package httperr

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response is the failure body shared by every endpoint: {"success": false, "error": "..."}
type Response struct {
	Status     int    `json:"-"`
	RetryAfter int    `json:"-"` // seconds, sent as the Retry-After header when positive
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	Detail     any    `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{Status: status, Error: msg, Detail: detail}
}

// Write sends the response, including its Retry-After header.
func (r Response) Write(c *gin.Context) {
	if r.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(r.RetryAfter))
	}
	c.AbortWithStatusJSON(r.Status, r)
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, err, NewResponse(status, msg, detail))
}

// AbortRetryable is AbortWithError for transient failures the client should retry.
func AbortRetryable(c *gin.Context, status int, err error, msg string, retryAfterSec int) {
	resp := NewResponse(status, msg, nil)
	resp.RetryAfter = retryAfterSec
	abort(c, err, resp)
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		err = errors.New(resp.Error)
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	resp.Write(c)
}
