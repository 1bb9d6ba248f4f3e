package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is what every service call returns: an HTTP status and the JSON payload.
type Result struct {
	Status  int
	Payload any
}

// ErrorItem is one entry of an {"errors": [...]} payload.
type ErrorItem struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

type ErrorsPayload struct {
	Errors []ErrorItem `json:"errors"`
}

type MessagePayload struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

func New(status int, payload any) Result {
	return Result{Status: status, Payload: payload}
}

func OK(payload any) Result      { return New(http.StatusOK, payload) }
func Created(payload any) Result { return New(http.StatusCreated, payload) }

// NotFound carries an empty object payload.
func NotFound() Result { return New(http.StatusNotFound, Empty()) }

// Empty is the {} payload.
func Empty() map[string]any { return map[string]any{} }

func Errors(status int, msgs ...string) Result {
	items := make([]ErrorItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, ErrorItem{Msg: m})
	}
	return New(status, ErrorsPayload{Errors: items})
}

func Message(status int, msg string) Result {
	return New(status, MessagePayload{Msg: msg})
}

// Internal wraps an unexpected failure as a 500 with the error detail.
func Internal(err error) Result {
	p := MessagePayload{Msg: "Server error"}
	if err != nil {
		p.Error = err.Error()
	}
	return New(http.StatusInternalServerError, p)
}

// Write renders r as JSON.
func Write(c *gin.Context, r Result) {
	if r.Payload == nil {
		r.Payload = Empty()
	}
	c.JSON(r.Status, r.Payload)
}

// Reply writes r, or hands err to the central error handler when set.
func Reply(c *gin.Context, r Result, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	Write(c, r)
}
