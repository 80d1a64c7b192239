package api

import (
	"errors"
	"fmt"
)

// ErrChannelRequired is returned before any request when a method needs a
// channel ID and none was given.
var ErrChannelRequired = errors.New("api: channel is required")

// Error is an application-level failure: Slack answered with "ok": false.
type Error struct {
	Method   string
	Code     string
	Warnings []string
}

func (e *Error) Error() string {
	code := e.Code
	if code == "" {
		code = "unknown_error"
	}
	return fmt.Sprintf("slack %s: %s", e.Method, code)
}

// IsCode reports whether err is an *Error with the given code.
func IsCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
