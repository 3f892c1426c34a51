package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidMove = errors.New("invalid move")
var ErrNotYourTurn = errors.New("not your turn")
var ErrRoomNotFound = errors.New("room not found")
var ErrRulesNotSatisfied = errors.New("rules not satisfied")
var ErrServer = errors.New("server error")

const unknownErrorMessage = "algo salió mal, intenta de nuevo"

// Error is a failed server call. Message is user-facing, taken from the
// response body when it has one. errors.Is works against the class
// sentinels above.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	switch {
	case e.Status == http.StatusForbidden:
		return ErrNotYourTurn
	case e.Status == http.StatusNotFound:
		return ErrRoomNotFound
	case e.Status == http.StatusConflict:
		return ErrRulesNotSatisfied
	case e.Status >= 400 && e.Status < 500:
		return ErrInvalidMove
	}
	return ErrServer
}

// errorBody is what the server puts in failed responses. Either field may be
// missing.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func newError(status int, body []byte) *Error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	msg := eb.Detail
	if msg == "" {
		msg = eb.Message
	}
	if msg == "" {
		msg = unknownErrorMessage
	}
	return &Error{Status: status, Message: msg}
}
