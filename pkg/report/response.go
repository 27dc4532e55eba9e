package report

import (
	"errors"

	"liyu1981.xyz/edms-report-service/pkg/common"
)

// Keys and status values of the body returned to reporting agents.
const (
	KeyStatus      = "status"
	KeyMessage     = "message"
	KeyAlreadySent = "already_sent"

	StatusOK    = "ok"
	StatusError = "error"
)

func OKBody(result *Result) map[string]any {
	body := map[string]any{KeyStatus: StatusOK}
	if result.AlreadySent() {
		body[KeyAlreadySent] = true
	}
	return body
}

func ErrorBody(message string) map[string]any {
	return map[string]any{KeyStatus: StatusError, KeyMessage: message}
}

// InputErrorBody returns the agent body for an input error, and false for
// any other error.
func InputErrorBody(err error) (map[string]any, bool) {
	var missing *MissingIdentifierError
	switch {
	case errors.As(err, &missing):
		body := ErrorBody(MessageMissingIdentifier)
		body[MessagePossibleIdentifiers] = common.Mapper(missing.Tried, func(field string) any { return field })
		return body, true
	case errors.Is(err, ErrNoDate):
		return ErrorBody(MessageNoDate), true
	case errors.Is(err, ErrBadDate):
		return ErrorBody(MessageBadDate), true
	case errors.Is(err, ErrInvalidBody):
		return ErrorBody(MessageInvalidBody), true
	}
	return nil, false
}
