package report

import (
	"errors"
	"strings"
)

// Messages returned to reporting agents.
const (
	MessageInvalidBody         = "Invalid report body"
	MessageNoDate              = "No date specified"
	MessageBadDate             = "Incorrect date format"
	MessageMissingIdentifier   = "No identifier could be found"
	MessagePossibleIdentifiers = "possible identifiers"
)

var (
	ErrInvalidBody = errors.New("report body is not a json object")
	ErrNoDate      = errors.New("report has no date")
	ErrBadDate     = errors.New("report date does not match YYYY-MM-DD HH:MM:SS.ffffff")
)

// MissingIdentifierError lists the candidate fields that were looked at.
type MissingIdentifierError struct {
	Tried []string
}

func (e *MissingIdentifierError) Error() string {
	return "no identifier found in report, tried: " + strings.Join(e.Tried, ", ")
}

// IsInputError reports whether err was caused by the report content itself.
func IsInputError(err error) bool {
	var missing *MissingIdentifierError
	return errors.Is(err, ErrInvalidBody) ||
		errors.Is(err, ErrNoDate) ||
		errors.Is(err, ErrBadDate) ||
		errors.As(err, &missing)
}
