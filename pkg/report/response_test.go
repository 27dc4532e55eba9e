package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOKBody(t *testing.T) {
	assert.Equal(t, map[string]any{"status": "ok"}, OKBody(&Result{Changed: true}))
	assert.Equal(t, map[string]any{"status": "ok"}, OKBody(&Result{EventLogged: true}))
	assert.Equal(t, map[string]any{"status": "ok", "already_sent": true}, OKBody(&Result{}))
}

func TestInputErrorBody(t *testing.T) {
	body, ok := InputErrorBody(ErrNoDate)
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"status": "error", "message": "No date specified"}, body)

	body, ok = InputErrorBody(ErrBadDate)
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"status": "error", "message": "Incorrect date format"}, body)

	body, ok = InputErrorBody(&MissingIdentifierError{Tried: []string{"ident", "hostname"}})
	assert.True(t, ok)
	assert.Equal(t, map[string]any{
		"status":               "error",
		"message":              "No identifier could be found",
		"possible identifiers": []any{"ident", "hostname"},
	}, body)

	_, ok = InputErrorBody(errors.New("disk full"))
	assert.False(t, ok)
}
