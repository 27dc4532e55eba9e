package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultOptions = Options{
	IdentifierFields: []string{"ident", "hostname"},
	GroupField:       "device_group",
	Flatten:          true,
}

func TestParse(t *testing.T) {
	body := `{
		"hostname": "box",
		"type": "hello_from_python",
		"date": "2024-01-01 00:00:00.000000",
		"loadavg": [0.5, 0.3, 0.1],
		"device_group": "g1",
		"os": {"name": "linux", "release": {"major": 6}}
	}`

	r, err := Parse([]byte(body), defaultOptions)
	require.NoError(t, err)

	assert.Equal(t, "hostname:box", r.Identifier)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Timestamp)
	assert.Equal(t, "hello_from_python", r.Type)
	assert.Equal(t, "g1", r.Group)
	assert.Equal(t, map[string]Value{
		"loadavg":    Opaque("[0.5, 0.3, 0.1]"),
		"os.name":    String("linux"),
		"os.release": Opaque(`{"major": 6}`),
	}, r.Properties)
}

func TestParseErrorsInResponseOrder(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"not json", `nope`, ErrInvalidBody},
		{"not an object", `[1,2]`, ErrInvalidBody},
		{"identifier checked before date", `{"cpu":"arm"}`, &MissingIdentifierError{}},
		{"missing date", `{"ident":"dev1"}`, ErrNoDate},
		{"null date", `{"ident":"dev1","date":null}`, ErrNoDate},
		{"numeric date", `{"ident":"dev1","date":20240101}`, ErrBadDate},
		{"iso date", `{"ident":"dev1","date":"2024-01-01T00:00:00Z"}`, ErrBadDate},
		{"no fraction", `{"ident":"dev1","date":"2024-01-01 00:00:00"}`, ErrBadDate},
		{"fraction too long", `{"ident":"dev1","date":"2024-01-01 00:00:00.1234567"}`, ErrBadDate},
		{"bad month", `{"ident":"dev1","date":"2024-13-01 00:00:00.000000"}`, ErrBadDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Parse([]byte(tc.body), defaultOptions)
			assert.Nil(t, r)
			require.Error(t, err)
			assert.True(t, IsInputError(err))

			var missing *MissingIdentifierError
			if errors.As(tc.want, &missing) {
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, []string{"ident", "hostname"}, missing.Tried)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResolveIdentifierPriority(t *testing.T) {
	obj := mustObject(t, `{"hostname":"box","ident":"dev1"}`)

	id, err := ResolveIdentifier(obj, []string{"ident", "hostname"})
	require.NoError(t, err)
	assert.Equal(t, "ident:dev1", id)

	id, err = ResolveIdentifier(obj, []string{"hostname", "ident"})
	require.NoError(t, err)
	assert.Equal(t, "hostname:box", id)
}

func TestResolveIdentifierSkipsEmptyValues(t *testing.T) {
	obj := mustObject(t, `{"ident":"","serial":null,"mac":{"a":1},"hostname":7}`)

	id, err := ResolveIdentifier(obj, []string{"ident", "serial", "mac", "hostname"})
	require.NoError(t, err)
	assert.Equal(t, "hostname:7", id)
}

func TestParseDateFractions(t *testing.T) {
	d, err := ParseDate("2024-05-06 07:08:09.5")
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, time.Duration(d.Nanosecond()))

	d, err = ParseDate("2024-05-06 07:08:09.000042")
	require.NoError(t, err)
	assert.Equal(t, 42*time.Microsecond, time.Duration(d.Nanosecond()))
	assert.Equal(t, "2024-05-06 07:08:09.000042", FormatDate(d))
}

func TestParseRemovesReservedFields(t *testing.T) {
	r, err := Parse([]byte(`{"ident":"a","hostname":"b","date":"2024-01-01 00:00:00.000000","cpu":"arm"}`), defaultOptions)
	require.NoError(t, err)
	assert.Equal(t, "", r.Type)
	assert.Equal(t, "", r.Group)
	assert.Equal(t, map[string]Value{"cpu": String("arm")}, r.Properties)
}
