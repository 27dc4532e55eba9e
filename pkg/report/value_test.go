package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueEncodeDecode(t *testing.T) {
	cases := []struct {
		value  Value
		stored string
	}{
		{String("arm"), `"arm"`},
		{String("1"), `"1"`},
		{String(`{"c": 1}`), `"{\"c\": 1}"`},
		{Number("1"), `1`},
		{Number("2.50"), `2.50`},
		{Bool(false), `false`},
		{Null(), `null`},
		{Opaque(`{"c": 1}`), `{"c": 1}`},
		{Opaque(`[1, "a"]`), `[1, "a"]`},
	}

	for _, tc := range cases {
		t.Run(tc.stored, func(t *testing.T) {
			assert.Equal(t, tc.stored, tc.value.Encode())

			decoded, err := Decode(tc.stored)
			require.NoError(t, err)
			assert.Equal(t, tc.value, decoded)
		})
	}
}

func TestValueText(t *testing.T) {
	assert.Equal(t, "arm", String("arm").Text())
	assert.Equal(t, "42", Number("42").Text())
	assert.Equal(t, "true", Bool(true).Text())
}

func TestValueMarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]Value{
		"s": String("x"),
		"o": Opaque(`{"c": 1}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"x","o":{"c":1}}`, string(out))

	var back map[string]Value
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, Opaque(`{"c": 1}`), back["o"])
}

func TestQuoteEscapesLikeAgents(t *testing.T) {
	assert.Equal(t, `"a\"b\\c\n"`, quote("a\"b\\c\n"))
	assert.Equal(t, `"\u00e9\u007f"`, quote("é\x7f"))
	assert.Equal(t, `"\ud83d\ude00"`, quote("😀"))
}

func TestCanonicalRejectsTrailingData(t *testing.T) {
	_, err := Canonical([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)
}
