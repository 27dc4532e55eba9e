package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	// KindOpaque holds a nested array or object serialized to canonical JSON text.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindOpaque:
		return "opaque"
	}
	return "unknown"
}

// Value is a single flattened property value.
type Value struct {
	Kind Kind
	// Str carries the string content, the number literal or the opaque JSON text.
	Str  string
	Bool bool
}

func Null() Value                   { return Value{Kind: KindNull} }
func String(s string) Value         { return Value{Kind: KindString, Str: s} }
func Number(n json.Number) Value    { return Value{Kind: KindNumber, Str: n.String()} }
func Bool(b bool) Value             { return Value{Kind: KindBool, Bool: b} }
func Opaque(canonical string) Value { return Value{Kind: KindOpaque, Str: canonical} }

// Encode returns the stored form of the value. Every stored form is a JSON
// document, so Decode(v.Encode()) keeps the kind: the string "1" is stored
// as "\"1\"" while the number 1 is stored as "1".
func (v Value) Encode() string {
	switch v.Kind {
	case KindString:
		return quote(v.Str)
	case KindNumber, KindOpaque:
		return v.Str
	case KindBool:
		return strconv.FormatBool(v.Bool)
	}
	return "null"
}

// Text is the plain rendering used inside identifiers and event types:
// strings without quotes, everything else as stored.
func (v Value) Text() string {
	if v.Kind == KindString {
		return v.Str
	}
	return v.Encode()
}

// IsEmpty reports whether the value carries nothing usable as an
// identifier, type or group reference.
func (v Value) IsEmpty() bool {
	return v.Kind == KindNull || (v.Kind == KindString && v.Str == "")
}

func (v Value) IsScalar() bool {
	return v.Kind != KindOpaque
}

func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.Encode()), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := FromRaw(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// Decode restores a value from its stored form.
func Decode(stored string) (Value, error) {
	return FromRaw(json.RawMessage(stored))
}

// FromRaw converts one JSON document into a Value. Arrays and objects become
// opaque values holding their canonical serialization.
func FromRaw(raw json.RawMessage) (Value, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Value{}, fmt.Errorf("empty json value")
	}

	switch trimmed[0] {
	case '{', '[':
		canonical, err := Canonical(trimmed)
		if err != nil {
			return Value{}, err
		}
		return Opaque(canonical), nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Value{}, err
		}
		return String(s), nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case 'n':
		if string(trimmed) != "null" {
			return Value{}, fmt.Errorf("invalid json value %q", trimmed)
		}
		return Null(), nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return Value{}, err
	}
	return Number(n), nil
}
