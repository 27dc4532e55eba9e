package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

type Member struct {
	Key string
	Raw json.RawMessage
}

// Object is a decoded JSON object that remembers member order. A repeated
// key keeps its first position and its last value.
type Object []Member

func ParseObject(data []byte) (Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected json object, got %v", tok)
	}

	obj := Object{}
	index := map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		if i, seen := index[key]; seen {
			obj[i].Raw = raw
			continue
		}
		index[key] = len(obj)
		obj = append(obj, Member{Key: key, Raw: raw})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after json object")
	}
	return obj, nil
}

func (o Object) Get(key string) (json.RawMessage, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Raw, true
		}
	}
	return nil, false
}

// Without returns the members whose key is not in keys.
func (o Object) Without(keys ...string) Object {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(Object, 0, len(o))
	for _, m := range o {
		if _, ok := drop[m.Key]; !ok {
			out = append(out, m)
		}
	}
	return out
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
