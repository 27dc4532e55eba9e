// Package report turns a raw report body into its identifier, timestamp,
// event type, group reference and flat property set. It does not touch
// storage.
package report

import (
	"time"
)

// Reserved top-level fields besides the identifier candidates and the
// configured group field.
const (
	FieldDate = "date"
	FieldType = "type"
)

type Options struct {
	IdentifierFields []string
	GroupField       string
	Flatten          bool
}

type Report struct {
	Identifier string
	Timestamp  time.Time
	// Type is empty when the report carries no event type.
	Type string
	// Group is empty when the report names no group.
	Group      string
	Properties map[string]Value
}

// Parse validates body in the order agents are answered: body shape,
// identifier, then date. Nothing is returned on error.
func Parse(body []byte, opts Options) (*Report, error) {
	obj, err := ParseObject(body)
	if err != nil {
		return nil, ErrInvalidBody
	}

	identifier, err := ResolveIdentifier(obj, opts.IdentifierFields)
	if err != nil {
		return nil, err
	}

	timestamp, err := parseDateField(obj)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Identifier: identifier,
		Timestamp:  timestamp,
	}

	if v, ok := scalarField(obj, FieldType); ok {
		r.Type = v.Text()
	}

	if opts.GroupField != "" {
		if v, ok := scalarField(obj, opts.GroupField); ok {
			r.Group = v.Text()
		}
	}

	reserved := append([]string{FieldDate, FieldType}, opts.IdentifierFields...)
	if opts.GroupField != "" {
		reserved = append(reserved, opts.GroupField)
	}
	r.Properties = Flatten(obj.Without(reserved...), opts.Flatten)

	return r, nil
}

func parseDateField(obj Object) (time.Time, error) {
	raw, ok := obj.Get(FieldDate)
	if !ok {
		return time.Time{}, ErrNoDate
	}
	v, err := FromRaw(raw)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	switch v.Kind {
	case KindNull:
		return time.Time{}, ErrNoDate
	case KindString:
		return ParseDate(v.Str)
	}
	return time.Time{}, ErrBadDate
}

// Result is the outcome of a stored report.
type Result struct {
	Identifier string
	DeviceID   uint
	// Changed is true when at least one property history row was appended.
	Changed bool
	// EventLogged is true when a new event log row was written.
	EventLogged bool
}

// AlreadySent is true when the report added no fact that was not already
// stored.
func (r *Result) AlreadySent() bool {
	return !r.Changed && !r.EventLogged
}
