package fixedwidth

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Layout is an ordered, immutable list of fields making up one record.
type Layout struct {
	Name   string
	fields []Field
	index  map[string]int
}

// NewLayout builds a layout. Panics on a duplicate field name.
func NewLayout(name string, fields ...Field) Layout {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		if _, dup := index[f.Name]; dup {
			panic("duplicate field " + f.Name + " in layout " + name)
		}
		index[f.Name] = i
	}
	return Layout{Name: name, fields: fields, index: index}
}

// Fields returns a copy of the layout's fields in record order.
func (l Layout) Fields() []Field {
	out := make([]Field, len(l.fields))
	copy(out, l.fields)
	return out
}

// Field returns the field with the given name.
func (l Layout) Field(name string) (Field, bool) {
	i, ok := l.index[name]
	if !ok {
		return Field{}, false
	}
	return l.fields[i], true
}

// Width is the sum of all field widths.
func (l Layout) Width() int {
	w := 0
	for _, f := range l.fields {
		w += f.Width
	}
	return w
}

// Decode splits a record into its fields' text, exactly as encoded.
func (l Layout) Decode(line string) (map[string]string, error) {
	if len(line) != l.Width() {
		return nil, fmt.Errorf("%s: expected %d characters, got %d", l.Name, l.Width(), len(line))
	}
	out := make(map[string]string, len(l.fields))
	pos := 0
	for _, f := range l.fields {
		out[f.Name] = line[pos : pos+f.Width]
		pos += f.Width
	}
	return out, nil
}

// Truncation describes a value that lost characters while being encoded.
type Truncation struct {
	Layout string
	Field  string
	Width  int
	Value  string
}

// TruncationFunc receives truncation events. It may be nil.
type TruncationFunc func(Truncation)

// Record collects field values for one layout.
type Record struct {
	layout Layout
	values map[string]string
	// overflow holds the original text of amounts that lost digits.
	overflow map[string]string
}

// NewRecord starts an empty record; unset fields are written as padding.
func NewRecord(l Layout) *Record {
	return &Record{layout: l, values: make(map[string]string, len(l.fields)), overflow: make(map[string]string)}
}

// Set assigns a field's value. Panics if the layout has no such field.
func (r *Record) Set(name, value string) *Record {
	if _, ok := r.layout.index[name]; !ok {
		panic("unknown field " + name + " in layout " + r.layout.Name)
	}
	r.values[name] = value
	delete(r.overflow, name)
	return r
}

// SetAmount assigns an amount field as cents (see Cents). An amount too
// large for the field is reported as a truncation when the record is
// encoded.
func (r *Record) SetAmount(name string, d decimal.Decimal) *Record {
	i, ok := r.layout.index[name]
	if !ok {
		panic("unknown field " + name + " in layout " + r.layout.Name)
	}
	s, truncated := Cents(d, r.layout.fields[i].Width)
	r.values[name] = s
	delete(r.overflow, name)
	if truncated {
		r.overflow[name] = d.StringFixed(2)
	}
	return r
}

// Encode renders the record, reporting dropped characters to onTruncate.
func (r *Record) Encode(onTruncate TruncationFunc) string {
	var b strings.Builder
	b.Grow(r.layout.Width())
	for _, f := range r.layout.fields {
		v := r.values[f.Name]
		s, truncated := Fit(v, f.Width, f.Justify, f.Pad)
		if orig, ok := r.overflow[f.Name]; ok {
			truncated, v = true, orig
		}
		if truncated && onTruncate != nil {
			onTruncate(Truncation{Layout: r.layout.Name, Field: f.Name, Width: f.Width, Value: v})
		}
		b.WriteString(s)
	}
	return b.String()
}

// String renders the record ignoring truncation.
func (r *Record) String() string {
	return r.Encode(nil)
}
