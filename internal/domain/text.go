package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Text is display text decoded from any JSON value. Strings keep their value,
// numbers and booleans keep their literal, arrays become comma-separated items
// and objects become "key: value" pairs in key order.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	v, err := decodeAny(data)
	if err != nil {
		return err
	}
	*t = Text(textOf(v))
	return nil
}

func (t Text) String() string { return string(t) }

// TextList is a list of display texts. A single JSON value decodes as a
// one-item list.
type TextList []Text

func (l *TextList) UnmarshalJSON(data []byte) error {
	v, err := decodeAny(data)
	if err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*l = nil
	case []any:
		out := make(TextList, 0, len(x))
		for _, item := range x {
			if s := textOf(item); s != "" {
				out = append(out, Text(s))
			}
		}
		*l = out
	default:
		*l = TextList{Text(textOf(x))}
	}
	return nil
}

// Strings returns the list as plain strings.
func (l TextList) Strings() []string {
	out := make([]string, len(l))
	for i, t := range l {
		out[i] = string(t)
	}
	return out
}

func decodeAny(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding text value: %w", err)
	}
	return v, nil
}

func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			if s := textOf(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		parts := make([]string, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			s := textOf(x[k])
			if s == "" {
				continue
			}
			if _, nested := x[k].(map[string]any); nested {
				s = "(" + s + ")"
			}
			parts = append(parts, k+": "+s)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(x)
	}
}
