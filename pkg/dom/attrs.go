package dom

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Attr is a single attribute. A nil Value marks a bare (valueless)
// boolean attribute, e.g. `disabled`.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an insertion-ordered attribute list. Order is observable in
// rendered output, so it is preserved through every operation.
type Attrs []Attr

// A builds an Attrs list from alternating key/value arguments.
//
//	dom.A("class", "btn", "disabled", true)
func A(kv ...any) Attrs {
	attrs := make(Attrs, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		attrs.Set(key, kv[i+1])
	}
	return attrs
}

// Get returns the value for key and whether it is present.
func (a Attrs) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// Set replaces the value for an existing key in place, preserving its
// position, or appends a new pair.
func (a *Attrs) Set(key string, value any) {
	for i, attr := range *a {
		if attr.Key == key {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// Clone returns an independent copy of the attribute list.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	copy(out, a)
	return out
}

// attrRenames maps builder-internal spellings to their HTML names.
var attrRenames = map[string]string{
	"klass": "class",
}

// NormalizeAttrs converts builder attribute spellings to HTML spellings:
//
//   - renamed keys (klass -> class)
//   - a trailing underscore is stripped (for_ -> for)
//   - remaining underscores become hyphens (data_id -> data-id)
//   - a true value becomes a bare attribute (nil value)
//   - on a meta tag, a bare content attribute becomes content=""
//
// Insertion order is preserved and the conversion is idempotent.
func NormalizeAttrs(tag string, attrs Attrs) Attrs {
	out := make(Attrs, 0, len(attrs))
	for _, attr := range attrs {
		key := attr.Key
		if renamed, ok := attrRenames[key]; ok {
			key = renamed
		} else {
			key = strings.TrimSuffix(key, "_")
			key = strings.ReplaceAll(key, "_", "-")
		}

		value := attr.Value
		if value == true {
			value = nil
		}
		out.Set(key, value)
	}

	// A bare content attribute on a meta tag keeps an explicit empty value.
	if tag == "meta" {
		if v, ok := out.Get("content"); ok && v == nil {
			out.Set("content", "")
		}
	}

	return out
}

// attrString renders normalized attributes as a space-joined token list,
// ready for insertion after the tag name. Empty input yields "".
func attrString(tag string, attrs Attrs) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for _, attr := range NormalizeAttrs(tag, attrs) {
		if attr.Value == nil {
			parts = append(parts, attr.Key)
			continue
		}
		value, _ := contentString(attr.Value)
		parts = append(parts, fmt.Sprintf(`%s="%s"`, attr.Key, value))
	}
	return strings.Join(parts, " ")
}

// contentString converts a value to its text form. The second return is
// false for values with no sensible text representation.
func contentString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", t), true
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return "", false
	}
}

// coerceAttrs accepts the attribute forms AddChild allows: nil, Attrs,
// []Attr, or any string-keyed map. Map keys are sorted for determinism
// since Go maps carry no insertion order.
func coerceAttrs(attrs any) (Attrs, error) {
	switch t := attrs.(type) {
	case nil:
		return nil, nil
	case Attrs:
		return t.Clone(), nil
	case []Attr:
		return Attrs(t).Clone(), nil
	}

	rv := reflect.ValueOf(attrs)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidAttributeType, attrs)
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	out := make(Attrs, 0, len(keys))
	for _, k := range keys {
		out = append(out, Attr{Key: k, Value: rv.MapIndex(reflect.ValueOf(k)).Interface()})
	}
	return out, nil
}
