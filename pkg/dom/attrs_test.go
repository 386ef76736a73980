package dom

import (
	"reflect"
	"testing"
)

func TestNormalizeAttrs(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		in   Attrs
		want Attrs
	}{
		{
			name: "klass rename",
			tag:  "div",
			in:   A("klass", "btn"),
			want: Attrs{{Key: "class", Value: "btn"}},
		},
		{
			name: "trailing underscore stripped",
			tag:  "label",
			in:   A("for_", "email"),
			want: Attrs{{Key: "for", Value: "email"}},
		},
		{
			name: "inner underscores become hyphens",
			tag:  "div",
			in:   A("data_user_id", "7"),
			want: Attrs{{Key: "data-user-id", Value: "7"}},
		},
		{
			name: "true becomes bare",
			tag:  "input",
			in:   A("disabled", true),
			want: Attrs{{Key: "disabled", Value: nil}},
		},
		{
			name: "meta bare content keeps empty value",
			tag:  "meta",
			in:   A("name", "robots", "content", true),
			want: Attrs{{Key: "name", Value: "robots"}, {Key: "content", Value: ""}},
		},
		{
			name: "non-meta bare content stays bare",
			tag:  "div",
			in:   A("content", true),
			want: Attrs{{Key: "content", Value: nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeAttrs(tt.tag, tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeAttrs() = %#v, want %#v", got, tt.want)
			}
			// A second pass must be a no-op.
			again := NormalizeAttrs(tt.tag, got)
			if !reflect.DeepEqual(again, tt.want) {
				t.Errorf("second NormalizeAttrs() = %#v, want %#v", again, tt.want)
			}
		})
	}
}

func TestNormalizeAttrsPreservesOrder(t *testing.T) {
	in := A("id", "x", "klass", "btn", "data_role", "main", "hidden", true)
	got := NormalizeAttrs("div", in)

	keys := make([]string, len(got))
	for i, attr := range got {
		keys[i] = attr.Key
	}
	want := []string{"id", "class", "data-role", "hidden"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("key order = %v, want %v", keys, want)
	}
}

func TestAttrsSetReplacesInPlace(t *testing.T) {
	a := A("id", "x", "class", "old", "role", "nav")
	a.Set("class", "new")

	if len(a) != 3 {
		t.Fatalf("len = %d, want 3", len(a))
	}
	if a[1].Key != "class" || a[1].Value != "new" {
		t.Errorf("a[1] = %+v, want class=new in place", a[1])
	}
}

func TestAttrsCloneIndependence(t *testing.T) {
	a := A("id", "x")
	b := a.Clone()
	b.Set("id", "y")

	if v, _ := a.Get("id"); v != "x" {
		t.Errorf("original mutated through clone: id = %v", v)
	}
}

func TestAttrString(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		in   Attrs
		want string
	}{
		{"empty", "div", nil, ""},
		{"single pair", "div", A("id", "main"), `id="main"`},
		{"bare and valued", "script", A("src", "a.js", "defer", true), `src="a.js" defer`},
		{"numeric value", "td", A("colspan", 2), `colspan="2"`},
		{"false stays literal", "div", A("data_open", false), `data-open="false"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := attrString(tt.tag, tt.in); got != tt.want {
				t.Errorf("attrString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCoerceAttrs(t *testing.T) {
	// Typed maps with string keys are accepted regardless of value type.
	got, err := coerceAttrs(map[string]string{"b": "2", "a": "1"})
	if err != nil {
		t.Fatal(err)
	}
	want := Attrs{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("coerceAttrs(map) = %#v, want %#v", got, want)
	}

	if _, err := coerceAttrs("class=btn"); err == nil {
		t.Error("string input should be rejected")
	}
}
