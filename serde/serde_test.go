package serde

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"kata/rect"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"rectangle", rect.New(10, 20), `{"width":10,"height":20}`},
		{"map keys sorted by encoder", map[string]int{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"slice", []string{"x", "y"}, `["x","y"]`},
		{"escaping", struct {
			S string `json:"s"`
		}{`a"b\`}, `{"s":"a\"b\\"}`},
		{"nil", nil, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.in)
			if err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Serialize() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSerializeIndent(t *testing.T) {
	got, err := SerializeIndent(rect.New(1, 2), "", "  ")
	if err != nil {
		t.Fatalf("SerializeIndent() error = %v", err)
	}
	want := "{\n  \"width\": 1,\n  \"height\": 2\n}"
	if got != want {
		t.Errorf("SerializeIndent() = %q, want %q", got, want)
	}
}

type node struct {
	Name string `json:"name"`
	Next *node  `json:"next"`
}

func TestSerialize_Cycle(t *testing.T) {
	n := &node{Name: "loop"}
	n.Next = n

	_, err := Serialize(n)
	if err == nil {
		t.Fatal("expected error for cyclic structure")
	}
	var uve *json.UnsupportedValueError
	if !errors.As(err, &uve) {
		t.Errorf("Serialize() error = %T (%v), want *json.UnsupportedValueError", err, err)
	}
}

func TestSerialize_Unsupported(t *testing.T) {
	for name, v := range map[string]any{
		"channel":  make(chan int),
		"function": func() {},
		"nan":      math.NaN(),
	} {
		if _, err := Serialize(v); err == nil {
			t.Errorf("Serialize(%s) expected error", name)
		}
	}
}

func TestParse_KeepsOrder(t *testing.T) {
	fields, err := Parse(`{"zeta": 1, "alpha": "two", "mid": [1, {"b": 1, "a": 2}], "obj": {"y": true, "x": null}}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var keys []string
	for k := range fields.Keys() {
		keys = append(keys, k)
	}
	if got := strings.Join(keys, ","); got != "zeta,alpha,mid,obj" {
		t.Errorf("keys = %s, want zeta,alpha,mid,obj", got)
	}

	if v, _ := fields.Get("zeta"); v != json.Number("1") {
		t.Errorf("zeta = %#v, want json.Number(1)", v)
	}
	if v, _ := fields.Get("alpha"); v != "two" {
		t.Errorf("alpha = %#v, want two", v)
	}

	v, _ := fields.Get("mid")
	arr, ok := v.([]any)
	if !ok || len(arr) != 2 {
		t.Fatalf("mid = %#v, want 2 element array", v)
	}
	inner, ok := arr[1].(*Fields)
	if !ok {
		t.Fatalf("mid[1] = %T, want *Fields", arr[1])
	}
	if got := inner.Front().Key; got != "b" {
		t.Errorf("mid[1] first key = %s, want b", got)
	}

	v, _ = fields.Get("obj")
	obj := v.(*Fields)
	if y, _ := obj.Get("y"); y != true {
		t.Errorf("obj.y = %#v, want true", y)
	}
	if x, ok := obj.Get("x"); !ok || x != nil {
		t.Errorf("obj.x = %#v (%v), want nil", x, ok)
	}
}

func TestParse_Strings(t *testing.T) {
	fields, err := Parse(`{"s": "a\"b\\cA\n", "empty": ""}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v, _ := fields.Get("s"); v != "a\"b\\cA\n" {
		t.Errorf("s = %q", v)
	}
	if v, _ := fields.Get("empty"); v != "" {
		t.Errorf("empty = %q", v)
	}
}

func TestParse_DuplicateKey(t *testing.T) {
	fields, err := Parse(`{"a": 1, "b": 2, "a": 3}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if fields.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", fields.Len())
	}
	if got := fields.Front().Key; got != "a" {
		t.Errorf("first key = %s, want a", got)
	}
	if v, _ := fields.Get("a"); v != json.Number("3") {
		t.Errorf("a = %#v, want 3", v)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"garbage", "not json"},
		{"unterminated", `{"a": 1`},
		{"trailing comma", `{"a": 1,}`},
		{"array trailing comma", `{"a": [1,]}`},
		{"trailing data", `{"a": 1} x`},
		{"missing value", `{"a": }`},
		{"array top level", `[1, 2]`},
		{"number top level", `42`},
		{"string top level", `"x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse() error = %v, want ErrParse", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse() error = %T, want *ParseError", err)
			}
			if pe.Line < 1 {
				t.Errorf("ParseError.Line = %d, want >= 1", pe.Line)
			}
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := Parse("{\n  \"a\": 1,\n}")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if pe.Line != 3 {
		t.Errorf("ParseError.Line = %d, want 3", pe.Line)
	}
}

type pair struct {
	First  string
	Second float64
}

func newPair(args ...any) (pair, error) {
	if len(args) != 2 {
		return pair{}, errors.New("pair needs 2 arguments")
	}
	first, ok := args[0].(string)
	if !ok {
		return pair{}, errors.New("first must be string")
	}
	second, err := args[1].(json.Number).Float64()
	if err != nil {
		return pair{}, err
	}
	return pair{First: first, Second: second}, nil
}

func TestDeserialize_RoundTrip(t *testing.T) {
	orig := rect.New(10, 20)
	text, err := Serialize(orig)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	got, err := Deserialize[rect.Rectangle](ConstructorFunc[rect.Rectangle](rect.Construct), text)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if got.Width != orig.Width || got.Height != orig.Height {
		t.Errorf("Deserialize() = %v, want %v", got, orig)
	}
	if got.Area() != 200 {
		t.Errorf("Area() = %v, want 200", got.Area())
	}
}

func TestDeserialize_Positional(t *testing.T) {
	// values are taken by position, names do not matter
	got, err := Deserialize[rect.Rectangle](ConstructorFunc[rect.Rectangle](rect.Construct), `{"height": 3, "width": 5}`)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if got.Width != 3 || got.Height != 5 {
		t.Errorf("Deserialize() = %v, want 3x5", got)
	}

	p, err := Deserialize[pair](ConstructorFunc[pair](newPair), `{"x": "label", "y": 2.5}`)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if p.First != "label" || p.Second != 2.5 {
		t.Errorf("Deserialize() = %+v", p)
	}
}

func TestDeserialize_Errors(t *testing.T) {
	shape := ConstructorFunc[rect.Rectangle](rect.Construct)

	if _, err := Deserialize[rect.Rectangle](shape, `{"width": 1`); !errors.Is(err, ErrParse) {
		t.Errorf("Deserialize() error = %v, want ErrParse", err)
	}

	ctorErr := errors.New("rejected")
	reject := ConstructorFunc[int](func(...any) (int, error) { return 0, ctorErr })
	if _, err := Deserialize[int](reject, `{}`); err != ctorErr {
		t.Errorf("Deserialize() error = %v, want constructor error as is", err)
	}

	if _, err := Deserialize[rect.Rectangle](shape, `{"width": "wide", "height": 1}`); err == nil || errors.Is(err, ErrParse) {
		t.Errorf("Deserialize() error = %v, want construction error", err)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("rectangle", Erase[rect.Rectangle](ConstructorFunc[rect.Rectangle](rect.Construct))); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register("pair", Erase[pair](ConstructorFunc[pair](newPair))); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register("pair", Erase[pair](ConstructorFunc[pair](newPair))); !errors.Is(err, ErrShapeRegistered) {
		t.Errorf("Register() duplicate error = %v, want ErrShapeRegistered", err)
	}

	if got := strings.Join(r.Names(), ","); got != "pair,rectangle" {
		t.Errorf("Names() = %s", got)
	}

	v, err := r.Deserialize("rectangle", `{"width": 2, "height": 4}`)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	rc, ok := v.(rect.Rectangle)
	if !ok || rc.Area() != 8 {
		t.Errorf("Deserialize() = %#v, want 2x4 rectangle", v)
	}

	if _, err := r.Deserialize("circle", `{}`); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("Deserialize() error = %v, want ErrUnknownShape", err)
	}
}
