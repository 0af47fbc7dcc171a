package rect

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		width, height float64
	}{
		{10, 20},
		{0, 5},
		{-3, 4},
		{1.5, 2.25},
		{math.MaxFloat32, 2},
	}
	for _, tt := range tests {
		r := New(tt.width, tt.height)
		if r.Width != tt.width || r.Height != tt.height {
			t.Errorf("New(%v, %v) = %v", tt.width, tt.height, r)
		}
		if got, want := r.Area(), tt.width*tt.height; got != want {
			t.Errorf("New(%v, %v).Area() = %v, want %v", tt.width, tt.height, got, want)
		}
	}
}

func TestArea_CapturesConstructorArguments(t *testing.T) {
	r := New(10, 20)
	r.Width = 100
	r.Height = 100
	if got := r.Area(); got != 200 {
		t.Errorf("Area() = %v, want 200", got)
	}
}

func TestArea_ZeroValue(t *testing.T) {
	r := Rectangle{Width: 3, Height: 4}
	if got := r.Area(); got != 12 {
		t.Errorf("Area() = %v, want 12", got)
	}
	if got := (Rectangle{}).Area(); got != 0 {
		t.Errorf("Area() = %v, want 0", got)
	}
}

func TestString(t *testing.T) {
	if got := New(10, 2.5).String(); got != "10x2.5" {
		t.Errorf("String() = %q, want %q", got, "10x2.5")
	}
}

func TestConstruct(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		want    float64
		wantErr string
	}{
		{"floats", []any{2.0, 3.0}, 6, ""},
		{"json numbers", []any{json.Number("4"), json.Number("2.5")}, 10, ""},
		{"ints", []any{int(3), int64(7)}, 21, ""},
		{"mixed", []any{uint8(2), float32(0.5)}, 1, ""},
		{"too few", []any{1.0}, 0, "requires 2 arguments"},
		{"too many", []any{1.0, 2.0, 3.0}, 0, "requires 2 arguments"},
		{"string", []any{"1", 2.0}, 0, "argument 0"},
		{"null", []any{1.0, nil}, 0, "argument 1"},
		{"bad number", []any{json.Number("x"), 2.0}, 0, "argument 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Construct(tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Construct() error = %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Construct() error = %v", err)
			}
			if r.Area() != tt.want {
				t.Errorf("Construct().Area() = %v, want %v", r.Area(), tt.want)
			}
		})
	}
}

func TestJSONFieldOrder(t *testing.T) {
	data, err := json.Marshal(New(10, 20))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got := string(data); got != `{"width":10,"height":20}` {
		t.Errorf("Marshal() = %s", got)
	}
}
