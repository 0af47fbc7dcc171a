// Package rect provides rectangle record with computed area.
package rect

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// ShapeName is the name rectangle is known under when decoding by shape.
const ShapeName = "rectangle"

// Rectangle is a plain record. Area is computed from values Rectangle was
// created with, changing Width or Height of a copy does not affect it.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	area func() float64
}

// New creates rectangle.
func New(width, height float64) Rectangle {
	return Rectangle{
		Width:  width,
		Height: height,
		area:   func() float64 { return width * height },
	}
}

// Area returns width * height. For a Rectangle which was not created by New
// (zero value or decoded directly) exported fields are used.
func (r Rectangle) Area() float64 {
	if r.area == nil {
		return r.Width * r.Height
	}
	return r.area()
}

func (r Rectangle) String() string {
	return strconv.FormatFloat(r.Width, 'g', -1, 64) + "x" + strconv.FormatFloat(r.Height, 'g', -1, 64)
}

// Construct creates rectangle from positional arguments: width and height.
// It is used to reconstruct rectangles from serialized form.
func Construct(args ...any) (Rectangle, error) {
	if len(args) != 2 {
		return Rectangle{}, fmt.Errorf("rectangle requires 2 arguments (width, height), got %d", len(args))
	}
	var dims [2]float64
	for i, arg := range args {
		v, err := number(arg)
		if err != nil {
			return Rectangle{}, fmt.Errorf("rectangle argument %d: %w", i, err)
		}
		dims[i] = v
	}
	return New(dims[0], dims[1]), nil
}

func number(arg any) (float64, error) {
	switch v := arg.(type) {
	case float64:
		return v, nil
	case json.Number:
		return v.Float64()
	case nil:
		return 0, fmt.Errorf("number expected, got null")
	}
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, fmt.Errorf("number expected, got %T", arg)
}
