package state

import (
	"time"

	"kata/rect"
	"kata/serde"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	shapes := serde.NewRegistry()
	// cannot fail on empty registry
	_ = shapes.Register(rect.ShapeName, serde.Erase[rect.Rectangle](serde.ConstructorFunc[rect.Rectangle](rect.Construct)))

	return &LocalEnv{
		start:  time.Now(),
		Shapes: shapes,
	}
}
