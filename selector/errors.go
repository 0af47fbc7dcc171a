package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateFragment is reported when element, id or pseudo-element is
	// appended to a compound selector which already has one.
	ErrDuplicateFragment = errors.New("element, id and pseudo-element should not occur more than one time inside the selector")

	// ErrOrderViolation is reported when a fragment is appended after a fragment
	// of a higher kind.
	ErrOrderViolation = errors.New("selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrInvalidCombinator is reported by Combine for tokens other than
	// descendant, child, next-sibling and subsequent-sibling combinators.
	ErrInvalidCombinator = errors.New("combinator should be one of \" \", \"+\", \"~\", \">\"")

	// ErrUnknownKind is reported by Append for values outside of Kind range.
	ErrUnknownKind = errors.New("unknown selector fragment kind")
)

// FragmentError describes the append call which broke builder rules.
type FragmentError struct {
	Kind  Kind
	Value string
	Err   error
}

func (e *FragmentError) Error() string {
	return fmt.Sprintf("unable to append %s %q: %v", e.Kind, e.Value, e.Err)
}

func (e *FragmentError) Unwrap() error {
	return e.Err
}
