package selector

import (
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// Builder accumulates a CSS selector fragment by fragment, enforcing fragment
// cardinality and order inside a compound selector.
//
// Rule violation is reported by the call which caused it: the error is kept in
// the builder and returned by Err and Build. A builder with an error ignores
// any further fragments and should be discarded.
// NOTE: not to be used concurrently!
type Builder struct {
	text strings.Builder

	elements       int
	ids            int
	pseudoElements int
	kinds          []Kind

	spec Specificity
	err  error
}

// New returns empty builder.
func New() *Builder {
	return &Builder{}
}

// Literal returns builder pre-seeded with text. Text is taken as is, it does
// not count towards any fragment rules.
func Literal(text string) *Builder {
	b := &Builder{}
	b.text.WriteString(text)
	return b
}

// Element appends element (tag) name.
func (b *Builder) Element(tag string) *Builder {
	return b.Append(KindElement, tag)
}

// ID appends "#name".
func (b *Builder) ID(name string) *Builder {
	return b.Append(KindID, name)
}

// Class appends ".name".
func (b *Builder) Class(name string) *Builder {
	return b.Append(KindClass, name)
}

// Attr appends "[spec]", spec is used verbatim and may include attribute
// selector operator and value.
func (b *Builder) Attr(spec string) *Builder {
	return b.Append(KindAttribute, spec)
}

// PseudoClass appends ":name".
func (b *Builder) PseudoClass(name string) *Builder {
	return b.Append(KindPseudoClass, name)
}

// PseudoElement appends "::name".
func (b *Builder) PseudoElement(name string) *Builder {
	return b.Append(KindPseudoElement, name)
}

// Append adds fragment of the specified kind.
func (b *Builder) Append(kind Kind, value string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.check(kind); err != nil {
		b.err = &FragmentError{Kind: kind, Value: value, Err: err}
		return b
	}

	b.text.WriteString(kind.render(value))
	switch kind {
	case KindElement:
		b.elements++
	case KindID:
		b.ids++
	case KindPseudoElement:
		b.pseudoElements++
	}
	b.kinds = append(b.kinds, kind)
	b.spec = b.spec.Add(kind.specificity())
	return b
}

func (b *Builder) check(kind Kind) error {
	if !kind.IsValid() {
		return ErrUnknownKind
	}
	if kind.Unique() && b.count(kind) > 0 {
		return ErrDuplicateFragment
	}
	if n := len(b.kinds); n > 0 && kind < b.kinds[n-1] {
		return ErrOrderViolation
	}
	return nil
}

func (b *Builder) count(kind Kind) int {
	switch kind {
	case KindElement:
		return b.elements
	case KindID:
		return b.ids
	case KindPseudoElement:
		return b.pseudoElements
	}
	return 0
}

// String returns selector text accumulated so far. It does not change the
// builder and may be called at any time.
func (b *Builder) String() string {
	return b.text.String()
}

// Err returns the first rule violation, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build returns selector text together with the first rule violation.
func (b *Builder) Build() (string, error) {
	return b.String(), b.err
}

// Kinds returns kinds of fragments appended to the current compound selector
// in order of appending.
func (b *Builder) Kinds() []Kind {
	return slices.Clone(b.kinds)
}

// Specificity returns specificity of the whole selector.
func (b *Builder) Specificity() Specificity {
	return b.spec
}

// Combine joins two selectors with combinator, which must be one of " ", "+",
// "~" or ">". Resulting builder continues the compound selector of second:
// fragments appended to it are checked against what second already has.
func Combine(first *Builder, combinator Combinator, second *Builder) *Builder {
	b := CombineUnchecked(first, string(combinator), second)
	if !combinator.IsValid() {
		b.err = multierr.Append(b.err, ErrInvalidCombinator)
	}
	return b
}

// CombineUnchecked is Combine which accepts any combinator token.
func CombineUnchecked(first *Builder, combinator string, second *Builder) *Builder {
	b := Literal(first.String() + " " + combinator + " " + second.String())
	b.elements = second.elements
	b.ids = second.ids
	b.pseudoElements = second.pseudoElements
	b.kinds = slices.Clone(second.kinds)
	b.spec = first.spec.Add(second.spec)
	b.err = multierr.Combine(first.err, second.err)
	return b
}
