// Package selector builds CSS selector strings.
//
// Compound selectors are built fragment by fragment in a fixed order: element,
// id, classes, attributes, pseudo-classes and pseudo-element. Element, id and
// pseudo-element may occur at most once. Compound selectors are joined into
// complex ones with Combine:
//
//	sel, err := selector.Combine(
//		selector.Element("div").ID("x"),
//		selector.NextSibling,
//		selector.Element("span"),
//	).Build()
//	// sel == "div#x + span"
//
// Package level functions start a fresh builder, methods of Builder extend it.
package selector

// Element starts new selector with element name.
func Element(tag string) *Builder { return New().Element(tag) }

// ID starts new selector with "#name".
func ID(name string) *Builder { return New().ID(name) }

// Class starts new selector with ".name".
func Class(name string) *Builder { return New().Class(name) }

// Attr starts new selector with "[spec]".
func Attr(spec string) *Builder { return New().Attr(spec) }

// PseudoClass starts new selector with ":name".
func PseudoClass(name string) *Builder { return New().PseudoClass(name) }

// PseudoElement starts new selector with "::name".
func PseudoElement(name string) *Builder { return New().PseudoElement(name) }
