package selector

import (
	"fmt"
	"strings"
)

// Combinator joins two compound selectors into a complex one.
type Combinator string

const (
	Descendant        Combinator = " "
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
	Child             Combinator = ">"
)

// IsValid reports whether c is one of the four CSS combinators.
func (c Combinator) IsValid() bool {
	switch c {
	case Descendant, NextSibling, SubsequentSibling, Child:
		return true
	}
	return false
}

// Name returns human readable combinator name.
func (c Combinator) Name() string {
	switch c {
	case Descendant:
		return "descendant"
	case NextSibling:
		return "next-sibling"
	case SubsequentSibling:
		return "subsequent-sibling"
	case Child:
		return "child"
	}
	return string(c)
}

// CombinatorNames lists accepted combinator spellings for ParseCombinator.
func CombinatorNames() []string {
	return []string{"descendant", "+", "~", ">"}
}

// ParseCombinator accepts either the combinator token itself or its name.
// A token consisting only of white space is the descendant combinator.
func ParseCombinator(s string) (Combinator, error) {
	if len(s) > 0 && strings.TrimSpace(s) == "" {
		return Descendant, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "descendant":
		return Descendant, nil
	case "+", "next-sibling", "adjacent-sibling":
		return NextSibling, nil
	case "~", "subsequent-sibling", "general-sibling":
		return SubsequentSibling, nil
	case ">", "child":
		return Child, nil
	}
	return "", fmt.Errorf("%q is not a valid combinator, try [%s]", s, strings.Join(CombinatorNames(), ", "))
}
