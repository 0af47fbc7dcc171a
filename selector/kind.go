package selector

import (
	"fmt"
	"strings"
)

// Kind identifies a selector fragment. Values are ordered: fragments of one
// compound selector must be appended in non-decreasing Kind order.
type Kind int

const (
	KindElement       Kind = iota + 1 // tag
	KindID                            // #name
	KindClass                         // .name
	KindAttribute                     // [spec]
	KindPseudoClass                   // :name
	KindPseudoElement                 // ::name
)

var kindNames = map[Kind]string{
	KindElement:       "element",
	KindID:            "id",
	KindClass:         "class",
	KindAttribute:     "attribute",
	KindPseudoClass:   "pseudo-class",
	KindPseudoElement: "pseudo-element",
}

// KindNames returns names of all fragment kinds in their required order.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for k := KindElement; k <= KindPseudoElement; k++ {
		names = append(names, kindNames[k])
	}
	return names
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsValid reports whether k is one of the known fragment kinds.
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

// Unique reports whether at most one fragment of this kind is allowed in a
// compound selector.
func (k Kind) Unique() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// render returns fragment text for value.
func (k Kind) render(value string) string {
	switch k {
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// ParseKind converts name to Kind. Besides canonical names it accepts "attr",
// "pseudoClass" and "pseudoElement" spellings.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "element":
		return KindElement, nil
	case "id":
		return KindID, nil
	case "class":
		return KindClass, nil
	case "attribute", "attr":
		return KindAttribute, nil
	case "pseudo-class", "pseudoclass":
		return KindPseudoClass, nil
	case "pseudo-element", "pseudoelement":
		return KindPseudoElement, nil
	}
	return 0, fmt.Errorf("%s is not a valid selector fragment kind, try [%s]", name, strings.Join(KindNames(), ", "))
}
