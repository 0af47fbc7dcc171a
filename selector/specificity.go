package selector

// Specificity is CSS specificity of a selector as defined in
// https://www.w3.org/TR/selectors/#specificity-rules with the convention
// Specificity = [A,B,C]: ids, classes/attributes/pseudo-classes,
// elements/pseudo-elements.
type Specificity [3]int

// Less returns true if s < other (strictly).
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}

func (s Specificity) Add(other Specificity) Specificity {
	for i, sp := range other {
		s[i] += sp
	}
	return s
}

func (k Kind) specificity() Specificity {
	switch k {
	case KindID:
		return Specificity{1, 0, 0}
	case KindClass, KindAttribute, KindPseudoClass:
		return Specificity{0, 1, 0}
	case KindElement, KindPseudoElement:
		return Specificity{0, 0, 1}
	}
	return Specificity{}
}
