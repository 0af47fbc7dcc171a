package css

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	// handles "0"
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Rule is a selector with its property declarations.
type Rule struct {
	Selector   string
	Properties map[string]Value
}

// GetProperty returns the value for a property, or empty Value if not found.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// Stylesheet is a list of rules in order of addition.
type Stylesheet struct {
	Rules []Rule
}

// AddRule appends rule to the stylesheet.
func (s *Stylesheet) AddRule(selector string, props map[string]Value) {
	s.Rules = append(s.Rules, Rule{Selector: selector, Properties: props})
}

// RulesBySelector returns all rules with the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, rule := range s.Rules {
		if rule.Selector == selector {
			matches = append(matches, rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}

		// blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeProperties(w, rule.Properties)
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

func writeProperties(w io.Writer, props map[string]Value) (int, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int
	for _, name := range names {
		n, err := fmt.Fprintf(w, "  %s: %s;\n", name, props[name].Raw)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
