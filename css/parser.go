// Package css keeps CSS rules for built selectors and writes them out.
// Selectors are never parsed here, only property declarations are.
package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Parser parses CSS property declarations.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new declaration parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseDeclarations parses declaration list as found in a rule block or
// style attribute: "color: red; margin: 0 1em". Malformed declarations are
// skipped and reported in the returned error together with everything that
// could be parsed.
func (p *Parser) ParseDeclarations(text string) (map[string]Value, error) {
	props := make(map[string]Value)
	parser := css.NewParser(parse.NewInputString(text), true)

	var errs error
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.HasParseError() {
				p.log.Debug("CSS declaration error", zap.Error(parser.Err()))
				errs = multierr.Append(errs, parser.Err())
				continue
			}
			return props, errs

		case css.DeclarationGrammar:
			propName := string(data)
			values := parser.Values()
			if len(values) == 0 {
				errs = multierr.Append(errs, fmt.Errorf("empty value for property %s", propName))
				continue
			}
			props[propName] = p.parsePropertyValue(values)

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) - skip
			p.log.Debug("Skipping custom property", zap.ByteString("name", data))
			continue

		case css.BeginAtRuleGrammar, css.AtRuleGrammar:
			errs = multierr.Append(errs, fmt.Errorf("at-rule %s is not allowed in declarations", data))
			p.log.Debug("Skipping @-rule", zap.ByteString("rule", data))
		}
	}
}

// ParseValue parses single property value.
func (p *Parser) ParseValue(raw string) (Value, error) {
	if strings.TrimSpace(raw) == "" {
		return Value{}, errors.New("empty property value")
	}
	if strings.ContainsAny(raw, "{};") {
		return Value{}, fmt.Errorf("property value %q must not contain blocks or declaration separators", raw)
	}
	props, err := p.ParseDeclarations("x:" + raw)
	if err != nil {
		return Value{}, err
	}
	v, ok := props["x"]
	if !ok {
		return Value{}, fmt.Errorf("unable to parse property value %q", raw)
	}
	return v, nil
}

// parsePropertyValue converts CSS tokens to a Value.
func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	if len(tokens) == 0 {
		return Value{}
	}

	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			rawParts = append(rawParts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(rawParts, ""))

	val := Value{Raw: raw}

	// single token
	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			// color
			val.Keyword = string(t.Data)
		}
		return val
	}

	// functions (rgb(), url(), etc.) and multi-value properties keep raw text
	val.Keyword = raw
	return val
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
