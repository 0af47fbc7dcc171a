package serde

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	parse "github.com/tdewolff/parse/v2"
	pjson "github.com/tdewolff/parse/v2/json"
)

// ErrParse is matched (errors.Is) by every ParseError.
var ErrParse = errors.New("malformed serialized data")

// ParseError points to the place in the text where parsing failed.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s on line %d and column %d", e.Message, e.Line, e.Column)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func newParseError(text string, offset int, format string, args ...any) *ParseError {
	pe := parse.NewError(strings.NewReader(text), offset, format, args...)
	return &ParseError{Line: pe.Line, Column: pe.Column, Message: pe.Message}
}

// Fields is a JSON object with keys kept in the order of appearance.
type Fields = orderedmap.OrderedMap[string, any]

// Parse parses JSON object keeping order of its keys. Nested objects are
// returned as *Fields, arrays as []any, numbers as json.Number. When a key
// repeats it keeps position of its first appearance and the last value.
func Parse(text string) (*Fields, error) {
	// tokenizer below is lenient (trailing commas), so check syntax first
	var raw json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return nil, newParseError(text, int(se.Offset), "%s", se.Error())
		}
		return nil, newParseError(text, 0, "%s", err.Error())
	}

	p := pjson.NewParser(parse.NewInputString(text))
	gt, _ := p.Next()
	if gt != pjson.StartObjectGrammar {
		start := len(text) - len(strings.TrimLeft(text, " \t\r\n"))
		return nil, newParseError(text, start, "object expected at top level, got %s", gt)
	}
	fields, err := parseObject(p, text)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

func parseObject(p *pjson.Parser, text string) (*Fields, error) {
	fields := orderedmap.NewOrderedMap[string, any]()
	for {
		gt, data := p.Next()
		switch gt {
		case pjson.EndObjectGrammar:
			return fields, nil
		case pjson.StringGrammar:
		default:
			return nil, grammarError(p, text, gt)
		}
		key, err := decodeString(data)
		if err != nil {
			return nil, newParseError(text, 0, "bad object key %s: %v", data, err)
		}
		gt, data = p.Next()
		val, err := parseValue(p, text, gt, data)
		if err != nil {
			return nil, err
		}
		fields.Set(key, val)
	}
}

func parseArray(p *pjson.Parser, text string) ([]any, error) {
	items := make([]any, 0)
	for {
		gt, data := p.Next()
		if gt == pjson.EndArrayGrammar {
			return items, nil
		}
		val, err := parseValue(p, text, gt, data)
		if err != nil {
			return nil, err
		}
		items = append(items, val)
	}
}

func parseValue(p *pjson.Parser, text string, gt pjson.GrammarType, data []byte) (any, error) {
	switch gt {
	case pjson.StartObjectGrammar:
		return parseObject(p, text)
	case pjson.StartArrayGrammar:
		return parseArray(p, text)
	case pjson.StringGrammar:
		s, err := decodeString(data)
		if err != nil {
			return nil, newParseError(text, 0, "bad string %s: %v", data, err)
		}
		return s, nil
	case pjson.NumberGrammar:
		return json.Number(string(data)), nil
	case pjson.LiteralGrammar:
		switch string(data) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, nil
		}
	}
	return nil, grammarError(p, text, gt)
}

func grammarError(p *pjson.Parser, text string, gt pjson.GrammarType) error {
	var pe *parse.Error
	if errors.As(p.Err(), &pe) {
		return &ParseError{Line: pe.Line, Column: pe.Column, Message: pe.Message}
	}
	if errors.Is(p.Err(), io.EOF) {
		return newParseError(text, len(text), "unexpected end of input")
	}
	return newParseError(text, 0, "unexpected %s", gt)
}

func decodeString(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}
