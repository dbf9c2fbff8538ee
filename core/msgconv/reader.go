// Package msgconv implements MsgReader and MsgWriter: the lexer/parser
// and writer for the line-oriented MSG interface-definition language
// (spec.md §4.A, §4.W).
package msgconv

import (
	"strings"

	"github.com/N1CEJAN/RossyDiac/core/model"
)

// Parse reads MSG text into a model.MsgType. name becomes MsgType.Name
// (the caller's logical file stem, per spec.md §4.A).
func Parse(data []byte, name string) (*model.MsgType, error) {
	lines := splitLines(data)
	msgType := &model.MsgType{Name: name}
	seen := make(map[string]struct{})

	for lineNo, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		field, err := parseFieldLine(raw, lineNo+1)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[field.Name]; dup {
			return nil, newParseError(lineNo+1, 1, "duplicate field name %q", field.Name)
		}
		seen[field.Name] = struct{}{}
		msgType.Fields = append(msgType.Fields, field)
	}
	return msgType, nil
}

func parseFieldLine(line string, lineNo int) (model.MsgField, error) {
	c := newCursor(line)
	baseToken := c.readToken()
	if baseToken == "" {
		return model.MsgField{}, newParseError(lineNo, c.column(), "expected a base type")
	}
	base, arr, err := parseBaseAndArray(baseToken)
	if err != nil {
		return model.MsgField{}, newParseError(lineNo, 1, "%v", err)
	}

	c.skipSpaces()
	if c.eof() {
		return model.MsgField{}, newParseError(lineNo, c.column(), "expected a field name")
	}
	name := c.readIdent()
	if !validMsgIdentifier(name) {
		return model.MsgField{}, newParseError(lineNo, c.column(), "invalid field name %q", name)
	}

	kind := model.FieldVariable
	var initial *model.MsgValue
	var comment *string

	if !c.eof() && c.peek() == '=' {
		kind = model.FieldConstant
		c.advance()
		valueText, cm := splitValueAndComment(c.remaining())
		comment = cm
		valueText = strings.TrimSpace(valueText)
		if valueText == "" {
			return model.MsgField{}, newParseError(lineNo, c.column(), "constant %q requires a value", name)
		}
		v, err := parseValue(valueText, base, arr)
		if err != nil {
			return model.MsgField{}, newParseError(lineNo, c.column(), "%v", err)
		}
		initial = &v
	} else {
		valueText, cm := splitValueAndComment(c.remaining())
		comment = cm
		valueText = strings.TrimSpace(valueText)
		if valueText != "" {
			v, err := parseValue(valueText, base, arr)
			if err != nil {
				return model.MsgField{}, newParseError(lineNo, c.column(), "%v", err)
			}
			initial = &v
		}
	}

	if kind == model.FieldConstant && initial == nil {
		return model.MsgField{}, newParseError(lineNo, 1, "constant %q has no value", name)
	}

	return model.MsgField{
		Name:    name,
		Base:    base,
		Array:   arr,
		Kind:    kind,
		Initial: initial,
		Comment: comment,
	}, nil
}
