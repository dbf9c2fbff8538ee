package msgconv

import (
	"strconv"
	"strings"

	"github.com/N1CEJAN/RossyDiac/core/model"
)

// parseValue dispatches on the field's base type and array qualifier to
// parse the literal text following an identifier (spec.md §4.A).
func parseValue(text string, base model.MsgBase, arr *model.MsgArray) (model.MsgValue, error) {
	if arr != nil {
		text = strings.TrimSpace(text)
		if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
			return model.MsgValue{}, errf("array value %q must be enclosed in []", text)
		}
		inner := text[1 : len(text)-1]
		parts := splitTopLevelElements(inner)
		elems := make([]model.MsgValue, 0, len(parts))
		for _, part := range parts {
			v, err := parseScalar(strings.TrimSpace(part), base)
			if err != nil {
				return model.MsgValue{}, err
			}
			elems = append(elems, v)
		}
		return model.NewMsgArray(elems), nil
	}
	return parseScalar(text, base)
}

func parseScalar(text string, base model.MsgBase) (model.MsgValue, error) {
	switch base.Kind {
	case model.MsgBool:
		switch text {
		case "true":
			return model.NewMsgBool(model.BoolStringForm, true), nil
		case "false":
			return model.NewMsgBool(model.BoolStringForm, false), nil
		case "1":
			return model.NewMsgBool(model.BoolBinaryForm, true), nil
		case "0":
			return model.NewMsgBool(model.BoolBinaryForm, false), nil
		default:
			return model.MsgValue{}, errf("invalid bool literal %q", text)
		}
	case model.MsgChar:
		lit, err := parseIntLiteral(text)
		if err != nil {
			return model.MsgValue{}, err
		}
		return model.NewMsgChar(lit), nil
	case model.MsgByte, model.MsgInt8, model.MsgInt16, model.MsgInt32, model.MsgInt64,
		model.MsgUint8, model.MsgUint16, model.MsgUint32, model.MsgUint64:
		lit, err := parseIntLiteral(text)
		if err != nil {
			return model.MsgValue{}, err
		}
		return model.NewMsgInt(lit), nil
	case model.MsgFloat32, model.MsgFloat64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return model.MsgValue{}, errf("invalid float literal %q: %v", text, err)
		}
		return model.NewMsgFloat(model.FloatLiteral{Text: text, Value: f}), nil
	case model.MsgString:
		quote, content, err := parseQuotedString(text)
		if err != nil {
			return model.MsgValue{}, err
		}
		return model.NewMsgString(quote, content), nil
	case model.MsgWstring:
		quote, content, err := parseQuotedString(text)
		if err != nil {
			return model.MsgValue{}, err
		}
		if quote != '"' {
			return model.MsgValue{}, errf("wstring literal %q must be double-quoted", text)
		}
		return model.NewMsgWstring(content), nil
	case model.MsgCustom:
		return model.MsgValue{}, errf("custom-typed fields cannot carry a literal value")
	default:
		return model.MsgValue{}, errf("unsupported base type for value %q", text)
	}
}

// formatValue is the writer-side inverse of parseValue.
func formatValue(v model.MsgValue) string {
	switch v.Kind {
	case model.MVArray:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = formatValue(e)
		}
		return "[" + strings.Join(parts, ",") + "]"
	case model.MVBool:
		return formatBool(v.Bool)
	case model.MVInt, model.MVChar:
		return formatInt(v.Int)
	case model.MVFloat:
		return v.Float.Text
	case model.MVString:
		return string(v.Str.Quote) + escapeStringContent(v.Str.Text, v.Str.Quote) + string(v.Str.Quote)
	case model.MVWstring:
		return `"` + escapeStringContent(v.Str.Text, '"') + `"`
	default:
		return ""
	}
}

func formatBool(b model.BoolLiteral) string {
	if b.Form == model.BoolBinaryForm {
		if b.Value {
			return "1"
		}
		return "0"
	}
	if b.Value {
		return "true"
	}
	return "false"
}

func formatInt(i model.IntLiteral) string {
	switch i.Form {
	case model.IntHex:
		return "0x" + strings.ToUpper(strconv.FormatUint(i.Magnitude, 16))
	case model.IntOct:
		return "0o" + strconv.FormatUint(i.Magnitude, 8)
	case model.IntBin:
		return "0b" + strconv.FormatUint(i.Magnitude, 2)
	case model.IntSignedDec:
		sign := ""
		if i.Negative {
			sign = "-"
		}
		return sign + strconv.FormatUint(i.Magnitude, 10)
	default: // IntUnsignedDec
		return strconv.FormatUint(i.Magnitude, 10)
	}
}
