package msgconv

import (
	"strconv"
	"strings"

	"github.com/N1CEJAN/RossyDiac/core/model"
)

var msgKeywords = map[string]model.MsgBaseKind{
	"bool":    model.MsgBool,
	"byte":    model.MsgByte,
	"int8":    model.MsgInt8,
	"int16":   model.MsgInt16,
	"int32":   model.MsgInt32,
	"int64":   model.MsgInt64,
	"uint8":   model.MsgUint8,
	"uint16":  model.MsgUint16,
	"uint32":  model.MsgUint32,
	"uint64":  model.MsgUint64,
	"float32": model.MsgFloat32,
	"float64": model.MsgFloat64,
	"char":    model.MsgChar,
}

// parseBaseAndArray splits a contiguous "base_type array?" token (spec.md
// §4.A grammar) into its two parts. The array qualifier, when present, is
// always the token's suffix since neither keywords nor custom references
// contain '['.
func parseBaseAndArray(token string) (model.MsgBase, *model.MsgArray, error) {
	baseText := token
	var arrayText string
	if idx := strings.IndexByte(token, '['); idx >= 0 {
		baseText = token[:idx]
		arrayText = token[idx:]
	}
	base, err := parseBase(baseText)
	if err != nil {
		return model.MsgBase{}, nil, err
	}
	if arrayText == "" {
		return base, nil, nil
	}
	arr, err := parseArray(arrayText)
	if err != nil {
		return model.MsgBase{}, nil, err
	}
	return base, arr, nil
}

func parseBase(baseText string) (model.MsgBase, error) {
	if kind, ok := msgKeywords[baseText]; ok {
		return model.MsgBase{Kind: kind}, nil
	}
	if baseText == "string" {
		return model.MsgBase{Kind: model.MsgString}, nil
	}
	if baseText == "wstring" {
		return model.MsgBase{Kind: model.MsgWstring}, nil
	}
	if rest, ok := strings.CutPrefix(baseText, "string<="); ok {
		n, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return model.MsgBase{}, errf("invalid string bound %q: %v", baseText, err)
		}
		return model.MsgBase{Kind: model.MsgString, Bound: &n}, nil
	}
	if rest, ok := strings.CutPrefix(baseText, "wstring<="); ok {
		n, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return model.MsgBase{}, errf("invalid wstring bound %q: %v", baseText, err)
		}
		return model.MsgBase{Kind: model.MsgWstring, Bound: &n}, nil
	}
	// Custom reference: ident ('/' ident)?
	parts := strings.Split(baseText, "/")
	switch len(parts) {
	case 1:
		if !validMsgIdentifier(parts[0]) {
			return model.MsgBase{}, errf("unknown base type %q", baseText)
		}
		return model.MsgBase{Kind: model.MsgCustom, Ref: &model.Reference{
			Kind: model.ReferenceRelative,
			File: parts[0],
		}}, nil
	case 2:
		if !validMsgIdentifier(parts[0]) || !validMsgIdentifier(parts[1]) {
			return model.MsgBase{}, errf("unknown base type %q", baseText)
		}
		return model.MsgBase{Kind: model.MsgCustom, Ref: &model.Reference{
			Kind:    model.ReferenceAbsolute,
			Package: parts[0],
			File:    parts[1],
		}}, nil
	default:
		return model.MsgBase{}, errf("unsupported nested package path %q", baseText)
	}
}

func parseArray(arrayText string) (*model.MsgArray, error) {
	switch {
	case arrayText == "[]":
		return &model.MsgArray{Kind: model.MsgArrayDynamic}, nil
	case strings.HasPrefix(arrayText, "[<=") && strings.HasSuffix(arrayText, "]"):
		digits := arrayText[3 : len(arrayText)-1]
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil || n == 0 {
			return nil, errf("invalid bounded dynamic array qualifier %q", arrayText)
		}
		return &model.MsgArray{Kind: model.MsgArrayBoundedDynamic, N: n}, nil
	case strings.HasPrefix(arrayText, "[") && strings.HasSuffix(arrayText, "]"):
		digits := arrayText[1 : len(arrayText)-1]
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil || n == 0 {
			return nil, errf("invalid fixed array qualifier %q", arrayText)
		}
		return &model.MsgArray{Kind: model.MsgArrayFixed, N: n}, nil
	default:
		return nil, errf("malformed array qualifier %q", arrayText)
	}
}

// formatBaseAndArray is the writer-side inverse of parseBaseAndArray.
func formatBaseAndArray(base model.MsgBase, arr *model.MsgArray) string {
	var sb strings.Builder
	sb.WriteString(formatBase(base))
	if arr != nil {
		sb.WriteString(formatArray(*arr))
	}
	return sb.String()
}

func formatBase(base model.MsgBase) string {
	switch base.Kind {
	case model.MsgBool:
		return "bool"
	case model.MsgByte:
		return "byte"
	case model.MsgInt8:
		return "int8"
	case model.MsgInt16:
		return "int16"
	case model.MsgInt32:
		return "int32"
	case model.MsgInt64:
		return "int64"
	case model.MsgUint8:
		return "uint8"
	case model.MsgUint16:
		return "uint16"
	case model.MsgUint32:
		return "uint32"
	case model.MsgUint64:
		return "uint64"
	case model.MsgFloat32:
		return "float32"
	case model.MsgFloat64:
		return "float64"
	case model.MsgChar:
		return "char"
	case model.MsgString:
		if base.Bound != nil {
			return "string<=" + strconv.FormatUint(*base.Bound, 10)
		}
		return "string"
	case model.MsgWstring:
		if base.Bound != nil {
			return "wstring<=" + strconv.FormatUint(*base.Bound, 10)
		}
		return "wstring"
	case model.MsgCustom:
		if base.Ref.Kind == model.ReferenceAbsolute {
			return base.Ref.Package + "/" + base.Ref.File
		}
		return base.Ref.File
	default:
		return "?"
	}
}

func formatArray(arr model.MsgArray) string {
	switch arr.Kind {
	case model.MsgArrayDynamic:
		return "[]"
	case model.MsgArrayBoundedDynamic:
		return "[<=" + strconv.FormatUint(arr.N, 10) + "]"
	default: // MsgArrayFixed
		return "[" + strconv.FormatUint(arr.N, 10) + "]"
	}
}
