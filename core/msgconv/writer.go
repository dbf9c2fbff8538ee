package msgconv

import (
	"strings"

	"github.com/N1CEJAN/RossyDiac/core/model"
)

// Write re-emits a model.MsgType as MSG text, one field per line
// terminated by "\r\n" (spec.md §4.W).
func Write(t *model.MsgType) []byte {
	var sb strings.Builder
	for _, f := range t.Fields {
		sb.WriteString(formatField(f))
		sb.WriteString("\r\n")
	}
	return []byte(sb.String())
}

func formatField(f model.MsgField) string {
	var sb strings.Builder
	sb.WriteString(formatBaseAndArray(f.Base, f.Array))
	sb.WriteByte(' ')
	sb.WriteString(f.Name)
	if f.Kind == model.FieldConstant {
		sb.WriteByte('=')
		sb.WriteString(formatValue(*f.Initial))
	} else if f.Initial != nil {
		sb.WriteByte(' ')
		sb.WriteString(formatValue(*f.Initial))
	}
	if f.Comment != nil {
		sb.WriteString(" # ")
		sb.WriteString(*f.Comment)
	}
	return sb.String()
}
