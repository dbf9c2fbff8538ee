package dtpconv

import (
	"strings"

	"github.com/N1CEJAN/RossyDiac/core/model"
)

// Write implements DtpWriter (spec.md §4.W): render a DtpType tree back
// into an indented DTP XML document.
func Write(t *model.DtpType) []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\r\n")

	sb.WriteString(`<DataType Name="` + escapeAttr(t.Name) + `"`)
	if t.Comment != nil {
		sb.WriteString(` Comment="` + escapeAttr(*t.Comment) + `"`)
	}
	sb.WriteString(">\r\n")

	sb.WriteString(`    <StructuredType`)
	if t.Structured.Comment != nil {
		sb.WriteString(` Comment="` + escapeAttr(*t.Structured.Comment) + `"`)
	}
	if len(t.Structured.Vars) == 0 {
		sb.WriteString("/>\r\n")
	} else {
		sb.WriteString(">\r\n")
		for _, v := range t.Structured.Vars {
			writeVarDeclaration(&sb, v)
		}
		sb.WriteString("    </StructuredType>\r\n")
	}

	sb.WriteString("</DataType>\r\n")
	return []byte(sb.String())
}

func writeVarDeclaration(sb *strings.Builder, v model.DtpVar) {
	sb.WriteString(`        <VarDeclaration Name="` + escapeAttr(v.Name) + `" Type="` + escapeAttr(formatDtpBase(v.Base)) + `"`)
	if v.Array != nil {
		sb.WriteString(` ArraySize="` + escapeAttr(formatDtpArray(*v.Array)) + `"`)
	}
	if v.Initial != nil {
		sb.WriteString(` InitialValue="` + escapeAttr(formatDtpValue(*v.Initial)) + `"`)
	}
	if v.Comment != nil {
		sb.WriteString(` Comment="` + escapeAttr(*v.Comment) + `"`)
	}
	if len(v.Attributes) == 0 {
		sb.WriteString("/>\r\n")
		return
	}
	sb.WriteString(">\r\n")
	for _, a := range v.Attributes {
		writeAttribute(sb, a)
	}
	sb.WriteString("        </VarDeclaration>\r\n")
}

func writeAttribute(sb *strings.Builder, a model.DtpAttribute) {
	sb.WriteString(`            <Attribute Name="` + escapeAttr(a.Name) + `" Type="` + escapeAttr(formatDtpBase(a.Base)) + `" Value="` + escapeAttr(formatDtpValue(a.Value)) + `"`)
	if a.Comment != nil {
		sb.WriteString(` Comment="` + escapeAttr(*a.Comment) + `"`)
	}
	sb.WriteString("/>\r\n")
}

// escapeAttr entity-encodes the five XML-reserved characters for use
// inside a double-quoted attribute value.
func escapeAttr(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
