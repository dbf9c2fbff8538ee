package dtpconv

import (
	"github.com/N1CEJAN/RossyDiac/core/model"
)

// Parse implements DtpReader (spec.md §4.B): parse a DTP XML document into
// a DtpType tree.
func Parse(data []byte) (*model.DtpType, error) {
	root, err := decodeRoot(data)
	if err != nil {
		return nil, newParseError("/", "%v", err)
	}
	if root.Name != "DataType" {
		return nil, newParseError("/"+root.Name, "unknown root element, expected DataType")
	}
	name, ok := root.attr("Name")
	if !ok || name == "" {
		return nil, newParseError("/DataType", "missing required Name attribute")
	}
	var comment *string
	if c, ok := root.attr("Comment"); ok {
		comment = &c
	}

	structs := root.childrenNamed("StructuredType")
	if len(structs) != 1 {
		return nil, newParseError("/DataType", "unsupported data type kind: expected exactly one StructuredType child, found %d", len(structs))
	}
	structEl := structs[0]
	var structComment *string
	if c, ok := structEl.attr("Comment"); ok {
		structComment = &c
	}

	varEls := structEl.childrenNamed("VarDeclaration")
	vars := make([]model.DtpVar, 0, len(varEls))
	for _, ve := range varEls {
		v, err := parseVarDeclaration(ve)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}

	return &model.DtpType{
		Name:    name,
		Comment: comment,
		Structured: model.DtpStruct{
			Comment: structComment,
			Vars:    vars,
		},
	}, nil
}

func parseVarDeclaration(el *element) (model.DtpVar, error) {
	path := "/DataType/StructuredType/VarDeclaration"

	name, ok := el.attr("Name")
	if !ok || name == "" {
		return model.DtpVar{}, newParseError(path, "missing required Name attribute")
	}
	typeStr, ok := el.attr("Type")
	if !ok || typeStr == "" {
		return model.DtpVar{}, newParseError(path+"/"+name, "missing required Type attribute")
	}
	base, err := parseDtpBase(typeStr)
	if err != nil {
		return model.DtpVar{}, newParseError(path+"/"+name, "%v", err)
	}

	var arr *model.DtpArray
	if sizeStr, ok := el.attr("ArraySize"); ok {
		arr, err = parseDtpArray(sizeStr)
		if err != nil {
			return model.DtpVar{}, newParseError(path+"/"+name, "%v", err)
		}
	}

	var initial *model.DtpValue
	if valStr, ok := el.attr("InitialValue"); ok {
		v, err := parseDtpValue(valStr, base, arr)
		if err != nil {
			return model.DtpVar{}, newParseError(path+"/"+name, "invalid InitialValue: %v", err)
		}
		initial = &v
	}

	var comment *string
	if c, ok := el.attr("Comment"); ok {
		comment = &c
	}

	attrEls := el.childrenNamed("Attribute")
	attrs := make([]model.DtpAttribute, 0, len(attrEls))
	for _, ae := range attrEls {
		a, err := parseAttribute(ae, path+"/"+name)
		if err != nil {
			return model.DtpVar{}, err
		}
		attrs = append(attrs, a)
	}

	return model.DtpVar{
		Name:       name,
		Base:       base,
		Array:      arr,
		Initial:    initial,
		Comment:    comment,
		Attributes: attrs,
	}, nil
}

func parseAttribute(el *element, parentPath string) (model.DtpAttribute, error) {
	path := parentPath + "/Attribute"

	name, ok := el.attr("Name")
	if !ok || name == "" {
		return model.DtpAttribute{}, newParseError(path, "missing required Name attribute")
	}
	typeStr, ok := el.attr("Type")
	if !ok || typeStr == "" {
		return model.DtpAttribute{}, newParseError(path+"/"+name, "missing required Type attribute")
	}
	base, err := parseDtpBase(typeStr)
	if err != nil {
		return model.DtpAttribute{}, newParseError(path+"/"+name, "%v", err)
	}
	valStr, ok := el.attr("Value")
	if !ok {
		return model.DtpAttribute{}, newParseError(path+"/"+name, "missing required Value attribute")
	}
	value, err := parseDtpValue(valStr, base, nil)
	if err != nil {
		return model.DtpAttribute{}, newParseError(path+"/"+name, "invalid Value: %v", err)
	}

	var comment *string
	if c, ok := el.attr("Comment"); ok {
		comment = &c
	}

	return model.DtpAttribute{
		Name:    name,
		Base:    base,
		Value:   value,
		Comment: comment,
	}, nil
}
