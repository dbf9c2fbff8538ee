package model

// ReferenceKind discriminates a custom MSG type reference.
type ReferenceKind int

const (
	ReferenceRelative ReferenceKind = iota
	ReferenceAbsolute
)

// Reference is a custom MSG base type, either naming a file in the same
// package (Relative) or a file in another package (Absolute).
type Reference struct {
	Kind    ReferenceKind
	Package string // only set when Kind == ReferenceAbsolute
	File    string
}

// MsgBaseKind discriminates the variant carried by a MsgBase.
type MsgBaseKind int

const (
	MsgBool MsgBaseKind = iota
	MsgByte
	MsgInt8
	MsgInt16
	MsgInt32
	MsgInt64
	MsgUint8
	MsgUint16
	MsgUint32
	MsgUint64
	MsgFloat32
	MsgFloat64
	MsgChar
	MsgString
	MsgWstring
	MsgCustom
)

// MsgBase is a MSG field's base type. Bound is only meaningful for
// MsgString/MsgWstring (nil means unbounded); Ref is only meaningful for
// MsgCustom.
type MsgBase struct {
	Kind  MsgBaseKind
	Bound *uint64
	Ref   *Reference
}

// MsgArrayKind discriminates the variant carried by a MsgArray.
type MsgArrayKind int

const (
	MsgArrayFixed MsgArrayKind = iota
	MsgArrayDynamic
	MsgArrayBoundedDynamic
)

// MsgArray is a MSG field's array qualifier. N is only meaningful for
// MsgArrayFixed (the element count) and MsgArrayBoundedDynamic (the
// upper bound); MsgArrayDynamic carries no size.
type MsgArray struct {
	Kind MsgArrayKind
	N    uint64
}

// FieldKind discriminates whether a field is a variable or a constant.
type FieldKind int

const (
	FieldVariable FieldKind = iota
	FieldConstant
)

// MsgField is one declaration line of a MSG file.
type MsgField struct {
	Name    string
	Base    MsgBase
	Array   *MsgArray
	Kind    FieldKind
	Initial *MsgValue
	Comment *string
}

// MsgType is the parsed form of one MSG file.
type MsgType struct {
	Name   string
	Fields []MsgField
}
