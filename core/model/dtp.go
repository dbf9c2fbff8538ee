package model

// DtpBaseKind discriminates the variant carried by a DtpBase.
type DtpBaseKind int

const (
	DtpBool DtpBaseKind = iota
	DtpByte
	DtpWord
	DtpDword
	DtpLword
	DtpSint
	DtpInt
	DtpDint
	DtpLint
	DtpUsint
	DtpUint
	DtpUdint
	DtpUlint
	DtpReal
	DtpLreal
	DtpChar
	DtpString
	DtpWstring
	DtpCustom
)

// DtpBase is a DTP var's base type. Bound is only meaningful for
// DtpString/DtpWstring (nil means unbounded); Custom is only meaningful
// for DtpCustom.
type DtpBase struct {
	Kind   DtpBaseKind
	Bound  *uint64
	Custom string
}

// DtpArrayKind discriminates the variant carried by a DtpArray.
type DtpArrayKind int

const (
	DtpArrayCapacity DtpArrayKind = iota
	DtpArrayIndexation
)

// DtpArray is a DTP var's ArraySize attribute, either a plain capacity
// ("n") or an index range ("lo..hi").
type DtpArray struct {
	Kind     DtpArrayKind
	Capacity uint64 // meaningful when Kind == DtpArrayCapacity
	Lo, Hi   int64  // meaningful when Kind == DtpArrayIndexation
}

// DtpAttribute is a free-form key/typed-value annotation nested inside a
// DtpVar.
type DtpAttribute struct {
	Name    string
	Base    DtpBase
	Value   DtpValue
	Comment *string
}

// DtpVar is one VarDeclaration element of a DTP StructuredType.
type DtpVar struct {
	Name       string
	Base       DtpBase
	Array      *DtpArray
	Initial    *DtpValue
	Comment    *string
	Attributes []DtpAttribute
}

// DtpStruct is a DTP StructuredType element.
type DtpStruct struct {
	Comment *string
	Vars    []DtpVar
}

// DtpType is the parsed form of one DTP DataType element.
type DtpType struct {
	Name       string
	Comment    *string
	Structured DtpStruct
}
