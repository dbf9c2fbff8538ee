package mapper

import (
	"github.com/N1CEJAN/RossyDiac/core/model"
)

// MsgToDtp implements the Msg→Dtp semantic lowering (spec.md §4.D).
func MsgToDtp(packageName string, t *model.MsgType, opts Options) (*model.DtpType, error) {
	vars := make([]model.DtpVar, 0, len(t.Fields)*2)
	for _, f := range t.Fields {
		fieldVar, counter, err := lowerField(packageName, f, opts)
		if err != nil {
			return nil, err
		}
		vars = append(vars, fieldVar)
		if counter != nil {
			vars = append(vars, *counter)
		}
	}

	return &model.DtpType{
		Name: mangle(packageName, t.Name),
		Structured: model.DtpStruct{
			Vars: vars,
		},
	}, nil
}

func lowerField(packageName string, f model.MsgField, opts Options) (model.DtpVar, *model.DtpVar, error) {
	ann, rest := parseIECAnnotations(f.Comment)

	base, err := lowerBase(packageName, f.Base, ann)
	if err != nil {
		return model.DtpVar{}, nil, newConvertError(f.Name, "%v", err)
	}

	var arr *model.DtpArray
	var attrs []model.DtpAttribute
	var counter *model.DtpVar
	var capacity uint64

	if f.Array != nil {
		switch f.Array.Kind {
		case model.MsgArrayFixed:
			if ann.StartIndex != nil {
				lo := *ann.StartIndex
				hi := lo + int64(f.Array.N) - 1
				arr = &model.DtpArray{Kind: model.DtpArrayIndexation, Lo: lo, Hi: hi}
			} else {
				arr = &model.DtpArray{Kind: model.DtpArrayCapacity, Capacity: f.Array.N}
			}
			capacity = f.Array.N
		case model.MsgArrayDynamic:
			capacity = opts.dynamicCapacity()
			arr = &model.DtpArray{Kind: model.DtpArrayCapacity, Capacity: capacity}
			attrs = append(attrs, model.DtpAttribute{Name: "ROS2_DynamicArray", Base: model.DtpBase{Kind: model.DtpBool}, Value: model.NewDtpBool(model.BoolStringForm, true)})
			counter = makeElementCounter(f)
		case model.MsgArrayBoundedDynamic:
			capacity = f.Array.N
			arr = &model.DtpArray{Kind: model.DtpArrayCapacity, Capacity: capacity}
			attrs = append(attrs, model.DtpAttribute{Name: "ROS2_BoundDynamicArray", Base: model.DtpBase{Kind: model.DtpUlint}, Value: model.NewDtpInt(model.IntLiteral{Form: model.IntUnsignedDec, Magnitude: capacity})})
			counter = makeElementCounter(f)
		}
	}

	if f.Kind == model.FieldConstant {
		attrs = append(attrs, model.DtpAttribute{Name: "ROS2_Constant", Base: model.DtpBase{Kind: model.DtpBool}, Value: model.NewDtpBool(model.BoolStringForm, true)})
	}

	if ref := f.Base.Ref; ref != nil {
		if ref.Kind == model.ReferenceRelative {
			attrs = append(attrs, model.DtpAttribute{Name: "ROS2_RelativeReference", Base: model.DtpBase{Kind: model.DtpBool}, Value: model.NewDtpBool(model.BoolStringForm, true)})
		} else {
			attrs = append(attrs, model.DtpAttribute{Name: "ROS2_AbsoluteReference", Base: model.DtpBase{Kind: model.DtpBool}, Value: model.NewDtpBool(model.BoolStringForm, true)})
		}
	}

	var initial *model.DtpValue
	if f.Initial != nil {
		v, err := lowerValue(*f.Initial, base, f.Array, capacity)
		if err != nil {
			return model.DtpVar{}, nil, newConvertError(f.Name, "%v", err)
		}
		initial = &v
	}

	var comment *string
	if rest != "" {
		comment = &rest
	}

	return model.DtpVar{
		Name:       f.Name,
		Base:       base,
		Array:      arr,
		Initial:    initial,
		Comment:    comment,
		Attributes: attrs,
	}, counter, nil
}

func makeElementCounter(f model.MsgField) *model.DtpVar {
	n := uint64(0)
	if f.Initial != nil {
		n = uint64(len(f.Initial.Elems))
	}
	return &model.DtpVar{
		Name: f.Name + "_element_counter",
		Base: model.DtpBase{Kind: model.DtpUlint},
		Initial: &model.DtpValue{
			Kind: model.DVInt,
			Int:  model.IntLiteral{Form: model.IntUnsignedDec, Magnitude: n},
		},
		Attributes: []model.DtpAttribute{
			{Name: "ROS2_ElementCounter", Base: model.DtpBase{Kind: model.DtpString}, Value: model.NewDtpString(f.Name)},
		},
	}
}

func lowerBase(packageName string, b model.MsgBase, ann iecAnnotations) (model.DtpBase, error) {
	switch b.Kind {
	case model.MsgBool:
		return model.DtpBase{Kind: model.DtpBool}, nil
	case model.MsgByte:
		return model.DtpBase{Kind: model.DtpByte}, nil
	case model.MsgInt8:
		return model.DtpBase{Kind: model.DtpSint}, nil
	case model.MsgInt16:
		return model.DtpBase{Kind: model.DtpInt}, nil
	case model.MsgInt32:
		return model.DtpBase{Kind: model.DtpDint}, nil
	case model.MsgInt64:
		return model.DtpBase{Kind: model.DtpLint}, nil
	case model.MsgUint8:
		return model.DtpBase{Kind: model.DtpUsint}, nil
	case model.MsgUint16:
		if ann.Word {
			return model.DtpBase{Kind: model.DtpWord}, nil
		}
		return model.DtpBase{Kind: model.DtpUint}, nil
	case model.MsgUint32:
		if ann.Dword {
			return model.DtpBase{Kind: model.DtpDword}, nil
		}
		return model.DtpBase{Kind: model.DtpUdint}, nil
	case model.MsgUint64:
		if ann.Lword {
			return model.DtpBase{Kind: model.DtpLword}, nil
		}
		return model.DtpBase{Kind: model.DtpUlint}, nil
	case model.MsgFloat32:
		return model.DtpBase{Kind: model.DtpReal}, nil
	case model.MsgFloat64:
		return model.DtpBase{Kind: model.DtpLreal}, nil
	case model.MsgChar:
		return model.DtpBase{Kind: model.DtpChar}, nil
	case model.MsgString:
		return model.DtpBase{Kind: model.DtpString, Bound: b.Bound}, nil
	case model.MsgWstring:
		return model.DtpBase{Kind: model.DtpWstring, Bound: b.Bound}, nil
	case model.MsgCustom:
		ref := b.Ref
		if ref == nil {
			return model.DtpBase{}, errConvertf("custom field missing reference")
		}
		var custom string
		if ref.Kind == model.ReferenceRelative {
			custom = mangle(packageName, ref.File)
		} else {
			custom = mangle(ref.Package, ref.File)
		}
		return model.DtpBase{Kind: model.DtpCustom, Custom: custom}, nil
	default:
		return model.DtpBase{}, errConvertf("unsupported MSG base kind")
	}
}

// lowerValue element-wise translates a MsgValue into a DtpValue, padding
// Dynamic/BoundedDynamic array literals out to the DTP physical capacity
// with the element type's zero value.
func lowerValue(v model.MsgValue, base model.DtpBase, arr *model.MsgArray, capacity uint64) (model.DtpValue, error) {
	if v.Kind == model.MVArray {
		elems := make([]model.DtpValue, 0, capacity)
		for _, e := range v.Elems {
			dv, err := lowerScalar(e, base)
			if err != nil {
				return model.DtpValue{}, err
			}
			elems = append(elems, dv)
		}
		if arr != nil && (arr.Kind == model.MsgArrayDynamic || arr.Kind == model.MsgArrayBoundedDynamic) {
			filler := zeroValue(base)
			for uint64(len(elems)) < capacity {
				elems = append(elems, filler)
			}
		}
		return model.NewDtpArray(elems), nil
	}
	return lowerScalar(v, base)
}

func lowerScalar(v model.MsgValue, base model.DtpBase) (model.DtpValue, error) {
	switch v.Kind {
	case model.MVBool:
		return model.NewDtpBool(v.Bool.Form, v.Bool.Value), nil
	case model.MVInt:
		return model.NewDtpInt(v.Int), nil
	case model.MVChar:
		return model.NewDtpChar(charLiteralForRune(rune(v.Int.Magnitude))), nil
	case model.MVFloat:
		return model.NewDtpFloat(v.Float), nil
	case model.MVString:
		return model.NewDtpString(v.Str.Text), nil
	case model.MVWstring:
		return model.NewDtpWstring(v.Str.Text), nil
	default:
		return model.DtpValue{}, errConvertf("unsupported MSG value kind")
	}
}

// charLiteralForRune picks the DTP char form a freshly-synthesized (not
// parsed-from-DTP) code point should be spelled in: the three characters
// CHAR literals mask with "$" stay escaped, printable ASCII is spelled
// plain, everything else falls back to the "$hh" hex form.
func charLiteralForRune(r rune) model.DtpCharLiteral {
	switch {
	case r == '$' || r == '\'' || r == '"':
		return model.DtpCharLiteral{Form: model.DtpCharEscaped, Rune: r}
	case r >= 0x20 && r <= 0x7E:
		return model.DtpCharLiteral{Form: model.DtpCharPlain, Rune: r}
	default:
		return model.DtpCharLiteral{Form: model.DtpCharHex, Rune: r}
	}
}

// zeroValue produces the zero-value literal for base, used to pad out a
// Dynamic/BoundedDynamic array literal to its DTP capacity.
func zeroValue(base model.DtpBase) model.DtpValue {
	switch base.Kind {
	case model.DtpBool:
		return model.NewDtpBool(model.BoolStringForm, false)
	case model.DtpReal, model.DtpLreal:
		return model.NewDtpFloat(model.FloatLiteral{Text: "0.0", Value: 0})
	case model.DtpChar:
		return model.NewDtpChar(charLiteralForRune(0))
	case model.DtpString:
		return model.NewDtpString("")
	case model.DtpWstring:
		return model.NewDtpWstring("")
	default:
		return model.NewDtpInt(model.IntLiteral{Form: model.IntUnsignedDec, Magnitude: 0})
	}
}

func errConvertf(format string, args ...any) error {
	return newConvertError("", format, args...)
}
