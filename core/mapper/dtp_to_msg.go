package mapper

import (
	"strings"

	"github.com/N1CEJAN/RossyDiac/core/model"
)

// DtpToMsg implements the Dtp→Msg semantic lifting (spec.md §4.E).
func DtpToMsg(packageName string, t *model.DtpType, opts Options) (*model.MsgType, error) {
	idx := newCounterIndex(t.Structured.Vars)

	fields := make([]model.MsgField, 0, len(t.Structured.Vars))
	for i := range t.Structured.Vars {
		v := &t.Structured.Vars[i]
		if v.HasAttribute("ROS2_ElementCounter") {
			continue
		}
		f, err := liftVar(v, idx)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return &model.MsgType{
		Name:   demangle(t.Name, packageName),
		Fields: fields,
	}, nil
}

func demangle(dtpName, packageName string) string {
	prefix := "ROS2_" + sanitise(packageName) + "_msg_"
	if rest, ok := strings.CutPrefix(dtpName, prefix); ok {
		return rest
	}
	return dtpName
}

func liftVar(v *model.DtpVar, idx *counterIndex) (model.MsgField, error) {
	ann, base, err := liftBase(v)
	if err != nil {
		return model.MsgField{}, newConvertError(v.Name, "%v", err)
	}

	var arr *model.MsgArray
	var startIndex *int64
	if v.Array != nil {
		switch v.Array.Kind {
		case model.DtpArrayIndexation:
			n := uint64(v.Array.Hi - v.Array.Lo + 1)
			arr = &model.MsgArray{Kind: model.MsgArrayFixed, N: n}
			lo := v.Array.Lo
			startIndex = &lo
		case model.DtpArrayCapacity:
			switch {
			case v.HasAttribute("ROS2_DynamicArray"):
				arr = &model.MsgArray{Kind: model.MsgArrayDynamic}
			case v.HasAttribute("ROS2_BoundDynamicArray"):
				arr = &model.MsgArray{Kind: model.MsgArrayBoundedDynamic, N: v.Array.Capacity}
			default:
				arr = &model.MsgArray{Kind: model.MsgArrayFixed, N: v.Array.Capacity}
			}
		}
	}
	ann.StartIndex = startIndex

	kind := model.FieldVariable
	if v.HasAttribute("ROS2_Constant") {
		if v.Initial == nil {
			return model.MsgField{}, newConvertError(v.Name, "constant without initial value")
		}
		kind = model.FieldConstant
	}

	var initial *model.MsgValue
	if v.Initial != nil {
		mv, err := liftValue(*v.Initial, v, arr, idx)
		if err != nil {
			return model.MsgField{}, newConvertError(v.Name, "%v", err)
		}
		initial = &mv
	}

	comment := formatIECAnnotations(ann, v.Comment)

	return model.MsgField{
		Name:    v.Name,
		Base:    base,
		Array:   arr,
		Kind:    kind,
		Initial: initial,
		Comment: comment,
	}, nil
}

func liftBase(v *model.DtpVar) (iecAnnotations, model.MsgBase, error) {
	var ann iecAnnotations
	b := v.Base
	switch b.Kind {
	case model.DtpBool:
		return ann, model.MsgBase{Kind: model.MsgBool}, nil
	case model.DtpByte:
		return ann, model.MsgBase{Kind: model.MsgByte}, nil
	case model.DtpSint:
		return ann, model.MsgBase{Kind: model.MsgInt8}, nil
	case model.DtpInt:
		return ann, model.MsgBase{Kind: model.MsgInt16}, nil
	case model.DtpDint:
		return ann, model.MsgBase{Kind: model.MsgInt32}, nil
	case model.DtpLint:
		return ann, model.MsgBase{Kind: model.MsgInt64}, nil
	case model.DtpUsint:
		return ann, model.MsgBase{Kind: model.MsgUint8}, nil
	case model.DtpUint:
		return ann, model.MsgBase{Kind: model.MsgUint16}, nil
	case model.DtpWord:
		ann.Word = true
		return ann, model.MsgBase{Kind: model.MsgUint16}, nil
	case model.DtpUdint:
		return ann, model.MsgBase{Kind: model.MsgUint32}, nil
	case model.DtpDword:
		ann.Dword = true
		return ann, model.MsgBase{Kind: model.MsgUint32}, nil
	case model.DtpUlint:
		return ann, model.MsgBase{Kind: model.MsgUint64}, nil
	case model.DtpLword:
		ann.Lword = true
		return ann, model.MsgBase{Kind: model.MsgUint64}, nil
	case model.DtpReal:
		return ann, model.MsgBase{Kind: model.MsgFloat32}, nil
	case model.DtpLreal:
		return ann, model.MsgBase{Kind: model.MsgFloat64}, nil
	case model.DtpChar:
		return ann, model.MsgBase{Kind: model.MsgChar}, nil
	case model.DtpString:
		return ann, model.MsgBase{Kind: model.MsgString, Bound: b.Bound}, nil
	case model.DtpWstring:
		return ann, model.MsgBase{Kind: model.MsgWstring, Bound: b.Bound}, nil
	case model.DtpCustom:
		ref, err := splitCustomReference(b.Custom, v)
		if err != nil {
			return ann, model.MsgBase{}, err
		}
		return ann, model.MsgBase{Kind: model.MsgCustom, Ref: ref}, nil
	default:
		return ann, model.MsgBase{}, errConvertf("unsupported DTP base type")
	}
}

// splitCustomReference inverts Msg→Dtp's name mangling. The mangled name is
// split into its four underscore-separated parts ("ROS2", package, "msg",
// file); which reference kind to produce is then read off the owning var's
// ROS2_AbsoluteReference/ROS2_RelativeReference attribute rather than
// guessed. Any other part count, or neither attribute present, falls back
// to a bare Relative reference using the full name.
func splitCustomReference(name string, v *model.DtpVar) (*model.Reference, error) {
	parts := strings.Split(name, "_")
	if len(parts) == 4 && parts[0] == "ROS2" && parts[2] == "msg" {
		switch {
		case v.HasAttribute("ROS2_AbsoluteReference"):
			return &model.Reference{Kind: model.ReferenceAbsolute, Package: parts[1], File: parts[3]}, nil
		case v.HasAttribute("ROS2_RelativeReference"):
			return &model.Reference{Kind: model.ReferenceRelative, File: parts[3]}, nil
		}
	}
	return &model.Reference{Kind: model.ReferenceRelative, File: name}, nil
}

func liftValue(v model.DtpValue, owner *model.DtpVar, arr *model.MsgArray, idx *counterIndex) (model.MsgValue, error) {
	if v.Kind == model.DVArray {
		elems := make([]model.MsgValue, 0, len(v.Elems))
		for _, e := range v.Elems {
			mv, err := liftScalar(e)
			if err != nil {
				return model.MsgValue{}, err
			}
			elems = append(elems, mv)
		}
		if arr != nil && (arr.Kind == model.MsgArrayDynamic || arr.Kind == model.MsgArrayBoundedDynamic) {
			counter, ok := idx.lookup(owner.Name)
			if !ok || counter.Initial == nil || counter.Initial.Kind != model.DVInt {
				return model.MsgValue{}, errConvertf("missing element-counter helper for dynamic array %q", owner.Name)
			}
			n := counter.Initial.Int.Magnitude
			if int(n) <= len(elems) {
				elems = elems[:n]
			}
		}
		return model.NewMsgArray(elems), nil
	}
	return liftScalar(v)
}

func liftScalar(v model.DtpValue) (model.MsgValue, error) {
	switch v.Kind {
	case model.DVBool:
		return model.NewMsgBool(v.Bool.Form, v.Bool.Value), nil
	case model.DVInt:
		return model.NewMsgInt(v.Int), nil
	case model.DVFloat:
		return model.NewMsgFloat(v.Float), nil
	case model.DVChar:
		return model.NewMsgChar(model.IntLiteral{Form: model.IntUnsignedDec, Magnitude: uint64(v.Char.Rune)}), nil
	case model.DVString:
		return model.NewMsgString('\'', v.Str), nil
	case model.DVWstring:
		return model.NewMsgWstring(v.Str), nil
	default:
		return model.MsgValue{}, errConvertf("unsupported DTP value kind")
	}
}
