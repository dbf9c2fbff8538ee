package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N1CEJAN/RossyDiac/core/dtpconv"
	"github.com/N1CEJAN/RossyDiac/core/mapper"
	"github.com/N1CEJAN/RossyDiac/core/model"
	"github.com/N1CEJAN/RossyDiac/core/msgconv"
)

func toDtp(t *testing.T, pkg, msgSrc string) string {
	t.Helper()
	msgType, err := msgconv.Parse([]byte(msgSrc), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp(pkg, msgType, mapper.DefaultOptions())
	require.NoError(t, err)
	return string(dtpconv.Write(dtpType))
}

// S1 — primitive types.
func TestMsgToDtpPrimitiveTypes(t *testing.T) {
	out := toDtp(t, "my_pkg", "int32 x\r\nstring<=10 s \"hi\"\r\nbool[3] flags [true,false,true]\r\n")
	assert.Contains(t, out, `<DataType Name="ROS2_mypkg_msg_Foo">`)
	assert.Contains(t, out, `<VarDeclaration Name="x" Type="DINT"/>`)
	assert.Contains(t, out, `<VarDeclaration Name="s" Type="STRING[10]" InitialValue="&apos;hi&apos;"/>`)
	assert.Contains(t, out, `<VarDeclaration Name="flags" Type="BOOL" ArraySize="3" InitialValue="[TRUE, FALSE, TRUE]"/>`)
}

// S2 — constant, round trip back to MSG.
func TestConstantRoundTrip(t *testing.T) {
	msgType, err := msgconv.Parse([]byte("uint8 MAX=42\r\n"), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp("my_pkg", msgType, mapper.DefaultOptions())
	require.NoError(t, err)

	v := dtpType.Structured.Vars[0]
	assert.Equal(t, "MAX", v.Name)
	assert.True(t, v.HasAttribute("ROS2_Constant"))
	require.NotNil(t, v.Initial)
	assert.EqualValues(t, 42, v.Initial.Int.Magnitude)

	back, err := mapper.DtpToMsg("my_pkg", dtpType, mapper.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "uint8 MAX=42\r\n", string(msgconv.Write(back)))
}

// S3 — bounded dynamic array, round trip truncating back to two elements.
func TestBoundedDynamicArrayRoundTrip(t *testing.T) {
	msgType, err := msgconv.Parse([]byte("float32[<=4] xs [1.0,2.0]\r\n"), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp("my_pkg", msgType, mapper.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, dtpType.Structured.Vars, 2)
	xs := dtpType.Structured.Vars[0]
	require.NotNil(t, xs.Array)
	assert.EqualValues(t, 4, xs.Array.Capacity)
	require.Len(t, xs.Initial.Elems, 4)
	assert.True(t, xs.HasAttribute("ROS2_BoundDynamicArray"))

	counter := dtpType.Structured.Vars[1]
	assert.Equal(t, "xs_element_counter", counter.Name)
	a, ok := counter.Attribute("ROS2_ElementCounter")
	require.True(t, ok)
	assert.Equal(t, "xs", a.Value.Str)
	assert.EqualValues(t, 2, counter.Initial.Int.Magnitude)

	back, err := mapper.DtpToMsg("my_pkg", dtpType, mapper.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, back.Fields, 1)
	require.Len(t, back.Fields[0].Initial.Elems, 2)
	assert.Equal(t, "float32[<=4] xs [1.0,2.0]\r\n", string(msgconv.Write(back)))
}

// S4 — representation preservation of a hex literal through both hops.
func TestHexLiteralRoundTrip(t *testing.T) {
	msgType, err := msgconv.Parse([]byte("uint32 m=0xFF\r\n"), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp("my_pkg", msgType, mapper.DefaultOptions())
	require.NoError(t, err)

	out := string(dtpconv.Write(dtpType))
	assert.Contains(t, out, `InitialValue="16#FF"`)

	back, err := mapper.DtpToMsg("my_pkg", dtpType, mapper.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "uint32 m=0xFF\r\n", string(msgconv.Write(back)))
}

// S5 — IEC61499_DWORD annotation round trip.
func TestIecDwordAnnotationRoundTrip(t *testing.T) {
	msgType, err := msgconv.Parse([]byte("uint32 w # @IEC61499_DWORD\r\n"), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp("my_pkg", msgType, mapper.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, model.DtpDword, dtpType.Structured.Vars[0].Base.Kind)

	back, err := mapper.DtpToMsg("my_pkg", dtpType, mapper.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "uint32 w # @IEC61499_DWORD\r\n", string(msgconv.Write(back)))
}

// S6 — shifted (indexed) array round trip.
func TestStartIndexAnnotationRoundTrip(t *testing.T) {
	msgType, err := msgconv.Parse([]byte("int16[5] a # @IEC61499_StartIndex(-2)\r\n"), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp("my_pkg", msgType, mapper.DefaultOptions())
	require.NoError(t, err)

	a := dtpType.Structured.Vars[0]
	require.NotNil(t, a.Array)
	assert.Equal(t, -2, int(a.Array.Lo))
	assert.Equal(t, 2, int(a.Array.Hi))

	back, err := mapper.DtpToMsg("my_pkg", dtpType, mapper.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "int16[5] a # @IEC61499_StartIndex(-2)\r\n", string(msgconv.Write(back)))
}

// Name-mangling round trip property (spec testable property #5).
func TestNameManglingRoundTrip(t *testing.T) {
	msgType, err := msgconv.Parse([]byte("int32 x\r\n"), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp("my_pkg", msgType, mapper.DefaultOptions())
	require.NoError(t, err)
	back, err := mapper.DtpToMsg("my_pkg", dtpType, mapper.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Foo", back.Name)
}

// Custom reference round trip — relative (file-only) reference.
func TestRelativeCustomReferenceRoundTrip(t *testing.T) {
	msgType, err := msgconv.Parse([]byte("Pose pose\r\n"), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp("mypkg", msgType, mapper.DefaultOptions())
	require.NoError(t, err)

	v := dtpType.Structured.Vars[0]
	assert.Equal(t, model.DtpCustom, v.Base.Kind)
	assert.Equal(t, "ROS2_mypkg_msg_Pose", v.Base.Custom)
	assert.True(t, v.HasAttribute("ROS2_RelativeReference"))
	assert.False(t, v.HasAttribute("ROS2_AbsoluteReference"))

	back, err := mapper.DtpToMsg("mypkg", dtpType, mapper.DefaultOptions())
	require.NoError(t, err)
	ref := back.Fields[0].Base.Ref
	require.NotNil(t, ref)
	assert.Equal(t, model.ReferenceRelative, ref.Kind)
	assert.Equal(t, "Pose", ref.File)
	assert.Equal(t, "Pose pose\r\n", string(msgconv.Write(back)))
}

// Custom reference round trip — absolute (package/file) reference.
func TestAbsoluteCustomReferenceRoundTrip(t *testing.T) {
	msgType, err := msgconv.Parse([]byte("othermsgs/Pose pose\r\n"), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp("mypkg", msgType, mapper.DefaultOptions())
	require.NoError(t, err)

	v := dtpType.Structured.Vars[0]
	assert.Equal(t, "ROS2_othermsgs_msg_Pose", v.Base.Custom)
	assert.True(t, v.HasAttribute("ROS2_AbsoluteReference"))
	assert.False(t, v.HasAttribute("ROS2_RelativeReference"))

	back, err := mapper.DtpToMsg("mypkg", dtpType, mapper.DefaultOptions())
	require.NoError(t, err)
	ref := back.Fields[0].Base.Ref
	require.NotNil(t, ref)
	assert.Equal(t, model.ReferenceAbsolute, ref.Kind)
	assert.Equal(t, "othermsgs", ref.Package)
	assert.Equal(t, "Pose", ref.File)
	assert.Equal(t, "othermsgs/Pose pose\r\n", string(msgconv.Write(back)))
}

// A char default must round trip through a conforming DTP CHAR literal,
// never a bare integer.
func TestCharDefaultRoundTrip(t *testing.T) {
	msgType, err := msgconv.Parse([]byte("char c=65\r\n"), "Foo")
	require.NoError(t, err)
	dtpType, err := mapper.MsgToDtp("mypkg", msgType, mapper.DefaultOptions())
	require.NoError(t, err)

	out := string(dtpconv.Write(dtpType))
	assert.Contains(t, out, `Type="CHAR" InitialValue="&apos;A&apos;"`)

	reparsed, err := dtpconv.Parse([]byte(out))
	require.NoError(t, err)
	require.NotNil(t, reparsed.Structured.Vars[0].Initial)
	assert.Equal(t, model.DVChar, reparsed.Structured.Vars[0].Initial.Kind)

	back, err := mapper.DtpToMsg("mypkg", dtpType, mapper.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "char c=65\r\n", string(msgconv.Write(back)))
}

func TestDynamicArrayMissingCounterIsSemanticError(t *testing.T) {
	dtpType := &model.DtpType{
		Name: "ROS2_mypkg_msg_Foo",
		Structured: model.DtpStruct{
			Vars: []model.DtpVar{
				{
					Name:  "xs",
					Base:  model.DtpBase{Kind: model.DtpReal},
					Array: &model.DtpArray{Kind: model.DtpArrayCapacity, Capacity: 3},
					Attributes: []model.DtpAttribute{
						{Name: "ROS2_DynamicArray", Value: model.NewDtpBool(model.BoolStringForm, true)},
					},
					Initial: &model.DtpValue{Kind: model.DVArray, Elems: []model.DtpValue{
						model.NewDtpFloat(model.FloatLiteral{Text: "0.0", Value: 0}),
					}},
				},
			},
		},
	}
	_, err := mapper.DtpToMsg("my_pkg", dtpType, mapper.DefaultOptions())
	require.Error(t, err)
	var cErr *mapper.ConvertError
	require.ErrorAs(t, err, &cErr)
}
