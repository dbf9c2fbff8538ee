package dtpconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N1CEJAN/RossyDiac/core/dtpconv"
	"github.com/N1CEJAN/RossyDiac/core/model"
)

func TestParseStructuredType(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<DataType Name="ROS2_mypkg_msg_Foo">
    <StructuredType>
        <VarDeclaration Name="x" Type="DINT"/>
        <VarDeclaration Name="s" Type="STRING[10]" InitialValue="'hi'"/>
        <VarDeclaration Name="flags" Type="BOOL" ArraySize="3" InitialValue="[TRUE, FALSE, TRUE]"/>
    </StructuredType>
</DataType>`

	dtpType, err := dtpconv.Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "ROS2_mypkg_msg_Foo", dtpType.Name)
	require.Len(t, dtpType.Structured.Vars, 3)

	x := dtpType.Structured.Vars[0]
	assert.Equal(t, "x", x.Name)
	assert.Equal(t, model.DtpDint, x.Base.Kind)

	s := dtpType.Structured.Vars[1]
	require.NotNil(t, s.Base.Bound)
	assert.EqualValues(t, 10, *s.Base.Bound)
	require.NotNil(t, s.Initial)
	assert.Equal(t, "hi", s.Initial.Str)

	flags := dtpType.Structured.Vars[2]
	require.NotNil(t, flags.Array)
	assert.EqualValues(t, 3, flags.Array.Capacity)
	require.NotNil(t, flags.Initial)
	require.Len(t, flags.Initial.Elems, 3)
	assert.True(t, flags.Initial.Elems[0].Bool.Value)
	assert.False(t, flags.Initial.Elems[1].Bool.Value)
}

func TestParseAttributes(t *testing.T) {
	src := `<DataType Name="D">
    <StructuredType>
        <VarDeclaration Name="xs" Type="REAL" ArraySize="4" InitialValue="[1.0, 2.0, 0.0, 0.0]">
            <Attribute Name="ROS2_BoundDynamicArray" Type="ULINT" Value="4"/>
        </VarDeclaration>
        <VarDeclaration Name="xs_element_counter" Type="ULINT" InitialValue="2">
            <Attribute Name="ROS2_ElementCounter" Type="STRING" Value="'xs'"/>
        </VarDeclaration>
    </StructuredType>
</DataType>`
	dtpType, err := dtpconv.Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, dtpType.Structured.Vars, 2)

	xs := dtpType.Structured.Vars[0]
	require.Len(t, xs.Attributes, 1)
	assert.Equal(t, "ROS2_BoundDynamicArray", xs.Attributes[0].Name)

	counter := dtpType.Structured.Vars[1]
	a, ok := counter.Attribute("ROS2_ElementCounter")
	require.True(t, ok)
	assert.Equal(t, "xs", a.Value.Str)
}

func TestParseIndexationArray(t *testing.T) {
	src := `<DataType Name="D">
    <StructuredType>
        <VarDeclaration Name="a" Type="INT" ArraySize="-2..2"/>
    </StructuredType>
</DataType>`
	dtpType, err := dtpconv.Parse([]byte(src))
	require.NoError(t, err)
	a := dtpType.Structured.Vars[0]
	require.NotNil(t, a.Array)
	assert.Equal(t, model.DtpArrayIndexation, a.Array.Kind)
	assert.EqualValues(t, -2, a.Array.Lo)
	assert.EqualValues(t, 2, a.Array.Hi)
}

func TestParseHexIntLiteral(t *testing.T) {
	src := `<DataType Name="D">
    <StructuredType>
        <VarDeclaration Name="m" Type="UDINT" InitialValue="16#FF"/>
    </StructuredType>
</DataType>`
	dtpType, err := dtpconv.Parse([]byte(src))
	require.NoError(t, err)
	lit := dtpType.Structured.Vars[0].Initial.Int
	assert.Equal(t, model.IntHex, lit.Form)
	assert.EqualValues(t, 255, lit.Magnitude)
}

func TestParseRejectsMissingStructuredType(t *testing.T) {
	src := `<DataType Name="D"></DataType>`
	_, err := dtpconv.Parse([]byte(src))
	require.Error(t, err)
	var perr *dtpconv.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestParseRejectsMissingName(t *testing.T) {
	src := `<DataType><StructuredType/></DataType>`
	_, err := dtpconv.Parse([]byte(src))
	require.Error(t, err)
}

func TestParseRejectsUnknownRoot(t *testing.T) {
	src := `<Foo Name="D"/>`
	_, err := dtpconv.Parse([]byte(src))
	require.Error(t, err)
}
