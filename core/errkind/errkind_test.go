package errkind_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/N1CEJAN/RossyDiac/core/errkind"
)

func TestNewPreservesKindAndMessage(t *testing.T) {
	inner := errors.New("boom")
	err := errkind.New(errkind.Semantic, inner)
	assert.Equal(t, errkind.Semantic, err.Kind())
	assert.Equal(t, "boom", err.Error())
	assert.Same(t, inner, err.Unwrap())
}

func TestErrorfFormats(t *testing.T) {
	err := errkind.Errorf(errkind.Format, "bad field %q", "x")
	assert.Equal(t, errkind.Format, err.Kind())
	assert.Equal(t, `bad field "x"`, err.Error())
}

func TestErrorsAsUnwrapsToConcreteKindError(t *testing.T) {
	wrapped := errkind.Errorf(errkind.Io, "disk full")
	var target errkind.Error
	assert.True(t, errors.As(error(wrapped), &target))
	assert.Equal(t, errkind.Io, target.Kind())
}

func TestKindString(t *testing.T) {
	cases := map[errkind.Kind]string{
		errkind.Format:   "Format",
		errkind.Semantic: "Semantic",
		errkind.Io:       "Io",
		errkind.Kind(99): "Unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
