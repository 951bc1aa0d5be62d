package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOption_SomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some(3)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.True(t, some.IsPresent())
	assert.False(t, some.IsAbsent())

	none := None[int]()
	v, ok = none.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, v)
	assert.True(t, none.IsAbsent())
}

func TestOption_OrElseIsLazy(t *testing.T) {
	t.Parallel()

	called := false
	alt := func() Option[int] {
		called = true
		return Some(2)
	}

	assert.Equal(t, Some(1), Some(1).OrElse(alt))
	assert.False(t, called, "alternative must not run when the option is present")

	assert.Equal(t, Some(2), None[int]().OrElse(alt))
	assert.True(t, called)
}

func TestOption_FromPointerAndBool(t *testing.T) {
	t.Parallel()

	n := 7
	assert.Equal(t, Some(7), FromPointer(&n))
	assert.Equal(t, None[int](), FromPointer[int](nil))
	assert.Equal(t, Some("x"), FromBool("x", true))
	assert.Equal(t, None[string](), FromBool("x", false))
}

func TestOption_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(1)", Some(1).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestValidation_Accessors(t *testing.T) {
	t.Parallel()

	ok := Success[string](5)
	assert.True(t, ok.IsSuccess())
	assert.True(t, ok.IsPresent())
	assert.Equal(t, 5, ok.Value())
	assert.Equal(t, Some(5), ok.ToOption())
	assert.Equal(t, "Success(5)", ok.String())

	bad := Failure[string, int]("e0")
	assert.True(t, bad.IsFailure())
	assert.Equal(t, "e0", bad.Failure())
	assert.Equal(t, None[int](), bad.ToOption())
	assert.Equal(t, "Failure(e0)", bad.String())

	moved := FailureFrom[string, int, string](bad)
	assert.True(t, moved.IsFailure())
	assert.Equal(t, "e0", moved.Failure())
}
