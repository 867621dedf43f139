package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type mapProvider map[string]string

func (m mapProvider) GetMessage(key string) string {
	if msg, ok := m[key]; ok {
		return msg
	}
	return key
}

func TestTranslatableErrors(t *testing.T) {
	err := NewError("argspec.error.argument_conflict")

	err2 := err.WithArgs("a", "b")
	assert.Len(t, err2.Args(), 2)
	assert.Equal(t, "the argument 'a' cannot be used with 'b'", err2.Error())

	wrapped := err.Wrap(errors.New("inner"))
	require.NotNil(t, wrapped.Unwrap())
	assert.True(t, errors.Is(wrapped, err))
	assert.True(t, errors.Is(err2, err))
	assert.False(t, errors.Is(err2, NewError("argspec.error.argument_conflict")))
}

func TestTrError_Format(t *testing.T) {
	p := mapProvider{"k.outer": "outer %s", "k.inner": "inner %d"}
	inner := NewError("k.inner").WithArgs(3)
	outer := NewError("k.outer").WithArgs("x").Wrap(inner)

	assert.Equal(t, "outer x: inner 3", outer.Format(p))
	assert.Equal(t, "k.outer", outer.Key())
}

func TestNewErrorWithProvider(t *testing.T) {
	err := NewErrorWithProvider("k", mapProvider{"k": "fixed"})
	assert.Equal(t, "fixed", err.Error())
}

func TestSetDefaultMessageProvider(t *testing.T) {
	SetDefaultMessageProvider(mapProvider{"argspec.error.empty_name": "custom"})
	t.Cleanup(func() { SetDefaultMessageProvider(nil) })

	assert.Equal(t, "custom", NewError("argspec.error.empty_name").Error())
}

func TestBundleMessageProvider(t *testing.T) {
	de := NewBundleMessageProvider(Default(), language.German)
	err := NewError("argspec.error.duplicate_argument").WithArgs("x")

	assert.Equal(t, "das Argument 'x' ist mehrfach definiert", err.Format(de))
	assert.Equal(t, "unknown.key", de.GetMessage("unknown.key"))

	fr := NewBundleMessageProvider(Default(), language.French)
	assert.Equal(t, "argument 'x' is defined more than once", err.Format(fr))
}
