package validation

import (
	"errors"
	"testing"

	"github.com/napalu/argspec"
	"github.com/napalu/argspec/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator ValidatorFunc
		value     string
		wantErr   error
	}{
		{"integer ok", Integer(), "42", nil},
		{"integer bad", Integer(), "4.2", errs.ErrNotInteger},
		{"range ok", IntRange(1, 10), "10", nil},
		{"range low", IntRange(1, 10), "0", errs.ErrIntRange},
		{"range not int", IntRange(1, 10), "ten", errs.ErrNotInteger},
		{"float ok", Float(), "-1.5e3", nil},
		{"float bad", Float(), "1.5x", errs.ErrNotFloat},
		{"regex ok", Regex(`[a-z]+`), "abc", nil},
		{"regex anchored", Regex(`[a-z]+`), "abc1", errs.ErrPatternMismatch},
		{"regex alternation anchored", Regex(`a|b`), "ab", errs.ErrPatternMismatch},
		{"min length counts runes", MinLength(4), "café", nil},
		{"min length short", MinLength(5), "café", errs.ErrMinLength},
		{"max length", MaxLength(3), "abcd", errs.ErrMaxLength},
		{"email ok", Email(), "dev@example.com", nil},
		{"email bad", Email(), "not-an-email", errs.ErrNotEmail},
		{"url ok", URL(), "https://example.com/x", nil},
		{"url without host", URL(), "/relative/path", errs.ErrNotURL},
		{"url scheme ok", URL("http", "https"), "HTTPS://example.com", nil},
		{"url scheme rejected", URL("https"), "ftp://example.com", errs.ErrNotURL},
		{"duration ok", Duration(), "1h30m", nil},
		{"duration bad", Duration(), "soon", errs.ErrNotDuration},
		{"date iso", Date(), "2024-03-01", nil},
		{"date rfc1123", Date(), "Mon, 02 Jan 2006 15:04:05 MST", nil},
		{"date bad", Date(), "not a date", errs.ErrNotDate},
		{"all ok", All(Integer(), IntRange(0, 5)), "3", nil},
		{"all first failure", All(Integer(), IntRange(0, 5)), "9", errs.ErrIntRange},
		{"any ok", Any(Integer(), Duration()), "5s", nil},
		{"any none", Any(Integer(), Duration()), "x", errs.ErrNoneMatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator.Validate(tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAny_ReportsCauses(t *testing.T) {
	err := Any(Integer(), Float())("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'x' did not satisfy any of the accepted formats")
	assert.Contains(t, err.Error(), "'x' is not a valid integer; 'x' is not a valid number")
}

func TestUTF8(t *testing.T) {
	assert.NoError(t, UTF8().ValidateBytes([]byte("grüß")))
	assert.ErrorIs(t, UTF8().ValidateBytes([]byte{0xff, 0xfe}), errs.ErrNotUTF8)
}

func TestRegex_PanicsOnBadPattern(t *testing.T) {
	assert.Panics(t, func() { Regex("(") })
}

func TestValidators_WithResolve(t *testing.T) {
	args := []*argspec.Argument{
		argspec.NewArg("port", argspec.WithLong("port"), argspec.WithTakesValue(true),
			argspec.WithValidator(IntRange(1, 65535))),
		argspec.NewArg("name", argspec.WithLong("name"), argspec.WithTakesValue(true),
			argspec.WithBytesValidator(UTF8())),
	}

	_, err := argspec.Resolve(args, nil, argspec.RawOccurrences{}.Add("port", 0, "8080"))
	require.NoError(t, err)

	_, err = argspec.Resolve(args, nil, argspec.RawOccurrences{}.Add("port", 0, "0"))
	var re *errs.ResolutionError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, errs.InvalidValue, re.Kind)
	assert.Equal(t, "0 is not between 1 and 65535", re.Detail)
	assert.ErrorIs(t, err, errs.ErrIntRange)

	_, err = argspec.Resolve(args, nil, argspec.RawOccurrences{}.Add("name", 0, string([]byte{0xc3})))
	assert.ErrorIs(t, err, errs.ErrNotUTF8)
}
