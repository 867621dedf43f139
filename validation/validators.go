// Package validation provides ready-made value validators for argspec arguments.
//
//	argspec.NewArg("port", argspec.WithLong("port"), argspec.WithValidator(validation.IntRange(1, 65535)))
package validation

import (
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/napalu/argspec/errs"
)

// ValidatorFunc validates a string value and returns an error if invalid
type ValidatorFunc func(value string) error

// Validate calls f(value)
func (f ValidatorFunc) Validate(value string) error {
	return f(value)
}

// BytesFunc validates the raw bytes of a value
type BytesFunc func(value []byte) error

// ValidateBytes calls f(value)
func (f BytesFunc) ValidateBytes(value []byte) error {
	return f(value)
}

// All combines multiple validators - all must pass
func All(validators ...ValidatorFunc) ValidatorFunc {
	return func(value string) error {
		for _, validator := range validators {
			if err := validator(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// Any combines multiple validators - at least one must pass
func Any(validators ...ValidatorFunc) ValidatorFunc {
	return func(value string) error {
		var causes []string
		for _, validator := range validators {
			err := validator(value)
			if err == nil {
				return nil
			}
			causes = append(causes, err.Error())
		}
		err := errs.ErrNoneMatched.WithArgs(value)
		if len(causes) > 0 {
			return err.Wrap(&combined{causes})
		}
		return err
	}
}

type combined struct {
	causes []string
}

func (c *combined) Error() string {
	return strings.Join(c.causes, "; ")
}

// Integer validates base-10 integers
func Integer() ValidatorFunc {
	return func(value string) error {
		if _, err := strconv.Atoi(value); err != nil {
			return errs.ErrNotInteger.WithArgs(value)
		}
		return nil
	}
}

// IntRange validates integer values are within range (inclusive)
func IntRange(min, max int) ValidatorFunc {
	return func(value string) error {
		num, err := strconv.Atoi(value)
		if err != nil {
			return errs.ErrNotInteger.WithArgs(value)
		}
		if num < min || num > max {
			return errs.ErrIntRange.WithArgs(value, min, max)
		}
		return nil
	}
}

// Float validates decimal numbers
func Float() ValidatorFunc {
	return func(value string) error {
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return errs.ErrNotFloat.WithArgs(value)
		}
		return nil
	}
}

// Regex validates that the whole value matches pattern. It panics if pattern does not compile.
func Regex(pattern string) ValidatorFunc {
	re := regexp.MustCompile("^(?:" + pattern + ")$")
	return func(value string) error {
		if !re.MatchString(value) {
			return errs.ErrPatternMismatch.WithArgs(value, pattern)
		}
		return nil
	}
}

// MinLength validates minimum string length in Unicode characters (not bytes)
func MinLength(min int) ValidatorFunc {
	return func(value string) error {
		if utf8.RuneCountInString(value) < min {
			return errs.ErrMinLength.WithArgs(value, min)
		}
		return nil
	}
}

// MaxLength validates maximum string length in Unicode characters (not bytes)
func MaxLength(max int) ValidatorFunc {
	return func(value string) error {
		if utf8.RuneCountInString(value) > max {
			return errs.ErrMaxLength.WithArgs(value, max)
		}
		return nil
	}
}

// Email validates email format
func Email() ValidatorFunc {
	return func(value string) error {
		if _, err := mail.ParseAddress(value); err != nil {
			return errs.ErrNotEmail.WithArgs(value).Wrap(err)
		}
		return nil
	}
}

// URL validates absolute URLs, optionally restricted to schemes
func URL(schemes ...string) ValidatorFunc {
	return func(value string) error {
		u, err := url.Parse(value)
		if err != nil {
			return errs.ErrNotURL.WithArgs(value).Wrap(err)
		}
		if u.Scheme == "" || u.Host == "" {
			return errs.ErrNotURL.WithArgs(value)
		}
		if len(schemes) == 0 {
			return nil
		}
		for _, scheme := range schemes {
			if strings.EqualFold(u.Scheme, scheme) {
				return nil
			}
		}
		return errs.ErrNotURL.WithArgs(value)
	}
}

// Duration validates values accepted by time.ParseDuration, such as "1h30m"
func Duration() ValidatorFunc {
	return func(value string) error {
		if _, err := time.ParseDuration(value); err != nil {
			return errs.ErrNotDuration.WithArgs(value).Wrap(err)
		}
		return nil
	}
}

// Date validates dates and timestamps in any layout dateparse recognises
func Date() ValidatorFunc {
	return func(value string) error {
		if _, err := dateparse.ParseAny(value); err != nil {
			return errs.ErrNotDate.WithArgs(value).Wrap(err)
		}
		return nil
	}
}

// UTF8 rejects values which are not valid UTF-8
func UTF8() BytesFunc {
	return func(value []byte) error {
		if !utf8.Valid(value) {
			return errs.ErrNotUTF8
		}
		return nil
	}
}
