package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	Format(provider MessageProvider) string
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. Copies made with WithArgs or Wrap keep the sentinel
// so that errors.Is matches them against the value returned by NewError.
//
// Example usage:
//
//	err := NewError("argspec.error.argument_conflict")
//	err = err.WithArgs("verbose", "quiet")
type TrError struct {
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// NewErrorWithProvider creates a new translatable error with a key and a fixed provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	e := NewError(key)
	e.messageProvider = provider

	return e
}

// Error returns the message rendered by the error's provider, or the package default
func (e *TrError) Error() string {
	provider := e.messageProvider
	if provider == nil {
		provider = getDefaultProvider()
	}

	return e.Format(provider)
}

// Format renders the message through provider
func (e *TrError) Format(provider MessageProvider) string {
	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		var tr TranslatableError
		if errors.As(e.wrapped, &tr) {
			return fmt.Sprintf("%s: %s", msg, tr.Format(provider))
		}
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel || target == e
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// Package-level provider management
var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider allows users to set their own provider. Passing nil restores the
// embedded English bundle.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

// DefaultMessageProvider returns the provider used when an error carries none
func DefaultMessageProvider() MessageProvider {
	return getDefaultProvider()
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default(), Default().DefaultLanguage())
	}

	return defaultProvider
}
