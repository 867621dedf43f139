package errs

import (
	"errors"
	"strings"

	"github.com/napalu/argspec/i18n"
)

// Resolution errors
var (
	ErrArgumentConflict     = i18n.NewError(ErrArgumentConflictKey)
	ErrMissingRequired      = i18n.NewError(ErrMissingRequiredKey)
	ErrWrongNumberOfValues  = i18n.NewError(ErrWrongNumberOfValuesKey)
	ErrTooFewValues         = i18n.NewError(ErrTooFewValuesKey)
	ErrTooManyValues        = i18n.NewError(ErrTooManyValuesKey)
	ErrInvalidValue         = i18n.NewError(ErrInvalidValueKey)
	ErrNotPossibleValue     = i18n.NewError(ErrNotPossibleValueKey)
	ErrEmptyValue           = i18n.NewError(ErrEmptyValueKey)
	ErrUnknownOccurrence    = i18n.NewError(ErrUnknownOccurrenceKey)
	ErrUnexpectedValues     = i18n.NewError(ErrUnexpectedValuesKey)
	ErrUnknownSwitch        = i18n.NewError(ErrUnknownSwitchKey)
	ErrMissingValue         = i18n.NewError(ErrMissingValueKey)
	ErrUnexpectedPositional = i18n.NewError(ErrUnexpectedPositionalKey)
)

// Configuration errors
var (
	ErrUnknownGroupMember        = i18n.NewError(ErrUnknownGroupMemberKey)
	ErrUnknownReference          = i18n.NewError(ErrUnknownReferenceKey)
	ErrPositionalIndexGap        = i18n.NewError(ErrPositionalIndexGapKey)
	ErrDuplicatePositionalIndex  = i18n.NewError(ErrDuplicatePositionalIndexKey)
	ErrPositionalMultipleNotLast = i18n.NewError(ErrPositionalMultipleNotLastKey)
	ErrPositionalWithSwitch      = i18n.NewError(ErrPositionalWithSwitchKey)
	ErrDuplicateArgument         = i18n.NewError(ErrDuplicateArgumentKey)
	ErrDuplicateSwitch           = i18n.NewError(ErrDuplicateSwitchKey)
	ErrMalformedUsage            = i18n.NewError(ErrMalformedUsageKey)
	ErrUnknownSetting            = i18n.NewError(ErrUnknownSettingKey)
	ErrInvalidSetting            = i18n.NewError(ErrInvalidSettingKey)
	ErrRegistryFrozen            = i18n.NewError(ErrRegistryFrozenKey)
	ErrEmptyName                 = i18n.NewError(ErrEmptyNameKey)
	ErrUnsupportedFormat         = i18n.NewError(ErrUnsupportedFormatKey)
	ErrDeclaration               = i18n.NewError(ErrDeclarationKey)
)

// Usage-string scanner errors
var (
	ErrUnterminatedBracket = i18n.NewError(ErrUnterminatedBracketKey)
	ErrUnterminatedQuote   = i18n.NewError(ErrUnterminatedQuoteKey)
	ErrDuplicateHelp       = i18n.NewError(ErrDuplicateHelpKey)
	ErrUnexpectedToken     = i18n.NewError(ErrUnexpectedTokenKey)
	ErrEmptySwitch         = i18n.NewError(ErrEmptySwitchKey)
	ErrInvalidShort        = i18n.NewError(ErrInvalidShortKey)
	ErrDuplicateSwitchText = i18n.NewError(ErrDuplicateSwitchTextKey)
	ErrEmptyPlaceholder    = i18n.NewError(ErrEmptyPlaceholderKey)
	ErrNoName              = i18n.NewError(ErrNoNameKey)
)

// Validator errors
var (
	ErrNotInteger      = i18n.NewError(ErrNotIntegerKey)
	ErrIntRange        = i18n.NewError(ErrIntRangeKey)
	ErrNotFloat        = i18n.NewError(ErrNotFloatKey)
	ErrPatternMismatch = i18n.NewError(ErrPatternMismatchKey)
	ErrMinLength       = i18n.NewError(ErrMinLengthKey)
	ErrMaxLength       = i18n.NewError(ErrMaxLengthKey)
	ErrNotEmail        = i18n.NewError(ErrNotEmailKey)
	ErrNotURL          = i18n.NewError(ErrNotURLKey)
	ErrNotDuration     = i18n.NewError(ErrNotDurationKey)
	ErrNotDate         = i18n.NewError(ErrNotDateKey)
	ErrNotUTF8         = i18n.NewError(ErrNotUTF8Key)
	ErrNoneMatched     = i18n.NewError(ErrNoneMatchedKey)
)

// ResolutionError is a runtime error caused by the supplied arguments. Exactly one is
// reported per resolution. It unwraps to its translatable sentinel so callers can use errors.Is.
type ResolutionError struct {
	Kind Kind
	// Args names the implicated arguments or groups, offender first
	Args []string
	// Values holds the offending values, if any
	Values []string
	// Detail is the verbatim validator message for InvalidValue
	Detail string
	err    i18n.TranslatableError
}

func (e *ResolutionError) Error() string {
	return e.err.Error()
}

// Format renders the error through provider
func (e *ResolutionError) Format(provider i18n.MessageProvider) string {
	return e.err.Format(provider)
}

func (e *ResolutionError) Unwrap() error {
	return e.err
}

// Is matches the sentinel of e's Kind
func (e *ResolutionError) Is(target error) bool {
	if s := sentinelOf(e.Kind); s != nil {
		return errors.Is(s, target)
	}

	return false
}

// ConfigError is a programmer error in the argument declarations. It is detected at
// compile time and is never caused by end-user input.
type ConfigError struct {
	Kind Kind
	// Arg is the argument, group or usage string the error was detected on
	Arg string
	// Ref is the offending reference, switch or setting key, if any
	Ref string
	err i18n.TranslatableError
}

func (e *ConfigError) Error() string {
	return e.err.Error()
}

// Format renders the error through provider
func (e *ConfigError) Format(provider i18n.MessageProvider) string {
	return e.err.Format(provider)
}

func (e *ConfigError) Unwrap() error {
	return e.err
}

// Is matches the sentinel of e's Kind
func (e *ConfigError) Is(target error) bool {
	if s := sentinelOf(e.Kind); s != nil {
		return errors.Is(s, target)
	}

	return false
}

// IsConfigError reports whether err is, or wraps, a ConfigError
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// KindOf returns the Kind of a ResolutionError or ConfigError in err's chain, or Unknown
func KindOf(err error) Kind {
	var re *ResolutionError
	if errors.As(err, &re) {
		return re.Kind
	}
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Kind
	}

	return Unknown
}

func resolution(kind Kind, te i18n.TranslatableError, args []string, values ...string) *ResolutionError {
	return &ResolutionError{Kind: kind, Args: args, Values: values, err: te}
}

// NewArgumentConflict reports arg being used together with other
func NewArgumentConflict(arg, other string) *ResolutionError {
	return resolution(ArgumentConflict, ErrArgumentConflict.WithArgs(arg, other), []string{arg, other})
}

// NewMissingRequired reports a required argument or group which ended up absent
func NewMissingRequired(name string) *ResolutionError {
	return resolution(MissingRequiredArgument, ErrMissingRequired.WithArgs(name), []string{name})
}

// NewWrongNumberOfValues reports a value count which differs from the exact count wanted
func NewWrongNumberOfValues(arg string, want, got int) *ResolutionError {
	return resolution(WrongNumberOfValues, ErrWrongNumberOfValues.WithArgs(arg, want, got), []string{arg})
}

// NewTooFewValues reports a value count below the minimum
func NewTooFewValues(arg string, min, got int) *ResolutionError {
	return resolution(TooFewValues, ErrTooFewValues.WithArgs(arg, min, got), []string{arg})
}

// NewTooManyValues reports a value count above the maximum
func NewTooManyValues(arg string, max, got int) *ResolutionError {
	return resolution(TooManyValues, ErrTooManyValues.WithArgs(arg, max, got), []string{arg})
}

// NewInvalidValue reports a validator rejecting value. The cause's message is kept verbatim in Detail.
func NewInvalidValue(arg, value string, cause error) *ResolutionError {
	e := resolution(InvalidValue, ErrInvalidValue.WithArgs(value, arg).Wrap(cause), []string{arg}, value)
	e.Detail = cause.Error()

	return e
}

// NewNotPossibleValue reports value missing from the allow-list
func NewNotPossibleValue(arg, value string, possible []string) *ResolutionError {
	list := strings.Join(possible, ", ")
	e := resolution(InvalidValue, ErrNotPossibleValue.WithArgs(value, arg, list), []string{arg}, value)
	e.Detail = list

	return e
}

// NewEmptyValue reports an empty value for an argument which does not allow one
func NewEmptyValue(arg string) *ResolutionError {
	return resolution(EmptyValue, ErrEmptyValue.WithArgs(arg), []string{arg}, "")
}

// NewUnknownSwitch reports a command-line token naming no argument
func NewUnknownSwitch(token string) *ResolutionError {
	return resolution(UnknownArgument, ErrUnknownSwitch.WithArgs(token), nil, token)
}

// NewMissingValue reports a value-taking argument at the end of input or before another switch
func NewMissingValue(arg string) *ResolutionError {
	return resolution(MissingValue, ErrMissingValue.WithArgs(arg), []string{arg})
}

// NewUnexpectedValues reports a value attached to a flag
func NewUnexpectedValues(arg, value string) *ResolutionError {
	return resolution(UnexpectedValue, ErrUnexpectedValues.WithArgs(arg, value), []string{arg}, value)
}

// NewUnexpectedPositional reports a positional token with no positional argument left to take it
func NewUnexpectedPositional(value string) *ResolutionError {
	return resolution(UnexpectedPositional, ErrUnexpectedPositional.WithArgs(value), nil, value)
}

func config(kind Kind, arg, ref string, te i18n.TranslatableError) *ConfigError {
	return &ConfigError{Kind: kind, Arg: arg, Ref: ref, err: te}
}

// NewUnknownOccurrence reports raw input keyed by a name the registry does not know
func NewUnknownOccurrence(name string) *ConfigError {
	return config(UnknownReference, name, name, ErrUnknownOccurrence.WithArgs(name))
}

// NewUnknownGroupMember reports a group listing an undefined argument
func NewUnknownGroupMember(group, member string) *ConfigError {
	return config(UnknownGroupMember, group, member, ErrUnknownGroupMember.WithArgs(group, member))
}

// NewUnknownReference reports a rule of owner naming an undefined argument or group
func NewUnknownReference(owner, ref, rule string) *ConfigError {
	return config(UnknownReference, owner, ref, ErrUnknownReference.WithArgs(owner, ref, rule))
}

// NewPositionalIndexGap reports a positional index missing from the 1..n sequence
func NewPositionalIndexGap(missing int) *ConfigError {
	return config(PositionalIndexGap, "", "", ErrPositionalIndexGap.WithArgs(missing))
}

// NewDuplicatePositionalIndex reports two positionals sharing an index
func NewDuplicatePositionalIndex(index int, first, second string) *ConfigError {
	return config(PositionalIndexGap, second, first, ErrDuplicatePositionalIndex.WithArgs(index, first, second))
}

// NewPositionalMultipleNotLast reports a multiple positional followed by further positionals
func NewPositionalMultipleNotLast(arg string) *ConfigError {
	return config(PositionalMultipleNotLast, arg, "", ErrPositionalMultipleNotLast.WithArgs(arg))
}

// NewPositionalWithSwitch reports a positional which also declares a switch
func NewPositionalWithSwitch(arg string) *ConfigError {
	return config(PositionalWithSwitch, arg, "", ErrPositionalWithSwitch.WithArgs(arg))
}

// NewDuplicateArgument reports a name defined twice
func NewDuplicateArgument(name string) *ConfigError {
	return config(DuplicateArgument, name, "", ErrDuplicateArgument.WithArgs(name))
}

// NewDuplicateSwitch reports a switch used by two arguments
func NewDuplicateSwitch(sw, first, second string) *ConfigError {
	return config(DuplicateSwitch, second, sw, ErrDuplicateSwitch.WithArgs(sw, first, second))
}

// NewMalformedUsage reports a usage string the scanner rejected
func NewMalformedUsage(usage string, cause error) *ConfigError {
	return config(MalformedUsage, usage, "", ErrMalformedUsage.WithArgs(usage).Wrap(cause))
}

// NewUnknownSetting reports a declarative setting key with no meaning
func NewUnknownSetting(key, arg string) *ConfigError {
	return config(UnknownSetting, arg, key, ErrUnknownSetting.WithArgs(key, arg))
}

// NewInvalidSetting reports a declarative setting whose value has the wrong shape
func NewInvalidSetting(key, arg string, cause error) *ConfigError {
	return config(InvalidSetting, arg, key, ErrInvalidSetting.WithArgs(key, arg).Wrap(cause))
}

// NewRegistryFrozen reports a mutation after compilation
func NewRegistryFrozen(name string) *ConfigError {
	return config(RegistryFrozen, name, "", ErrRegistryFrozen.WithArgs(name))
}

// NewEmptyName reports an argument or group without a name
func NewEmptyName() *ConfigError {
	return config(EmptyName, "", "", ErrEmptyName)
}

// NewUnsupportedFormat reports a declaration file with an unknown extension
func NewUnsupportedFormat(source string) *ConfigError {
	return config(UnsupportedFormat, source, "", ErrUnsupportedFormat.WithArgs(source))
}

// NewDeclaration reports a declaration document which could not be decoded
func NewDeclaration(source string, cause error) *ConfigError {
	return config(InvalidDeclaration, source, "", ErrDeclaration.WithArgs(source).Wrap(cause))
}
