// Package errs provides the error values returned by argspec.
// This file contains constants for all translation keys used throughout the library.
package errs

// Prefix for all argspec translation keys
const (
	prefixKey = "argspec"
)

// Key prefixes
const (
	ErrorPrefixKey      = prefixKey + ".error"
	UsagePrefixKey      = prefixKey + ".usage"
	ValidationPrefixKey = prefixKey + ".validation"
)

// Resolution errors
const (
	ErrArgumentConflictKey     = ErrorPrefixKey + ".argument_conflict"
	ErrMissingRequiredKey      = ErrorPrefixKey + ".missing_required_argument"
	ErrWrongNumberOfValuesKey  = ErrorPrefixKey + ".wrong_number_of_values"
	ErrTooFewValuesKey         = ErrorPrefixKey + ".too_few_values"
	ErrTooManyValuesKey        = ErrorPrefixKey + ".too_many_values"
	ErrInvalidValueKey         = ErrorPrefixKey + ".invalid_value"
	ErrNotPossibleValueKey     = ErrorPrefixKey + ".not_possible_value"
	ErrEmptyValueKey           = ErrorPrefixKey + ".empty_value"
	ErrUnknownOccurrenceKey    = ErrorPrefixKey + ".unknown_occurrence"
	ErrUnexpectedValuesKey     = ErrorPrefixKey + ".unexpected_values"
	ErrUnknownSwitchKey        = ErrorPrefixKey + ".unknown_switch"
	ErrMissingValueKey         = ErrorPrefixKey + ".missing_value"
	ErrUnexpectedPositionalKey = ErrorPrefixKey + ".unexpected_positional"
)

// Configuration errors
const (
	ErrUnknownGroupMemberKey        = ErrorPrefixKey + ".unknown_group_member"
	ErrUnknownReferenceKey          = ErrorPrefixKey + ".unknown_reference"
	ErrPositionalIndexGapKey        = ErrorPrefixKey + ".positional_index_gap"
	ErrDuplicatePositionalIndexKey  = ErrorPrefixKey + ".duplicate_positional_index"
	ErrPositionalMultipleNotLastKey = ErrorPrefixKey + ".positional_multiple_not_last"
	ErrPositionalWithSwitchKey      = ErrorPrefixKey + ".positional_with_switch"
	ErrDuplicateArgumentKey         = ErrorPrefixKey + ".duplicate_argument"
	ErrDuplicateSwitchKey           = ErrorPrefixKey + ".duplicate_switch"
	ErrMalformedUsageKey            = ErrorPrefixKey + ".malformed_usage"
	ErrUnknownSettingKey            = ErrorPrefixKey + ".unknown_setting"
	ErrInvalidSettingKey            = ErrorPrefixKey + ".invalid_setting"
	ErrRegistryFrozenKey            = ErrorPrefixKey + ".registry_frozen"
	ErrEmptyNameKey                 = ErrorPrefixKey + ".empty_name"
	ErrUnsupportedFormatKey         = ErrorPrefixKey + ".unsupported_format"
	ErrDeclarationKey               = ErrorPrefixKey + ".declaration"
)

// Usage-string scanner errors
const (
	ErrUnterminatedBracketKey = UsagePrefixKey + ".unterminated_bracket"
	ErrUnterminatedQuoteKey   = UsagePrefixKey + ".unterminated_quote"
	ErrDuplicateHelpKey       = UsagePrefixKey + ".duplicate_help"
	ErrUnexpectedTokenKey     = UsagePrefixKey + ".unexpected_token"
	ErrEmptySwitchKey         = UsagePrefixKey + ".empty_switch"
	ErrInvalidShortKey        = UsagePrefixKey + ".invalid_short"
	ErrDuplicateSwitchTextKey = UsagePrefixKey + ".duplicate_switch"
	ErrEmptyPlaceholderKey    = UsagePrefixKey + ".empty_placeholder"
	ErrNoNameKey              = UsagePrefixKey + ".no_name"
)

// Validator messages
const (
	ErrNotIntegerKey      = ValidationPrefixKey + ".integer"
	ErrIntRangeKey        = ValidationPrefixKey + ".int_range"
	ErrNotFloatKey        = ValidationPrefixKey + ".float"
	ErrPatternMismatchKey = ValidationPrefixKey + ".pattern"
	ErrMinLengthKey       = ValidationPrefixKey + ".min_length"
	ErrMaxLengthKey       = ValidationPrefixKey + ".max_length"
	ErrNotEmailKey        = ValidationPrefixKey + ".email"
	ErrNotURLKey          = ValidationPrefixKey + ".url"
	ErrNotDurationKey     = ValidationPrefixKey + ".duration"
	ErrNotDateKey         = ValidationPrefixKey + ".date"
	ErrNotUTF8Key         = ValidationPrefixKey + ".utf8"
	ErrNoneMatchedKey     = ValidationPrefixKey + ".none_matched"
)
