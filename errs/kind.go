package errs

import "github.com/napalu/argspec/i18n"

// Kind discriminates argspec errors
type Kind int

const (
	Unknown Kind = iota

	// resolution kinds
	ArgumentConflict
	MissingRequiredArgument
	WrongNumberOfValues
	TooFewValues
	TooManyValues
	InvalidValue
	EmptyValue

	// input kinds reported by the tokenizer
	UnknownArgument
	MissingValue
	UnexpectedValue
	UnexpectedPositional

	// configuration kinds
	UnknownGroupMember
	UnknownReference
	PositionalIndexGap
	PositionalMultipleNotLast
	PositionalWithSwitch
	DuplicateArgument
	DuplicateSwitch
	MalformedUsage
	UnknownSetting
	InvalidSetting
	RegistryFrozen
	EmptyName
	UnsupportedFormat
	InvalidDeclaration
)

var kindNames = map[Kind]string{
	Unknown:                   "Unknown",
	ArgumentConflict:          "ArgumentConflict",
	MissingRequiredArgument:   "MissingRequiredArgument",
	WrongNumberOfValues:       "WrongNumberOfValues",
	TooFewValues:              "TooFewValues",
	TooManyValues:             "TooManyValues",
	InvalidValue:              "InvalidValue",
	EmptyValue:                "EmptyValue",
	UnknownArgument:           "UnknownArgument",
	MissingValue:              "MissingValue",
	UnexpectedValue:           "UnexpectedValue",
	UnexpectedPositional:      "UnexpectedPositional",
	UnknownGroupMember:        "UnknownGroupMember",
	UnknownReference:          "UnknownReference",
	PositionalIndexGap:        "PositionalIndexGap",
	PositionalMultipleNotLast: "PositionalMultipleNotLast",
	PositionalWithSwitch:      "PositionalWithSwitch",
	DuplicateArgument:         "DuplicateArgument",
	DuplicateSwitch:           "DuplicateSwitch",
	MalformedUsage:            "MalformedUsage",
	UnknownSetting:            "UnknownSetting",
	InvalidSetting:            "InvalidSetting",
	RegistryFrozen:            "RegistryFrozen",
	EmptyName:                 "EmptyName",
	UnsupportedFormat:         "UnsupportedFormat",
	InvalidDeclaration:        "InvalidDeclaration",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}

	return kindNames[Unknown]
}

// IsConfig reports whether k is detected while compiling declarations
func (k Kind) IsConfig() bool {
	return k >= UnknownGroupMember
}

// sentinelOf maps a kind to the sentinel errors.Is should match. Kinds which share
// several keys (InvalidValue, PositionalIndexGap, UnknownReference) map to their primary one.
func sentinelOf(k Kind) *i18n.TrError {
	switch k {
	case ArgumentConflict:
		return ErrArgumentConflict
	case MissingRequiredArgument:
		return ErrMissingRequired
	case WrongNumberOfValues:
		return ErrWrongNumberOfValues
	case TooFewValues:
		return ErrTooFewValues
	case TooManyValues:
		return ErrTooManyValues
	case InvalidValue:
		return ErrInvalidValue
	case EmptyValue:
		return ErrEmptyValue
	case UnknownArgument:
		return ErrUnknownSwitch
	case MissingValue:
		return ErrMissingValue
	case UnexpectedValue:
		return ErrUnexpectedValues
	case UnexpectedPositional:
		return ErrUnexpectedPositional
	case UnknownGroupMember:
		return ErrUnknownGroupMember
	case UnknownReference:
		return ErrUnknownReference
	case PositionalIndexGap:
		return ErrPositionalIndexGap
	case PositionalMultipleNotLast:
		return ErrPositionalMultipleNotLast
	case PositionalWithSwitch:
		return ErrPositionalWithSwitch
	case DuplicateArgument:
		return ErrDuplicateArgument
	case DuplicateSwitch:
		return ErrDuplicateSwitch
	case MalformedUsage:
		return ErrMalformedUsage
	case UnknownSetting:
		return ErrUnknownSetting
	case InvalidSetting:
		return ErrInvalidSetting
	case RegistryFrozen:
		return ErrRegistryFrozen
	case EmptyName:
		return ErrEmptyName
	case UnsupportedFormat:
		return ErrUnsupportedFormat
	case InvalidDeclaration:
		return ErrDeclaration
	}

	return nil
}
