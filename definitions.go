package argspec

import (
	"slices"

	"github.com/napalu/argspec/types"
)

// ConfigureArgumentFunc is used when defining arguments. Argument options never fail on their own;
// err is only set by options which interpret external input (see WithSettingName).
type ConfigureArgumentFunc func(argument *Argument, err *error)

// ConfigureGroupFunc is used when defining groups
type ConfigureGroupFunc func(group *Group)

// ConfigureRegistryFunc is used when creating a Registry
type ConfigureRegistryFunc func(registry *Registry)

// Validator checks a single supplied value. A non-nil error rejects the value and its message is
// reported verbatim.
type Validator interface {
	Validate(value string) error
}

// ValidatorFunc adapts a function to the Validator interface
type ValidatorFunc func(value string) error

// Validate calls f(value)
func (f ValidatorFunc) Validate(value string) error {
	return f(value)
}

// BytesValidator checks the raw bytes of a single supplied value
type BytesValidator interface {
	ValidateBytes(value []byte) error
}

// BytesValidatorFunc adapts a function to the BytesValidator interface
type BytesValidatorFunc func(value []byte) error

// ValidateBytes calls f(value)
func (f BytesValidatorFunc) ValidateBytes(value []byte) error {
	return f(value)
}

// Requirement makes Target required when the declaring argument is present. When Value is non-nil
// the requirement only applies if the declaring argument's first value equals *Value.
type Requirement struct {
	Target string
	Value  *string
}

// RequiredIf makes the declaring argument required when Arg is present with first value Value
type RequiredIf struct {
	Arg   string
	Value string
}

// DefaultIf supplies Default when Arg is present and, if Value is non-nil, its first value equals *Value
type DefaultIf struct {
	Arg     string
	Value   *string
	Default string
}

// Occurrence is one appearance of an argument on the command line. Position is the index of the
// token which introduced it and orders occurrences across arguments.
type Occurrence struct {
	Values   []string
	Position int
}

// RawOccurrences maps argument names to their occurrences in supply order
type RawOccurrences map[string][]Occurrence

// Add appends an occurrence of name at position
func (r RawOccurrences) Add(name string, position int, values ...string) RawOccurrences {
	r[name] = append(r[name], Occurrence{Values: values, Position: position})
	return r
}

// Names returns the sorted names having at least one occurrence
func (r RawOccurrences) Names() []string {
	names := make([]string, 0, len(r))
	for name, occ := range r {
		if len(occ) > 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	return names
}

// MatchedArg is the resolved state of one present argument
type MatchedArg struct {
	// Occurrences is the number of explicit occurrences, 0 when defaulted
	Occurrences int
	// Values holds the delimiter-split values in supply order
	Values []string
	// Indices holds the token position of each value
	Indices []int
	Source  types.ValueSource
}

const (
	defaultDelimiter    = ','
	defaultDisplayOrder = 999
)
