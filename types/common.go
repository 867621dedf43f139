package types

import (
	"strings"
)

// ArgSetting is a single independent switch in an ArgFlags set
type ArgSetting uint32

const (
	// Required denotes an argument which must always be supplied
	Required ArgSetting = 1 << iota
	// Multiple denotes an argument which may occur more than once
	Multiple
	// EmptyValues allows an argument to accept "" as a value
	EmptyValues
	// Global marks an argument as propagated to sub-commands (informational)
	Global
	// Hidden hides an argument from help output (informational)
	Hidden
	// TakesValue denotes an argument which accepts values
	TakesValue
	// UseValueDelimiter splits each supplied value on the value delimiter
	UseValueDelimiter
	// NextLineHelp renders help on the line after the switches (informational)
	NextLineHelp
	// RequiredUnlessAll switches required-unless from "any listed present" to "all listed present"
	RequiredUnlessAll
	// RequireDelimiter restricts an occurrence to a single delimited token
	RequireDelimiter
	// ValueDelimiterNotSet is a construction-only sentinel: no delimiter decision has been made yet
	ValueDelimiterNotSet
	// AllowHyphenValues lets values start with '-'
	AllowHyphenValues
)

var settingNames = []struct {
	setting ArgSetting
	name    string
}{
	{Required, "required"},
	{Multiple, "multiple"},
	{EmptyValues, "empty_values"},
	{Global, "global"},
	{Hidden, "hidden"},
	{TakesValue, "takes_value"},
	{UseValueDelimiter, "use_delimiter"},
	{NextLineHelp, "next_line_help"},
	{RequiredUnlessAll, "required_unless_all"},
	{RequireDelimiter, "require_delimiter"},
	{ValueDelimiterNotSet, "value_delimiter_not_set"},
	{AllowHyphenValues, "allow_hyphen_values"},
}

// String returns the snake_case name of a single setting
func (s ArgSetting) String() string {
	for _, n := range settingNames {
		if n.setting == s {
			return n.name
		}
	}

	return "unknown"
}

// ParseArgSetting converts a snake_case setting name to an ArgSetting
func ParseArgSetting(name string) (ArgSetting, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range settingNames {
		if n.name == name {
			return n.setting, true
		}
	}

	return 0, false
}

// ArgFlags is a fixed-size set of ArgSetting values
type ArgFlags uint32

// DefaultArgFlags is the state of a freshly created argument
const DefaultArgFlags = ArgFlags(EmptyValues) | ArgFlags(ValueDelimiterNotSet)

// Set returns a copy with s switched on
func (f ArgFlags) Set(s ArgSetting) ArgFlags {
	return f | ArgFlags(s)
}

// Unset returns a copy with s switched off
func (f ArgFlags) Unset(s ArgSetting) ArgFlags {
	return f &^ ArgFlags(s)
}

// IsSet reports whether s is switched on
func (f ArgFlags) IsSet(s ArgSetting) bool {
	return f&ArgFlags(s) != 0
}

// Settings lists the settings switched on, in declaration order
func (f ArgFlags) Settings() []ArgSetting {
	var out []ArgSetting
	for _, n := range settingNames {
		if f.IsSet(n.setting) {
			out = append(out, n.setting)
		}
	}

	return out
}

// String returns the switched-on settings separated by '|'
func (f ArgFlags) String() string {
	settings := f.Settings()
	names := make([]string, 0, len(settings))
	for _, s := range settings {
		names = append(names, s.String())
	}

	return strings.Join(names, "|")
}

// ValueSource tells where the values of a resolved argument came from
type ValueSource int

const (
	// Explicit values were supplied on the command line
	Explicit ValueSource = iota
	// Defaulted values were substituted from a default rule
	Defaulted
)

// String returns the string representation of a ValueSource
func (v ValueSource) String() string {
	switch v {
	case Explicit:
		return "explicit"
	case Defaulted:
		return "defaulted"
	}

	return "unknown"
}

// Alias is an alternative long switch for an argument
type Alias struct {
	Name    string
	Visible bool
}

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
