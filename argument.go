package argspec

import (
	"fmt"
	"slices"
	"strings"

	"github.com/napalu/argspec/types"
)

// Argument describes one flag, option or positional. An Argument is built with NewArg and option
// functions, or with FromUsage, and must not be modified once it has been added to a Registry.
type Argument struct {
	Name    string
	Short   rune
	Long    string
	Aliases []types.Alias
	// Index is the 1-based positional index, 0 for arguments selected by switch
	Index    int
	Help     string
	LongHelp string
	Settings types.ArgFlags
	// NumValues, MinValues and MaxValues are unset when 0
	NumValues      int
	MinValues      int
	MaxValues      int
	ValueNames     []string
	Delimiter      rune
	Terminator     string
	PossibleValues []string
	Validator      Validator
	BytesValidator BytesValidator
	DefaultValue   *string
	DefaultIfs     []DefaultIf
	Requires       []Requirement
	RequiredIfs    []RequiredIf
	RequiredUnless []string
	ConflictsWith  []string
	OverridesWith  []string
	Groups         []string
	DisplayOrder   int

	// initialised is set once defaults have been applied, so a cleared bitset stays cleared
	initialised bool
}

// NewArg creates an argument called name and applies configs in order
func NewArg(name string, configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{}
	argument.ensureInit()
	argument.Name = name
	var err error
	for _, config := range configs {
		config(argument, &err)
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	arg := NewArg("out")
//	err := arg.Set(
//	    WithLong("output"),
//	    WithValueName("FILE"),
//	    WithSettingName("mandatory"),
//	)
//	if err != nil {
//	    // unknown setting
//	}
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	a.ensureInit()
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

func (a *Argument) ensureInit() {
	if a.initialised {
		return
	}
	a.initialised = true
	if a.Settings == 0 {
		a.Settings = types.DefaultArgFlags
	}
	if a.Delimiter == 0 {
		a.Delimiter = defaultDelimiter
	}
	if a.DisplayOrder == 0 {
		a.DisplayOrder = defaultDisplayOrder
	}
}

// Is reports whether setting s is on
func (a *Argument) Is(s types.ArgSetting) bool {
	return a.Settings.IsSet(s)
}

// TakesValue reports whether the argument accepts values
func (a *Argument) TakesValue() bool {
	return a.Is(types.TakesValue)
}

// IsPositional reports whether the argument is selected by position
func (a *Argument) IsPositional() bool {
	return a.Index > 0
}

// IsMultiple reports whether the argument may occur more than once
func (a *Argument) IsMultiple() bool {
	return a.Is(types.Multiple)
}

// UsesDelimiter reports whether occurrences are split on Delimiter
func (a *Argument) UsesDelimiter() bool {
	return a.Is(types.UseValueDelimiter)
}

// EffectiveNumValues returns the exact value count, if any. More than one value name implies one.
func (a *Argument) EffectiveNumValues() int {
	if a.NumValues > 0 {
		return a.NumValues
	}
	if len(a.ValueNames) > 1 {
		return len(a.ValueNames)
	}

	return 0
}

// Equal compares identity and settings. Value rules are ignored.
func (a *Argument) Equal(other *Argument) bool {
	if a == nil || other == nil {
		return a == other
	}

	return a.Name == other.Name &&
		a.Short == other.Short &&
		a.Long == other.Long &&
		slices.Equal(a.Aliases, other.Aliases) &&
		a.Index == other.Index &&
		a.Help == other.Help &&
		a.LongHelp == other.LongHelp &&
		a.Settings == other.Settings
}

// Switches returns the command-line spellings selecting the argument, short first
func (a *Argument) Switches() []string {
	var out []string
	if a.Short != 0 {
		out = append(out, "-"+string(a.Short))
	}
	if a.Long != "" {
		out = append(out, "--"+a.Long)
	}
	for _, al := range a.Aliases {
		out = append(out, "--"+al.Name)
	}

	return out
}

// String returns a usage-like rendering such as "-o, --output <FILE>..."
func (a *Argument) String() string {
	sb := strings.Builder{}
	if a.IsPositional() {
		sb.WriteString(a.placeholders())
	} else {
		if a.Short != 0 {
			sb.WriteString("-")
			sb.WriteRune(a.Short)
			if a.Long != "" {
				sb.WriteString(", ")
			}
		}
		if a.Long != "" {
			sb.WriteString("--")
			sb.WriteString(a.Long)
		}
		if a.TakesValue() {
			sb.WriteString(" ")
			sb.WriteString(a.placeholders())
		}
	}
	if a.IsMultiple() {
		sb.WriteString("...")
	}

	return sb.String()
}

func (a *Argument) placeholders() string {
	open, closing := "[", "]"
	if a.Is(types.Required) {
		open, closing = "<", ">"
	}
	names := a.ValueNames
	if len(names) == 0 {
		names = []string{a.Name}
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = open + n + closing
	}

	return strings.Join(parts, " ")
}

// Describe returns a multi-line summary of every configured rule
func (a *Argument) Describe() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "name: %s\n", a.Name)
	if sw := a.Switches(); len(sw) > 0 {
		fmt.Fprintf(&sb, "switches: %s\n", strings.Join(sw, ", "))
	}
	if a.IsPositional() {
		fmt.Fprintf(&sb, "index: %d\n", a.Index)
	}
	fmt.Fprintf(&sb, "settings: %s\n", a.Settings)
	if a.Help != "" {
		fmt.Fprintf(&sb, "help: %s\n", a.Help)
	}
	if len(a.ValueNames) > 0 {
		fmt.Fprintf(&sb, "value names: %s\n", strings.Join(a.ValueNames, ", "))
	}
	if n := a.EffectiveNumValues(); n > 0 {
		fmt.Fprintf(&sb, "number of values: %d\n", n)
	}
	if a.MinValues > 0 {
		fmt.Fprintf(&sb, "min values: %d\n", a.MinValues)
	}
	if a.MaxValues > 0 {
		fmt.Fprintf(&sb, "max values: %d\n", a.MaxValues)
	}
	if a.UsesDelimiter() {
		fmt.Fprintf(&sb, "delimiter: %q\n", a.Delimiter)
	}
	if a.DefaultValue != nil {
		fmt.Fprintf(&sb, "default: %s\n", *a.DefaultValue)
	}
	if len(a.PossibleValues) > 0 {
		fmt.Fprintf(&sb, "possible values: %s\n", strings.Join(a.PossibleValues, ", "))
	}
	if len(a.ConflictsWith) > 0 {
		fmt.Fprintf(&sb, "conflicts with: %s\n", strings.Join(a.ConflictsWith, ", "))
	}
	if len(a.OverridesWith) > 0 {
		fmt.Fprintf(&sb, "overrides: %s\n", strings.Join(a.OverridesWith, ", "))
	}
	if len(a.Requires) > 0 {
		targets := make([]string, len(a.Requires))
		for i, r := range a.Requires {
			targets[i] = r.Target
			if r.Value != nil {
				targets[i] += "=" + *r.Value + "?"
			}
		}
		fmt.Fprintf(&sb, "requires: %s\n", strings.Join(targets, ", "))
	}
	if len(a.RequiredUnless) > 0 {
		mode := "any"
		if a.Is(types.RequiredUnlessAll) {
			mode = "all"
		}
		fmt.Fprintf(&sb, "required unless %s: %s\n", mode, strings.Join(a.RequiredUnless, ", "))
	}
	if len(a.Groups) > 0 {
		fmt.Fprintf(&sb, "groups: %s\n", strings.Join(a.Groups, ", "))
	}

	return sb.String()
}

// references lists every name the argument's rules point at, keyed by rule
func (a *Argument) references() []types.KeyValue[string, string] {
	var refs []types.KeyValue[string, string]
	add := func(rule string, names ...string) {
		for _, n := range names {
			refs = append(refs, types.KeyValue[string, string]{Key: rule, Value: n})
		}
	}
	for _, r := range a.Requires {
		add("requires", r.Target)
	}
	for _, r := range a.RequiredIfs {
		add("required_if", r.Arg)
	}
	for _, d := range a.DefaultIfs {
		add("default_value_if", d.Arg)
	}
	add("required_unless", a.RequiredUnless...)
	add("conflicts_with", a.ConflictsWith...)
	add("overrides_with", a.OverridesWith...)

	return refs
}

func (a *Argument) clone() *Argument {
	c := *a
	c.Aliases = slices.Clone(a.Aliases)
	c.ValueNames = slices.Clone(a.ValueNames)
	c.PossibleValues = slices.Clone(a.PossibleValues)
	c.DefaultIfs = slices.Clone(a.DefaultIfs)
	c.Requires = slices.Clone(a.Requires)
	c.RequiredIfs = slices.Clone(a.RequiredIfs)
	c.RequiredUnless = slices.Clone(a.RequiredUnless)
	c.ConflictsWith = slices.Clone(a.ConflictsWith)
	c.OverridesWith = slices.Clone(a.OverridesWith)
	c.Groups = slices.Clone(a.Groups)
	if a.DefaultValue != nil {
		v := *a.DefaultValue
		c.DefaultValue = &v
	}

	return &c
}
