package argspec

import (
	"strings"

	"github.com/napalu/argspec/errs"
	"github.com/napalu/argspec/types"
)

// WithShort sets the short switch. Leading hyphens are stripped and only the first character is kept.
func WithShort(short string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		short = strings.TrimLeft(short, "-")
		for _, r := range short {
			argument.Short = r
			return
		}
	}
}

// WithLong sets the long switch. Leading hyphens are stripped.
func WithLong(long string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Long = strings.TrimLeft(long, "-")
	}
}

// WithAliases adds hidden long aliases
func WithAliases(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		for _, n := range names {
			argument.Aliases = append(argument.Aliases, types.Alias{Name: strings.TrimLeft(n, "-")})
		}
	}
}

// WithVisibleAliases adds long aliases which are shown in help
func WithVisibleAliases(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		for _, n := range names {
			argument.Aliases = append(argument.Aliases, types.Alias{Name: strings.TrimLeft(n, "-"), Visible: true})
		}
	}
}

// WithIndex makes the argument positional at 1-based index. Positionals always take a value.
func WithIndex(index int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Index = index
		argument.Settings = argument.Settings.Set(types.TakesValue)
	}
}

// WithHelp sets the short help text
func WithHelp(help string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Help = help
	}
}

// WithLongHelp sets the long help text
func WithLongHelp(help string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.LongHelp = help
	}
}

// WithDisplayOrder sets the help sort key. Lower values are shown first.
func WithDisplayOrder(order int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DisplayOrder = order
	}
}

// WithRequired sets or clears the required setting
func WithRequired(required bool) ConfigureArgumentFunc {
	return setting(types.Required, required)
}

// WithMultiple allows the argument to occur more than once
func WithMultiple(multiple bool) ConfigureArgumentFunc {
	return setting(types.Multiple, multiple)
}

// WithTakesValue sets or clears the takes-value setting
func WithTakesValue(takesValue bool) ConfigureArgumentFunc {
	return setting(types.TakesValue, takesValue)
}

// WithGlobal marks the argument as propagated to sub-commands
func WithGlobal(global bool) ConfigureArgumentFunc {
	return setting(types.Global, global)
}

// WithHidden hides the argument from help
func WithHidden(hidden bool) ConfigureArgumentFunc {
	return setting(types.Hidden, hidden)
}

// WithNextLineHelp renders help below the switches
func WithNextLineHelp(nextLine bool) ConfigureArgumentFunc {
	return setting(types.NextLineHelp, nextLine)
}

// WithAllowHyphenValues lets values start with '-'
func WithAllowHyphenValues(allow bool) ConfigureArgumentFunc {
	return setting(types.AllowHyphenValues, allow)
}

// WithEmptyValues allows or rejects "" as a value. Empty values are allowed by default.
func WithEmptyValues(allow bool) ConfigureArgumentFunc {
	return setting(types.EmptyValues, allow)
}

// WithSetting switches settings on
func WithSetting(settings ...types.ArgSetting) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		for _, s := range settings {
			argument.Settings = argument.Settings.Set(s)
		}
	}
}

// WithoutSetting switches settings off
func WithoutSetting(settings ...types.ArgSetting) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		for _, s := range settings {
			argument.Settings = argument.Settings.Unset(s)
		}
	}
}

// WithSettingName switches on a setting given by its snake_case name, failing with UnknownSetting
func WithSettingName(name string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		s, ok := types.ParseArgSetting(name)
		if !ok {
			*err = errs.NewUnknownSetting(name, argument.Name)
			return
		}
		argument.Settings = argument.Settings.Set(s)
	}
}

func setting(s types.ArgSetting, on bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if on {
			argument.Settings = argument.Settings.Set(s)
		} else {
			argument.Settings = argument.Settings.Unset(s)
		}
	}
}

// WithNumberOfValues fixes the total value count
func WithNumberOfValues(n int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.NumValues = n
		argument.Settings = argument.Settings.Set(types.TakesValue)
	}
}

// WithMinValues sets the lowest accepted value count
func WithMinValues(n int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.MinValues = n
		argument.Settings = argument.Settings.Set(types.TakesValue)
	}
}

// WithMaxValues sets the highest accepted value count
func WithMaxValues(n int) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.MaxValues = n
		argument.Settings = argument.Settings.Set(types.TakesValue)
	}
}

// WithValueTerminator sets the token ending greedy value consumption. The terminator is not a value.
func WithValueTerminator(terminator string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Terminator = terminator
		argument.Settings = argument.Settings.Set(types.TakesValue)
	}
}

// WithValueDelimiter sets the character splitting one occurrence into several values and enables splitting
func WithValueDelimiter(delimiter rune) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Delimiter = delimiter
		argument.Settings = argument.Settings.
			Unset(types.ValueDelimiterNotSet).
			Set(types.TakesValue).
			Set(types.UseValueDelimiter)
	}
}

// WithUseDelimiter enables or disables splitting on the current delimiter
func WithUseDelimiter(use bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Settings = argument.Settings.Unset(types.ValueDelimiterNotSet)
		if use {
			argument.Settings = argument.Settings.Set(types.UseValueDelimiter).Set(types.TakesValue)
		} else {
			argument.Settings = argument.Settings.Unset(types.UseValueDelimiter)
		}
	}
}

// WithRequireDelimiter makes each occurrence a single delimited token
func WithRequireDelimiter(require bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if !require {
			argument.Settings = argument.Settings.Unset(types.RequireDelimiter)
			return
		}
		argument.Settings = argument.Settings.
			Unset(types.ValueDelimiterNotSet).
			Set(types.UseValueDelimiter).
			Set(types.RequireDelimiter).
			Set(types.TakesValue)
	}
}

// WithValueNames sets the value placeholders. More than one name fixes the value count, and
// delimiter use is enabled unless the delimiter was configured explicitly.
func WithValueNames(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Settings = argument.Settings.Set(types.TakesValue)
		if argument.Settings.IsSet(types.ValueDelimiterNotSet) {
			argument.Settings = argument.Settings.Unset(types.ValueDelimiterNotSet).Set(types.UseValueDelimiter)
		}
		argument.ValueNames = append(argument.ValueNames, names...)
	}
}

// WithValueName appends one value placeholder without touching delimiter settings
func WithValueName(name string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Settings = argument.Settings.Set(types.TakesValue)
		argument.ValueNames = append(argument.ValueNames, name)
	}
}

// WithPossibleValues appends to the allow-list
func WithPossibleValues(values ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.PossibleValues = append(argument.PossibleValues, values...)
	}
}

// WithValidator sets the text validator run on every explicit value
func WithValidator(validator Validator) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Validator = validator
	}
}

// WithBytesValidator sets the raw-bytes validator run on every explicit value
func WithBytesValidator(validator BytesValidator) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.BytesValidator = validator
	}
}

// WithDefaultValue sets the value used when the argument is absent and no conditional default applies
func WithDefaultValue(value string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValue = &value
		argument.Settings = argument.Settings.Set(types.TakesValue)
	}
}

// WithDefaultValueIf supplies def when arg is present with first value equal to value
func WithDefaultValueIf(arg, value, def string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultIfs = append(argument.DefaultIfs, DefaultIf{Arg: arg, Value: &value, Default: def})
		argument.Settings = argument.Settings.Set(types.TakesValue)
	}
}

// WithDefaultValueIfPresent supplies def when arg is present with any value
func WithDefaultValueIfPresent(arg, def string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultIfs = append(argument.DefaultIfs, DefaultIf{Arg: arg, Default: def})
		argument.Settings = argument.Settings.Set(types.TakesValue)
	}
}

// WithDefaultValueIfs appends several conditional defaults. They are evaluated in order.
func WithDefaultValueIfs(defaults ...DefaultIf) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultIfs = append(argument.DefaultIfs, defaults...)
		argument.Settings = argument.Settings.Set(types.TakesValue)
	}
}

// WithRequires makes names required whenever this argument is present
func WithRequires(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		for _, n := range names {
			argument.Requires = append(argument.Requires, Requirement{Target: n})
		}
	}
}

// WithRequiresAll is WithRequires taking a slice
func WithRequiresAll(names []string) ConfigureArgumentFunc {
	return WithRequires(names...)
}

// WithRequiresIf makes target required when this argument's first value equals value
func WithRequiresIf(value, target string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Requires = append(argument.Requires, Requirement{Target: target, Value: &value})
	}
}

// WithRequiresIfs appends several value-conditional requirements
func WithRequiresIfs(reqs ...types.KeyValue[string, string]) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		for _, kv := range reqs {
			value := kv.Key
			argument.Requires = append(argument.Requires, Requirement{Target: kv.Value, Value: &value})
		}
	}
}

// WithRequiredIf makes this argument required when arg is present with first value equal to value
func WithRequiredIf(arg, value string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.RequiredIfs = append(argument.RequiredIfs, RequiredIf{Arg: arg, Value: value})
	}
}

// WithRequiredIfs appends several (arg, value) triggers
func WithRequiredIfs(ifs ...RequiredIf) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.RequiredIfs = append(argument.RequiredIfs, ifs...)
	}
}

// WithRequiredUnless makes this argument required unless name is present
func WithRequiredUnless(name string) ConfigureArgumentFunc {
	return WithRequiredUnlessOne(name)
}

// WithRequiredUnlessOne makes this argument required unless at least one of names is present
func WithRequiredUnlessOne(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.RequiredUnless = append(argument.RequiredUnless, names...)
	}
}

// WithRequiredUnlessAll makes this argument required unless every one of names is present
func WithRequiredUnlessAll(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.RequiredUnless = append(argument.RequiredUnless, names...)
		argument.Settings = argument.Settings.Set(types.RequiredUnlessAll)
	}
}

// WithConflictsWith forbids names from being present together with this argument
func WithConflictsWith(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.ConflictsWith = append(argument.ConflictsWith, names...)
	}
}

// WithOverridesWith lets the later of this argument and each of names win. Naming the argument
// itself keeps only its last occurrence.
func WithOverridesWith(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.OverridesWith = append(argument.OverridesWith, names...)
	}
}

// WithGroups adds the argument to the named groups, creating them on registration if needed
func WithGroups(names ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Groups = append(argument.Groups, names...)
	}
}
