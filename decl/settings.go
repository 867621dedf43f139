package decl

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/napalu/argspec"
	"github.com/napalu/argspec/errs"
)

// argSetting converts the raw value of one setting into option funcs
type argSetting func(v any) ([]argspec.ConfigureArgumentFunc, error)

var argSettings = map[string]argSetting{
	"short":               str(argspec.WithShort),
	"long":                str(argspec.WithLong),
	"aliases":             strs(argspec.WithAliases),
	"visible_aliases":     strs(argspec.WithVisibleAliases),
	"help":                str(argspec.WithHelp),
	"long_help":           str(argspec.WithLongHelp),
	"index":               integer(argspec.WithIndex),
	"display_order":       integer(argspec.WithDisplayOrder),
	"required":            boolean(argspec.WithRequired),
	"takes_value":         boolean(argspec.WithTakesValue),
	"global":              boolean(argspec.WithGlobal),
	"multiple":            boolean(argspec.WithMultiple),
	"hidden":              boolean(argspec.WithHidden),
	"next_line_help":      boolean(argspec.WithNextLineHelp),
	"empty_values":        boolean(argspec.WithEmptyValues),
	"use_delimiter":       boolean(argspec.WithUseDelimiter),
	"allow_hyphen_values": boolean(argspec.WithAllowHyphenValues),
	"require_delimiter":   boolean(argspec.WithRequireDelimiter),
	"number_of_values":    integer(argspec.WithNumberOfValues),
	"max_values":          integer(argspec.WithMaxValues),
	"min_values":          integer(argspec.WithMinValues),
	"value_name":          str(argspec.WithValueName),
	"value_names":         strs(argspec.WithValueNames),
	"value_terminator":    str(argspec.WithValueTerminator),
	"value_delimiter":     delimiter,
	"group":               strs(argspec.WithGroups),
	"groups":              strs(argspec.WithGroups),
	"requires":            strs(argspec.WithRequires),
	"conflicts_with":      strs(argspec.WithConflictsWith),
	"overrides_with":      strs(argspec.WithOverridesWith),
	"possible_values":     strs(argspec.WithPossibleValues),
	"required_unless":     strs(argspec.WithRequiredUnlessOne),
	"required_unless_one": strs(argspec.WithRequiredUnlessOne),
	"required_unless_all": strs(argspec.WithRequiredUnlessAll),
	"default_value":       str(argspec.WithDefaultValue),
	"required_if":         pairs(argspec.WithRequiredIf),
	"required_ifs":        pairs(argspec.WithRequiredIf),
	"requires_if":         pairs(argspec.WithRequiresIf),
	"requires_ifs":        pairs(argspec.WithRequiresIf),
	"default_value_if":    defaultIfs,
	"default_value_ifs":   defaultIfs,
	"settings":            settingNames,
}

// FromMap builds an argument called name from declarative settings. Keys may be written in
// snake_case, camelCase or kebab-case. Settings are applied in key order.
func FromMap(name string, settings map[string]any) (*argspec.Argument, error) {
	if name == "" {
		return nil, errs.NewEmptyName()
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	arg := argspec.NewArg(name)
	for _, key := range keys {
		norm := strcase.ToSnake(key)
		setting, ok := argSettings[norm]
		if !ok {
			return nil, errs.NewUnknownSetting(key, name)
		}
		configs, err := setting(settings[key])
		if err != nil {
			return nil, errs.NewInvalidSetting(key, name, err)
		}
		if err := arg.Set(configs...); err != nil {
			return nil, err
		}
	}

	return arg, nil
}

// GroupFromMap builds a group called name. Recognised keys are args, required, requires_all,
// requires and conflicts_with.
func GroupFromMap(name string, settings map[string]any) (*argspec.Group, error) {
	if name == "" {
		return nil, errs.NewEmptyName()
	}

	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	configs := make([]argspec.ConfigureGroupFunc, 0, len(keys))
	for _, key := range keys {
		v := settings[key]
		var err error
		switch strcase.ToSnake(key) {
		case "args":
			var members []string
			if members, err = toStrings(v); err == nil {
				configs = append(configs, argspec.WithMembers(members...))
			}
		case "required":
			var b bool
			if b, err = toBool(v); err == nil {
				configs = append(configs, argspec.WithGroupRequired(b))
			}
		case "requires_all":
			var b bool
			if b, err = toBool(v); err == nil {
				configs = append(configs, argspec.WithAllMembers(b))
			}
		case "requires":
			var names []string
			if names, err = toStrings(v); err == nil {
				configs = append(configs, argspec.WithGroupRequires(names...))
			}
		case "conflicts_with":
			var names []string
			if names, err = toStrings(v); err == nil {
				configs = append(configs, argspec.WithGroupConflicts(names...))
			}
		default:
			return nil, errs.NewUnknownSetting(key, name)
		}
		if err != nil {
			return nil, errs.NewInvalidSetting(key, name, err)
		}
	}

	return argspec.NewGroup(name, configs...), nil
}

func str(fn func(string) argspec.ConfigureArgumentFunc) argSetting {
	return func(v any) ([]argspec.ConfigureArgumentFunc, error) {
		s, err := toString(v)
		if err != nil {
			return nil, err
		}
		return []argspec.ConfigureArgumentFunc{fn(s)}, nil
	}
}

func strs(fn func(...string) argspec.ConfigureArgumentFunc) argSetting {
	return func(v any) ([]argspec.ConfigureArgumentFunc, error) {
		s, err := toStrings(v)
		if err != nil {
			return nil, err
		}
		return []argspec.ConfigureArgumentFunc{fn(s...)}, nil
	}
}

func boolean(fn func(bool) argspec.ConfigureArgumentFunc) argSetting {
	return func(v any) ([]argspec.ConfigureArgumentFunc, error) {
		b, err := toBool(v)
		if err != nil {
			return nil, err
		}
		return []argspec.ConfigureArgumentFunc{fn(b)}, nil
	}
}

func integer(fn func(int) argspec.ConfigureArgumentFunc) argSetting {
	return func(v any) ([]argspec.ConfigureArgumentFunc, error) {
		n, err := toInt(v)
		if err != nil {
			return nil, err
		}
		return []argspec.ConfigureArgumentFunc{fn(n)}, nil
	}
}

func pairs(fn func(string, string) argspec.ConfigureArgumentFunc) argSetting {
	return func(v any) ([]argspec.ConfigureArgumentFunc, error) {
		tuples, err := toTuples(v, 2)
		if err != nil {
			return nil, err
		}
		configs := make([]argspec.ConfigureArgumentFunc, 0, len(tuples))
		for _, t := range tuples {
			if t[0] == nil || t[1] == nil {
				return nil, fmt.Errorf("expected two strings, got %v", t)
			}
			configs = append(configs, fn(*t[0], *t[1]))
		}
		return configs, nil
	}
}

// defaultIfs reads [arg, value, default] triples. A null value means "when arg is present".
func defaultIfs(v any) ([]argspec.ConfigureArgumentFunc, error) {
	tuples, err := toTuples(v, 3)
	if err != nil {
		return nil, err
	}
	configs := make([]argspec.ConfigureArgumentFunc, 0, len(tuples))
	for _, t := range tuples {
		if t[0] == nil || t[2] == nil {
			return nil, fmt.Errorf("expected argument and default, got %v", t)
		}
		if t[1] == nil {
			configs = append(configs, argspec.WithDefaultValueIfPresent(*t[0], *t[2]))
			continue
		}
		configs = append(configs, argspec.WithDefaultValueIf(*t[0], *t[1], *t[2]))
	}

	return configs, nil
}

func delimiter(v any) ([]argspec.ConfigureArgumentFunc, error) {
	s, err := toString(v)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(s) != 1 {
		return nil, fmt.Errorf("expected a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return []argspec.ConfigureArgumentFunc{argspec.WithValueDelimiter(r)}, nil
}

func settingNames(v any) ([]argspec.ConfigureArgumentFunc, error) {
	names, err := toStrings(v)
	if err != nil {
		return nil, err
	}
	configs := make([]argspec.ConfigureArgumentFunc, len(names))
	for i, n := range names {
		configs[i] = argspec.WithSettingName(n)
	}

	return configs, nil
}
